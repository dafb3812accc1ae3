package dataset

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType identifies the compression codec of a dataset file.
type CompressionType uint8

const (
	// CompressionNone indicates a plain text file.
	CompressionNone CompressionType = 0
	// CompressionGzip indicates gzip framing (.gz).
	CompressionGzip CompressionType = 1
	// CompressionZSTD indicates zstd framing (.zst).
	CompressionZSTD CompressionType = 2
	// CompressionLZ4 indicates lz4 framing (.lz4).
	CompressionLZ4 CompressionType = 3
)

// DetectCompression infers the codec from the file extension.
func DetectCompression(path string) CompressionType {
	switch filepath.Ext(path) {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// decompressReader wraps r with the decoder for the given codec.
// The returned closer closes the decoder only, never r.
func decompressReader(r io.Reader, ct CompressionType) (io.ReadCloser, error) {
	switch ct {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(&lz4MultiReader{src: r, zr: lz4.NewReader(r)}), nil
	default:
		return io.NopCloser(r), nil
	}
}

// lz4MultiReader reads a stream of concatenated lz4 frames. The lz4 reader
// consumes the underlying stream with exact-size reads, so after a frame
// ends the source is positioned at the next frame header.
type lz4MultiReader struct {
	src io.Reader
	zr  *lz4.Reader
}

func (m *lz4MultiReader) Read(p []byte) (int, error) {
	for {
		n, err := m.zr.Read(p)
		if err != io.EOF {
			return n, err
		}
		if n > 0 {
			return n, nil
		}

		// Frame finished. If the source has more bytes, start the next frame.
		var b [1]byte
		if _, err := io.ReadFull(m.src, b[:]); err != nil {
			return 0, io.EOF
		}
		m.zr = lz4.NewReader(io.MultiReader(bytes.NewReader(b[:]), m.src))
	}
}

// compressWriter wraps w with the encoder for the given codec.
// Closing the returned writer flushes and finalizes the frame without
// closing w.
func compressWriter(w io.Writer, ct CompressionType) (io.WriteCloser, error) {
	switch ct {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZSTD:
		return zstd.NewWriter(w)
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
