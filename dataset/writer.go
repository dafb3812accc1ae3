package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/hupe1980/imputego/tabular"
)

// Append writes m to w as tab-separated rows: no header, no index column,
// one sample per line. NaN entries are written as the missing token.
func Append(w io.Writer, m *tabular.Matrix, opts ...Option) error {
	o := applyOptions(opts)

	bw := bufio.NewWriter(w)
	rows, cols := m.Dims()

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if err := writeValue(bw, m.At(i, j), o.missingToken); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeValue(bw *bufio.Writer, v float64, missingToken string) error {
	if math.IsNaN(v) {
		_, err := bw.WriteString(missingToken)
		return err
	}
	_, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	return err
}

// AppendFile appends m to the file at path, creating it if absent. The file
// handle is released on every exit path and I/O errors propagate unmodified.
// A compressed path (see DetectCompression) gets one self-contained frame
// per call; frames concatenate into a valid stream.
func AppendFile(path string, m *tabular.Matrix, opts ...Option) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	cw, err := compressWriter(f, DetectCompression(path))
	if err != nil {
		_ = f.Close()
		return err
	}

	werr := Append(cw, m, opts...)
	cerr := cw.Close()
	ferr := f.Close()

	if werr != nil {
		return werr
	}
	if cerr != nil {
		return cerr
	}
	return ferr
}
