// Package mask provides compact missingness masks for tabular data.
//
// A Mask records, for a rows x cols matrix, which cells are missing
// (held out) and which are observed. It wraps a 32-bit Roaring Bitmap of
// missing cell ordinals, so sparse hold-out sets stay cheap to keep around
// and to persist alongside an experiment.
package mask

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/imputego/tabular"
)

// ErrNotBinary indicates a mask source matrix containing values other than 0 and 1.
type ErrNotBinary struct {
	Row, Col int
	Value    float64
}

func (e *ErrNotBinary) Error() string {
	return fmt.Sprintf("mask entry (%d,%d) is %v, want 0 or 1", e.Row, e.Col, e.Value)
}

// Mask is a rows x cols missingness indicator.
// Cells present in the bitmap are missing; all others are observed.
type Mask struct {
	rows, cols int
	missing    *roaring.Bitmap
}

// New creates an all-observed mask of the given shape.
func New(rows, cols int) *Mask {
	return &Mask{
		rows:    rows,
		cols:    cols,
		missing: roaring.New(),
	}
}

// FromMatrix builds a Mask from a 0/1 indicator matrix using the toolkit
// convention: 0 = missing, 1 = observed.
func FromMatrix(m *tabular.Matrix) (*Mask, error) {
	rows, cols := m.Dims()
	out := New(rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch m.At(i, j) {
			case 0:
				out.missing.Add(out.ordinal(i, j))
			case 1:
			default:
				return nil, &ErrNotBinary{Row: i, Col: j, Value: m.At(i, j)}
			}
		}
	}

	return out, nil
}

func (k *Mask) ordinal(i, j int) uint32 {
	return uint32(i*k.cols + j)
}

// Dims returns the mask shape.
func (k *Mask) Dims() (rows, cols int) {
	return k.rows, k.cols
}

// SetMissing marks cell (i, j) as missing.
func (k *Mask) SetMissing(i, j int) {
	k.missing.Add(k.ordinal(i, j))
}

// IsMissing reports whether cell (i, j) is missing.
func (k *Mask) IsMissing(i, j int) bool {
	return k.missing.Contains(k.ordinal(i, j))
}

// MissingCount returns the number of missing cells.
func (k *Mask) MissingCount() uint64 {
	return k.missing.GetCardinality()
}

// ObservedCount returns the number of observed cells.
func (k *Mask) ObservedCount() uint64 {
	return uint64(k.rows*k.cols) - k.missing.GetCardinality()
}

// Matrix renders the mask as a 0/1 indicator matrix (0 = missing,
// 1 = observed), the form the numeric helpers consume.
func (k *Mask) Matrix() *tabular.Matrix {
	out := tabular.New(k.rows, k.cols)
	for i := 0; i < k.rows; i++ {
		for j := 0; j < k.cols; j++ {
			if !k.missing.Contains(k.ordinal(i, j)) {
				out.Set(i, j, 1)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the mask.
func (k *Mask) Clone() *Mask {
	return &Mask{
		rows:    k.rows,
		cols:    k.cols,
		missing: k.missing.Clone(),
	}
}

// ToBytes serializes the mask's missing-cell set in the standard roaring
// format. Shape is not included; pair the bytes with the matrix they
// describe.
func (k *Mask) ToBytes() ([]byte, error) {
	return k.missing.ToBytes()
}

// FromBytes deserializes a mask of the given shape from standard roaring
// bytes produced by ToBytes.
func FromBytes(rows, cols int, data []byte) (*Mask, error) {
	rb := roaring.New()
	if err := rb.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	return &Mask{rows: rows, cols: cols, missing: rb}, nil
}
