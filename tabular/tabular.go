package tabular

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty is returned when a matrix is constructed from zero rows.
var ErrEmpty = errors.New("matrix must have at least one row")

// ErrShapeMismatch indicates that two matrices expected to share a shape do not.
type ErrShapeMismatch struct {
	ExpectedRows, ExpectedCols int
	ActualRows, ActualCols     int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: expected %dx%d, got %dx%d",
		e.ExpectedRows, e.ExpectedCols, e.ActualRows, e.ActualCols)
}

// ErrRaggedRows indicates that input rows have inconsistent lengths.
type ErrRaggedRows struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRaggedRows) Error() string {
	return fmt.Sprintf("ragged rows: row %d has %d columns, expected %d",
		e.Row, e.Actual, e.Expected)
}

// Matrix is a dense row-major 2-D float64 array.
// Missing entries are represented as NaN.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a rows x cols matrix with all entries zero.
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromRows builds a matrix from a slice of rows.
// All rows must have the same length.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ErrRaggedRows{Row: i, Expected: cols, Actual: len(row)}
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// SetMissing marks the entry at row i, column j as missing (NaN).
func (m *Matrix) SetMissing(i, j int) {
	m.data[i*m.cols+j] = math.NaN()
}

// IsMissing reports whether the entry at row i, column j is NaN.
func (m *Matrix) IsMissing(i, j int) bool {
	return math.IsNaN(m.data[i*m.cols+j])
}

// Row returns row i as a slice. The slice aliases the matrix storage;
// callers that need an independent copy must copy it themselves.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows: m.rows,
		cols: m.cols,
		data: make([]float64, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// SameShape returns nil if o has the same dimensions as m,
// otherwise an *ErrShapeMismatch.
func (m *Matrix) SameShape(o *Matrix) error {
	if m.rows != o.rows || m.cols != o.cols {
		return &ErrShapeMismatch{
			ExpectedRows: m.rows, ExpectedCols: m.cols,
			ActualRows: o.rows, ActualCols: o.cols,
		}
	}
	return nil
}

// Equal reports whether m and o have identical shape and entries.
// NaN entries are considered equal to NaN (missing matches missing).
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		w := o.data[i]
		if math.IsNaN(v) && math.IsNaN(w) {
			continue
		}
		if v != w {
			return false
		}
	}
	return true
}

// EqualApprox reports whether m and o have identical shape and entries
// within the absolute tolerance tol. NaN matches NaN.
func (m *Matrix) EqualApprox(o *Matrix, tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		w := o.data[i]
		if math.IsNaN(v) && math.IsNaN(w) {
			continue
		}
		if math.Abs(v-w) > tol {
			return false
		}
	}
	return true
}

// Rows returns the matrix as a freshly allocated slice of row copies.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		row := make([]float64, m.cols)
		copy(row, m.Row(i))
		out[i] = row
	}
	return out
}
