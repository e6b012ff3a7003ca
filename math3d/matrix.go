package math3d

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is an immutable rows x cols matrix of float64.
// The zero value is an empty matrix.
type Matrix struct {
	m *mgl64.MatMxN
}

// DimensionError reports operands whose shapes don't fit an operation.
// It is a programming error and is raised with panic.
type DimensionError struct {
	Op   string
	Want string
	Have string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("math3d: %s: want %s, have %s", e.Op, e.Want, e.Have)
}

func shape(m Matrix) string { return fmt.Sprintf("%dx%d", m.Rows(), m.Cols()) }

// FromRows builds a matrix from row slices, which must be non-empty and
// of equal length.
func FromRows(rows ...[]float64) Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic(&DimensionError{Op: "FromRows", Want: "non-empty rows", Have: "empty"})
	}
	n := len(rows[0])
	m := mgl64.NewMatrix(len(rows), n)
	for r, row := range rows {
		if len(row) != n {
			panic(&DimensionError{
				Op:   "FromRows",
				Want: fmt.Sprintf("%d columns in row %d", n, r),
				Have: fmt.Sprintf("%d", len(row)),
			})
		}
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return Matrix{m}
}

// FromMat4 converts a column-major mgl64.Mat4.
func FromMat4(m mgl64.Mat4) Matrix {
	return Matrix{mgl64.NewMatrixFromData(m[:], 4, 4)}
}

// Column builds a len(vals) x 1 column matrix.
func Column(vals ...float64) Matrix {
	if len(vals) == 0 {
		panic(&DimensionError{Op: "Column", Want: "at least one value", Have: "none"})
	}
	return Matrix{mgl64.NewMatrixFromData(vals, len(vals), 1)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	return Matrix{mgl64.IdentN(nil, n)}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	if m.m == nil {
		return 0
	}
	return m.m.NumRows()
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if m.m == nil {
		return 0
	}
	return m.m.NumCols()
}

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 {
	if r < 0 || r >= m.Rows() || c < 0 || c >= m.Cols() {
		panic(&DimensionError{Op: "At", Want: shape(m), Have: fmt.Sprintf("(%d,%d)", r, c)})
	}
	return m.m.At(r, c)
}

// Row returns a copy of row r.
func (m Matrix) Row(r int) []float64 {
	row := make([]float64, m.Cols())
	for c := range row {
		row[c] = m.At(r, c)
	}
	return row
}

// Mat4 converts a 4x4 matrix to mgl64.Mat4.
func (m Matrix) Mat4() mgl64.Mat4 {
	if m.Rows() != 4 || m.Cols() != 4 {
		panic(&DimensionError{Op: "Mat4", Want: "4x4", Have: shape(m)})
	}
	var out mgl64.Mat4
	copy(out[:], m.m.Raw())
	return out
}

// ApproxEqual reports whether m and n have the same shape and all
// elements within epsilon.
func (m Matrix) ApproxEqual(n Matrix, epsilon float64) bool {
	if m.Rows() != n.Rows() || m.Cols() != n.Cols() {
		return false
	}
	if m.m == nil {
		return true
	}
	// Absolute tolerance; mgl64's relative compare is too strict near zero.
	return m.m.ApproxEqualFunc(n.m, func(a, b float64) bool {
		return math.Abs(a-b) <= epsilon
	})
}

func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprint(&b, m.Row(r))
	}
	return b.String()
}

// Transpose returns the transpose of m.
func Transpose(m Matrix) Matrix {
	if m.Rows() == 0 {
		panic(&DimensionError{Op: "Transpose", Want: "non-empty matrix", Have: shape(m)})
	}
	return Matrix{m.m.Transpose(nil)}
}

// Multiply returns a ⋅ b. cols(a) must equal rows(b).
func Multiply(a, b Matrix) Matrix {
	if a.Cols() == 0 || a.Cols() != b.Rows() {
		panic(&DimensionError{
			Op:   "Multiply",
			Want: fmt.Sprintf("%d rows on the right", a.Cols()),
			Have: shape(a) + " by " + shape(b),
		})
	}
	return Matrix{a.m.MulMxN(nil, b.m)}
}

// MultiplyChain folds Multiply over ms from the left, starting from the
// identity. An empty chain yields the 4x4 identity.
func MultiplyChain(ms ...Matrix) Matrix {
	if len(ms) == 0 {
		return Identity(4)
	}
	acc := Identity(ms[0].Rows())
	for _, m := range ms {
		acc = Multiply(acc, m)
	}
	return acc
}

// HomogeneousDivide flattens a column matrix and divides every component
// by the last one. A last component of exactly zero is treated as 1, so
// the point comes back undivided instead of infinite.
func HomogeneousDivide(m Matrix) []float64 {
	if m.Cols() != 1 {
		panic(&DimensionError{Op: "HomogeneousDivide", Want: "column matrix", Have: shape(m)})
	}
	n := m.Rows()
	w := m.At(n-1, 0)
	if w == 0 {
		w = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = m.At(i, 0) / w
	}
	return out
}
