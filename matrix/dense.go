// Package matrix provides core linear algebra primitives for lvlray.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
)

// EqualTol is the absolute tolerance used by Equal when comparing entries.
// The threshold is coarse by design: chained transform composition rounds
// each product to 5 decimals, and round-trip comparisons (A × A⁻¹ against
// the identity) must absorb that accumulated drift.
const EqualTol = 0.001

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order
// (entry (i, j) lives at flat offset i*c + j).
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseData creates an r×c Dense matrix populated from data, read in
// row-major order. The slice is copied; the caller keeps ownership.
// Stage 1 (Validate): dimensions > 0 and len(data) == rows*cols.
// Stage 2 (Prepare): copy data into fresh backing storage.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions/ErrDataLength.
// Complexity: O(r*c) time and memory.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate flat length matches the requested shape
	if len(data) != rows*cols {
		return nil, ErrDataLength
	}
	// Copy into owned storage so later mutation of the argument is harmless
	owned := make([]float64, len(data))
	copy(owned, data)

	return &Dense{r: rows, c: cols, data: owned}, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1.0
	}

	return ident, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}

// Equal reports whether a and b have identical dimensions and every entry
// pair lies within the absolute tolerance EqualTol.
// Stage 1 (Validate): nil handling — two nils are equal, one nil is not.
// Stage 2 (Execute): dimension check, then entrywise |a-b| ≤ EqualTol.
// Determinism: fixed i→j scan with early negative exit.
// Complexity: O(r*c) worst case.
func Equal(a, b Matrix) bool {
	return EqualWithin(a, b, EqualTol)
}

// EqualWithin is Equal with a caller-supplied absolute tolerance.
// A negative tol is folded to its absolute value.
// Complexity: O(r*c) worst case.
func EqualWithin(a, b Matrix, tol float64) bool {
	// Nil handling: equality is defined, not an error, for comparisons.
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Dimension mismatch ⇒ not equal.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if tol < 0 {
		tol = -tol
	}

	rows, cols := a.Rows(), a.Cols()

	// Fast path: both *Dense → single flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > tol {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // bounds already validated by the shape check
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > tol {
				return false
			}
		}
	}

	return true
}
