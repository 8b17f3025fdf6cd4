// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: quantized matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// Det is an alias for Determinant: recursive first-row cofactor expansion.
// Complexity: O(n!).
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// InverseOf is an alias for Inverse: quantized adjugate over determinant.
// Complexity: O(n² · (n−1)!).
func InverseOf(m Matrix, opts ...Option) (Matrix, error) { return Inverse(m, opts...) }
