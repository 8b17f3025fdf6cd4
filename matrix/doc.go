// Package matrix offers dense matrix storage and the linear-algebra
// kernels behind lvlray's affine transforms.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix, plus the Matrix interface for
//     alternative implementations.
//   - Element-wise kernels (Add, Sub, Scale) and matrix products (Mul,
//     MulTuple) with a fixed 5-decimal rounding policy on products.
//   - The cofactor engine: Submatrix, Minor, Cofactor, Determinant
//     (recursive first-row expansion), IsInvertible and Inverse via the
//     adjugate.
//
// All kernels are pure functions with strict fail-fast validation:
// precondition violations (dimension mismatch, non-square input,
// singular matrix, out-of-range index) surface immediately as sentinel
// errors matched via errors.Is, never as silently corrected results.
//
// Determinant expansion is exponential in matrix order by design — the
// rendering domain never exceeds 4×4 — and is capped by a configurable
// guard (WithMaxExpansionOrder) rather than allowed to recurse without
// bound.
//
// See the examples in this package for usage patterns.
package matrix
