// SPDX-License-Identifier: MIT
// Package matrix: the cofactor engine — submatrix extraction, minors,
// cofactors, recursive determinant expansion and adjugate-based inversion.
//
// Purpose:
//   - Implement the recursive algorithm family the transform pipeline rests
//     on: delete-row/column index arithmetic, first-row cofactor expansion
//     for arbitrary square order, checkerboard sign alternation, and the
//     quantized adjugate-over-determinant inverse.
//
// Notes:
//   - Expansion is exponential in the matrix order (no LU shortcut); the
//     guard from options.go keeps the recursion bounded. Kernels validate at
//     the public boundary once, then recurse through unexported helpers that
//     assume validated inputs.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opSubmatrix    = "Submatrix"
	opMinor        = "Minor"
	opCofactor     = "Cofactor"
	opDeterminant  = "Determinant"
	opIsInvertible = "IsInvertible"
	opInverse      = "Inverse"
)

// det2x2Order is the expansion base case: |a b; c d| = ad − bc.
const det2x2Order = 2

// Submatrix returns the (r−1)×(c−1) matrix formed by deleting the given
// row and column from m. Works for square and non-square shapes.
//
// Implementation:
//   - Stage 1: Validate m non-nil, (row, col) in range, and both result
//     dimensions positive (deleting from a single-row or single-column
//     matrix has no valid result shape).
//   - Stage 2: Copy every surviving entry, shifting indices past the
//     deleted row/column down by one.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions.
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity: Time O(r*c), Space O((r−1)*(c−1)).
func Submatrix(m Matrix, row, col int) (Matrix, error) {
	// Validate input non-nil and the deletion target in range.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	sub, err := submatrix(m, row, col)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return sub, nil
}

// submatrix is the unchecked deletion kernel: indices are assumed valid.
// The only residual failure is a degenerate result shape (ErrInvalidDimensions).
func submatrix(m Matrix, row, col int) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows-1, cols-1)
	if err != nil {
		return nil, err // 1×c or r×1 input: no valid submatrix shape
	}

	var i, j, di, dj int // source indices and destination indices
	// Fast-path: flat copy between Dense backing slices.
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			if i == row {
				continue // deleted row
			}
			dj = 0
			for j = 0; j < cols; j++ {
				if j == col {
					continue // deleted column
				}
				res.data[di*(cols-1)+dj] = dm.data[i*cols+j]
				dj++
			}
			di++
		}

		return res, nil
	}

	// Fallback: generic interface copy with the same index shifts.
	var v float64
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		dj = 0
		for j = 0; j < cols; j++ {
			if j == col {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if err = res.Set(di, dj, v); err != nil {
				return nil, fmt.Errorf("Set(%d,%d): %w", di, dj, err)
			}
			dj++
		}
		di++
	}

	return res, nil
}

// Determinant computes det(m) by recursive first-row cofactor expansion.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square; enforce the expansion-order
//     guard (default DefaultMaxExpansionOrder, see WithMaxExpansionOrder).
//   - Stage 2: Base cases — 1×1 returns the entry, 2×2 returns ad − bc.
//     Recursive case — Σ over c of m[0,c]·cofactor(m, 0, c).
//
// Behavior highlights:
//   - Exponential-time in the order by design: the rendering domain never
//     exceeds 4×4, so no LU/memoized shortcut is taken and determinism is
//     trivial.
//   - No rounding is applied — only products (Mul) and Inverse quantize.
//
// Inputs:
//   - m: square matrix of order ≤ the configured expansion limit.
//   - opts: WithMaxExpansionOrder to widen or narrow the guard.
//
// Returns:
//   - float64: the exact (unquantized) determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
//
// Determinism:
//   - Fixed first-row expansion order c = 0..n−1.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
//
// AI-Hints:
//   - Values feeding Equal comparisons downstream are NOT quantized here;
//     compare determinants with an explicit tolerance if they were produced
//     by quantized products.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	// Validate structural preconditions once at the public boundary.
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	// Enforce the expansion-order guard.
	if cfg := gatherOptions(opts...); m.Rows() > cfg.maxExpansionOrder {
		return 0, matrixErrorf(opDeterminant, ErrOrderTooLarge)
	}

	det, err := determinant(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant is the unchecked recursive kernel: m is assumed square,
// non-nil and within the expansion guard.
func determinant(m Matrix) (float64, error) {
	n := m.Rows()

	// Base cases with a flat fast-path for *Dense.
	if dm, ok := m.(*Dense); ok {
		switch n {
		case 1:
			return dm.data[0], nil
		case det2x2Order:
			return dm.data[0]*dm.data[3] - dm.data[1]*dm.data[2], nil
		}
	} else {
		switch n {
		case 1:
			return m.At(0, 0)
		case det2x2Order:
			a, err := m.At(0, 0)
			if err != nil {
				return 0, err
			}
			b, err := m.At(0, 1)
			if err != nil {
				return 0, err
			}
			c, err := m.At(1, 0)
			if err != nil {
				return 0, err
			}
			d, err := m.At(1, 1)
			if err != nil {
				return 0, err
			}

			return a*d - b*c, nil
		}
	}

	// Recursive case: expand along the first row.
	var (
		det, lead, cof float64
		col            int
		err            error
	)
	for col = 0; col < n; col++ {
		if lead, err = m.At(0, col); err != nil {
			return 0, fmt.Errorf("At(%d,%d): %w", 0, col, err)
		}
		if lead == 0 {
			continue // skip zero for performance
		}
		if cof, err = cofactor(m, 0, col); err != nil {
			return 0, err
		}
		det += lead * cof
	}

	return det, nil
}

// Minor returns det(Submatrix(m, row, col)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrOrderTooLarge,
//     ErrInvalidDimensions (1×1 input has no minors).
//
// Complexity: Time O((n−1)!), Space O(n²).
func Minor(m Matrix, row, col int, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if cfg := gatherOptions(opts...); m.Rows() > cfg.maxExpansionOrder {
		return 0, matrixErrorf(opMinor, ErrOrderTooLarge)
	}

	v, err := minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return v, nil
}

// minor is the unchecked kernel behind Minor.
func minor(m Matrix, row, col int) (float64, error) {
	sub, err := submatrix(m, row, col)
	if err != nil {
		return 0, err
	}

	return determinant(sub)
}

// Cofactor returns the signed minor: Minor(m, row, col) negated when
// (row+col) is odd, unchanged when even (checkerboard sign rule).
//
// Errors:
//   - Same set as Minor.
//
// Complexity: Time O((n−1)!), Space O(n²).
func Cofactor(m Matrix, row, col int, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if cfg := gatherOptions(opts...); m.Rows() > cfg.maxExpansionOrder {
		return 0, matrixErrorf(opCofactor, ErrOrderTooLarge)
	}

	v, err := cofactor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return v, nil
}

// cofactor is the unchecked kernel behind Cofactor.
func cofactor(m Matrix, row, col int) (float64, error) {
	v, err := minor(m, row, col)
	if err != nil {
		return 0, err
	}
	// Checkerboard sign: negate when (row+col) is odd.
	if (row+col)%2 != 0 {
		return -v, nil
	}

	return v, nil
}

// IsInvertible reports whether det(m) is nonzero.
//
// Behavior highlights:
//   - The zero test is EXACT (bitwise != 0.0) while equality elsewhere uses
//     the EqualTol tolerance. A near-zero but nonzero determinant is treated
//     as invertible; callers inverting such matrices get huge, numerically
//     fragile entries. The asymmetry is intentional and preserved — see the
//     package documentation before "fixing" it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
//
// Complexity: Time O(n!), Space O(n²).
func IsInvertible(m Matrix, opts ...Option) (bool, error) {
	det, err := Determinant(m, opts...)
	if err != nil {
		return false, matrixErrorf(opIsInvertible, err)
	}

	return det != 0.0, nil
}

// Inverse computes m⁻¹ as the quantized adjugate over the determinant.
//
// Implementation:
//   - Stage 1: Validate m non-nil, square and within the expansion guard;
//     compute det(m) once, failing with ErrSingular when it is exactly zero.
//   - Stage 2: For every (row, col), write
//     Quantize(cofactor(m,row,col) / det) into the TRANSPOSED position
//     (col, row) — the transposed write builds the adjugate without a
//     separate transpose pass.
//
// Behavior highlights:
//   - Shares the 5-decimal quantization policy with Mul, so
//     Mul(a, Inverse(a)) lands within EqualTol of the identity.
//   - The determinant is computed once, not per entry.
//
// Inputs:
//   - m: square invertible matrix of order ≤ the configured expansion limit.
//   - opts: WithMaxExpansionOrder to widen or narrow the guard.
//
// Returns:
//   - Matrix: fresh Dense holding m⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge, ErrSingular.
//
// Determinism:
//   - Fixed row→col traversal; quantization is value-deterministic.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
//
// AI-Hints:
//   - Inversion maps composed transforms back to object space:
//     MulTuple(Inverse(transform), worldPoint) recovers object coordinates.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate structure and the expansion guard via the determinant kernel.
	det, err := Determinant(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// Exact-zero singularity test, consistent with IsInvertible.
	if det == 0.0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		row, col int
		cof      float64
	)
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			if cof, err = cofactor(m, row, col); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			// Transposed write: (row, col) cofactor lands at (col, row).
			inv.data[col*n+row] = Quantize(cof / det)
		}
	}

	return inv, nil
}
