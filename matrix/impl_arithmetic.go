// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels over any Matrix
// implementation. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the arithmetic kernels (Add, Sub, Scale, Mul, MulTuple,
//     Transpose) and the shared rounding policy for products.
//
// Notes:
//   - Kernels use central validators and wrap sentinels via matrixErrorf.
//   - Each kernel has a *Dense fast-path (flat-slice loops) and a generic
//     At/Set fallback with a fixed, deterministic loop order.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlray/tuple"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// RoundScale fixes the product rounding policy: every Mul result entry is
// stored as round(x*RoundScale)/RoundScale, i.e. rounded to 5 decimal
// places. This is a deliberate, reproducible numerical-stability step —
// not storage precision — and round-trip fixtures depend on it exactly.
const RoundScale = 1e5

// tupleOrder is the fixed shape contract of MulTuple: a homogeneous
// tuple is a 4×1 column, so the matrix operand must be 4×4.
const tupleOrder = 4

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opMulTuple  = "MulTuple"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As still match the sentinel.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Quantize applies the package rounding policy: x rounded to 5 decimal
// places (half away from zero). Mul and Inverse quantize every entry they
// store; exposing the helper lets callers reproduce the policy in fixtures.
// Complexity: O(1).
func Quantize(x float64) float64 {
	return math.Round(x*RoundScale) / RoundScale
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation, and fast-path.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1). Fallback: fixed i→j.
//
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// No other failure mode exists — scaling is total over finite floats
// (NaN/Inf propagate per IEEE-754).
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Mul performs matrix multiplication C = A × B with the package rounding
// policy applied to every result entry.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each C[i,j] is the full dot product along
//     the shared dimension, then quantized to 5 decimals BEFORE storage.
//
// Behavior highlights:
//   - The i→j→k order (rather than the cache-friendlier i→k→j) is load-bearing:
//     rounding applies to the completed sum of each entry, so the accumulation
//     for one entry must finish before the entry is stored.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c), every entry quantized.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k loops; quantization is value-deterministic.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to hit the flat-index path.
//   - Compose transforms left-to-right: Mul(Mul(a, b), c) applies c-space last.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k     int // loop iterators
		av, bv, sum float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					// quantize the completed dot product before storage
					res.data[rowOffsetR+j] = Quantize(sum)
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv // accumulate product
			}
			if err = res.Set(i, j, Quantize(sum)); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MulTuple applies a 4×4 transform matrix to a homogeneous tuple.
//
// Implementation:
//   - Stage 1: Validate m non-nil and exactly 4×4.
//   - Stage 2: Build the 4×1 column matrix (x, y, z, w), delegate to Mul,
//     and read the four resulting rows back into a Tuple.
//
// Behavior highlights:
//   - No rounding beyond the Mul step; the tuple inherits Mul's quantized
//     entries unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (matrix is not 4×4).
//
// Complexity: Time O(1) (fixed 4×4·4×1 product), Space O(1).
func MulTuple(m Matrix, t tuple.Tuple) (tuple.Tuple, error) {
	// Validate the fixed transform shape.
	if err := ValidateNotNil(m); err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}
	if m.Rows() != tupleOrder || m.Cols() != tupleOrder {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, validatorErrorf("ValidateTupleShape", ErrDimensionMismatch))
	}

	// Lift the tuple into a 4×1 column matrix.
	col, err := NewDenseData(tupleOrder, 1, []float64{t.X, t.Y, t.Z, t.W})
	if err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}

	// Delegate to the canonical product kernel (quantization included).
	prod, err := Mul(m, col)
	if err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}

	// Read the four result rows back into tuple components.
	out := prod.(*Dense) // Mul always returns *Dense

	return tuple.New(out.data[0], out.data[1], out.data[2], out.data[3]), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Works for square and non-square shapes; the original is never mutated.
// Property: Transpose(Transpose(A)) == A.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity: Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}
