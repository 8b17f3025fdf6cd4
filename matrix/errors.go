// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors (invalid functional options).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the kernel
// boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDataLength indicates that the flat data slice handed to
	// NewDenseData does not contain exactly rows*cols entries.
	ErrDataLength = errors.New("matrix: data length does not match dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) and Submatrix MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Determinant,
	// Minor, Cofactor, IsInvertible, Inverse) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when Inverse is requested on a matrix whose
	// determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOrderTooLarge is returned when cofactor expansion is requested on a
	// square matrix larger than the configured maximum expansion order.
	// Expansion cost is exponential in the order, so the cap is explicit
	// rather than an unbounded recursion.
	ErrOrderTooLarge = errors.New("matrix: order exceeds expansion limit")
)
