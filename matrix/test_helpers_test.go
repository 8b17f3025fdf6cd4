// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlray/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in code under
// test; wrap ONLY the operand you want to de-opt to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustData builds an r×c *Dense from row-major data or fails the test.
func MustData(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseData(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseData(%d,%d,%d values): %v", r, c, len(data), err)
	}

	return m
}

// MustIdentity builds I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i, j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}
