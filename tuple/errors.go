// SPDX-License-Identifier: MIT
// Package tuple: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// MUST return these sentinels and tests MUST check them via errors.Is.
// No operation panics on user-triggered conditions.

package tuple

import "errors"

var (
	// ErrNotVector is returned when a vector-only operation (Cross) receives
	// a tuple whose w component is not within Epsilon of zero.
	ErrNotVector = errors.New("tuple: not a vector")

	// ErrZeroLength is returned by Normalize when the tuple magnitude is
	// exactly zero and no unit direction exists.
	ErrZeroLength = errors.New("tuple: zero-length tuple")
)
