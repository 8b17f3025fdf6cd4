// SPDX-License-Identifier: MIT
// Package canvas: sentinel error set. Tests check these via errors.Is;
// no operation panics on user-triggered conditions.

package canvas

import "errors"

var (
	// ErrInvalidDimensions indicates that requested canvas dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("canvas: dimensions must be > 0")

	// ErrOutOfRange indicates that a pixel coordinate is outside the buffer.
	// Pixel/SetPixel MUST return this, not panic.
	ErrOutOfRange = errors.New("canvas: pixel out of range")
)
