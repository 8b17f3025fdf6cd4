// SPDX-License-Identifier: MIT
// Package canvas: the Color value type.
// Color mirrors the tuple arithmetic style: an immutable value whose
// operators return fresh results. Components live in [0,1] for displayable
// colors but are deliberately unbounded during computation — light can
// accumulate past white and is only clamped at serialization time.

package canvas

import (
	"image/color"
	"math"
)

// Epsilon is the absolute tolerance used by Color.Equal.
const Epsilon = 1e-5

// MaxChannel is the largest serialized channel value (8-bit depth).
const MaxChannel = 255

// Color is a float64 RGB triple with component-wise arithmetic.
type Color struct {
	R, G, B float64
}

// NewColor constructs a Color from explicit components.
// Complexity: O(1).
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero value every fresh canvas is filled with.
// Complexity: O(1).
func Black() Color {
	return Color{}
}

// Add returns the component-wise sum c + o.
// Complexity: O(1).
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the component-wise difference c - o.
// Complexity: O(1).
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale returns c with every component multiplied by k.
// Complexity: O(1).
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// Mul returns the Hadamard (component-wise) product c ⊙ o — the blend of a
// surface color with a light color.
// Complexity: O(1).
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Equal reports whether every component pair lies within Epsilon.
// Complexity: O(1).
func (c Color) Equal(o Color) bool {
	return math.Abs(c.R-o.R) <= Epsilon &&
		math.Abs(c.G-o.G) <= Epsilon &&
		math.Abs(c.B-o.B) <= Epsilon
}

// channel8 clamps v into [0,1] and scales it to the 8-bit channel range.
func channel8(v float64) uint8 {
	scaled := math.Round(v * MaxChannel)
	if scaled < 0 {
		return 0
	}
	if scaled > MaxChannel {
		return MaxChannel
	}

	return uint8(scaled)
}

// RGB8 returns the clamped 8-bit channels used by every serializer.
// Complexity: O(1).
func (c Color) RGB8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

// NRGBA converts c to the standard library color type (opaque alpha).
// Complexity: O(1).
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB8()

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
