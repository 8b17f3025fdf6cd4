// SPDX-License-Identifier: MIT
// Package canvas: the pixel buffer.
// Canvas stores pixels in a flat row-major slice (entry (x, y) lives at
// x + y*width) and exposes bounds-checked accessors plus serialization to
// PPM, PNG and BMP.

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

// ppmMagic identifies the plain-text (ASCII) PPM variant.
const ppmMagic = "P3"

// Canvas is a dense buffer of Color pixels.
type Canvas struct {
	width, height int     // buffer dimensions
	pixels        []Color // flat row-major storage, length == width*height
}

// New creates a width×height Canvas with every pixel initialized to black.
// Stage 1 (Validate): ensure width and height > 0.
// Stage 2 (Prepare): allocate flat pixel slice (zero Color is black).
// Complexity: O(w*h) time and memory.
func New(width, height int) (*Canvas, error) {
	// Validate dimensions
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}, nil
}

// Width returns the horizontal pixel count.
// Complexity: O(1).
func (c *Canvas) Width() int { return c.width }

// Height returns the vertical pixel count.
// Complexity: O(1).
func (c *Canvas) Height() int { return c.height }

// indexOf computes the flat index for (x, y) or returns ErrOutOfRange.
// Complexity: O(1).
func (c *Canvas) indexOf(method string, x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, fmt.Errorf("Canvas.%s(%d,%d): %w", method, x, y, ErrOutOfRange)
	}

	return x + y*c.width, nil
}

// Pixel retrieves the color at (x, y).
// Complexity: O(1).
func (c *Canvas) Pixel(x, y int) (Color, error) {
	idx, err := c.indexOf("Pixel", x, y)
	if err != nil {
		return Color{}, err
	}

	return c.pixels[idx], nil
}

// SetPixel assigns the color at (x, y).
// Complexity: O(1).
func (c *Canvas) SetPixel(x, y int, col Color) error {
	idx, err := c.indexOf("SetPixel", x, y)
	if err != nil {
		return err
	}
	c.pixels[idx] = col

	return nil
}

// ---------- image.Image ----------

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image: the clamped 8-bit view of the pixel.
// Coordinates outside the bounds read as opaque black, per the interface's
// convention of total functions.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.NRGBA{A: 0xff}
	}

	return c.pixels[x+y*c.width].NRGBA()
}

// ---------- Serialization ----------

// EncodePPM writes the plain-text PPM (P3) form of the canvas.
//
// Implementation:
//   - Stage 1: header — magic, dimensions, maximum channel value.
//   - Stage 2: one text line per pixel row; each pixel contributes its
//     clamped 8-bit channels as three space-separated integers.
//
// Behavior highlights:
//   - Deterministic output byte-for-byte for identical canvases; golden
//     fixtures rely on it. A trailing newline terminates the file.
//
// Complexity: O(w*h).
func (c *Canvas) EncodePPM(w io.Writer) error {
	var sb strings.Builder

	// Header: magic, dimensions, channel depth.
	fmt.Fprintf(&sb, "%s\n%d %d\n%d\n", ppmMagic, c.width, c.height, MaxChannel)

	// Pixel rows: fixed y→x order.
	var x, y int
	for y = 0; y < c.height; y++ {
		for x = 0; x < c.width; x++ {
			r, g, b := c.pixels[x+y*c.width].RGB8()
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d %d %d", r, g, b)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// EncodePNG writes the canvas as a PNG image.
// Complexity: O(w*h) plus compression.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c)
}

// EncodeBMP writes the canvas as an uncompressed BMP image.
// Complexity: O(w*h).
func (c *Canvas) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, c)
}
