// Package canvas provides the pixel buffer a render pass writes into and
// the Color value type it is filled with.
//
// The canvas package provides:
//
//   - Color, a float64 RGB value with component-wise arithmetic (addition,
//     subtraction, scalar scaling, Hadamard product) and tolerance-based
//     equality — components are unbounded during computation and only
//     clamped at serialization time.
//   - Canvas, a dense row-major pixel buffer with bounds-checked access.
//   - Serialization to plain-text PPM (P3), PNG and BMP. Canvas implements
//     image.Image, so any standard encoder can consume it directly.
//
// Access outside the buffer bounds is a reportable error, never a silent
// clamp, consistent with the fail-fast policy of the rest of lvlray.
package canvas
