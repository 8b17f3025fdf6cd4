// Package lvlray is the numeric heart of a 3-D rendering pipeline —
// homogeneous tuples, dense matrix algebra and the small value types
// a ray tracer composes them with.
//
// 🚀 What is lvlray?
//
//	A purely functional, single-threaded math library that brings together:
//		• Tuples: homogeneous points (w≈1) and vectors (w≈0) with full arithmetic
//		• Matrices: dense row-major storage, transpose, multiplication, inversion
//		• The cofactor engine: submatrix / minor / cofactor / determinant expansion
//		• Canvas: a pixel buffer with PPM, PNG and BMP serialization
//		• Rays: origin/direction pairs advanced along a parameter
//
// ✨ Why choose lvlray?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every precondition surfaces as a sentinel error
//   - Deterministic – fixed loop orders and an explicit rounding policy
//   - Pure Go values – no shared mutable state, no hidden dependencies
//
// Under the hood, everything is organized under four subpackages:
//
//	tuple/  — homogeneous 4-component Tuple (point/vector) & operators
//	matrix/ — Dense storage, arithmetic kernels & the cofactor/inverse core
//	canvas/ — Color values, pixel buffer & image serialization
//	ray/    — parametric rays built on tuple points and vectors
//
// Quick sketch of the data flow:
//
//	    Matrix ──×── Matrix ──×── Tuple
//	      │                      │
//	   Inverse               Ray.Position
//
//	transforms compose left-to-right and apply to scene geometry;
//	inversion maps composed transforms back to object space.
//
// Dive into the package docs for the numeric policy (equality tolerances,
// 5-decimal product rounding) and the error taxonomy each kernel honors.
//
//	go get github.com/katalvlaran/lvlray
package lvlray
