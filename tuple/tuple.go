// SPDX-License-Identifier: MIT
// Package tuple: the Tuple value type and its operators.
// Tuple is a plain value struct; every operator allocates nothing and
// returns a new Tuple, so callers may freely share and compose values.

package tuple

import "math"

// Epsilon is the absolute tolerance used by Equal, IsPoint and IsVector.
// It absorbs the rounding drift produced by chained transform composition;
// comparisons anywhere in lvlray that involve tuples use this constant.
const Epsilon = 1e-5

// PointW is the homogeneous coordinate of a point.
const PointW = 1.0

// VectorW is the homogeneous coordinate of a direction vector.
const VectorW = 0.0

// Tuple is a fixed 4-component floating-point value (x, y, z, w).
// w ≈ 1 marks a point, w ≈ 0 marks a vector; anything else is a raw
// homogeneous tuple produced by intermediate arithmetic.
type Tuple struct {
	X, Y, Z, W float64
}

// New constructs a Tuple from explicit components.
// Complexity: O(1).
func New(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point constructs a point tuple (w = 1).
// Complexity: O(1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: PointW}
}

// Vector constructs a direction vector tuple (w = 0).
// Complexity: O(1).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: VectorW}
}

// IsPoint reports whether t represents a point (w within Epsilon of 1).
// Complexity: O(1).
func (t Tuple) IsPoint() bool {
	return math.Abs(t.W-PointW) <= Epsilon
}

// IsVector reports whether t represents a vector (w within Epsilon of 0).
// Complexity: O(1).
func (t Tuple) IsVector() bool {
	return math.Abs(t.W-VectorW) <= Epsilon
}

// Equal reports whether every component pair of t and o lies within the
// absolute tolerance Epsilon. Tolerance-based by design: exact float
// comparison would reject values that merely round differently.
// Complexity: O(1).
func (t Tuple) Equal(o Tuple) bool {
	return math.Abs(t.X-o.X) <= Epsilon &&
		math.Abs(t.Y-o.Y) <= Epsilon &&
		math.Abs(t.Z-o.Z) <= Epsilon &&
		math.Abs(t.W-o.W) <= Epsilon
}

// Add returns the component-wise sum t + o.
// point + vector = point; vector + vector = vector (w arithmetic carries
// the discriminant automatically).
// Complexity: O(1).
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns the component-wise difference t - o.
// point - point = vector; point - vector = point.
// Complexity: O(1).
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns the component-wise negation of t.
// Complexity: O(1).
func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Scale returns t with every component multiplied by k.
// Complexity: O(1).
func (t Tuple) Scale(k float64) Tuple {
	return Tuple{X: t.X * k, Y: t.Y * k, Z: t.Z * k, W: t.W * k}
}

// Div returns t with every component divided by k.
// Division by zero follows IEEE-754 semantics (±Inf/NaN propagate);
// callers that need a guard should check k upfront.
// Complexity: O(1).
func (t Tuple) Div(k float64) Tuple {
	return Tuple{X: t.X / k, Y: t.Y / k, Z: t.Z / k, W: t.W / k}
}

// Dot returns the 4-component dot product of t and o.
// For two vectors (w = 0) this is the geometric dot product; the w term
// contributes nothing in that case.
// Complexity: O(1).
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3-D cross product t × o.
//
// Implementation:
//   - Stage 1 (Validate): both operands must be vectors (w within Epsilon of 0).
//   - Stage 2 (Execute): standard right-handed cross product; result is a vector.
//
// Errors:
//   - ErrNotVector when either operand is not a vector.
//
// Complexity: O(1).
func (t Tuple) Cross(o Tuple) (Tuple, error) {
	// Cross products are only defined on direction vectors.
	if !t.IsVector() || !o.IsVector() {
		return Tuple{}, ErrNotVector
	}

	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	), nil
}

// Magnitude returns the Euclidean length of t across all four components.
// Complexity: O(1).
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t scaled to unit magnitude.
//
// Implementation:
//   - Stage 1 (Validate): magnitude must be nonzero.
//   - Stage 2 (Execute): divide every component by the magnitude.
//
// Errors:
//   - ErrZeroLength when Magnitude() == 0 (no direction exists).
//
// Complexity: O(1).
func (t Tuple) Normalize() (Tuple, error) {
	mag := t.Magnitude()
	if mag == 0 {
		return Tuple{}, ErrZeroLength
	}

	return t.Div(mag), nil
}
