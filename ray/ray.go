// SPDX-License-Identifier: MIT
// Package ray provides the parametric ray built on tuple points and vectors.
//
// A Ray stores an origin (a point) and a direction (a vector) and advances
// along the parameter t via Position: origin + direction*t. Construction
// validates the discriminants fail-fast; an already constructed Ray is an
// immutable value.
package ray

import (
	"errors"

	"github.com/katalvlaran/lvlray/tuple"
)

var (
	// ErrOriginNotPoint is returned when the origin's w component is not
	// within tolerance of 1 (the point discriminant).
	ErrOriginNotPoint = errors.New("ray: origin is not a point")

	// ErrDirectionNotVector is returned when the direction's w component is
	// not within tolerance of 0 (the vector discriminant).
	ErrDirectionNotVector = errors.New("ray: direction is not a vector")
)

// Ray is an origin/direction pair in homogeneous coordinates.
// Origin is always a point (w ≈ 1) and Direction a vector (w ≈ 0);
// New enforces both.
type Ray struct {
	Origin    tuple.Tuple
	Direction tuple.Tuple
}

// New constructs a Ray, validating both discriminants.
// Stage 1 (Validate): origin must satisfy IsPoint, direction IsVector.
// Stage 2 (Finalize): return the value or the matching sentinel.
// Complexity: O(1).
func New(origin, direction tuple.Tuple) (Ray, error) {
	// Validate the origin discriminant.
	if !origin.IsPoint() {
		return Ray{}, ErrOriginNotPoint
	}
	// Validate the direction discriminant.
	if !direction.IsVector() {
		return Ray{}, ErrDirectionNotVector
	}

	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point reached after advancing t units along the ray:
// origin + direction*t. Negative t walks behind the origin.
// Complexity: O(1).
func (r Ray) Position(t float64) tuple.Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}
