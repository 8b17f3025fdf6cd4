// Package tuple provides the homogeneous 4-component value type shared by
// every geometric computation in lvlray.
//
// A Tuple (x, y, z, w) represents either a point in 3-D affine space
// (w ≈ 1) or a direction vector (w ≈ 0). The discriminant is tolerance
// based: repeated transform composition accumulates floating-point
// rounding, so IsPoint/IsVector and Equal compare within Epsilon rather
// than exactly.
//
// All operations are pure: a Tuple is immutable once constructed and
// every operator returns a fresh value. The only error conditions live
// on the vector-specific helpers (Cross, Normalize), which reject inputs
// outside their domain with sentinel errors matched via errors.Is.
package tuple
