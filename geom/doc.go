// Package geom provides the small value types the rasterizer is built on:
// 2D/3D/4D vectors, a 4x4 homogeneous matrix and an axis-aligned bounding
// rectangle.
//
// All types are generic over a numeric scalar and are copied by value.
// Arithmetic is componentwise and total: there are no domain errors, and
// degenerate inputs (normalizing a zero vector, a perspective divide by
// w == 0) produce Inf or NaN rather than failing.
//
// Conventions:
//
//	Matrix4 is indexed m[row][col] and transforms column vectors (M * v).
//	Rotation composes Rz · Ry · Rx, so X is applied first.
//
// Operations that only make sense for floating scalars (magnitude,
// normalization, rotation, perspective) are free functions constrained to
// Float, since methods cannot narrow their receiver's constraint.
package geom

import "golang.org/x/exp/constraints"

// Number is the scalar constraint for all geom types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts a scalar to floating point.
type Float interface {
	constraints.Float
}
