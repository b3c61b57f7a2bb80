package geom

import (
	"cmp"
	"math"
)

// Vector4 is a 4D vector. The renderer uses it both for homogeneous points
// and for RGBA colors in [0,1].
type Vector4[T Number] struct {
	X, Y, Z, W T
}

func Vec4[T Number](x, y, z, w T) Vector4[T] { return Vector4[T]{X: x, Y: y, Z: z, W: w} }

func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4[T]) Mul(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vector4[T]) Div(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

func (v Vector4[T]) Scale(s T) Vector4[T]     { return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vector4[T]) DivScalar(s T) Vector4[T] { return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }
func (v Vector4[T]) Neg() Vector4[T]          { return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W} }

func (v *Vector4[T]) AddAssign(o Vector4[T]) { v.X += o.X; v.Y += o.Y; v.Z += o.Z; v.W += o.W }
func (v *Vector4[T]) SubAssign(o Vector4[T]) { v.X -= o.X; v.Y -= o.Y; v.Z -= o.Z; v.W -= o.W }
func (v *Vector4[T]) MulAssign(o Vector4[T]) { v.X *= o.X; v.Y *= o.Y; v.Z *= o.Z; v.W *= o.W }
func (v *Vector4[T]) DivAssign(o Vector4[T]) { v.X /= o.X; v.Y /= o.Y; v.Z /= o.Z; v.W /= o.W }
func (v *Vector4[T]) ScaleAssign(s T)        { v.X *= s; v.Y *= s; v.Z *= s; v.W *= s }
func (v *Vector4[T]) DivScalarAssign(s T)    { v.X /= s; v.Y /= s; v.Z /= s; v.W /= s }

func (v Vector4[T]) Dot(o Vector4[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

func (v Vector4[T]) MagnitudeSquared() T { return v.Dot(v) }

// Vec3 drops w. It does not perform a perspective divide.
func (v Vector4[T]) Vec3() Vector3[T] { return Vector3[T]{v.X, v.Y, v.Z} }

func (v Vector4[T]) Compare(o Vector4[T]) int {
	if c := v.Vec3().Compare(o.Vec3()); c != 0 {
		return c
	}
	return cmp.Compare(v.W, o.W)
}

func Magnitude4[T Float](v Vector4[T]) T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

func Normalize4[T Float](v Vector4[T]) Vector4[T] {
	return v.DivScalar(Magnitude4(v))
}
