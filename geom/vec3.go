package geom

import (
	"cmp"
	"math"
)

// Vector3 is a 3D vector.
type Vector3[T Number] struct {
	X, Y, Z T
}

func Vec3[T Number](x, y, z T) Vector3[T] { return Vector3[T]{X: x, Y: y, Z: z} }

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vector3[T]) Scale(s T) Vector3[T]        { return Vector3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3[T]) DivScalar(s T) Vector3[T]    { return Vector3[T]{v.X / s, v.Y / s, v.Z / s} }
func (v Vector3[T]) Neg() Vector3[T]             { return Vector3[T]{-v.X, -v.Y, -v.Z} }

func (v *Vector3[T]) AddAssign(o Vector3[T]) { v.X += o.X; v.Y += o.Y; v.Z += o.Z }
func (v *Vector3[T]) SubAssign(o Vector3[T]) { v.X -= o.X; v.Y -= o.Y; v.Z -= o.Z }
func (v *Vector3[T]) MulAssign(o Vector3[T]) { v.X *= o.X; v.Y *= o.Y; v.Z *= o.Z }
func (v *Vector3[T]) DivAssign(o Vector3[T]) { v.X /= o.X; v.Y /= o.Y; v.Z /= o.Z }
func (v *Vector3[T]) ScaleAssign(s T)        { v.X *= s; v.Y *= s; v.Z *= s }
func (v *Vector3[T]) DivScalarAssign(s T)    { v.X /= s; v.Y /= s; v.Z /= s }

func (v Vector3[T]) Dot(o Vector3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3[T]) MagnitudeSquared() T { return v.Dot(v) }

// Vec2 drops z.
func (v Vector3[T]) Vec2() Vector2[T] { return Vector2[T]{v.X, v.Y} }

// Vec4 lifts v into homogeneous form with the given w.
func (v Vector3[T]) Vec4(w T) Vector4[T] { return Vector4[T]{v.X, v.Y, v.Z, w} }

func (v Vector3[T]) Compare(o Vector3[T]) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, o.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.Z, o.Z)
}

func Magnitude3[T Float](v Vector3[T]) T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

func Normalize3[T Float](v Vector3[T]) Vector3[T] {
	return v.DivScalar(Magnitude3(v))
}
