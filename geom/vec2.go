package geom

import (
	"cmp"
	"math"
)

// Vector2 is a 2D vector.
type Vector2[T Number] struct {
	X, Y T
}

func Vec2[T Number](x, y T) Vector2[T] { return Vector2[T]{X: x, Y: y} }

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X * o.X, v.Y * o.Y} }
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X / o.X, v.Y / o.Y} }
func (v Vector2[T]) Scale(s T) Vector2[T]        { return Vector2[T]{v.X * s, v.Y * s} }
func (v Vector2[T]) DivScalar(s T) Vector2[T]    { return Vector2[T]{v.X / s, v.Y / s} }
func (v Vector2[T]) Neg() Vector2[T]             { return Vector2[T]{-v.X, -v.Y} }

func (v *Vector2[T]) AddAssign(o Vector2[T]) { v.X += o.X; v.Y += o.Y }
func (v *Vector2[T]) SubAssign(o Vector2[T]) { v.X -= o.X; v.Y -= o.Y }
func (v *Vector2[T]) MulAssign(o Vector2[T]) { v.X *= o.X; v.Y *= o.Y }
func (v *Vector2[T]) DivAssign(o Vector2[T]) { v.X /= o.X; v.Y /= o.Y }
func (v *Vector2[T]) ScaleAssign(s T)        { v.X *= s; v.Y *= s }
func (v *Vector2[T]) DivScalarAssign(s T)    { v.X /= s; v.Y /= s }

func (v Vector2[T]) Dot(o Vector2[T]) T { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o,
// i.e. the signed area of the parallelogram they span.
func (v Vector2[T]) Cross(o Vector2[T]) T { return v.X*o.Y - v.Y*o.X }

func (v Vector2[T]) MagnitudeSquared() T { return v.X*v.X + v.Y*v.Y }

// Vec3 lifts v into 3D with the given z.
func (v Vector2[T]) Vec3(z T) Vector3[T] { return Vector3[T]{v.X, v.Y, z} }

// Compare orders vectors lexicographically by x, then y.
func (v Vector2[T]) Compare(o Vector2[T]) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(v.Y, o.Y)
}

func Magnitude2[T Float](v Vector2[T]) T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

// Normalize2 scales v to unit length. The zero vector yields NaN components.
func Normalize2[T Float](v Vector2[T]) Vector2[T] {
	return v.DivScalar(Magnitude2(v))
}
