package geom

import "math"

// Matrix4 is a 4x4 matrix indexed m[row][col].
//
// Matrices act on column vectors: M.MulVec4(v) computes M * v, and
// A.Mul(B) applied to v equals A applied to (B applied to v).
type Matrix4[T Number] [4][4]T

// Mat4 builds a matrix from its elements in row-major order.
func Mat4[T Number](
	e11, e12, e13, e14,
	e21, e22, e23, e24,
	e31, e32, e33, e34,
	e41, e42, e43, e44 T,
) Matrix4[T] {
	return Matrix4[T]{
		{e11, e12, e13, e14},
		{e21, e22, e23, e24},
		{e31, e32, e33, e34},
		{e41, e42, e43, e44},
	}
}

func (m Matrix4[T]) Row(r int) Vector4[T] {
	return Vector4[T]{m[r][0], m[r][1], m[r][2], m[r][3]}
}

func (m Matrix4[T]) Col(c int) Vector4[T] {
	return Vector4[T]{m[0][c], m[1][c], m[2][c], m[3][c]}
}

func (m Matrix4[T]) Transpose() Matrix4[T] {
	var out Matrix4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Mul returns m * o.
func (m Matrix4[T]) Mul(o Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][0]*o[0][c] +
				m[r][1]*o[1][c] +
				m[r][2]*o[2][c] +
				m[r][3]*o[3][c]
		}
	}
	return out
}

func (m *Matrix4[T]) MulAssign(o Matrix4[T]) { *m = m.Mul(o) }

// MulVec4 returns m * v with v treated as a column.
func (m Matrix4[T]) MulVec4(v Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Transform applies m to the point p (w = 1) and performs the perspective
// divide. A zero w is not guarded: float scalars yield Inf/NaN, integer
// scalars panic.
func (m Matrix4[T]) Transform(p Vector3[T]) Vector3[T] {
	v := m.MulVec4(p.Vec4(1))
	return v.Vec3().DivScalar(v.W)
}

func Identity[T Number]() Matrix4[T] {
	return Mat4[T](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func Translation[T Number](t Vector3[T]) Matrix4[T] {
	m := Identity[T]()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

func Scaling[T Number](s Vector3[T]) Matrix4[T] {
	m := Identity[T]()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

// ScalingAround scales by s about pivot instead of the origin.
func ScalingAround[T Number](s, pivot Vector3[T]) Matrix4[T] {
	return Translation(pivot).Mul(Scaling(s)).Mul(Translation(pivot.Neg()))
}

// Rotation returns Rz · Ry · Rx for the angles (radians) in a.
func Rotation[T Float](a Vector3[T]) Matrix4[T] {
	sx, cx := sincos(a.X)
	sy, cy := sincos(a.Y)
	sz, cz := sincos(a.Z)

	rx := Mat4[T](
		1, 0, 0, 0,
		0, cx, -sx, 0,
		0, sx, cx, 0,
		0, 0, 0, 1,
	)
	ry := Mat4[T](
		cy, 0, sy, 0,
		0, 1, 0, 0,
		-sy, 0, cy, 0,
		0, 0, 0, 1,
	)
	rz := Mat4[T](
		cz, -sz, 0, 0,
		sz, cz, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	return rz.Mul(ry).Mul(rx)
}

// RotationAround rotates by a about pivot instead of the origin.
func RotationAround[T Float](a, pivot Vector3[T]) Matrix4[T] {
	return Translation(pivot).Mul(Rotation(a)).Mul(Translation(pivot.Neg()))
}

// Perspective returns a projection for a projection plane of the given
// extents. The bottom row is (0, 0, -1, 0), so Transform divides by -z.
func Perspective[T Float](width, height, far, near T) Matrix4[T] {
	return Mat4[T](
		2*near/width, 0, 0, 0,
		0, 2*near/height, 0, 0,
		0, 0, -(far+near)/(far-near), -(2*far*near)/(far-near),
		0, 0, -1, 0,
	)
}

func sincos[T Float](rad T) (sin, cos T) {
	s, c := math.Sincos(float64(rad))
	return T(s), T(c)
}
