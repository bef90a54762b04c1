package mat

import (
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/quat"
	"github.com/cwbudde/algo-linalg/vec"
)

// Translate2 returns the 2D homogeneous translation by t.
func Translate2[T num.Float](t vec.Vec2[T]) Mat3[T] {
	m := Identity3[T]()
	m[2] = t.Extend(1)
	return m
}

// Translate3 returns the 3D homogeneous translation by t.
func Translate3[T num.Float](t vec.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m[3] = t.Extend(1)
	return m
}

// Scale2 returns the diagonal matrix diag(s.x, s.y).
func Scale2[T num.Float](s vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{{s[0], 0}, {0, s[1]}}
}

// Scale3 returns the diagonal matrix diag(s.x, s.y, s.z).
func Scale3[T num.Float](s vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{{s[0], 0, 0}, {0, s[1], 0}, {0, 0, s[2]}}
}

// Scale4 returns the diagonal matrix diag(s.x, s.y, s.z, s.w). Use
// Scale3(s).Mat4() for a homogeneous scale.
func Scale4[T num.Float](s vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{{s[0], 0, 0, 0}, {0, s[1], 0, 0}, {0, 0, s[2], 0}, {0, 0, 0, s[3]}}
}

// Rotate2 returns the counter-clockwise rotation by angle radians.
func Rotate2[T num.Float](angle T) Mat2[T] {
	s, c := num.SinCos(angle)
	return Mat2[T]{{c, s}, {-s, c}}
}

// RotateX returns the rotation by angle radians about the X axis.
func RotateX[T num.Float](angle T) Mat3[T] {
	s, c := num.SinCos(angle)
	return Mat3[T]{{1, 0, 0}, {0, c, s}, {0, -s, c}}
}

// RotateY returns the rotation by angle radians about the Y axis.
func RotateY[T num.Float](angle T) Mat3[T] {
	s, c := num.SinCos(angle)
	return Mat3[T]{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
}

// RotateZ returns the rotation by angle radians about the Z axis.
func RotateZ[T num.Float](angle T) Mat3[T] {
	s, c := num.SinCos(angle)
	return Mat3[T]{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

// RotateAxis returns the rotation by angle radians about axis. A zero axis
// yields the identity.
func RotateAxis[T num.Float](axis vec.Vec3[T], angle T) Mat3[T] {
	return FromQuat(quat.FromAxisAngle(axis, angle))
}

// FromQuat returns the rotation matrix of the unit quaternion q.
func FromQuat[T num.Float](q quat.Quat[T]) Mat3[T] {
	return FromCols3(q.Basis())
}

// Quat returns the rotation of m as a unit quaternion. m must be a pure
// rotation.
func (m Mat3[T]) Quat() quat.Quat[T] {
	return quat.FromBasis(m[0], m[1], m[2])
}

// LookAt returns the view matrix of a camera at eye looking towards center,
// with up pointing roughly upwards on screen.
func LookAt[T num.Float](eye, center, up vec.Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4[T]{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Frustum returns the perspective projection of the view volume bounded by
// left, right, bottom and top at the near plane.
func Frustum[T num.Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl, tb, fn := right-left, top-bottom, far-near
	return Mat4[T]{
		{2 * near / rl, 0, 0, 0},
		{0, 2 * near / tb, 0, 0},
		{(right + left) / rl, (top + bottom) / tb, -(far + near) / fn, -1},
		{0, 0, -2 * far * near / fn, 0},
	}
}

// Perspective returns the symmetric perspective projection with vertical
// field of view fovy (radians) and the given width/height aspect.
func Perspective[T num.Float](fovy, aspect, near, far T) Mat4[T] {
	f := 1 / num.Tan(fovy/2)
	nf := near - far
	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / nf, -1},
		{0, 0, 2 * far * near / nf, 0},
	}
}

// Ortho returns the orthographic projection of the given box.
func Ortho[T num.Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl, tb, fn := right-left, top-bottom, far-near
	return Mat4[T]{
		{2 / rl, 0, 0, 0},
		{0, 2 / tb, 0, 0},
		{0, 0, -2 / fn, 0},
		{-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1},
	}
}

// Affine returns the 4x4 transform that applies linear and then translates
// by t.
func Affine[T num.Float](linear Mat3[T], t vec.Vec3[T]) Mat4[T] {
	m := linear.Mat4()
	m[3] = t.Extend(1)
	return m
}
