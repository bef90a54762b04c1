package quat

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Quat is a quaternion x*i + y*j + z*k + w with the layout of [4]T.
type Quat[T num.Float] [4]T

// nlerpThreshold is the cosine above which Slerp falls back to Nlerp.
const nlerpThreshold = 0.9995

// Q returns the quaternion (x, y, z, w).
func Q[T num.Float](x, y, z, w T) Quat[T] {
	return Quat[T]{x, y, z, w}
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity[T num.Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// FromAxisAngle returns the rotation of angle radians about axis, counter
// clockwise when looking down the axis. A zero axis yields the identity.
func FromAxisAngle[T num.Float](axis vec.Vec3[T], angle T) Quat[T] {
	n, err := axis.TryNormalize()
	if err != nil {
		return Identity[T]()
	}
	s, c := num.SinCos(angle / 2)
	return Quat[T]{n[0] * s, n[1] * s, n[2] * s, c}
}

// FromEuler returns the rotation that turns by x about the X axis, then by y
// about the Y axis, then by z about the Z axis, all about fixed axes.
func FromEuler[T num.Float](x, y, z T) Quat[T] {
	sr, cr := num.SinCos(x / 2)
	sp, cp := num.SinCos(y / 2)
	sy, cy := num.SinCos(z / 2)
	return Quat[T]{
		sr*cp*cy - cr*sp*sy,
		cr*sp*cy + sr*cp*sy,
		cr*cp*sy - sr*sp*cy,
		cr*cp*cy + sr*sp*sy,
	}
}

// FromBasis returns the rotation that maps the X, Y and Z axes onto x, y
// and z. The three vectors must form a right-handed orthonormal basis; they
// are the columns of the equivalent rotation matrix.
func FromBasis[T num.Float](x, y, z vec.Vec3[T]) Quat[T] {
	m00, m10, m20 := x[0], x[1], x[2]
	m01, m11, m21 := y[0], y[1], y[2]
	m02, m12, m22 := z[0], z[1], z[2]

	var q Quat[T]
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := num.Sqrt(trace+1) * 2
		q = Quat[T]{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s, s / 4}
	case m00 > m11 && m00 > m22:
		s := num.Sqrt(1+m00-m11-m22) * 2
		q = Quat[T]{s / 4, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := num.Sqrt(1+m11-m00-m22) * 2
		q = Quat[T]{(m01 + m10) / s, s / 4, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := num.Sqrt(1+m22-m00-m11) * 2
		q = Quat[T]{(m02 + m20) / s, (m12 + m21) / s, s / 4, (m10 - m01) / s}
	}
	return q.Normalize()
}

// Between returns the shortest rotation that turns the direction of from
// onto the direction of to. Exactly opposite directions rotate half a turn
// about an arbitrary perpendicular axis; a zero vector yields the identity.
// The construction runs in float64 whatever T is.
func Between[T num.Float](from, to vec.Vec3[T]) Quat[T] {
	a, errA := vec.Convert3[float64](from).TryNormalize()
	b, errB := vec.Convert3[float64](to).TryNormalize()
	if errA != nil || errB != nil {
		return Identity[T]()
	}

	d := a.Dot(b)
	if 1+d <= 1e-12 {
		axis := vec.UnitX3[float64]().Cross(a)
		if axis.LenSq() < 1e-6 {
			axis = vec.UnitY3[float64]().Cross(a)
		}
		axis = axis.Normalize()
		return Quat[T]{T(axis[0]), T(axis[1]), T(axis[2]), 0}
	}

	c := a.Cross(b)
	q := vec.V4(c[0], c[1], c[2], 1+d).Normalize()
	return Quat[T]{T(q[0]), T(q[1]), T(q[2]), T(q[3])}
}

func (q Quat[T]) X() T { return q[0] }
func (q Quat[T]) Y() T { return q[1] }
func (q Quat[T]) Z() T { return q[2] }
func (q Quat[T]) W() T { return q[3] }

// Vec returns the vector part (x, y, z).
func (q Quat[T]) Vec() vec.Vec3[T] { return vec.Vec3[T]{q[0], q[1], q[2]} }

func (q Quat[T]) Add(r Quat[T]) Quat[T] {
	return Quat[T]{q[0] + r[0], q[1] + r[1], q[2] + r[2], q[3] + r[3]}
}

func (q Quat[T]) Sub(r Quat[T]) Quat[T] {
	return Quat[T]{q[0] - r[0], q[1] - r[1], q[2] - r[2], q[3] - r[3]}
}

func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T]{q[0] * s, q[1] * s, q[2] * s, q[3] * s} }
func (q Quat[T]) Neg() Quat[T]      { return Quat[T]{-q[0], -q[1], -q[2], -q[3]} }
func (q Quat[T]) Conj() Quat[T]     { return Quat[T]{-q[0], -q[1], -q[2], q[3]} }

// Mul returns the Hamilton product q*r, the rotation r followed by q.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

func (q Quat[T]) Dot(r Quat[T]) T { return q[0]*r[0] + q[1]*r[1] + q[2]*r[2] + q[3]*r[3] }
func (q Quat[T]) LenSq() T        { return q.Dot(q) }
func (q Quat[T]) Len() T          { return vec.Vec4[T](q).Len() }

// Normalize returns q scaled to unit length. A zero quaternion normalizes to
// the identity.
func (q Quat[T]) Normalize() Quat[T] {
	n, err := q.TryNormalize()
	if err != nil {
		return Identity[T]()
	}
	return n
}

// TryNormalize returns q scaled to unit length, or ErrZeroLength.
func (q Quat[T]) TryNormalize() (Quat[T], error) {
	n, err := vec.Vec4[T](q).TryNormalize()
	if err != nil {
		return Quat[T]{}, ErrZeroLength
	}
	return Quat[T](n), nil
}

// Inverse returns the multiplicative inverse of q, or the identity when q is
// zero. For unit quaternions it equals Conj.
func (q Quat[T]) Inverse() Quat[T] {
	inv, err := q.TryInverse()
	if err != nil {
		return Identity[T]()
	}
	return inv
}

// TryInverse returns the multiplicative inverse of q, or ErrZeroLength.
func (q Quat[T]) TryInverse() (Quat[T], error) {
	n, err := vec.Vec4[T](q).TryNormalize()
	if err != nil {
		return Quat[T]{}, ErrZeroLength
	}
	// conj(q)/|q|^2 = conj(q/|q|)/|q|, which keeps float32 in range.
	l := float64(vec.Vec4[T](q).Len())
	return Quat[T](n).Conj().Scale(T(1 / l)), nil
}

// Rotate applies the rotation q to v. q is assumed to be unit length.
func (q Quat[T]) Rotate(v vec.Vec3[T]) vec.Vec3[T] {
	u := q.Vec()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// Basis returns the images of the X, Y and Z axes under q, the columns of
// the equivalent rotation matrix.
func (q Quat[T]) Basis() (x, y, z vec.Vec3[T]) {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	xx, yy, zz := qx*qx, qy*qy, qz*qz
	xy, xz, yz := qx*qy, qx*qz, qy*qz
	wx, wy, wz := qw*qx, qw*qy, qw*qz

	x = vec.Vec3[T]{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)}
	y = vec.Vec3[T]{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)}
	z = vec.Vec3[T]{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)}
	return x, y, z
}

// AxisAngle returns the unit axis and the angle in [0, Pi] of the rotation
// q. A rotation by (nearly) zero reports the X axis.
func (q Quat[T]) AxisAngle() (axis vec.Vec3[T], angle T) {
	q = q.Normalize()
	if q[3] < 0 {
		q = q.Neg()
	}
	s := q.Vec().Len()
	angle = 2 * num.Atan2(s, q[3])
	if s < 1e-6 {
		return vec.UnitX3[T](), angle
	}
	return q.Vec().Scale(1 / s), angle
}

// Angle returns the rotation angle of q in [0, Pi].
func (q Quat[T]) Angle() T {
	_, a := q.AxisAngle()
	return a
}

// Euler returns the fixed-axis angles (x, y, z) that FromEuler turns back
// into q. y is in [-Pi/2, Pi/2].
func (q Quat[T]) Euler() (x, y, z T) {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	x = num.Atan2(2*(qw*qx+qy*qz), 1-2*(qx*qx+qy*qy))
	y = num.Asin(num.Clamp(2*(qw*qy-qz*qx), -1, 1))
	z = num.Atan2(2*(qw*qz+qx*qy), 1-2*(qy*qy+qz*qz))
	return x, y, z
}

// Nlerp interpolates linearly along the shorter arc and renormalizes.
func (q Quat[T]) Nlerp(r Quat[T], t T) Quat[T] {
	if q.Dot(r) < 0 {
		r = r.Neg()
	}
	return q.Add(r.Sub(q).Scale(t)).Normalize()
}

// Slerp interpolates along the shorter great arc between q (t = 0) and r
// (t = 1) at constant angular speed. Both must be unit length.
func (q Quat[T]) Slerp(r Quat[T], t T) Quat[T] {
	d := q.Dot(r)
	if d < 0 {
		r, d = r.Neg(), -d
	}
	if d > nlerpThreshold {
		return q.Nlerp(r, t)
	}

	theta := num.Acos(d)
	sinTheta := num.Sin(theta)
	a := num.Sin((1-t)*theta) / sinTheta
	b := num.Sin(t*theta) / sinTheta
	return q.Scale(a).Add(r.Scale(b))
}

// NearlyEqual reports whether q and r describe the same rotation within eps
// per component. q and -q are equal.
func (q Quat[T]) NearlyEqual(r Quat[T], eps float64) bool {
	return q.NearlyEqualTol(r, num.Eps(eps))
}

// NearlyEqualTol is NearlyEqual with an explicit tolerance.
func (q Quat[T]) NearlyEqualTol(r Quat[T], tol num.Tolerance) bool {
	return vec.Vec4[T](q).NearlyEqualTol(vec.Vec4[T](r), tol) ||
		vec.Vec4[T](q).NearlyEqualTol(vec.Vec4[T](r.Neg()), tol)
}

// Apply returns f applied to every component, computed in float64.
func (q Quat[T]) Apply(f func(float64) float64) Quat[T] {
	for i, c := range q {
		q[i] = T(f(float64(c)))
	}
	return q
}

// Apply2 returns f(q[i], r[i]) for every component, computed in float64.
func (q Quat[T]) Apply2(r Quat[T], f func(a, b float64) float64) Quat[T] {
	for i := range q {
		q[i] = T(f(float64(q[i]), float64(r[i])))
	}
	return q
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v; %v)", q[0], q[1], q[2], q[3])
}
