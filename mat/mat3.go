package mat

import (
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Mat3 is a column-major 3x3 matrix with the layout of [9]T.
type Mat3[T num.Float] [3]vec.Vec3[T]

// Identity3 returns the 3x3 identity matrix.
func Identity3[T num.Float]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromCols3 returns the matrix with the given columns.
func FromCols3[T num.Float](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// FromRows3 returns the matrix with the given rows.
func FromRows3[T num.Float](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{r0[0], r1[0], r2[0]},
		{r0[1], r1[1], r2[1]},
		{r0[2], r1[2], r2[2]},
	}
}

func (m Mat3[T]) Col(c int) vec.Vec3[T] { return m[c] }
func (m Mat3[T]) Row(r int) vec.Vec3[T] { return vec.Vec3[T]{m[0][r], m[1][r], m[2][r]} }
func (m Mat3[T]) At(r, c int) T         { return m[c][r] }
func (m *Mat3[T]) Set(r, c int, v T)    { m[c][r] = v }

func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

func (m Mat3[T]) Scale(s T) Mat3[T] { return Mat3[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)} }

// MulVec returns m*v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// Mul returns m*n, the transform n followed by m.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

func (m Mat3[T]) Transpose() Mat3[T] { return FromRows3(m[0], m[1], m[2]) }
func (m Mat3[T]) Trace() T           { return m[0][0] + m[1][1] + m[2][2] }

// Det returns the determinant, the scalar triple product of the columns.
func (m Mat3[T]) Det() T { return m[0].Dot(m[1].Cross(m[2])) }

// Inverse returns the inverse of m, or the identity if m is singular.
func (m Mat3[T]) Inverse() Mat3[T] {
	inv, err := m.TryInverse()
	if err != nil {
		return Identity3[T]()
	}
	return inv
}

// TryInverse returns the inverse of m, or ErrSingular.
func (m Mat3[T]) TryInverse() (Mat3[T], error) {
	r0 := m[1].Cross(m[2])
	d := m[0].Dot(r0)
	if singular(float64(d)) {
		return Mat3[T]{}, ErrSingular
	}
	r1 := m[2].Cross(m[0])
	r2 := m[0].Cross(m[1])
	return FromRows3(r0, r1, r2).Scale(1 / d), nil
}

// Mat2 returns the upper-left 2x2 block.
func (m Mat3[T]) Mat2() Mat2[T] {
	return Mat2[T]{m[0].XY(), m[1].XY()}
}

// Mat4 embeds m in the upper-left block of a 4x4 identity.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{m[0].Extend(0), m[1].Extend(0), m[2].Extend(0), {0, 0, 0, 1}}
}

// TransformPoint applies m as a 2D homogeneous transform to the point p.
// The result is divided by w unless w is 0 or 1.
func (m Mat3[T]) TransformPoint(p vec.Vec2[T]) vec.Vec2[T] {
	r := m.MulVec(p.Extend(1))
	if r[2] != 0 && r[2] != 1 {
		return r.XY().Scale(1 / r[2])
	}
	return r.XY()
}

// TransformDir applies m as a 2D homogeneous transform to the direction d,
// ignoring translation.
func (m Mat3[T]) TransformDir(d vec.Vec2[T]) vec.Vec2[T] {
	return m.MulVec(d.Extend(0)).XY()
}

// NearlyEqual reports whether every element pair is within eps.
func (m Mat3[T]) NearlyEqual(n Mat3[T], eps float64) bool {
	return m.NearlyEqualTol(n, num.Eps(eps))
}

// NearlyEqualTol reports whether every element pair agrees within tol.
func (m Mat3[T]) NearlyEqualTol(n Mat3[T], tol num.Tolerance) bool {
	for c := range m {
		if !m[c].NearlyEqualTol(n[c], tol) {
			return false
		}
	}
	return true
}

func (m Mat3[T]) String() string { return format(3, m.At) }
