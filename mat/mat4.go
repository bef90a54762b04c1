package mat

import (
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Mat4 is a column-major 4x4 matrix with the layout of [16]T.
type Mat4[T num.Float] [4]vec.Vec4[T]

// Identity4 returns the 4x4 identity matrix.
func Identity4[T num.Float]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// FromCols4 returns the matrix with the given columns.
func FromCols4[T num.Float](c0, c1, c2, c3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{c0, c1, c2, c3}
}

// FromRows4 returns the matrix with the given rows.
func FromRows4[T num.Float](r0, r1, r2, r3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}.Transpose()
}

func (m Mat4[T]) Col(c int) vec.Vec4[T] { return m[c] }
func (m Mat4[T]) Row(r int) vec.Vec4[T] { return vec.Vec4[T]{m[0][r], m[1][r], m[2][r], m[3][r]} }
func (m Mat4[T]) At(r, c int) T         { return m[c][r] }
func (m *Mat4[T]) Set(r, c int, v T)    { m[c][r] = v }

func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2]), m[3].Add(n[3])}
}

func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2]), m[3].Sub(n[3])}
}

func (m Mat4[T]) Scale(s T) Mat4[T] {
	return Mat4[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// MulVec returns m*v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2])).Add(m[3].Scale(v[3]))
}

// Mul returns m*n, the transform n followed by m.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

func (m Mat4[T]) Trace() T { return m[0][0] + m[1][1] + m[2][2] + m[3][3] }

// minors holds the 2x2 determinants taken from the first two (s) and the
// last two (c) columns of a 4x4 matrix, shared by Det and TryInverse.
type minors[T num.Float] struct {
	s0, s1, s2, s3, s4, s5 T
	c0, c1, c2, c3, c4, c5 T
}

func (m Mat4[T]) minors() minors[T] {
	a := m
	return minors[T]{
		s0: a[0][0]*a[1][1] - a[1][0]*a[0][1],
		s1: a[0][0]*a[1][2] - a[1][0]*a[0][2],
		s2: a[0][0]*a[1][3] - a[1][0]*a[0][3],
		s3: a[0][1]*a[1][2] - a[1][1]*a[0][2],
		s4: a[0][1]*a[1][3] - a[1][1]*a[0][3],
		s5: a[0][2]*a[1][3] - a[1][2]*a[0][3],
		c5: a[2][2]*a[3][3] - a[3][2]*a[2][3],
		c4: a[2][1]*a[3][3] - a[3][1]*a[2][3],
		c3: a[2][1]*a[3][2] - a[3][1]*a[2][2],
		c2: a[2][0]*a[3][3] - a[3][0]*a[2][3],
		c1: a[2][0]*a[3][2] - a[3][0]*a[2][2],
		c0: a[2][0]*a[3][1] - a[3][0]*a[2][1],
	}
}

func (k minors[T]) det() T {
	return k.s0*k.c5 - k.s1*k.c4 + k.s2*k.c3 + k.s3*k.c2 - k.s4*k.c1 + k.s5*k.c0
}

func (m Mat4[T]) Det() T { return m.minors().det() }

// Inverse returns the inverse of m, or the identity if m is singular.
func (m Mat4[T]) Inverse() Mat4[T] {
	inv, err := m.TryInverse()
	if err != nil {
		return Identity4[T]()
	}
	return inv
}

// TryInverse returns the inverse of m, or ErrSingular.
//
// The cofactors are expanded from the 2x2 minors of the first two and last
// two columns; the indexing is the same for rows and columns, so the
// expansion works on the column-major array directly.
func (m Mat4[T]) TryInverse() (Mat4[T], error) {
	k := m.minors()
	d := k.det()
	if singular(float64(d)) {
		return Mat4[T]{}, ErrSingular
	}
	inv := 1 / d
	a := m

	return Mat4[T]{
		{
			(a[1][1]*k.c5 - a[1][2]*k.c4 + a[1][3]*k.c3) * inv,
			(-a[0][1]*k.c5 + a[0][2]*k.c4 - a[0][3]*k.c3) * inv,
			(a[3][1]*k.s5 - a[3][2]*k.s4 + a[3][3]*k.s3) * inv,
			(-a[2][1]*k.s5 + a[2][2]*k.s4 - a[2][3]*k.s3) * inv,
		},
		{
			(-a[1][0]*k.c5 + a[1][2]*k.c2 - a[1][3]*k.c1) * inv,
			(a[0][0]*k.c5 - a[0][2]*k.c2 + a[0][3]*k.c1) * inv,
			(-a[3][0]*k.s5 + a[3][2]*k.s2 - a[3][3]*k.s1) * inv,
			(a[2][0]*k.s5 - a[2][2]*k.s2 + a[2][3]*k.s1) * inv,
		},
		{
			(a[1][0]*k.c4 - a[1][1]*k.c2 + a[1][3]*k.c0) * inv,
			(-a[0][0]*k.c4 + a[0][1]*k.c2 - a[0][3]*k.c0) * inv,
			(a[3][0]*k.s4 - a[3][1]*k.s2 + a[3][3]*k.s0) * inv,
			(-a[2][0]*k.s4 + a[2][1]*k.s2 - a[2][3]*k.s0) * inv,
		},
		{
			(-a[1][0]*k.c3 + a[1][1]*k.c1 - a[1][2]*k.c0) * inv,
			(a[0][0]*k.c3 - a[0][1]*k.c1 + a[0][2]*k.c0) * inv,
			(-a[3][0]*k.s3 + a[3][1]*k.s1 - a[3][2]*k.s0) * inv,
			(a[2][0]*k.s3 - a[2][1]*k.s1 + a[2][2]*k.s0) * inv,
		},
	}, nil
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

// TransformPoint applies m to the point p (w = 1). The result is divided by
// w unless w is 0 or 1, so projection matrices yield normalized device
// coordinates.
func (m Mat4[T]) TransformPoint(p vec.Vec3[T]) vec.Vec3[T] {
	r := m.MulVec(p.Extend(1))
	if r[3] != 0 && r[3] != 1 {
		return r.Homogenize()
	}
	return r.XYZ()
}

// TransformDir applies m to the direction d (w = 0), ignoring translation.
func (m Mat4[T]) TransformDir(d vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(d.Extend(0)).XYZ()
}

// NearlyEqual reports whether every element pair is within eps.
func (m Mat4[T]) NearlyEqual(n Mat4[T], eps float64) bool {
	return m.NearlyEqualTol(n, num.Eps(eps))
}

// NearlyEqualTol reports whether every element pair agrees within tol.
func (m Mat4[T]) NearlyEqualTol(n Mat4[T], tol num.Tolerance) bool {
	for c := range m {
		if !m[c].NearlyEqualTol(n[c], tol) {
			return false
		}
	}
	return true
}

func (m Mat4[T]) String() string { return format(4, m.At) }
