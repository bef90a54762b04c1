package mat

import (
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Mat2 is a column-major 2x2 matrix with the layout of [4]T.
type Mat2[T num.Float] [2]vec.Vec2[T]

// Identity2 returns the 2x2 identity matrix.
func Identity2[T num.Float]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// FromCols2 returns the matrix with the given columns.
func FromCols2[T num.Float](c0, c1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{c0, c1}
}

// FromRows2 returns the matrix with the given rows.
func FromRows2[T num.Float](r0, r1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{{r0[0], r1[0]}, {r0[1], r1[1]}}
}

func (m Mat2[T]) Col(c int) vec.Vec2[T] { return m[c] }
func (m Mat2[T]) Row(r int) vec.Vec2[T] { return vec.Vec2[T]{m[0][r], m[1][r]} }
func (m Mat2[T]) At(r, c int) T         { return m[c][r] }
func (m *Mat2[T]) Set(r, c int, v T)    { m[c][r] = v }

func (m Mat2[T]) Add(n Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Add(n[0]), m[1].Add(n[1])} }
func (m Mat2[T]) Sub(n Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Sub(n[0]), m[1].Sub(n[1])} }
func (m Mat2[T]) Scale(s T) Mat2[T]     { return Mat2[T]{m[0].Scale(s), m[1].Scale(s)} }

// MulVec returns m*v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1]))
}

// Mul returns m*n, the transform n followed by m.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

func (m Mat2[T]) Transpose() Mat2[T] { return FromRows2(m[0], m[1]) }
func (m Mat2[T]) Trace() T           { return m[0][0] + m[1][1] }
func (m Mat2[T]) Det() T             { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// Inverse returns the inverse of m, or the identity if m is singular.
func (m Mat2[T]) Inverse() Mat2[T] {
	inv, err := m.TryInverse()
	if err != nil {
		return Identity2[T]()
	}
	return inv
}

// TryInverse returns the inverse of m, or ErrSingular.
func (m Mat2[T]) TryInverse() (Mat2[T], error) {
	d := m.Det()
	if singular(float64(d)) {
		return Mat2[T]{}, ErrSingular
	}
	inv := 1 / d
	return Mat2[T]{
		{m[1][1] * inv, -m[0][1] * inv},
		{-m[1][0] * inv, m[0][0] * inv},
	}, nil
}

// NearlyEqual reports whether every element pair is within eps.
func (m Mat2[T]) NearlyEqual(n Mat2[T], eps float64) bool {
	return m.NearlyEqualTol(n, num.Eps(eps))
}

// NearlyEqualTol reports whether every element pair agrees within tol.
func (m Mat2[T]) NearlyEqualTol(n Mat2[T], tol num.Tolerance) bool {
	return m[0].NearlyEqualTol(n[0], tol) && m[1].NearlyEqualTol(n[1], tol)
}

func (m Mat2[T]) String() string { return format(2, m.At) }
