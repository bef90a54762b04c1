package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-linalg/num"
)

// Vec2 is a 2-component vector with the layout of [2]T.
type Vec2[T num.Number] [2]T

// Bool2 holds the per-component result of comparing two Vec2 values.
type Bool2 [2]bool

// V2 returns the vector (x, y).
func V2[T num.Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Splat2 returns a vector with every component set to s.
func Splat2[T num.Number](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

// Zero2 returns the zero vector.
func Zero2[T num.Number]() Vec2[T] {
	return Vec2[T]{}
}

// UnitX2 returns the unit vector along the X axis.
func UnitX2[T num.Number]() (v Vec2[T]) {
	v[0] = 1
	return v
}

// UnitY2 returns the unit vector along the Y axis.
func UnitY2[T num.Number]() (v Vec2[T]) {
	v[1] = 1
	return v
}

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + w[0], v[1] + w[1]} }
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - w[0], v[1] - w[1]} }
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] * w[0], v[1] * w[1]} }

// Div divides component by component. For integer vectors a zero
// component of w panics.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] / w[0], v[1] / w[1]} }

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }
func (v Vec2[T]) Abs() Vec2[T] { return Vec2[T]{num.Abs(v[0]), num.Abs(v[1])} }

// Min returns the component-wise minimum with the num.Min lane rule.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] { return Vec2[T]{num.Min(v[0], w[0]), num.Min(v[1], w[1])} }

// Max returns the component-wise maximum with the num.Max lane rule.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] { return Vec2[T]{num.Max(v[0], w[0]), num.Max(v[1], w[1])} }

// Clamp limits every component to the matching range of lo and hi.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{num.Clamp(v[0], lo[0], hi[0]), num.Clamp(v[1], lo[1], hi[1])}
}

func (v Vec2[T]) Dot(w Vec2[T]) T { return v[0]*w[0] + v[1]*w[1] }

// LenSq returns the squared Euclidean length.
func (v Vec2[T]) LenSq() T { return v.Dot(v) }

// Len returns the Euclidean length, computed in float64 so that float32
// components do not overflow. For integer vectors the result is truncated.
func (v Vec2[T]) Len() T { return T(v.length()) }

func (v Vec2[T]) length() float64 { return norm(float64(v[0]), float64(v[1]), 0, 0) }

func (v Vec2[T]) DistSq(w Vec2[T]) T { return v.Sub(w).LenSq() }
func (v Vec2[T]) Dist(w Vec2[T]) T   { return v.Sub(w).Len() }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2[T]) Normalize() Vec2[T] {
	n, err := v.TryNormalize()
	if err != nil {
		return Vec2[T]{}
	}
	return n
}

// TryNormalize returns v scaled to unit length, or ErrZeroLength when v has
// no finite direction (zero, NaN or infinite length).
func (v Vec2[T]) TryNormalize() (Vec2[T], error) {
	l := v.length()
	if !unitLength(l) {
		return Vec2[T]{}, ErrZeroLength
	}
	return Vec2[T]{T(float64(v[0]) / l), T(float64(v[1]) / l)}, nil
}

// Lerp interpolates between v (t = 0) and w (t = 1).
func (v Vec2[T]) Lerp(w Vec2[T], t T) Vec2[T] {
	return Vec2[T]{v[0] + (w[0]-v[0])*t, v[1] + (w[1]-v[1])*t}
}

// Reflect mirrors v about the plane with unit normal n.
func (v Vec2[T]) Reflect(n Vec2[T]) Vec2[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Project returns the component of v along onto. Projecting onto the zero
// vector yields the zero vector.
func (v Vec2[T]) Project(onto Vec2[T]) Vec2[T] {
	d := onto.LenSq()
	if d == 0 {
		return Vec2[T]{}
	}
	s := float64(v.Dot(onto)) / float64(d)
	return Vec2[T]{T(float64(onto[0]) * s), T(float64(onto[1]) * s)}
}

// Angle returns the unsigned angle between v and w in radians, in [0, Pi].
// It is zero if either vector has zero length.
func (v Vec2[T]) Angle(w Vec2[T]) T {
	vl, wl := v.length(), w.length()
	if vl == 0 || wl == 0 {
		return 0
	}
	d := float64(v[0])/vl*(float64(w[0])/wl) + float64(v[1])/vl*(float64(w[1])/wl)
	return T(math.Acos(num.Clamp(d, -1, 1)))
}

// MinComp returns the smallest component.
func (v Vec2[T]) MinComp() T {
	m := v[0]
	for _, c := range v[1:] {
		m = num.Min(m, c)
	}
	return m
}

// MaxComp returns the largest component.
func (v Vec2[T]) MaxComp() T {
	m := v[0]
	for _, c := range v[1:] {
		m = num.Max(m, c)
	}
	return m
}

func (v Vec2[T]) Sum() T { return v[0] + v[1] }

func (v Vec2[T]) Eq(w Vec2[T]) Bool2        { return Bool2{v[0] == w[0], v[1] == w[1]} }
func (v Vec2[T]) Ne(w Vec2[T]) Bool2        { return Bool2{v[0] != w[0], v[1] != w[1]} }
func (v Vec2[T]) Less(w Vec2[T]) Bool2      { return Bool2{v[0] < w[0], v[1] < w[1]} }
func (v Vec2[T]) LessEq(w Vec2[T]) Bool2    { return Bool2{v[0] <= w[0], v[1] <= w[1]} }
func (v Vec2[T]) Greater(w Vec2[T]) Bool2   { return Bool2{v[0] > w[0], v[1] > w[1]} }
func (v Vec2[T]) GreaterEq(w Vec2[T]) Bool2 { return Bool2{v[0] >= w[0], v[1] >= w[1]} }

// Select returns the components of v where m is true and those of w
// elsewhere.
func (v Vec2[T]) Select(m Bool2, w Vec2[T]) Vec2[T] {
	for i := range v {
		if !m[i] {
			v[i] = w[i]
		}
	}
	return v
}

// Equal reports whether all components are exactly equal.
func (v Vec2[T]) Equal(w Vec2[T]) bool { return v == w }

// NearlyEqual reports whether every component pair is within eps, using
// num.NearlyEqual semantics.
func (v Vec2[T]) NearlyEqual(w Vec2[T], eps float64) bool {
	return v.NearlyEqualTol(w, num.Eps(eps))
}

// NearlyEqualTol reports whether every component pair agrees within tol.
func (v Vec2[T]) NearlyEqualTol(w Vec2[T], tol num.Tolerance) bool {
	for i := range v {
		if !tol.Equal(float64(v[i]), float64(w[i])) {
			return false
		}
	}
	return true
}

// Apply returns f applied to every component, computed in float64.
func (v Vec2[T]) Apply(f func(float64) float64) Vec2[T] {
	for i, c := range v {
		v[i] = T(f(float64(c)))
	}
	return v
}

// Apply2 returns f(v[i], w[i]) for every component, computed in float64.
func (v Vec2[T]) Apply2(w Vec2[T], f func(a, b float64) float64) Vec2[T] {
	for i := range v {
		v[i] = T(f(float64(v[i]), float64(w[i])))
	}
	return v
}

// Convert2 converts every component of v to U with Go conversion rules.
func Convert2[U, T num.Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}

// All reports whether every component is true.
func (b Bool2) All() bool { return b[0] && b[1] }

// Any reports whether at least one component is true.
func (b Bool2) Any() bool { return b[0] || b[1] }

func (b Bool2) None() bool { return !b.Any() }
func (b Bool2) Not() Bool2 { return Bool2{!b[0], !b[1]} }
