package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-linalg/num"
)

// Vec4 is a 4-component vector with the layout of [4]T.
type Vec4[T num.Number] [4]T

// Bool4 holds the per-component result of comparing two Vec4 values.
type Bool4 [4]bool

// V4 returns the vector (x, y, z, w).
func V4[T num.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Splat4 returns a vector with every component set to s.
func Splat4[T num.Number](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

// Zero4 returns the zero vector.
func Zero4[T num.Number]() Vec4[T] {
	return Vec4[T]{}
}

// UnitX4 returns the unit vector along the X axis.
func UnitX4[T num.Number]() (v Vec4[T]) {
	v[0] = 1
	return v
}

// UnitY4 returns the unit vector along the Y axis.
func UnitY4[T num.Number]() (v Vec4[T]) {
	v[1] = 1
	return v
}

// UnitZ4 returns the unit vector along the Z axis.
func UnitZ4[T num.Number]() (v Vec4[T]) {
	v[2] = 1
	return v
}

// UnitW4 returns the unit vector along the W axis.
func UnitW4[T num.Number]() (v Vec4[T]) {
	v[3] = 1
	return v
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Div divides component by component. For integer vectors a zero
// component of w panics.
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{num.Abs(v[0]), num.Abs(v[1]), num.Abs(v[2]), num.Abs(v[3])}
}

// Min returns the component-wise minimum with the num.Min lane rule.
func (v Vec4[T]) Min(w Vec4[T]) Vec4[T] {
	return Vec4[T]{num.Min(v[0], w[0]), num.Min(v[1], w[1]), num.Min(v[2], w[2]), num.Min(v[3], w[3])}
}

// Max returns the component-wise maximum with the num.Max lane rule.
func (v Vec4[T]) Max(w Vec4[T]) Vec4[T] {
	return Vec4[T]{num.Max(v[0], w[0]), num.Max(v[1], w[1]), num.Max(v[2], w[2]), num.Max(v[3], w[3])}
}

// Clamp limits every component to the matching range of lo and hi.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return Vec4[T]{num.Clamp(v[0], lo[0], hi[0]), num.Clamp(v[1], lo[1], hi[1]), num.Clamp(v[2], lo[2], hi[2]), num.Clamp(v[3], lo[3], hi[3])}
}

func (v Vec4[T]) Dot(w Vec4[T]) T { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3] }

// LenSq returns the squared Euclidean length.
func (v Vec4[T]) LenSq() T { return v.Dot(v) }

// Len returns the Euclidean length, computed in float64 so that float32
// components do not overflow. For integer vectors the result is truncated.
func (v Vec4[T]) Len() T { return T(v.length()) }

func (v Vec4[T]) length() float64 {
	return norm(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

func (v Vec4[T]) DistSq(w Vec4[T]) T { return v.Sub(w).LenSq() }
func (v Vec4[T]) Dist(w Vec4[T]) T   { return v.Sub(w).Len() }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec4[T]) Normalize() Vec4[T] {
	n, err := v.TryNormalize()
	if err != nil {
		return Vec4[T]{}
	}
	return n
}

// TryNormalize returns v scaled to unit length, or ErrZeroLength when v has
// no finite direction (zero, NaN or infinite length).
func (v Vec4[T]) TryNormalize() (Vec4[T], error) {
	l := v.length()
	if !unitLength(l) {
		return Vec4[T]{}, ErrZeroLength
	}
	return Vec4[T]{T(float64(v[0]) / l), T(float64(v[1]) / l), T(float64(v[2]) / l), T(float64(v[3]) / l)}, nil
}

// Lerp interpolates between v (t = 0) and w (t = 1).
func (v Vec4[T]) Lerp(w Vec4[T], t T) Vec4[T] {
	return Vec4[T]{v[0] + (w[0]-v[0])*t, v[1] + (w[1]-v[1])*t, v[2] + (w[2]-v[2])*t, v[3] + (w[3]-v[3])*t}
}

// Reflect mirrors v about the plane with unit normal n.
func (v Vec4[T]) Reflect(n Vec4[T]) Vec4[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Project returns the component of v along onto. Projecting onto the zero
// vector yields the zero vector.
func (v Vec4[T]) Project(onto Vec4[T]) Vec4[T] {
	d := onto.LenSq()
	if d == 0 {
		return Vec4[T]{}
	}
	s := float64(v.Dot(onto)) / float64(d)
	return Vec4[T]{T(float64(onto[0]) * s), T(float64(onto[1]) * s), T(float64(onto[2]) * s), T(float64(onto[3]) * s)}
}

// Angle returns the unsigned angle between v and w in radians, in [0, Pi].
// It is zero if either vector has zero length.
func (v Vec4[T]) Angle(w Vec4[T]) T {
	vl, wl := v.length(), w.length()
	if vl == 0 || wl == 0 {
		return 0
	}
	d := float64(v[0])/vl*(float64(w[0])/wl) + float64(v[1])/vl*(float64(w[1])/wl) + float64(v[2])/vl*(float64(w[2])/wl) + float64(v[3])/vl*(float64(w[3])/wl)
	return T(math.Acos(num.Clamp(d, -1, 1)))
}

// MinComp returns the smallest component.
func (v Vec4[T]) MinComp() T {
	m := v[0]
	for _, c := range v[1:] {
		m = num.Min(m, c)
	}
	return m
}

// MaxComp returns the largest component.
func (v Vec4[T]) MaxComp() T {
	m := v[0]
	for _, c := range v[1:] {
		m = num.Max(m, c)
	}
	return m
}

func (v Vec4[T]) Sum() T { return v[0] + v[1] + v[2] + v[3] }

func (v Vec4[T]) Eq(w Vec4[T]) Bool4 {
	return Bool4{v[0] == w[0], v[1] == w[1], v[2] == w[2], v[3] == w[3]}
}

func (v Vec4[T]) Ne(w Vec4[T]) Bool4 {
	return Bool4{v[0] != w[0], v[1] != w[1], v[2] != w[2], v[3] != w[3]}
}

func (v Vec4[T]) Less(w Vec4[T]) Bool4 {
	return Bool4{v[0] < w[0], v[1] < w[1], v[2] < w[2], v[3] < w[3]}
}

func (v Vec4[T]) LessEq(w Vec4[T]) Bool4 {
	return Bool4{v[0] <= w[0], v[1] <= w[1], v[2] <= w[2], v[3] <= w[3]}
}

func (v Vec4[T]) Greater(w Vec4[T]) Bool4 {
	return Bool4{v[0] > w[0], v[1] > w[1], v[2] > w[2], v[3] > w[3]}
}

func (v Vec4[T]) GreaterEq(w Vec4[T]) Bool4 {
	return Bool4{v[0] >= w[0], v[1] >= w[1], v[2] >= w[2], v[3] >= w[3]}
}

// Select returns the components of v where m is true and those of w
// elsewhere.
func (v Vec4[T]) Select(m Bool4, w Vec4[T]) Vec4[T] {
	for i := range v {
		if !m[i] {
			v[i] = w[i]
		}
	}
	return v
}

// Equal reports whether all components are exactly equal.
func (v Vec4[T]) Equal(w Vec4[T]) bool { return v == w }

// NearlyEqual reports whether every component pair is within eps, using
// num.NearlyEqual semantics.
func (v Vec4[T]) NearlyEqual(w Vec4[T], eps float64) bool {
	return v.NearlyEqualTol(w, num.Eps(eps))
}

// NearlyEqualTol reports whether every component pair agrees within tol.
func (v Vec4[T]) NearlyEqualTol(w Vec4[T], tol num.Tolerance) bool {
	for i := range v {
		if !tol.Equal(float64(v[i]), float64(w[i])) {
			return false
		}
	}
	return true
}

// Apply returns f applied to every component, computed in float64.
func (v Vec4[T]) Apply(f func(float64) float64) Vec4[T] {
	for i, c := range v {
		v[i] = T(f(float64(c)))
	}
	return v
}

// Apply2 returns f(v[i], w[i]) for every component, computed in float64.
func (v Vec4[T]) Apply2(w Vec4[T], f func(a, b float64) float64) Vec4[T] {
	for i := range v {
		v[i] = T(f(float64(v[i]), float64(w[i])))
	}
	return v
}

// Convert4 converts every component of v to U with Go conversion rules.
func Convert4[U, T num.Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}

// All reports whether every component is true.
func (b Bool4) All() bool { return b[0] && b[1] && b[2] && b[3] }

// Any reports whether at least one component is true.
func (b Bool4) Any() bool { return b[0] || b[1] || b[2] || b[3] }

func (b Bool4) None() bool { return !b.Any() }
func (b Bool4) Not() Bool4 { return Bool4{!b[0], !b[1], !b[2], !b[3]} }
