package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-linalg/num"
)

// Vec3 is a 3-component vector with the layout of [3]T.
type Vec3[T num.Number] [3]T

// Bool3 holds the per-component result of comparing two Vec3 values.
type Bool3 [3]bool

// V3 returns the vector (x, y, z).
func V3[T num.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat3 returns a vector with every component set to s.
func Splat3[T num.Number](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// Zero3 returns the zero vector.
func Zero3[T num.Number]() Vec3[T] {
	return Vec3[T]{}
}

// UnitX3 returns the unit vector along the X axis.
func UnitX3[T num.Number]() (v Vec3[T]) {
	v[0] = 1
	return v
}

// UnitY3 returns the unit vector along the Y axis.
func UnitY3[T num.Number]() (v Vec3[T]) {
	v[1] = 1
	return v
}

// UnitZ3 returns the unit vector along the Z axis.
func UnitZ3[T num.Number]() (v Vec3[T]) {
	v[2] = 1
	return v
}

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2]} }

// Div divides component by component. For integer vectors a zero
// component of w panics.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] / w[0], v[1] / w[1], v[2] / w[2]} }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }
func (v Vec3[T]) Abs() Vec3[T] { return Vec3[T]{num.Abs(v[0]), num.Abs(v[1]), num.Abs(v[2])} }

// Min returns the component-wise minimum with the num.Min lane rule.
func (v Vec3[T]) Min(w Vec3[T]) Vec3[T] {
	return Vec3[T]{num.Min(v[0], w[0]), num.Min(v[1], w[1]), num.Min(v[2], w[2])}
}

// Max returns the component-wise maximum with the num.Max lane rule.
func (v Vec3[T]) Max(w Vec3[T]) Vec3[T] {
	return Vec3[T]{num.Max(v[0], w[0]), num.Max(v[1], w[1]), num.Max(v[2], w[2])}
}

// Clamp limits every component to the matching range of lo and hi.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{num.Clamp(v[0], lo[0], hi[0]), num.Clamp(v[1], lo[1], hi[1]), num.Clamp(v[2], lo[2], hi[2])}
}

func (v Vec3[T]) Dot(w Vec3[T]) T { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// LenSq returns the squared Euclidean length.
func (v Vec3[T]) LenSq() T { return v.Dot(v) }

// Len returns the Euclidean length, computed in float64 so that float32
// components do not overflow. For integer vectors the result is truncated.
func (v Vec3[T]) Len() T { return T(v.length()) }

func (v Vec3[T]) length() float64 { return norm(float64(v[0]), float64(v[1]), float64(v[2]), 0) }

func (v Vec3[T]) DistSq(w Vec3[T]) T { return v.Sub(w).LenSq() }
func (v Vec3[T]) Dist(w Vec3[T]) T   { return v.Sub(w).Len() }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	n, err := v.TryNormalize()
	if err != nil {
		return Vec3[T]{}
	}
	return n
}

// TryNormalize returns v scaled to unit length, or ErrZeroLength when v has
// no finite direction (zero, NaN or infinite length).
func (v Vec3[T]) TryNormalize() (Vec3[T], error) {
	l := v.length()
	if !unitLength(l) {
		return Vec3[T]{}, ErrZeroLength
	}
	return Vec3[T]{T(float64(v[0]) / l), T(float64(v[1]) / l), T(float64(v[2]) / l)}, nil
}

// Lerp interpolates between v (t = 0) and w (t = 1).
func (v Vec3[T]) Lerp(w Vec3[T], t T) Vec3[T] {
	return Vec3[T]{v[0] + (w[0]-v[0])*t, v[1] + (w[1]-v[1])*t, v[2] + (w[2]-v[2])*t}
}

// Reflect mirrors v about the plane with unit normal n.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Project returns the component of v along onto. Projecting onto the zero
// vector yields the zero vector.
func (v Vec3[T]) Project(onto Vec3[T]) Vec3[T] {
	d := onto.LenSq()
	if d == 0 {
		return Vec3[T]{}
	}
	s := float64(v.Dot(onto)) / float64(d)
	return Vec3[T]{T(float64(onto[0]) * s), T(float64(onto[1]) * s), T(float64(onto[2]) * s)}
}

// Angle returns the unsigned angle between v and w in radians, in [0, Pi].
// It is zero if either vector has zero length.
func (v Vec3[T]) Angle(w Vec3[T]) T {
	vl, wl := v.length(), w.length()
	if vl == 0 || wl == 0 {
		return 0
	}
	d := float64(v[0])/vl*(float64(w[0])/wl) + float64(v[1])/vl*(float64(w[1])/wl) + float64(v[2])/vl*(float64(w[2])/wl)
	return T(math.Acos(num.Clamp(d, -1, 1)))
}

// MinComp returns the smallest component.
func (v Vec3[T]) MinComp() T {
	m := v[0]
	for _, c := range v[1:] {
		m = num.Min(m, c)
	}
	return m
}

// MaxComp returns the largest component.
func (v Vec3[T]) MaxComp() T {
	m := v[0]
	for _, c := range v[1:] {
		m = num.Max(m, c)
	}
	return m
}

func (v Vec3[T]) Sum() T { return v[0] + v[1] + v[2] }

func (v Vec3[T]) Eq(w Vec3[T]) Bool3        { return Bool3{v[0] == w[0], v[1] == w[1], v[2] == w[2]} }
func (v Vec3[T]) Ne(w Vec3[T]) Bool3        { return Bool3{v[0] != w[0], v[1] != w[1], v[2] != w[2]} }
func (v Vec3[T]) Less(w Vec3[T]) Bool3      { return Bool3{v[0] < w[0], v[1] < w[1], v[2] < w[2]} }
func (v Vec3[T]) LessEq(w Vec3[T]) Bool3    { return Bool3{v[0] <= w[0], v[1] <= w[1], v[2] <= w[2]} }
func (v Vec3[T]) Greater(w Vec3[T]) Bool3   { return Bool3{v[0] > w[0], v[1] > w[1], v[2] > w[2]} }
func (v Vec3[T]) GreaterEq(w Vec3[T]) Bool3 { return Bool3{v[0] >= w[0], v[1] >= w[1], v[2] >= w[2]} }

// Select returns the components of v where m is true and those of w
// elsewhere.
func (v Vec3[T]) Select(m Bool3, w Vec3[T]) Vec3[T] {
	for i := range v {
		if !m[i] {
			v[i] = w[i]
		}
	}
	return v
}

// Equal reports whether all components are exactly equal.
func (v Vec3[T]) Equal(w Vec3[T]) bool { return v == w }

// NearlyEqual reports whether every component pair is within eps, using
// num.NearlyEqual semantics.
func (v Vec3[T]) NearlyEqual(w Vec3[T], eps float64) bool {
	return v.NearlyEqualTol(w, num.Eps(eps))
}

// NearlyEqualTol reports whether every component pair agrees within tol.
func (v Vec3[T]) NearlyEqualTol(w Vec3[T], tol num.Tolerance) bool {
	for i := range v {
		if !tol.Equal(float64(v[i]), float64(w[i])) {
			return false
		}
	}
	return true
}

// Apply returns f applied to every component, computed in float64.
func (v Vec3[T]) Apply(f func(float64) float64) Vec3[T] {
	for i, c := range v {
		v[i] = T(f(float64(c)))
	}
	return v
}

// Apply2 returns f(v[i], w[i]) for every component, computed in float64.
func (v Vec3[T]) Apply2(w Vec3[T], f func(a, b float64) float64) Vec3[T] {
	for i := range v {
		v[i] = T(f(float64(v[i]), float64(w[i])))
	}
	return v
}

// Convert3 converts every component of v to U with Go conversion rules.
func Convert3[U, T num.Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

// All reports whether every component is true.
func (b Bool3) All() bool { return b[0] && b[1] && b[2] }

// Any reports whether at least one component is true.
func (b Bool3) Any() bool { return b[0] || b[1] || b[2] }

func (b Bool3) None() bool { return !b.Any() }
func (b Bool3) Not() Bool3 { return Bool3{!b[0], !b[1], !b[2]} }
