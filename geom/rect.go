package geom

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Rect is the axis-aligned rectangle with corners Min and Max.
type Rect[T num.Number] struct {
	Min, Max vec.Vec2[T]
}

// Rt is shorthand for Rect[T]{Min: (x0, y0), Max: (x1, y1)}. The result is
// canonicalized.
func Rt[T num.Number](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: vec.Vec2[T]{x0, y0}, Max: vec.Vec2[T]{x1, y1}}.Canon()
}

// FromPosSize returns the rectangle with top-left corner pos and the given
// size.
func FromPosSize[T num.Number](pos vec.Vec2[T], size Size[T]) Rect[T] {
	return Rect[T]{Min: pos, Max: pos.Add(size.Vec())}
}

// FromCenter returns the rectangle of the given size centered on c.
func FromCenter[T num.Number](c vec.Vec2[T], size Size[T]) Rect[T] {
	return Rect[T]{Max: size.Vec()}.CenterAt(c)
}

func (r Rect[T]) Dx() T         { return r.Max[0] - r.Min[0] }
func (r Rect[T]) Dy() T         { return r.Max[1] - r.Min[1] }
func (r Rect[T]) Size() Size[T] { return Size[T]{r.Dx(), r.Dy()} }
func (r Rect[T]) Area() T       { return r.Dx() * r.Dy() }
func (r Rect[T]) Empty() bool   { return r.Min[0] >= r.Max[0] || r.Min[1] >= r.Max[1] }

func (r Rect[T]) Add(p vec.Vec2[T]) Rect[T] { return Rect[T]{r.Min.Add(p), r.Max.Add(p)} }
func (r Rect[T]) Sub(p vec.Vec2[T]) Rect[T] { return Rect[T]{r.Min.Sub(p), r.Max.Sub(p)} }

// Canon returns r with Min and Max swapped per axis as needed so that
// Min <= Max.
func (r Rect[T]) Canon() Rect[T] {
	return Rect[T]{Min: r.Min.Min(r.Max), Max: r.Min.Max(r.Max)}
}

// Contains reports whether p lies in r, with Min inclusive and Max
// exclusive.
func (r Rect[T]) Contains(p vec.Vec2[T]) bool {
	return r.Min[0] <= p[0] && p[0] < r.Max[0] &&
		r.Min[1] <= p[1] && p[1] < r.Max[1]
}

// ContainsRect reports whether every point of s is in r. An empty s is
// contained in any rectangle.
func (r Rect[T]) ContainsRect(s Rect[T]) bool {
	if s.Empty() {
		return true
	}
	return r.Min[0] <= s.Min[0] && s.Max[0] <= r.Max[0] &&
		r.Min[1] <= s.Min[1] && s.Max[1] <= r.Max[1]
}

// Overlaps reports whether r and s have a non-empty intersection.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min[0] < s.Max[0] && s.Min[0] < r.Max[0] &&
		r.Min[1] < s.Max[1] && s.Min[1] < r.Max[1]
}

// Intersect returns the largest rectangle contained by both r and s. If
// they do not overlap the zero rectangle is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	i := Rect[T]{Min: r.Min.Max(s.Min), Max: r.Max.Min(s.Max)}
	if i.Empty() {
		return Rect[T]{}
	}
	return i
}

// Union returns the smallest rectangle that contains both r and s. Empty
// rectangles are ignored.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	switch {
	case r.Empty():
		return s
	case s.Empty():
		return r
	}
	return Rect[T]{Min: r.Min.Min(s.Min), Max: r.Max.Max(s.Max)}
}

// Inset returns r shrunk by n on every side. A negative n grows r. If r is
// too small to shrink by n on an axis, that axis collapses to its center.
func (r Rect[T]) Inset(n T) Rect[T] {
	if r.Dx() < 2*n {
		r.Min[0] = (r.Min[0] + r.Max[0]) / 2
		r.Max[0] = r.Min[0]
	} else {
		r.Min[0] += n
		r.Max[0] -= n
	}
	if r.Dy() < 2*n {
		r.Min[1] = (r.Min[1] + r.Max[1]) / 2
		r.Max[1] = r.Min[1]
	} else {
		r.Min[1] += n
		r.Max[1] -= n
	}
	return r
}

// Center returns the midpoint of r. Integer coordinates round toward Min.
func (r Rect[T]) Center() vec.Vec2[T] {
	return vec.Vec2[T]{r.Min[0] + r.Dx()/2, r.Min[1] + r.Dy()/2}
}

// CenterAt returns r moved so that its center is p, keeping its size.
func (r Rect[T]) CenterAt(p vec.Vec2[T]) Rect[T] {
	return r.Add(p.Sub(r.Center()))
}

// Resize returns r with Min unchanged and the given size.
func (r Rect[T]) Resize(size Size[T]) Rect[T] {
	return FromPosSize(r.Min, size)
}

// Corners returns the corners of r in the order Min, (Max.X, Min.Y), Max,
// (Min.X, Max.Y).
func (r Rect[T]) Corners() [4]vec.Vec2[T] {
	return [4]vec.Vec2[T]{
		r.Min,
		{r.Max[0], r.Min[1]},
		r.Max,
		{r.Min[0], r.Max[1]},
	}
}

// Clamp returns the point of the closed rectangle [Min, Max] nearest to p.
func (r Rect[T]) Clamp(p vec.Vec2[T]) vec.Vec2[T] {
	return p.Clamp(r.Min, r.Max)
}

// Lerp interpolates each corner from r (t = 0) to s (t = 1), computing in
// float64 and converting back to T.
func (r Rect[T]) Lerp(s Rect[T], t float64) Rect[T] {
	l := func(a, b T) T { return T(float64(a) + (float64(b)-float64(a))*t) }
	return Rect[T]{
		Min: vec.Vec2[T]{l(r.Min[0], s.Min[0]), l(r.Min[1], s.Min[1])},
		Max: vec.Vec2[T]{l(r.Max[0], s.Max[0]), l(r.Max[1], s.Max[1])},
	}
}

// Eq reports whether r and s contain the same set of points. All empty
// rectangles are equal.
func (r Rect[T]) Eq(s Rect[T]) bool {
	return r == s || r.Empty() && s.Empty()
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
