package geom

import (
	"fmt"

	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/vec"
)

// Size is a width and height.
type Size[T num.Number] struct {
	W, H T
}

// Sz is shorthand for Size[T]{W: w, H: h}.
func Sz[T num.Number](w, h T) Size[T] {
	return Size[T]{W: w, H: h}
}

// SizeOf returns the size with W = v.X and H = v.Y.
func SizeOf[T num.Number](v vec.Vec2[T]) Size[T] {
	return Size[T]{W: v[0], H: v[1]}
}

func (s Size[T]) Vec() vec.Vec2[T] { return vec.Vec2[T]{s.W, s.H} }
func (s Size[T]) Area() T          { return s.W * s.H }

// Empty reports whether either dimension is zero or negative.
func (s Size[T]) Empty() bool { return s.W <= 0 || s.H <= 0 }

func (s Size[T]) Scale(k T) Size[T]       { return Size[T]{s.W * k, s.H * k} }
func (s Size[T]) Add(o Size[T]) Size[T]   { return Size[T]{s.W + o.W, s.H + o.H} }
func (s Size[T]) Sub(o Size[T]) Size[T]   { return Size[T]{s.W - o.W, s.H - o.H} }
func (s Size[T]) Min(o Size[T]) Size[T]   { return Size[T]{min(s.W, o.W), min(s.H, o.H)} }
func (s Size[T]) Max(o Size[T]) Size[T]   { return Size[T]{max(s.W, o.W), max(s.H, o.H)} }
func (s Size[T]) Contains(o Size[T]) bool { return o.W <= s.W && o.H <= s.H }

// Aspect returns W/H, or 0 if H is zero.
func (s Size[T]) Aspect() float64 {
	if s.H == 0 {
		return 0
	}
	return float64(s.W) / float64(s.H)
}

// FitInside returns the largest size with the aspect ratio of s that fits
// in bounds. Integer sizes are truncated. An empty s yields the zero size.
func (s Size[T]) FitInside(bounds Size[T]) Size[T] {
	if s.Empty() || bounds.Empty() {
		return Size[T]{}
	}
	k := min(float64(bounds.W)/float64(s.W), float64(bounds.H)/float64(s.H))
	return Size[T]{
		W: min(T(float64(s.W)*k), bounds.W),
		H: min(T(float64(s.H)*k), bounds.H),
	}
}

func (s Size[T]) String() string {
	return fmt.Sprintf("%vx%v", s.W, s.H)
}
