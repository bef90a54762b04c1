package simd

import (
	"math"

	"github.com/cwbudde/algo-linalg/simd/internal/arch/generic"
)

// Float32x2 holds two float32 lanes. At eight bytes it is computed in Go
// on every platform, following the same lane rules as Float32x4.
type Float32x2 [2]float32

// SplatFloat32x2 returns a pack with both lanes set to v.
func SplatFloat32x2(v float32) Float32x2 {
	return Float32x2{v, v}
}

// LoadFloat32x2 reads the first two elements of s.
// It panics if s has fewer than two elements.
func LoadFloat32x2(s []float32) Float32x2 {
	if len(s) < 2 {
		panic("simd: slice too short for Float32x2")
	}
	return Float32x2(s[:2])
}

// LoadFloat32x2Partial reads up to two elements of s; missing lanes are zero.
func LoadFloat32x2Partial(s []float32) Float32x2 {
	var v Float32x2
	copy(v[:], s)
	return v
}

// Store writes both lanes to s. It panics if s is shorter.
func (v Float32x2) Store(s []float32) {
	if len(s) < 2 {
		panic("simd: slice too short for Float32x2")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Float32x2) StorePartial(s []float32) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Float32x2) Get(i int) float32 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Float32x2) With(i int, x float32) Float32x2 {
	v[i] = x
	return v
}

// Add returns v + w per lane.
func (v Float32x2) Add(w Float32x2) Float32x2 { return Float32x2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w per lane.
func (v Float32x2) Sub(w Float32x2) Float32x2 { return Float32x2{v[0] - w[0], v[1] - w[1]} }

// Mul returns v * w per lane.
func (v Float32x2) Mul(w Float32x2) Float32x2 { return Float32x2{v[0] * w[0], v[1] * w[1]} }

// Div returns v / w per lane.
func (v Float32x2) Div(w Float32x2) Float32x2 { return Float32x2{v[0] / w[0], v[1] / w[1]} }

// Min returns v < w ? v : w per lane.
func (v Float32x2) Min(w Float32x2) Float32x2 {
	return Float32x2{min32(v[0], w[0]), min32(v[1], w[1])}
}

// Max returns v > w ? v : w per lane.
func (v Float32x2) Max(w Float32x2) Float32x2 {
	return Float32x2{max32(v[0], w[0]), max32(v[1], w[1])}
}

// Sqrt returns the square root of every lane.
func (v Float32x2) Sqrt() Float32x2 {
	return Float32x2{float32(math.Sqrt(float64(v[0]))), float32(math.Sqrt(float64(v[1])))}
}

// MulAdd returns v*w + a, rounding after each step.
func (v Float32x2) MulAdd(w, a Float32x2) Float32x2 { return v.Mul(w).Add(a) }

// Neg flips the sign bit of every lane.
func (v Float32x2) Neg() Float32x2 {
	return Float32x2{flipSign32(v[0]), flipSign32(v[1])}
}

// Abs clears the sign bit of every lane.
func (v Float32x2) Abs() Float32x2 {
	return Float32x2{clearSign32(v[0]), clearSign32(v[1])}
}

// Eq reports v == w per lane.
func (v Float32x2) Eq(w Float32x2) Mask32x2 { return MakeMask32x2(v[0] == w[0], v[1] == w[1]) }

// Ne reports v != w per lane; NaN lanes are unequal.
func (v Float32x2) Ne(w Float32x2) Mask32x2 { return MakeMask32x2(v[0] != w[0], v[1] != w[1]) }

// Less reports v < w per lane.
func (v Float32x2) Less(w Float32x2) Mask32x2 { return MakeMask32x2(v[0] < w[0], v[1] < w[1]) }

// LessEq reports v <= w per lane.
func (v Float32x2) LessEq(w Float32x2) Mask32x2 { return MakeMask32x2(v[0] <= w[0], v[1] <= w[1]) }

// Greater reports v > w per lane.
func (v Float32x2) Greater(w Float32x2) Mask32x2 { return w.Less(v) }

// GreaterEq reports v >= w per lane.
func (v Float32x2) GreaterEq(w Float32x2) Mask32x2 { return w.LessEq(v) }

// IsNaN reports which lanes of v hold NaN.
func (v Float32x2) IsNaN() Mask32x2 { return v.Ne(v) }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Float32x2) Select(m Mask32x2, w Float32x2) Float32x2 {
	var r Float32x2
	for i := range r {
		mb := uint32(m[i])
		r[i] = math.Float32frombits(mb&math.Float32bits(v[i]) | math.Float32bits(w[i])&^mb)
	}
	return r
}

// ReduceSum returns the sum of all lanes.
func (v Float32x2) ReduceSum() float32 { return v[0] + v[1] }

// ReduceMin returns the smallest lane.
func (v Float32x2) ReduceMin() float32 { return min32(v[0], v[1]) }

// ReduceMax returns the largest lane.
func (v Float32x2) ReduceMax() float32 { return max32(v[0], v[1]) }

// ToInt32x2 truncates like Float32x4.ToInt32x4.
func (v Float32x2) ToInt32x2() Int32x2 {
	return Int32x2{generic.TruncFloat32(v[0]), generic.TruncFloat32(v[1])}
}

// ToFloat64x2 widens both lanes exactly.
func (v Float32x2) ToFloat64x2() Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}

// Apply returns f applied to every lane, computed in float64.
func (v Float32x2) Apply(f func(float64) float64) Float32x2 {
	return Float32x2{float32(f(float64(v[0]))), float32(f(float64(v[1])))}
}

// Apply2 returns f(v[i], w[i]) for every lane, computed in float64.
func (v Float32x2) Apply2(w Float32x2, f func(a, b float64) float64) Float32x2 {
	return Float32x2{
		float32(f(float64(v[0]), float64(w[0]))),
		float32(f(float64(v[1]), float64(w[1]))),
	}
}

// Dot returns the sum of the lanewise products of v and w.
func (v Float32x2) Dot(w Float32x2) float32 { return v[0]*w[0] + v[1]*w[1] }

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func flipSign32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) ^ signBit32)
}

func clearSign32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signBit32)
}
