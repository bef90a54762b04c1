package simd

// Float64x4 holds four float64 lanes. It is processed as two Float64x2
// halves, so it follows the same lane rules and uses the same kernels.
type Float64x4 [4]float64

// SplatFloat64x4 returns a pack with every lane set to v.
func SplatFloat64x4(v float64) Float64x4 {
	return Float64x4{v, v, v, v}
}

// LoadFloat64x4 reads the first four elements of s.
// It panics if s has fewer than four elements.
func LoadFloat64x4(s []float64) Float64x4 {
	if len(s) < 4 {
		panic("simd: slice too short for Float64x4")
	}
	return Float64x4(s[:4])
}

// LoadFloat64x4Partial reads up to four elements of s; missing lanes are zero.
func LoadFloat64x4Partial(s []float64) Float64x4 {
	var v Float64x4
	copy(v[:], s)
	return v
}

// Store writes all 4 lanes to s. It panics if s is shorter.
func (v Float64x4) Store(s []float64) {
	if len(s) < 4 {
		panic("simd: slice too short for Float64x4")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Float64x4) StorePartial(s []float64) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Float64x4) Get(i int) float64 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Float64x4) With(i int, x float64) Float64x4 {
	v[i] = x
	return v
}

// Lo returns lanes 0 and 1.
func (v Float64x4) Lo() Float64x2 { return Float64x2{v[0], v[1]} }

// Hi returns lanes 2 and 3.
func (v Float64x4) Hi() Float64x2 { return Float64x2{v[2], v[3]} }

// JoinFloat64x4 concatenates two halves.
func JoinFloat64x4(lo, hi Float64x2) Float64x4 {
	return Float64x4{lo[0], lo[1], hi[0], hi[1]}
}

// Add returns v + w per lane.
func (v Float64x4) Add(w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Add(w.Lo()), v.Hi().Add(w.Hi()))
}

// Sub returns v - w per lane.
func (v Float64x4) Sub(w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Sub(w.Lo()), v.Hi().Sub(w.Hi()))
}

// Mul returns v * w per lane.
func (v Float64x4) Mul(w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Mul(w.Lo()), v.Hi().Mul(w.Hi()))
}

// Div returns v / w per lane.
func (v Float64x4) Div(w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Div(w.Lo()), v.Hi().Div(w.Hi()))
}

// Min returns v < w ? v : w per lane.
func (v Float64x4) Min(w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Min(w.Lo()), v.Hi().Min(w.Hi()))
}

// Max returns v > w ? v : w per lane.
func (v Float64x4) Max(w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Max(w.Lo()), v.Hi().Max(w.Hi()))
}

// Sqrt returns the square root of every lane.
func (v Float64x4) Sqrt() Float64x4 { return JoinFloat64x4(v.Lo().Sqrt(), v.Hi().Sqrt()) }

// Neg flips the sign bit of every lane.
func (v Float64x4) Neg() Float64x4 { return JoinFloat64x4(v.Lo().Neg(), v.Hi().Neg()) }

// Abs clears the sign bit of every lane.
func (v Float64x4) Abs() Float64x4 { return JoinFloat64x4(v.Lo().Abs(), v.Hi().Abs()) }

// MulAdd returns v*w + a, rounding after each step.
func (v Float64x4) MulAdd(w, a Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().MulAdd(w.Lo(), a.Lo()), v.Hi().MulAdd(w.Hi(), a.Hi()))
}

// Eq reports v == w per lane.
func (v Float64x4) Eq(w Float64x4) Mask64x4 {
	return joinMask64x4(v.Lo().Eq(w.Lo()), v.Hi().Eq(w.Hi()))
}

// Ne reports v != w per lane; NaN lanes are unequal.
func (v Float64x4) Ne(w Float64x4) Mask64x4 {
	return joinMask64x4(v.Lo().Ne(w.Lo()), v.Hi().Ne(w.Hi()))
}

// Less reports v < w per lane.
func (v Float64x4) Less(w Float64x4) Mask64x4 {
	return joinMask64x4(v.Lo().Less(w.Lo()), v.Hi().Less(w.Hi()))
}

// LessEq reports v <= w per lane.
func (v Float64x4) LessEq(w Float64x4) Mask64x4 {
	return joinMask64x4(v.Lo().LessEq(w.Lo()), v.Hi().LessEq(w.Hi()))
}

// Greater reports v > w per lane.
func (v Float64x4) Greater(w Float64x4) Mask64x4 { return w.Less(v) }

// GreaterEq reports v >= w per lane.
func (v Float64x4) GreaterEq(w Float64x4) Mask64x4 { return w.LessEq(v) }

// IsNaN reports which lanes of v hold NaN.
func (v Float64x4) IsNaN() Mask64x4 { return v.Ne(v) }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Float64x4) Select(m Mask64x4, w Float64x4) Float64x4 {
	return JoinFloat64x4(v.Lo().Select(m.Lo(), w.Lo()), v.Hi().Select(m.Hi(), w.Hi()))
}

// ReduceSum returns ((v[0]+v[1])+v[2])+v[3].
func (v Float64x4) ReduceSum() float64 { return v[0] + v[1] + v[2] + v[3] }

// ReduceMin folds the lanes from left to right with the Min rule.
func (v Float64x4) ReduceMin() float64 {
	r := v[0]
	for _, x := range v[1:] {
		if !(r < x) {
			r = x
		}
	}
	return r
}

// ReduceMax folds the lanes from left to right with the Max rule.
func (v Float64x4) ReduceMax() float64 {
	r := v[0]
	for _, x := range v[1:] {
		if !(r > x) {
			r = x
		}
	}
	return r
}

// ToFloat32x4 narrows every lane, rounding to nearest even.
func (v Float64x4) ToFloat32x4() Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// Apply returns f applied to every lane, computed in float64.
func (v Float64x4) Apply(f func(float64) float64) Float64x4 {
	return Float64x4{f(v[0]), f(v[1]), f(v[2]), f(v[3])}
}

// Apply2 returns f(v[i], w[i]) for every lane, computed in float64.
func (v Float64x4) Apply2(w Float64x4, f func(a, b float64) float64) Float64x4 {
	return Float64x4{f(v[0], w[0]), f(v[1], w[1]), f(v[2], w[2]), f(v[3], w[3])}
}

// Dot returns the sum of the lanewise products of v and w.
func (v Float64x4) Dot(w Float64x4) float64 { return v.Mul(w).ReduceSum() }

// NearlyEqual reports whether every lane differs by at most eps.
func (v Float64x4) NearlyEqual(w Float64x4, eps float64) bool {
	return v.Lo().NearlyEqual(w.Lo(), eps) && v.Hi().NearlyEqual(w.Hi(), eps)
}
