package simd

// Float64x2 holds two float64 lanes.
type Float64x2 [2]float64

// SplatFloat64x2 returns a pack with both lanes set to v.
func SplatFloat64x2(v float64) Float64x2 {
	return Float64x2{v, v}
}

// LoadFloat64x2 reads the first two elements of s.
// It panics if s has fewer than two elements.
func LoadFloat64x2(s []float64) Float64x2 {
	if len(s) < 2 {
		panic("simd: slice too short for Float64x2")
	}
	return Float64x2(s[:2])
}

// LoadFloat64x2Partial reads up to two elements of s; missing lanes are zero.
func LoadFloat64x2Partial(s []float64) Float64x2 {
	var v Float64x2
	copy(v[:], s)
	return v
}

// Store writes both lanes to s. It panics if s is shorter.
func (v Float64x2) Store(s []float64) {
	if len(s) < 2 {
		panic("simd: slice too short for Float64x2")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Float64x2) StorePartial(s []float64) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Float64x2) Get(i int) float64 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Float64x2) With(i int, x float64) Float64x2 {
	v[i] = x
	return v
}

// Add returns v + w per lane.
func (v Float64x2) Add(w Float64x2) Float64x2 { return kern().AddFloat64x2(v, w) }

// Sub returns v - w per lane.
func (v Float64x2) Sub(w Float64x2) Float64x2 { return kern().SubFloat64x2(v, w) }

// Mul returns v * w per lane.
func (v Float64x2) Mul(w Float64x2) Float64x2 { return kern().MulFloat64x2(v, w) }

// Div returns v / w per lane.
func (v Float64x2) Div(w Float64x2) Float64x2 { return kern().DivFloat64x2(v, w) }

// Min returns v < w ? v : w per lane.
func (v Float64x2) Min(w Float64x2) Float64x2 { return kern().MinFloat64x2(v, w) }

// Max returns v > w ? v : w per lane.
func (v Float64x2) Max(w Float64x2) Float64x2 { return kern().MaxFloat64x2(v, w) }

// Sqrt returns the square root of every lane.
func (v Float64x2) Sqrt() Float64x2 { return kern().SqrtFloat64x2(v) }

// MulAdd returns v*w + a, rounding after each step.
func (v Float64x2) MulAdd(w, a Float64x2) Float64x2 {
	k := kern()
	return k.AddFloat64x2(k.MulFloat64x2(v, w), a)
}

// Neg flips the sign bit of every lane.
func (v Float64x2) Neg() Float64x2 {
	return from128[Float64x2](kern().Xor128(to128(v), signMask64))
}

// Abs clears the sign bit of every lane.
func (v Float64x2) Abs() Float64x2 {
	return from128[Float64x2](kern().AndNot128(to128(v), signMask64))
}

// Eq reports v == w per lane.
func (v Float64x2) Eq(w Float64x2) Mask64x2 {
	return from128[Mask64x2](to128(kern().EqFloat64x2(v, w)))
}

// Ne reports v != w per lane; NaN lanes are unequal.
func (v Float64x2) Ne(w Float64x2) Mask64x2 {
	return from128[Mask64x2](to128(kern().NeFloat64x2(v, w)))
}

// Less reports v < w per lane.
func (v Float64x2) Less(w Float64x2) Mask64x2 {
	return from128[Mask64x2](to128(kern().LessFloat64x2(v, w)))
}

// LessEq reports v <= w per lane.
func (v Float64x2) LessEq(w Float64x2) Mask64x2 {
	return from128[Mask64x2](to128(kern().LessEqFloat64x2(v, w)))
}

// Greater reports v > w per lane.
func (v Float64x2) Greater(w Float64x2) Mask64x2 { return w.Less(v) }

// GreaterEq reports v >= w per lane.
func (v Float64x2) GreaterEq(w Float64x2) Mask64x2 { return w.LessEq(v) }

// IsNaN reports which lanes of v hold NaN.
func (v Float64x2) IsNaN() Mask64x2 { return v.Ne(v) }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Float64x2) Select(m Mask64x2, w Float64x2) Float64x2 { return select128(m, v, w) }

// ReduceSum returns the sum of all lanes.
func (v Float64x2) ReduceSum() float64 { return v[0] + v[1] }

// ReduceMin returns the smallest lane.
func (v Float64x2) ReduceMin() float64 {
	if v[0] < v[1] {
		return v[0]
	}
	return v[1]
}

// ReduceMax returns the largest lane.
func (v Float64x2) ReduceMax() float64 {
	if v[0] > v[1] {
		return v[0]
	}
	return v[1]
}

// ToFloat32x2 narrows both lanes, rounding to nearest even.
func (v Float64x2) ToFloat32x2() Float32x2 {
	return Float32x2{float32(v[0]), float32(v[1])}
}

// Apply returns f applied to every lane, computed in float64.
func (v Float64x2) Apply(f func(float64) float64) Float64x2 {
	return Float64x2{f(v[0]), f(v[1])}
}

// Apply2 returns f(v[i], w[i]) for every lane, computed in float64.
func (v Float64x2) Apply2(w Float64x2, f func(a, b float64) float64) Float64x2 {
	return Float64x2{f(v[0], w[0]), f(v[1], w[1])}
}

// Dot returns the sum of the lanewise products of v and w.
func (v Float64x2) Dot(w Float64x2) float64 { return v.Mul(w).ReduceSum() }

// NearlyEqual reports whether both lanes differ by at most eps.
func (v Float64x2) NearlyEqual(w Float64x2, eps float64) bool {
	d := v.Sub(w).Abs()
	return d[0] <= eps && d[1] <= eps
}
