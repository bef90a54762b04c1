package simd

import "unsafe"

// Float32x4 holds four float32 lanes.
type Float32x4 [4]float32

// SplatFloat32x4 returns a pack with every lane set to v.
func SplatFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// LoadFloat32x4 reads the first four elements of s.
// It panics if s has fewer than four elements.
func LoadFloat32x4(s []float32) Float32x4 {
	if len(s) < 4 {
		panic("simd: slice too short for Float32x4")
	}
	return Float32x4(s[:4])
}

// LoadFloat32x4Partial reads up to four elements of s; missing lanes are zero.
func LoadFloat32x4Partial(s []float32) Float32x4 {
	var v Float32x4
	copy(v[:], s)
	return v
}

// Store writes the four lanes to the start of s.
// It panics if s has fewer than four elements.
func (v Float32x4) Store(s []float32) {
	if len(s) < 4 {
		panic("simd: slice too short for Float32x4")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns their number.
func (v Float32x4) StorePartial(s []float32) int {
	return copy(s, v[:])
}

// Get returns lane i.
func (v Float32x4) Get(i int) float32 { return v[i] }

// With returns v with lane i replaced by x.
func (v Float32x4) With(i int, x float32) Float32x4 {
	v[i] = x
	return v
}

// Add returns v + w per lane.
func (v Float32x4) Add(w Float32x4) Float32x4 { return kern().AddFloat32x4(v, w) }

// Sub returns v - w per lane.
func (v Float32x4) Sub(w Float32x4) Float32x4 { return kern().SubFloat32x4(v, w) }

// Mul returns v * w per lane.
func (v Float32x4) Mul(w Float32x4) Float32x4 { return kern().MulFloat32x4(v, w) }

// Div returns v / w per lane.
func (v Float32x4) Div(w Float32x4) Float32x4 { return kern().DivFloat32x4(v, w) }

// Min returns v[i] < w[i] ? v[i] : w[i] per lane.
func (v Float32x4) Min(w Float32x4) Float32x4 { return kern().MinFloat32x4(v, w) }

// Max returns v[i] > w[i] ? v[i] : w[i] per lane.
func (v Float32x4) Max(w Float32x4) Float32x4 { return kern().MaxFloat32x4(v, w) }

// Sqrt returns the square root of every lane.
func (v Float32x4) Sqrt() Float32x4 { return kern().SqrtFloat32x4(v) }

// MulAdd returns v*w + a, rounding after each step.
func (v Float32x4) MulAdd(w, a Float32x4) Float32x4 {
	k := kern()
	return k.AddFloat32x4(k.MulFloat32x4(v, w), a)
}

// Neg flips the sign bit of every lane, NaN and zero included.
func (v Float32x4) Neg() Float32x4 {
	return from128[Float32x4](kern().Xor128(to128(v), signMask32))
}

// Abs clears the sign bit of every lane.
func (v Float32x4) Abs() Float32x4 {
	return from128[Float32x4](kern().AndNot128(to128(v), signMask32))
}

// Eq reports v == w per lane.
func (v Float32x4) Eq(w Float32x4) Mask32x4 {
	return from128[Mask32x4](kern().EqFloat32x4(v, w))
}

// Ne is true in lanes that are unequal or where either side is NaN.
func (v Float32x4) Ne(w Float32x4) Mask32x4 {
	return from128[Mask32x4](kern().NeFloat32x4(v, w))
}

// Less reports v < w per lane.
func (v Float32x4) Less(w Float32x4) Mask32x4 {
	return from128[Mask32x4](kern().LessFloat32x4(v, w))
}

// LessEq reports v <= w per lane.
func (v Float32x4) LessEq(w Float32x4) Mask32x4 {
	return from128[Mask32x4](kern().LessEqFloat32x4(v, w))
}

// Greater reports v > w per lane.
func (v Float32x4) Greater(w Float32x4) Mask32x4 {
	return from128[Mask32x4](kern().LessFloat32x4(w, v))
}

// GreaterEq reports v >= w per lane.
func (v Float32x4) GreaterEq(w Float32x4) Mask32x4 {
	return from128[Mask32x4](kern().LessEqFloat32x4(w, v))
}

// IsNaN is true in lanes holding a NaN.
func (v Float32x4) IsNaN() Mask32x4 { return v.Ne(v) }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Float32x4) Select(m Mask32x4, w Float32x4) Float32x4 { return select128(m, v, w) }

// ReduceSum returns ((v[0]+v[1])+v[2])+v[3].
func (v Float32x4) ReduceSum() float32 {
	return v[0] + v[1] + v[2] + v[3]
}

// ReduceMin folds the lanes from left to right with the Min rule.
func (v Float32x4) ReduceMin() float32 {
	r := v[0]
	for _, x := range v[1:] {
		if !(r < x) {
			r = x
		}
	}
	return r
}

// ReduceMax folds the lanes from left to right with the Max rule.
func (v Float32x4) ReduceMax() float32 {
	r := v[0]
	for _, x := range v[1:] {
		if !(r > x) {
			r = x
		}
	}
	return r
}

// ToInt32x4 truncates toward zero. NaN and lanes outside the int32 range
// become math.MinInt32.
func (v Float32x4) ToInt32x4() Int32x4 { return kern().TruncFloat32x4(v) }

// ToFloat64x4 widens every lane exactly.
func (v Float32x4) ToFloat64x4() Float64x4 {
	return Float64x4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// AsUint32x4 returns the IEEE 754 bits of every lane.
func (v Float32x4) AsUint32x4() Uint32x4 {
	return *(*Uint32x4)(unsafe.Pointer(&v))
}

// Float32x4FromBits reinterprets the lanes of u as IEEE 754 bits.
func Float32x4FromBits(u Uint32x4) Float32x4 {
	return *(*Float32x4)(unsafe.Pointer(&u))
}

// Apply returns f applied to every lane, computed in float64.
func (v Float32x4) Apply(f func(float64) float64) Float32x4 {
	for i, x := range v {
		v[i] = float32(f(float64(x)))
	}
	return v
}

// Apply2 returns f(v[i], w[i]) for every lane, computed in float64.
func (v Float32x4) Apply2(w Float32x4, f func(a, b float64) float64) Float32x4 {
	for i := range v {
		v[i] = float32(f(float64(v[i]), float64(w[i])))
	}
	return v
}

// Dot returns the sum of the lane products.
func (v Float32x4) Dot(w Float32x4) float32 {
	return v.Mul(w).ReduceSum()
}

// NearlyEqual reports whether every lane differs by at most eps.
func (v Float32x4) NearlyEqual(w Float32x4, eps float32) bool {
	d := v.Sub(w).Abs()
	for _, x := range d {
		if !(x <= eps) {
			return false
		}
	}
	return true
}
