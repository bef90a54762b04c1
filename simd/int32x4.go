package simd

import "unsafe"

// Int32x4 holds four int32 lanes. Arithmetic wraps on overflow.
type Int32x4 [4]int32

// SplatInt32x4 returns a pack with every lane set to v.
func SplatInt32x4(v int32) Int32x4 {
	return Int32x4{v, v, v, v}
}

// LoadInt32x4 reads the first four elements of s.
// It panics if s has fewer than four elements.
func LoadInt32x4(s []int32) Int32x4 {
	if len(s) < 4 {
		panic("simd: slice too short for Int32x4")
	}
	return Int32x4(s[:4])
}

// LoadInt32x4Partial reads up to four elements of s; missing lanes are zero.
func LoadInt32x4Partial(s []int32) Int32x4 {
	var v Int32x4
	copy(v[:], s)
	return v
}

// Store writes all 4 lanes to s. It panics if s is shorter.
func (v Int32x4) Store(s []int32) {
	if len(s) < 4 {
		panic("simd: slice too short for Int32x4")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Int32x4) StorePartial(s []int32) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Int32x4) Get(i int) int32 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Int32x4) With(i int, x int32) Int32x4 {
	v[i] = x
	return v
}

// Add returns v + w per lane, wrapping on overflow.
func (v Int32x4) Add(w Int32x4) Int32x4 { return kern().AddInt32x4(v, w) }

// Sub returns v - w per lane, wrapping on overflow.
func (v Int32x4) Sub(w Int32x4) Int32x4 { return kern().SubInt32x4(v, w) }

// Mul keeps the low 32 bits of every product.
func (v Int32x4) Mul(w Int32x4) Int32x4 {
	return Int32x4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Div truncates toward zero. It panics if a lane of w is zero.
func (v Int32x4) Div(w Int32x4) Int32x4 {
	return Int32x4{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// MulAdd returns v*w + a.
func (v Int32x4) MulAdd(w, a Int32x4) Int32x4 { return v.Mul(w).Add(a) }

// Neg returns 0 - v; math.MinInt32 maps to itself.
func (v Int32x4) Neg() Int32x4 { return kern().SubInt32x4(Int32x4{}, v) }

// Abs returns |v|; math.MinInt32 maps to itself.
func (v Int32x4) Abs() Int32x4 {
	return v.Neg().Select(Int32x4{}.Greater(v), v)
}

// Min returns v < w ? v : w per lane.
func (v Int32x4) Min(w Int32x4) Int32x4 { return w.Select(v.Greater(w), v) }

// Max returns v > w ? v : w per lane.
func (v Int32x4) Max(w Int32x4) Int32x4 { return v.Select(v.Greater(w), w) }

// And returns the bitwise AND of v and w.
func (v Int32x4) And(w Int32x4) Int32x4 { return and128(v, w) }

// Or returns the bitwise OR of v and w.
func (v Int32x4) Or(w Int32x4) Int32x4 { return or128(v, w) }

// Xor returns the bitwise XOR of v and w.
func (v Int32x4) Xor(w Int32x4) Int32x4 { return xor128(v, w) }

// AndNot returns the bits of v that are clear in w.
func (v Int32x4) AndNot(w Int32x4) Int32x4 { return andNot128(v, w) }

// Not returns the bitwise complement of v.
func (v Int32x4) Not() Int32x4 { return not128(v) }

// Eq reports v == w per lane.
func (v Int32x4) Eq(w Int32x4) Mask32x4 {
	return from128[Mask32x4](kern().EqInt32x4(v, w))
}

// Ne reports v != w per lane.
func (v Int32x4) Ne(w Int32x4) Mask32x4 { return v.Eq(w).Not() }

// Greater reports v > w per lane.
func (v Int32x4) Greater(w Int32x4) Mask32x4 {
	return from128[Mask32x4](kern().GreaterInt32x4(v, w))
}

// Less reports v < w per lane.
func (v Int32x4) Less(w Int32x4) Mask32x4 { return w.Greater(v) }

// LessEq reports v <= w per lane.
func (v Int32x4) LessEq(w Int32x4) Mask32x4 { return v.Greater(w).Not() }

// GreaterEq reports v >= w per lane.
func (v Int32x4) GreaterEq(w Int32x4) Mask32x4 { return w.Greater(v).Not() }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Int32x4) Select(m Mask32x4, w Int32x4) Int32x4 { return select128(m, v, w) }

// ReduceSum returns the wrapping sum of the lanes.
func (v Int32x4) ReduceSum() int32 { return v[0] + v[1] + v[2] + v[3] }

// ReduceMin returns the smallest lane.
func (v Int32x4) ReduceMin() int32 { return min(v[0], v[1], v[2], v[3]) }

// ReduceMax returns the largest lane.
func (v Int32x4) ReduceMax() int32 { return max(v[0], v[1], v[2], v[3]) }

// ToFloat32x4 converts every lane, rounding to nearest even.
func (v Int32x4) ToFloat32x4() Float32x4 { return kern().ConvertInt32x4(v) }

// AsUint32x4 reinterprets the lanes as unsigned.
func (v Int32x4) AsUint32x4() Uint32x4 {
	return *(*Uint32x4)(unsafe.Pointer(&v))
}
