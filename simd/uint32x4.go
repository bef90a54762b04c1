package simd

import "unsafe"

// Uint32x4 holds four uint32 lanes. Arithmetic wraps on overflow.
type Uint32x4 [4]uint32

// SplatUint32x4 returns a pack with every lane set to v.
func SplatUint32x4(v uint32) Uint32x4 {
	return Uint32x4{v, v, v, v}
}

// LoadUint32x4 reads the first four elements of s.
// It panics if s has fewer than four elements.
func LoadUint32x4(s []uint32) Uint32x4 {
	if len(s) < 4 {
		panic("simd: slice too short for Uint32x4")
	}
	return Uint32x4(s[:4])
}

// LoadUint32x4Partial reads up to four elements of s; missing lanes are zero.
func LoadUint32x4Partial(s []uint32) Uint32x4 {
	var v Uint32x4
	copy(v[:], s)
	return v
}

// Store writes all 4 lanes to s. It panics if s is shorter.
func (v Uint32x4) Store(s []uint32) {
	if len(s) < 4 {
		panic("simd: slice too short for Uint32x4")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Uint32x4) StorePartial(s []uint32) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Uint32x4) Get(i int) uint32 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Uint32x4) With(i int, x uint32) Uint32x4 {
	v[i] = x
	return v
}

// AsInt32x4 reinterprets the lanes as signed.
func (v Uint32x4) AsInt32x4() Int32x4 {
	return *(*Int32x4)(unsafe.Pointer(&v))
}

// AsFloat32x4 reinterprets the lanes as IEEE 754 bits.
func (v Uint32x4) AsFloat32x4() Float32x4 { return Float32x4FromBits(v) }

// Add returns v + w per lane, wrapping on overflow.
func (v Uint32x4) Add(w Uint32x4) Uint32x4 {
	return v.AsInt32x4().Add(w.AsInt32x4()).AsUint32x4()
}

// Sub returns v - w per lane, wrapping on overflow.
func (v Uint32x4) Sub(w Uint32x4) Uint32x4 {
	return v.AsInt32x4().Sub(w.AsInt32x4()).AsUint32x4()
}

// Mul returns v * w per lane, keeping the low bits.
func (v Uint32x4) Mul(w Uint32x4) Uint32x4 {
	return Uint32x4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Div panics if a lane of w is zero.
func (v Uint32x4) Div(w Uint32x4) Uint32x4 {
	return Uint32x4{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// MulAdd returns v*w + a.
func (v Uint32x4) MulAdd(w, a Uint32x4) Uint32x4 { return v.Mul(w).Add(a) }

// Min returns v < w ? v : w per lane.
func (v Uint32x4) Min(w Uint32x4) Uint32x4 { return w.Select(v.Greater(w), v) }

// Max returns v > w ? v : w per lane.
func (v Uint32x4) Max(w Uint32x4) Uint32x4 { return v.Select(v.Greater(w), w) }

// And returns the bitwise AND of v and w.
func (v Uint32x4) And(w Uint32x4) Uint32x4 { return and128(v, w) }

// Or returns the bitwise OR of v and w.
func (v Uint32x4) Or(w Uint32x4) Uint32x4 { return or128(v, w) }

// Xor returns the bitwise XOR of v and w.
func (v Uint32x4) Xor(w Uint32x4) Uint32x4 { return xor128(v, w) }

// AndNot returns the bits of v that are clear in w.
func (v Uint32x4) AndNot(w Uint32x4) Uint32x4 { return andNot128(v, w) }

// Not returns the bitwise complement of v.
func (v Uint32x4) Not() Uint32x4 { return not128(v) }

// ShiftLeft shifts every lane left by n bits.
func (v Uint32x4) ShiftLeft(n uint) Uint32x4 {
	return Uint32x4{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

// ShiftRight shifts every lane right by n bits, filling with zeros.
func (v Uint32x4) ShiftRight(n uint) Uint32x4 {
	return Uint32x4{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

// Eq reports v == w per lane.
func (v Uint32x4) Eq(w Uint32x4) Mask32x4 { return v.AsInt32x4().Eq(w.AsInt32x4()) }

// Ne reports v != w per lane.
func (v Uint32x4) Ne(w Uint32x4) Mask32x4 { return v.Eq(w).Not() }

// Greater compares as unsigned by flipping the sign bits and comparing as
// signed.
func (v Uint32x4) Greater(w Uint32x4) Mask32x4 {
	bias := SplatUint32x4(signBit32)
	return v.Xor(bias).AsInt32x4().Greater(w.Xor(bias).AsInt32x4())
}

// Less reports v < w per lane.
func (v Uint32x4) Less(w Uint32x4) Mask32x4 { return w.Greater(v) }

// LessEq reports v <= w per lane.
func (v Uint32x4) LessEq(w Uint32x4) Mask32x4 { return v.Greater(w).Not() }

// GreaterEq reports v >= w per lane.
func (v Uint32x4) GreaterEq(w Uint32x4) Mask32x4 { return w.Greater(v).Not() }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Uint32x4) Select(m Mask32x4, w Uint32x4) Uint32x4 { return select128(m, v, w) }

// ReduceSum returns the sum of all lanes.
func (v Uint32x4) ReduceSum() uint32 { return v[0] + v[1] + v[2] + v[3] }

// ReduceMin returns the smallest lane.
func (v Uint32x4) ReduceMin() uint32 { return min(v[0], v[1], v[2], v[3]) }

// ReduceMax returns the largest lane.
func (v Uint32x4) ReduceMax() uint32 { return max(v[0], v[1], v[2], v[3]) }
