package simd

// Int32x2 holds two int32 lanes. Arithmetic wraps on overflow.
type Int32x2 [2]int32

// SplatInt32x2 returns a pack with both lanes set to v.
func SplatInt32x2(v int32) Int32x2 {
	return Int32x2{v, v}
}

// LoadInt32x2 reads the first two elements of s.
// It panics if s has fewer than two elements.
func LoadInt32x2(s []int32) Int32x2 {
	if len(s) < 2 {
		panic("simd: slice too short for Int32x2")
	}
	return Int32x2(s[:2])
}

// LoadInt32x2Partial reads up to two elements of s; missing lanes are zero.
func LoadInt32x2Partial(s []int32) Int32x2 {
	var v Int32x2
	copy(v[:], s)
	return v
}

// Store writes both lanes to s. It panics if s is shorter.
func (v Int32x2) Store(s []int32) {
	if len(s) < 2 {
		panic("simd: slice too short for Int32x2")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Int32x2) StorePartial(s []int32) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Int32x2) Get(i int) int32 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Int32x2) With(i int, x int32) Int32x2 {
	v[i] = x
	return v
}

// Add returns v + w per lane, wrapping on overflow.
func (v Int32x2) Add(w Int32x2) Int32x2 { return Int32x2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w per lane, wrapping on overflow.
func (v Int32x2) Sub(w Int32x2) Int32x2 { return Int32x2{v[0] - w[0], v[1] - w[1]} }

// Mul returns v * w per lane, keeping the low bits.
func (v Int32x2) Mul(w Int32x2) Int32x2 { return Int32x2{v[0] * w[0], v[1] * w[1]} }

// Div truncates toward zero. It panics if a lane of w is zero.
func (v Int32x2) Div(w Int32x2) Int32x2 { return Int32x2{v[0] / w[0], v[1] / w[1]} }

// MulAdd returns v*w + a.
func (v Int32x2) MulAdd(w, a Int32x2) Int32x2 { return v.Mul(w).Add(a) }

// Neg returns -v per lane.
func (v Int32x2) Neg() Int32x2 { return Int32x2{-v[0], -v[1]} }

// Abs returns |v|; math.MinInt32 maps to itself.
func (v Int32x2) Abs() Int32x2 { return v.Neg().Select(Int32x2{}.Greater(v), v) }

// Min returns v < w ? v : w per lane.
func (v Int32x2) Min(w Int32x2) Int32x2 { return Int32x2{min(v[0], w[0]), min(v[1], w[1])} }

// Max returns v > w ? v : w per lane.
func (v Int32x2) Max(w Int32x2) Int32x2 { return Int32x2{max(v[0], w[0]), max(v[1], w[1])} }

// And returns the bitwise AND of v and w.
func (v Int32x2) And(w Int32x2) Int32x2 { return Int32x2{v[0] & w[0], v[1] & w[1]} }

// Or returns the bitwise OR of v and w.
func (v Int32x2) Or(w Int32x2) Int32x2 { return Int32x2{v[0] | w[0], v[1] | w[1]} }

// Xor returns the bitwise XOR of v and w.
func (v Int32x2) Xor(w Int32x2) Int32x2 { return Int32x2{v[0] ^ w[0], v[1] ^ w[1]} }

// AndNot returns the bits of v that are clear in w.
func (v Int32x2) AndNot(w Int32x2) Int32x2 { return Int32x2{v[0] &^ w[0], v[1] &^ w[1]} }

// Not returns the bitwise complement of v.
func (v Int32x2) Not() Int32x2 { return Int32x2{^v[0], ^v[1]} }

// Eq reports v == w per lane.
func (v Int32x2) Eq(w Int32x2) Mask32x2 { return MakeMask32x2(v[0] == w[0], v[1] == w[1]) }

// Ne reports v != w per lane.
func (v Int32x2) Ne(w Int32x2) Mask32x2 { return MakeMask32x2(v[0] != w[0], v[1] != w[1]) }

// Less reports v < w per lane.
func (v Int32x2) Less(w Int32x2) Mask32x2 { return MakeMask32x2(v[0] < w[0], v[1] < w[1]) }

// LessEq reports v <= w per lane.
func (v Int32x2) LessEq(w Int32x2) Mask32x2 { return MakeMask32x2(v[0] <= w[0], v[1] <= w[1]) }

// Greater reports v > w per lane.
func (v Int32x2) Greater(w Int32x2) Mask32x2 { return w.Less(v) }

// GreaterEq reports v >= w per lane.
func (v Int32x2) GreaterEq(w Int32x2) Mask32x2 { return w.LessEq(v) }

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Int32x2) Select(m Mask32x2, w Int32x2) Int32x2 {
	m0, m1 := int32(m[0]), int32(m[1])
	return Int32x2{m0&v[0] | w[0]&^m0, m1&v[1] | w[1]&^m1}
}

// ReduceSum returns the sum of all lanes.
func (v Int32x2) ReduceSum() int32 { return v[0] + v[1] }

// ReduceMin returns the smallest lane.
func (v Int32x2) ReduceMin() int32 { return min(v[0], v[1]) }

// ReduceMax returns the largest lane.
func (v Int32x2) ReduceMax() int32 { return max(v[0], v[1]) }

// ToFloat32x2 converts both lanes, rounding to nearest even.
func (v Int32x2) ToFloat32x2() Float32x2 {
	return Float32x2{float32(v[0]), float32(v[1])}
}
