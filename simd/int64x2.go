package simd

// Int64x2 holds two int64 lanes. Arithmetic wraps on overflow.
type Int64x2 [2]int64

// SplatInt64x2 returns a pack with both lanes set to v.
func SplatInt64x2(v int64) Int64x2 {
	return Int64x2{v, v}
}

// LoadInt64x2 reads the first two elements of s.
// It panics if s has fewer than two elements.
func LoadInt64x2(s []int64) Int64x2 {
	if len(s) < 2 {
		panic("simd: slice too short for Int64x2")
	}
	return Int64x2(s[:2])
}

// LoadInt64x2Partial reads up to two elements of s; missing lanes are zero.
func LoadInt64x2Partial(s []int64) Int64x2 {
	var v Int64x2
	copy(v[:], s)
	return v
}

// Store writes both lanes to s. It panics if s is shorter.
func (v Int64x2) Store(s []int64) {
	if len(s) < 2 {
		panic("simd: slice too short for Int64x2")
	}
	copy(s, v[:])
}

// StorePartial writes as many lanes as fit in s and returns how many it wrote.
func (v Int64x2) StorePartial(s []int64) int { return copy(s, v[:]) }

// Get returns lane i.
func (v Int64x2) Get(i int) int64 { return v[i] }

// With returns a copy of v with lane i replaced.
func (v Int64x2) With(i int, x int64) Int64x2 {
	v[i] = x
	return v
}

// Add returns v + w per lane, wrapping on overflow.
func (v Int64x2) Add(w Int64x2) Int64x2 { return Int64x2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w per lane, wrapping on overflow.
func (v Int64x2) Sub(w Int64x2) Int64x2 { return Int64x2{v[0] - w[0], v[1] - w[1]} }

// Mul returns v * w per lane, keeping the low bits.
func (v Int64x2) Mul(w Int64x2) Int64x2 { return Int64x2{v[0] * w[0], v[1] * w[1]} }

// Div truncates toward zero. It panics if a lane of w is zero.
func (v Int64x2) Div(w Int64x2) Int64x2 { return Int64x2{v[0] / w[0], v[1] / w[1]} }

// MulAdd returns v*w + a.
func (v Int64x2) MulAdd(w, a Int64x2) Int64x2 { return v.Mul(w).Add(a) }

// Neg returns -v per lane.
func (v Int64x2) Neg() Int64x2 { return Int64x2{-v[0], -v[1]} }

// Abs returns |v|; math.MinInt64 maps to itself.
func (v Int64x2) Abs() Int64x2 { return v.Neg().Select(Int64x2{}.Greater(v), v) }

// Min returns v < w ? v : w per lane.
func (v Int64x2) Min(w Int64x2) Int64x2 { return w.Select(v.Greater(w), v) }

// Max returns v > w ? v : w per lane.
func (v Int64x2) Max(w Int64x2) Int64x2 { return v.Select(v.Greater(w), w) }

// And returns the bitwise AND of v and w.
func (v Int64x2) And(w Int64x2) Int64x2 { return and128(v, w) }

// Or returns the bitwise OR of v and w.
func (v Int64x2) Or(w Int64x2) Int64x2 { return or128(v, w) }

// Xor returns the bitwise XOR of v and w.
func (v Int64x2) Xor(w Int64x2) Int64x2 { return xor128(v, w) }

// AndNot returns the bits of v that are clear in w.
func (v Int64x2) AndNot(w Int64x2) Int64x2 { return andNot128(v, w) }

// Not returns the bitwise complement of v.
func (v Int64x2) Not() Int64x2 { return not128(v) }

// Eq reports v == w per lane.
func (v Int64x2) Eq(w Int64x2) Mask64x2 { return MakeMask64x2(v[0] == w[0], v[1] == w[1]) }

// Ne reports v != w per lane.
func (v Int64x2) Ne(w Int64x2) Mask64x2 { return MakeMask64x2(v[0] != w[0], v[1] != w[1]) }

// Less reports v < w per lane.
func (v Int64x2) Less(w Int64x2) Mask64x2 { return MakeMask64x2(v[0] < w[0], v[1] < w[1]) }

// LessEq reports v <= w per lane.
func (v Int64x2) LessEq(w Int64x2) Mask64x2 { return MakeMask64x2(v[0] <= w[0], v[1] <= w[1]) }

// Greater reports v > w per lane.
func (v Int64x2) Greater(w Int64x2) Mask64x2 { return MakeMask64x2(v[0] > w[0], v[1] > w[1]) }

// GreaterEq reports v >= w per lane.
func (v Int64x2) GreaterEq(w Int64x2) Mask64x2 {
	return MakeMask64x2(v[0] >= w[0], v[1] >= w[1])
}

// Select returns v where m is set and w elsewhere, bit by bit.
func (v Int64x2) Select(m Mask64x2, w Int64x2) Int64x2 { return select128(m, v, w) }

// ReduceSum returns the sum of all lanes.
func (v Int64x2) ReduceSum() int64 { return v[0] + v[1] }

// ReduceMin returns the smallest lane.
func (v Int64x2) ReduceMin() int64 { return min(v[0], v[1]) }

// ReduceMax returns the largest lane.
func (v Int64x2) ReduceMax() int64 { return max(v[0], v[1]) }

// ToFloat64x2 converts both lanes, rounding to nearest even.
func (v Int64x2) ToFloat64x2() Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}
