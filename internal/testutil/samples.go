package testutil

import (
	"math"
	"math/rand"
)

// DeterministicFloat64s returns n values in [-scale, scale) from a fixed seed.
func DeterministicFloat64s(seed int64, scale float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}
	return out
}

// DeterministicFloat32s is the float32 form of DeterministicFloat64s.
func DeterministicFloat32s(seed int64, scale float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * scale
	}
	return out
}

// DeterministicInt32s returns n values spread over the whole int32 range.
func DeterministicInt32s(seed int64, n int) []int32 {
	out := make([]int32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int32(rng.Uint32())
	}
	return out
}

// SpecialFloat32s returns the edge values that SIMD and scalar code most
// often disagree on.
func SpecialFloat32s() []float32 {
	return []float32{
		0,
		float32(math.Copysign(0, -1)),
		1, -1,
		float32(math.NaN()),
		math.Float32frombits(0xFFC00000), // negative quiet NaN
		math.Float32frombits(0x7FC00123), // quiet NaN with payload
		math.Float32frombits(0x7F800001), // signalling NaN
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.MaxFloat32,
		-math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		2147483648, -2147483904,
		0.5, -0.5, 1.5, -2.5,
	}
}

// SpecialFloat64s is the float64 form of SpecialFloat32s.
func SpecialFloat64s() []float64 {
	return []float64{
		0,
		math.Copysign(0, -1),
		1, -1,
		math.NaN(),
		math.Float64frombits(0xFFF8000000000000),
		math.Float64frombits(0x7FF8000000000123),
		math.Float64frombits(0x7FF0000000000001),
		math.Inf(1),
		math.Inf(-1),
		math.MaxFloat64,
		-math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		0.5, -0.5, 1.5, -2.5,
	}
}
