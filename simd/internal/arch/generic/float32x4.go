// Package generic provides the pure Go kernels behind the simd packs.
//
// Every kernel here defines the reference semantics that accelerated
// variants must reproduce lane for lane.
package generic

import (
	"math"
)

const allOnes32 = ^uint32(0)

// AddFloat32x4 returns a[i] + b[i].
func AddFloat32x4(a, b [4]float32) (r [4]float32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// SubFloat32x4 returns a[i] - b[i].
func SubFloat32x4(a, b [4]float32) (r [4]float32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// MulFloat32x4 returns a[i] * b[i].
func MulFloat32x4(a, b [4]float32) (r [4]float32) {
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// DivFloat32x4 returns a[i] / b[i].
func DivFloat32x4(a, b [4]float32) (r [4]float32) {
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

// MinFloat32x4 returns a[i] < b[i] ? a[i] : b[i].
// A NaN in either lane yields b[i], as MINPS does.
func MinFloat32x4(a, b [4]float32) (r [4]float32) {
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// MaxFloat32x4 returns a[i] > b[i] ? a[i] : b[i].
func MaxFloat32x4(a, b [4]float32) (r [4]float32) {
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// SqrtFloat32x4 returns sqrt(a[i]).
// Rounding the float64 root back to float32 is exact for float32 inputs.
func SqrtFloat32x4(a [4]float32) (r [4]float32) {
	for i := range r {
		r[i] = float32(math.Sqrt(float64(a[i])))
	}
	return r
}

// EqFloat32x4 sets lanes where a[i] == b[i].
func EqFloat32x4(a, b [4]float32) (r [4]uint32) {
	for i := range r {
		r[i] = mask32(a[i] == b[i])
	}
	return r
}

// NeFloat32x4 sets lanes where a[i] != b[i]; NaN lanes are unequal.
func NeFloat32x4(a, b [4]float32) (r [4]uint32) {
	for i := range r {
		r[i] = mask32(a[i] != b[i])
	}
	return r
}

// LessFloat32x4 sets lanes where a[i] < b[i].
func LessFloat32x4(a, b [4]float32) (r [4]uint32) {
	for i := range r {
		r[i] = mask32(a[i] < b[i])
	}
	return r
}

// LessEqFloat32x4 sets lanes where a[i] <= b[i].
func LessEqFloat32x4(a, b [4]float32) (r [4]uint32) {
	for i := range r {
		r[i] = mask32(a[i] <= b[i])
	}
	return r
}

// TruncFloat32x4 converts to int32 rounding toward zero. NaN and lanes
// outside the int32 range produce math.MinInt32, the x86 "integer
// indefinite" value.
func TruncFloat32x4(a [4]float32) (r [4]int32) {
	for i := range r {
		r[i] = TruncFloat32(a[i])
	}
	return r
}

// TruncFloat32 is the single-lane form of TruncFloat32x4.
func TruncFloat32(x float32) int32 {
	f := float64(x)
	if !(f > -2147483649 && f < 2147483648) {
		return math.MinInt32
	}
	return int32(f)
}

func mask32(b bool) uint32 {
	if b {
		return allOnes32
	}
	return 0
}
