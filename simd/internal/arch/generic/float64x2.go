package generic

import "math"

const allOnes64 = ^uint64(0)

// AddFloat64x2 returns a[i] + b[i].
func AddFloat64x2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// SubFloat64x2 returns a[i] - b[i].
func SubFloat64x2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// MulFloat64x2 returns a[i] * b[i].
func MulFloat64x2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] * b[0], a[1] * b[1]}
}

// DivFloat64x2 returns a[i] / b[i].
func DivFloat64x2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] / b[0], a[1] / b[1]}
}

// MinFloat64x2 returns a[i] < b[i] ? a[i] : b[i].
func MinFloat64x2(a, b [2]float64) (r [2]float64) {
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// MaxFloat64x2 returns a[i] > b[i] ? a[i] : b[i].
func MaxFloat64x2(a, b [2]float64) (r [2]float64) {
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// SqrtFloat64x2 returns sqrt(a[i]).
func SqrtFloat64x2(a [2]float64) [2]float64 {
	return [2]float64{math.Sqrt(a[0]), math.Sqrt(a[1])}
}

// EqFloat64x2 sets lanes where a[i] == b[i].
func EqFloat64x2(a, b [2]float64) [2]uint64 {
	return [2]uint64{mask64(a[0] == b[0]), mask64(a[1] == b[1])}
}

// NeFloat64x2 sets lanes where a[i] != b[i].
func NeFloat64x2(a, b [2]float64) [2]uint64 {
	return [2]uint64{mask64(a[0] != b[0]), mask64(a[1] != b[1])}
}

// LessFloat64x2 sets lanes where a[i] < b[i].
func LessFloat64x2(a, b [2]float64) [2]uint64 {
	return [2]uint64{mask64(a[0] < b[0]), mask64(a[1] < b[1])}
}

// LessEqFloat64x2 sets lanes where a[i] <= b[i].
func LessEqFloat64x2(a, b [2]float64) [2]uint64 {
	return [2]uint64{mask64(a[0] <= b[0]), mask64(a[1] <= b[1])}
}

func mask64(b bool) uint64 {
	if b {
		return allOnes64
	}
	return 0
}
