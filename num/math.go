package num

import "math"

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// SinCos returns Sin(x), Cos(x).
func SinCos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Asin returns the arcsine of x.
func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine of x.
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Atan returns the arctangent of x.
func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

// Atan2 returns the arctangent of y/x using the signs of both to pick the quadrant.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Exp returns e**x.
func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Exp2 returns 2**x.
func Exp2[T Float](x T) T { return T(math.Exp2(float64(x))) }

// Log returns the natural logarithm of x.
func Log[T Float](x T) T { return T(math.Log(float64(x))) }

// Log2 returns the binary logarithm of x.
func Log2[T Float](x T) T { return T(math.Log2(float64(x))) }

// Log10 returns the decimal logarithm of x.
func Log10[T Float](x T) T { return T(math.Log10(float64(x))) }

// Pow returns x**y.
func Pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Rsqrt returns 1/Sqrt(x). Rsqrt(0) is +Inf.
func Rsqrt[T Float](x T) T { return T(1 / math.Sqrt(float64(x))) }

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T { return T(math.Floor(float64(x))) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Float](x T) T { return T(math.Ceil(float64(x))) }

// Round returns the nearest integer, rounding half away from zero.
func Round[T Float](x T) T { return T(math.Round(float64(x))) }

// Trunc returns the integer part of x.
func Trunc[T Float](x T) T { return T(math.Trunc(float64(x))) }

// Fract returns x - Floor(x), always in [0, 1) for finite x.
func Fract[T Float](x T) T { return x - Floor(x) }

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod[T Float](x, y T) T { return T(math.Mod(float64(x), float64(y))) }

// Abs returns the absolute value of x.
// For the most negative integer the result wraps, as in Go arithmetic.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns a if a < b, otherwise b. A NaN in either argument yields b,
// the same lane rule the SIMD packs follow.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns a if a > b, otherwise b. A NaN in either argument yields b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the inclusive range [lo, hi]. Swapped bounds are
// reordered.
func Clamp[T Number](x, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Min(Max(x, lo), hi)
}

// Saturate clamps x to [0, 1].
func Saturate[T Float](x T) T { return Clamp(x, 0, 1) }

// Sign returns -1, 0 or +1 according to the sign of x. NaN maps to 0.
func Sign[T Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Lerp interpolates between a and b: a + (b-a)*t.
func Lerp[T Float](a, b, t T) T { return a + (b-a)*t }

// Smoothstep performs Hermite interpolation between 0 and 1 as x moves
// from edge0 to edge1.
func Smoothstep[T Float](edge0, edge1, x T) T {
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Select returns a when cond is true and b otherwise.
func Select[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T { return deg * (math.Pi / 180) }

// Degrees converts radians to degrees.
func Degrees[T Float](rad T) T { return rad * (180 / math.Pi) }

// WrapAngle maps an angle in radians into (-Pi, Pi].
func WrapAngle[T Float](rad T) T {
	r := math.Remainder(float64(rad), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return T(r)
}
