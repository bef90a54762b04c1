package num

import approx "github.com/meko-christian/algo-approx"

// FastExp approximates e**x. It trades accuracy for speed in inner loops
// such as falloff curves; use Exp when exact rounding matters.
func FastExp[T Float](x T) T { return T(approx.FastExp(float64(x))) }

// FastLog approximates the natural logarithm of x for x > 0.
func FastLog[T Float](x T) T { return T(approx.FastLog(float64(x))) }

// FastSqrt approximates the square root of x for x >= 0.
func FastSqrt[T Float](x T) T { return T(approx.FastSqrt(float64(x))) }
