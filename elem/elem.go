package elem

import (
	"math"

	"github.com/cwbudde/algo-linalg/num"
	approx "github.com/meko-christian/algo-approx"
)

// Lanewise is implemented by every value that can map a scalar function
// over its components.
type Lanewise[V any] interface {
	Apply(f func(float64) float64) V
	Apply2(w V, f func(a, b float64) float64) V
}

func Sin[V Lanewise[V]](v V) V   { return v.Apply(math.Sin) }
func Cos[V Lanewise[V]](v V) V   { return v.Apply(math.Cos) }
func Tan[V Lanewise[V]](v V) V   { return v.Apply(math.Tan) }
func Asin[V Lanewise[V]](v V) V  { return v.Apply(math.Asin) }
func Acos[V Lanewise[V]](v V) V  { return v.Apply(math.Acos) }
func Atan[V Lanewise[V]](v V) V  { return v.Apply(math.Atan) }
func Exp[V Lanewise[V]](v V) V   { return v.Apply(math.Exp) }
func Exp2[V Lanewise[V]](v V) V  { return v.Apply(math.Exp2) }
func Log[V Lanewise[V]](v V) V   { return v.Apply(math.Log) }
func Log2[V Lanewise[V]](v V) V  { return v.Apply(math.Log2) }
func Log10[V Lanewise[V]](v V) V { return v.Apply(math.Log10) }
func Floor[V Lanewise[V]](v V) V { return v.Apply(math.Floor) }
func Ceil[V Lanewise[V]](v V) V  { return v.Apply(math.Ceil) }
func Round[V Lanewise[V]](v V) V { return v.Apply(math.Round) }
func Trunc[V Lanewise[V]](v V) V { return v.Apply(math.Trunc) }
func Fract[V Lanewise[V]](v V) V { return v.Apply(num.Fract[float64]) }

// Rsqrt returns 1/Sqrt per lane.
func Rsqrt[V Lanewise[V]](v V) V { return v.Apply(num.Rsqrt[float64]) }

// Radians converts every lane from degrees to radians.
func Radians[V Lanewise[V]](v V) V { return v.Apply(num.Radians[float64]) }

// Degrees converts every lane from radians to degrees.
func Degrees[V Lanewise[V]](v V) V { return v.Apply(num.Degrees[float64]) }

// Saturate clamps every lane to [0, 1].
func Saturate[V Lanewise[V]](v V) V { return v.Apply(num.Saturate[float64]) }

func Atan2[V Lanewise[V]](y, x V) V { return y.Apply2(x, math.Atan2) }
func Pow[V Lanewise[V]](x, y V) V   { return x.Apply2(y, math.Pow) }
func Mod[V Lanewise[V]](x, y V) V   { return x.Apply2(y, math.Mod) }

// FastExp applies the algo-approx exponential to every lane.
func FastExp[V Lanewise[V]](v V) V {
	return v.Apply(func(x float64) float64 { return approx.FastExp(x) })
}

// FastLog applies the algo-approx natural logarithm to every lane.
func FastLog[V Lanewise[V]](v V) V {
	return v.Apply(func(x float64) float64 { return approx.FastLog(x) })
}

// FastSqrt applies the algo-approx square root to every lane.
func FastSqrt[V Lanewise[V]](v V) V {
	return v.Apply(func(x float64) float64 { return approx.FastSqrt(x) })
}

// Sqrt uses v.Sqrt() when V has one.
func Sqrt[V Lanewise[V]](v V) V {
	if s, ok := any(v).(interface{ Sqrt() V }); ok {
		return s.Sqrt()
	}
	return v.Apply(math.Sqrt)
}

// Abs uses v.Abs() when V has one.
func Abs[V Lanewise[V]](v V) V {
	if a, ok := any(v).(interface{ Abs() V }); ok {
		return a.Abs()
	}
	return v.Apply(math.Abs)
}

// Neg uses v.Neg() when V has one.
func Neg[V Lanewise[V]](v V) V {
	if n, ok := any(v).(interface{ Neg() V }); ok {
		return n.Neg()
	}
	return v.Apply(func(x float64) float64 { return -x })
}

// Min returns the lanewise minimum with the num.Min rule, using a.Min(b)
// when V has it.
func Min[V Lanewise[V]](a, b V) V {
	if m, ok := any(a).(interface{ Min(V) V }); ok {
		return m.Min(b)
	}
	return a.Apply2(b, num.Min[float64])
}

// Max returns the lanewise maximum with the num.Max rule.
func Max[V Lanewise[V]](a, b V) V {
	if m, ok := any(a).(interface{ Max(V) V }); ok {
		return m.Max(b)
	}
	return a.Apply2(b, num.Max[float64])
}

// Clamp limits every lane of v to the range given by the matching lanes of
// lo and hi. Swapped bounds are reordered per lane, as in num.Clamp.
func Clamp[V Lanewise[V]](v, lo, hi V) V {
	lo, hi = Min(lo, hi), Max(lo, hi)
	return Min(Max(v, lo), hi)
}

// MulAdd returns a*b + c per lane, using a.MulAdd(b, c) when V has it.
func MulAdd[V Lanewise[V]](a, b, c V) V {
	if m, ok := any(a).(interface{ MulAdd(V, V) V }); ok {
		return m.MulAdd(b, c)
	}
	ab := a.Apply2(b, func(x, y float64) float64 { return x * y })
	return ab.Apply2(c, func(x, y float64) float64 { return x + y })
}

// Lerp interpolates every lane between a (t = 0) and b (t = 1).
func Lerp[V Lanewise[V]](a, b V, t float64) V {
	return a.Apply2(b, func(x, y float64) float64 { return num.Lerp(x, y, t) })
}

// Smoothstep applies num.Smoothstep with fixed edges to every lane.
func Smoothstep[V Lanewise[V]](edge0, edge1 float64, v V) V {
	return v.Apply(func(x float64) float64 { return num.Smoothstep(edge0, edge1, x) })
}
