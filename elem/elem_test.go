package elem

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-linalg/internal/testutil"
	"github.com/cwbudde/algo-linalg/num"
	"github.com/cwbudde/algo-linalg/simd"
	"github.com/cwbudde/algo-linalg/vec"
)

// scalar is a Lanewise type without any accelerated methods, so every
// function takes its Apply path.
type scalar float64

func (s scalar) Apply(f func(float64) float64) scalar { return scalar(f(float64(s))) }

func (s scalar) Apply2(w scalar, f func(a, b float64) float64) scalar {
	return scalar(f(float64(s), float64(w)))
}

func TestUnaryAcrossTypes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		pack func(simd.Float64x4) simd.Float64x4
		v3   func(vec.Vec3[float64]) vec.Vec3[float64]
		s    func(scalar) scalar
	}{
		{"Sin", math.Sin, Sin[simd.Float64x4], Sin[vec.Vec3[float64]], Sin[scalar]},
		{"Exp", math.Exp, Exp[simd.Float64x4], Exp[vec.Vec3[float64]], Exp[scalar]},
		{"Floor", math.Floor, Floor[simd.Float64x4], Floor[vec.Vec3[float64]], Floor[scalar]},
		{"Sqrt", math.Sqrt, Sqrt[simd.Float64x4], Sqrt[vec.Vec3[float64]], Sqrt[scalar]},
		{"Abs", math.Abs, Abs[simd.Float64x4], Abs[vec.Vec3[float64]], Abs[scalar]},
		{"Neg", func(x float64) float64 { return -x }, Neg[simd.Float64x4], Neg[vec.Vec3[float64]], Neg[scalar]},
	}

	in := []float64{0.25, 1.5, 4, 9}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.pack(simd.LoadFloat64x4(in))
			v := tt.v3(vec.V3(in[0], in[1], in[2]))
			for i, x := range in {
				want := tt.fn(x)
				testutil.RequireNearlyEqual(t, p[i], want, 1e-15)
				testutil.RequireNearlyEqual(t, float64(tt.s(scalar(x))), want, 1e-15)
				if i < 3 {
					testutil.RequireNearlyEqual(t, v[i], want, 1e-15)
				}
			}
		})
	}
}

func TestFloat32PackUsesKernels(t *testing.T) {
	v := simd.Float32x4{4, 9, 16, 25}
	if got := Sqrt(v); got != v.Sqrt() {
		t.Fatalf("Sqrt = %v", got)
	}

	nan := float32(math.NaN())
	a := simd.Float32x4{nan, 1, 2, 3}
	b := simd.Float32x4{1, nan, 3, 2}
	got := Min(a, b)
	if got[0] != 1 || got[1] == got[1] || got[2] != 2 || got[3] != 2 {
		t.Fatalf("Min = %v", got)
	}
}

func TestBinary(t *testing.T) {
	x := vec.V2(2.0, 9.0)
	y := vec.V2(3.0, 0.5)

	if got := Pow(x, y); got != vec.V2(8.0, 3.0) {
		t.Errorf("Pow = %v", got)
	}
	if got := Atan2(scalar(1), scalar(1)); math.Abs(float64(got)-math.Pi/4) > 1e-15 {
		t.Errorf("Atan2 = %v", got)
	}
	if got := Min(scalar(2), scalar(math.NaN())); !math.IsNaN(float64(got)) {
		t.Errorf("scalar Min must follow the lane rule, got %v", got)
	}
	if got := Max(x, y); got != vec.V2(3.0, 9.0) {
		t.Errorf("Max = %v", got)
	}
	if got := Clamp(simd.Float64x2{-1, 5}, simd.Float64x2{0, 0}, simd.Float64x2{1, 1}); got != (simd.Float64x2{0, 1}) {
		t.Errorf("Clamp = %v", got)
	}
	if got := MulAdd(x, y, vec.Splat2(1.0)); got != vec.V2(7.0, 5.5) {
		t.Errorf("MulAdd = %v", got)
	}
	if got := MulAdd(scalar(2), scalar(3), scalar(4)); got != 10 {
		t.Errorf("scalar MulAdd = %v", got)
	}
	if got := Lerp(x, y, 0.5); got != vec.V2(2.5, 4.75) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestClampSwappedBounds(t *testing.T) {
	v := [4]float32{-3, 0.5, 7, 2}
	lo := [4]float32{1, 1, 5, 2}
	hi := [4]float32{-1, 0, 6, 2}

	var want [4]float32
	for i := range v {
		want[i] = num.Clamp(v[i], lo[i], hi[i])
	}

	if got := Clamp(simd.Float32x4(v), simd.Float32x4(lo), simd.Float32x4(hi)); got != simd.Float32x4(want) {
		t.Errorf("pack Clamp = %v, want %v", got, want)
	}
	v3 := vec.V3(float64(v[0]), float64(v[1]), float64(v[2]))
	lo3 := vec.V3(float64(lo[0]), float64(lo[1]), float64(lo[2]))
	hi3 := vec.V3(float64(hi[0]), float64(hi[1]), float64(hi[2]))
	if got, ref := Clamp(v3, lo3, hi3), v3.Clamp(lo3, hi3); got != ref {
		t.Errorf("Vec3 Clamp = %v, vec.Clamp = %v", got, ref)
	}
	for i := range v {
		if got := Clamp(scalar(v[i]), scalar(lo[i]), scalar(hi[i])); float32(got) != want[i] {
			t.Errorf("scalar Clamp lane %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestFastFunctions(t *testing.T) {
	v := simd.Float64x2{0.5, 2}
	e := FastExp(v)
	l := FastLog(v)
	s := FastSqrt(v)
	for i, x := range v {
		if math.Abs(e[i]-math.Exp(x)) > 0.05*math.Exp(x) {
			t.Errorf("FastExp(%v) = %v", x, e[i])
		}
		if math.Abs(l[i]-math.Log(x)) > 0.05 {
			t.Errorf("FastLog(%v) = %v", x, l[i])
		}
		if math.Abs(s[i]-math.Sqrt(x)) > 0.05*math.Sqrt(x) {
			t.Errorf("FastSqrt(%v) = %v", x, s[i])
		}
	}
}

func TestCompareAndSelect(t *testing.T) {
	a := simd.Float32x4{1, 5, 3, 7}
	b := simd.Float32x4{2, 4, 3, 8}

	m := Less[simd.Float32x4, simd.Mask32x4](a, b)
	if m.Bits() != 0b1001 {
		t.Fatalf("Less = %04b", m.Bits())
	}
	if got := Select(m, a, b); got != (simd.Float32x4{1, 4, 3, 7}) {
		t.Fatalf("Select = %v", got)
	}

	u := vec.V3(1, 2, 3)
	w := vec.V3(3, 2, 1)
	mask := GreaterEq[vec.Vec3[int], vec.Bool3](u, w)
	if mask != (vec.Bool3{false, true, true}) {
		t.Fatalf("GreaterEq = %v", mask)
	}
	if got := Select(mask, u, w); got != vec.V3(3, 2, 3) {
		t.Fatalf("vector Select = %v", got)
	}
	if got := Eq[vec.Vec3[int], vec.Bool3](u, w); got != (vec.Bool3{false, true, false}) {
		t.Fatalf("Eq = %v", got)
	}
}
