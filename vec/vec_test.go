package vec

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-linalg/internal/testutil"
	"github.com/cwbudde/algo-linalg/num"
)

func TestLayout(t *testing.T) {
	if unsafe.Sizeof(Vec3[float32]{}) != unsafe.Sizeof([3]float32{}) ||
		unsafe.Alignof(Vec3[float32]{}) != unsafe.Alignof([3]float32{}) {
		t.Fatal("Vec3[float32] layout differs from [3]float32")
	}
	if unsafe.Sizeof(Vec4[float64]{}) != 32 || unsafe.Sizeof(Vec2[int16]{}) != 4 {
		t.Fatal("unexpected vector size")
	}
}

func TestArithmetic(t *testing.T) {
	a := V3(1.0, 2.0, 3.0)
	b := V3(4.0, -5.0, 6.0)

	tests := []struct {
		name string
		got  Vec3[float64]
		want Vec3[float64]
	}{
		{"Add", a.Add(b), V3(5.0, -3.0, 9.0)},
		{"Sub", a.Sub(b), V3(-3.0, 7.0, -3.0)},
		{"Mul", a.Mul(b), V3(4.0, -10.0, 18.0)},
		{"Div", b.Div(a), V3(4.0, -2.5, 2.0)},
		{"Scale", a.Scale(2), V3(2.0, 4.0, 6.0)},
		{"Neg", a.Neg(), V3(-1.0, -2.0, -3.0)},
		{"Abs", b.Abs(), V3(4.0, 5.0, 6.0)},
		{"Min", a.Min(b), V3(1.0, -5.0, 3.0)},
		{"Max", a.Max(b), V3(4.0, 2.0, 6.0)},
		{"Clamp", b.Clamp(Splat3(-1.0), Splat3(5.0)), V3(4.0, -1.0, 5.0)},
		{"Cross", UnitX3[float64]().Cross(UnitY3[float64]()), UnitZ3[float64]()},
		{"Lerp", a.Lerp(b, 0.5), V3(2.5, -1.5, 4.5)},
		{"Reflect", V3(1.0, -1.0, 0.0).Reflect(UnitY3[float64]()), V3(1.0, 1.0, 0.0)},
		{"Project", V3(2.0, 3.0, 4.0).Project(V3(0.0, 0.0, 2.0)), V3(0.0, 0.0, 4.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLengths(t *testing.T) {
	v := V3(2.0, 3.0, 6.0)
	if v.LenSq() != 49 || v.Len() != 7 {
		t.Fatalf("LenSq %v Len %v", v.LenSq(), v.Len())
	}
	if d := v.Dist(V3(2.0, 3.0, 0.0)); d != 6 {
		t.Fatalf("Dist = %v", d)
	}
	if d := V2(3, 4).Len(); d != 5 {
		t.Fatalf("integer Len = %v", d)
	}

	n := v.Normalize()
	testutil.RequireNearlyEqual(t, n.Len(), 1, 1e-15)
	if !n.NearlyEqual(V3(2.0/7, 3.0/7, 6.0/7), 1e-15) {
		t.Fatalf("Normalize = %v", n)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := Zero3[float32]().Normalize(); got != Zero3[float32]() {
		t.Fatalf("Normalize(0) = %v", got)
	}
	if _, err := Zero2[float64]().TryNormalize(); !errors.Is(err, ErrZeroLength) {
		t.Fatalf("TryNormalize(0) error = %v", err)
	}
	nan := math.NaN()
	if _, err := V2(nan, 1).TryNormalize(); !errors.Is(err, ErrZeroLength) {
		t.Fatalf("TryNormalize(NaN) error = %v", err)
	}
}

func TestFloat32RangeEdges(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3[float32]
		len  float64
	}{
		{"huge", V3[float32](1e20, 0, 0), 1e20},
		{"huge mixed", V3[float32](3e30, -4e30, 0), 5e30},
		{"max", V3[float32](math.MaxFloat32, math.MaxFloat32, 0), math.MaxFloat32 * math.Sqrt2},
		{"tiny", V3[float32](1e-30, 0, 0), 1e-30},
		{"subnormal", V3[float32](0, 0, -math.SmallestNonzeroFloat32), math.SmallestNonzeroFloat32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.v.TryNormalize()
			if err != nil {
				t.Fatalf("TryNormalize(%v) error = %v", tt.v, err)
			}
			testutil.RequireNearlyEqual(t, float64(n.Len()), 1, 1e-6)
			if l := float64(tt.v.Len()); !math.IsInf(tt.len, 0) && tt.len <= math.MaxFloat32 {
				testutil.RequireNearlyEqual(t, l, tt.len, tt.len*1e-6)
			}
		})
	}

	if got := V2[float32](1e20, 1e20).Angle(V2[float32](-1e20, 1e20)); math.Abs(float64(got)-math.Pi/2) > 1e-6 {
		t.Fatalf("Angle of huge vectors = %v", got)
	}
	if _, err := V2(math.Inf(1), 0).TryNormalize(); !errors.Is(err, ErrZeroLength) {
		t.Fatalf("TryNormalize(Inf) error = %v", err)
	}
}

func TestFloat64RangeEdges(t *testing.T) {
	big := V4(1e300, 1e300, 0, 0)
	testutil.RequireNearlyEqual(t, big.Len(), 1e300*math.Sqrt2, 1e286)
	n, err := big.TryNormalize()
	if err != nil {
		t.Fatalf("TryNormalize(%v) error = %v", big, err)
	}
	testutil.RequireNearlyEqual(t, n.Len(), 1, 1e-15)

	tiny := V2(3e-320, 4e-320)
	if n, err := tiny.TryNormalize(); err != nil || !n.NearlyEqual(V2(0.6, 0.8), 1e-3) {
		t.Fatalf("TryNormalize(%v) = %v, %v", tiny, n, err)
	}
}

func TestAngle(t *testing.T) {
	testutil.RequireNearlyEqual(t, UnitX2[float64]().Angle(UnitY2[float64]()), math.Pi/2, 1e-15)
	testutil.RequireNearlyEqual(t, V3(1.0, 1.0, 0.0).Angle(V3(-2.0, -2.0, 0.0)), math.Pi, 1e-7)
	if got := Zero3[float64]().Angle(UnitX3[float64]()); got != 0 {
		t.Fatalf("Angle with zero vector = %v", got)
	}
}

func TestVec2Helpers(t *testing.T) {
	v := V2(3.0, 4.0)
	if v.Perp() != V2(-4.0, 3.0) {
		t.Errorf("Perp = %v", v.Perp())
	}
	if c := UnitX2[float64]().Cross(UnitY2[float64]()); c != 1 {
		t.Errorf("Cross = %v", c)
	}
	if v.YX() != V2(4.0, 3.0) || v.Extend(5) != V3(3.0, 4.0, 5.0) {
		t.Errorf("swizzles wrong")
	}
	if v.Extend(5).Extend(1).XYZ().XY() != v {
		t.Errorf("Extend round trip failed")
	}
	if got := V4(2.0, 4.0, 6.0, 2.0).Homogenize(); got != V3(1.0, 2.0, 3.0) {
		t.Errorf("Homogenize = %v", got)
	}
}

func TestReductions(t *testing.T) {
	v := V4(3, -1, 7, 2)
	if v.MinComp() != -1 || v.MaxComp() != 7 || v.Sum() != 11 {
		t.Fatalf("MinComp %v MaxComp %v Sum %v", v.MinComp(), v.MaxComp(), v.Sum())
	}
	if v.X() != 3 || v.Y() != -1 || v.Z() != 7 || v.W() != 2 {
		t.Fatal("accessors wrong")
	}
}

func TestComparisons(t *testing.T) {
	a := V3(1, 5, 3)
	b := V3(2, 5, 1)

	if got := a.Less(b); got != (Bool3{true, false, false}) {
		t.Errorf("Less = %v", got)
	}
	if got := a.GreaterEq(b); got != (Bool3{false, true, true}) {
		t.Errorf("GreaterEq = %v", got)
	}
	if got := a.Ne(b); got.All() || !got.Any() || got.Not() != a.Eq(b) {
		t.Errorf("Ne = %v", got)
	}
	if got := a.Select(a.Less(b), b); got != V3(1, 5, 1) {
		t.Errorf("Select = %v", got)
	}
	if !a.Equal(V3(1, 5, 3)) || a.Equal(b) {
		t.Error("Equal wrong")
	}
}

func TestNearlyEqualTol(t *testing.T) {
	a := V3(1.0, 1000, 0)
	b := V3(1.004, 1009, 0)

	if a.NearlyEqual(b, 1e-3) {
		t.Fatal("NearlyEqual(1e-3) accepted a 0.4% difference")
	}
	if !a.NearlyEqualTol(b, num.NewTolerance(num.WithAbs(0.005), num.WithRel(0.01))) {
		t.Fatal("NearlyEqualTol rejected differences inside the bounds")
	}
	if a.NearlyEqualTol(b, num.NewTolerance(num.WithAbs(0.005), num.WithRel(0))) {
		t.Fatal("NearlyEqualTol ignored a zero relative bound")
	}
	if V2(math.NaN(), 0).NearlyEqualTol(V2(math.NaN(), 0), num.NewTolerance(num.WithAbs(1))) {
		t.Fatal("NaN compared equal")
	}
}

func TestApplyAndConvert(t *testing.T) {
	v := V3(1.0, 4.0, 9.0)
	if got := v.Apply(math.Sqrt); got != V3(1.0, 2.0, 3.0) {
		t.Errorf("Apply = %v", got)
	}
	if got := v.Apply2(Splat3(2.0), math.Max); got != V3(2.0, 4.0, 9.0) {
		t.Errorf("Apply2 = %v", got)
	}
	if got := Convert3[int](V3(1.9, -1.9, 3.0)); got != V3(1, -1, 3) {
		t.Errorf("Convert3 = %v", got)
	}
	if got := Convert2[float32](V2(1, 2)); got != V2[float32](1, 2) {
		t.Errorf("Convert2 = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := V3(1, 2, 3).String(); got != "(1, 2, 3)" {
		t.Errorf("String = %q", got)
	}
	if got := V2(0.5, -1.0).String(); got != "(0.5, -1)" {
		t.Errorf("String = %q", got)
	}
}
