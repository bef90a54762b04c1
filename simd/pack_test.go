package simd

import (
	"math"
	"testing"
)

var (
	nan32    = float32(math.NaN())
	negZero  = math.Copysign(0, -1)
	negZero2 = float32(negZero)
)

func isNaN32(x float32) bool { return x != x }

func TestFloat32x4Arithmetic(t *testing.T) {
	a := Float32x4{1, 2, 3, 4}
	b := Float32x4{8, 4, 2, 1}

	tests := []struct {
		name string
		got  Float32x4
		want Float32x4
	}{
		{"Add", a.Add(b), Float32x4{9, 6, 5, 5}},
		{"Sub", a.Sub(b), Float32x4{-7, -2, 1, 3}},
		{"Mul", a.Mul(b), Float32x4{8, 8, 6, 4}},
		{"Div", b.Div(a), Float32x4{8, 2, 2.0 / 3.0, 0.25}},
		{"Min", a.Min(b), Float32x4{1, 2, 2, 1}},
		{"Max", a.Max(b), Float32x4{8, 4, 3, 4}},
		{"Sqrt", Float32x4{4, 9, 16, 0}.Sqrt(), Float32x4{2, 3, 4, 0}},
		{"MulAdd", a.MulAdd(b, SplatFloat32x4(1)), Float32x4{9, 9, 7, 5}},
		{"Neg", a.Neg(), Float32x4{-1, -2, -3, -4}},
		{"Abs", Float32x4{-1, 2, -3, 4}.Abs(), Float32x4{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFloat32x4SignBitOps(t *testing.T) {
	v := Float32x4{0, negZero2, nan32, float32(math.Inf(-1))}

	neg := v.Neg()
	if math.Float32bits(neg[0]) != signBit32 || math.Float32bits(neg[1]) != 0 {
		t.Fatalf("Neg must flip the sign of zeros, got %v", neg)
	}
	if !isNaN32(neg[2]) || !math.IsInf(float64(neg[3]), 1) {
		t.Fatalf("Neg = %v", neg)
	}

	abs := v.Abs()
	if math.Float32bits(abs[1]) != 0 || !math.IsInf(float64(abs[3]), 1) {
		t.Fatalf("Abs = %v", abs)
	}
	if math.Signbit(float64(abs[2])) {
		t.Fatal("Abs must clear the sign of NaN")
	}
}

func TestFloat32x4MinMaxNaN(t *testing.T) {
	a := Float32x4{nan32, 1, 0, negZero2}
	b := Float32x4{1, nan32, negZero2, 0}

	lo := a.Min(b)
	if lo[0] != 1 || !isNaN32(lo[1]) {
		t.Fatalf("Min NaN handling = %v", lo)
	}
	if math.Float32bits(lo[2]) != signBit32 || math.Float32bits(lo[3]) != 0 {
		t.Fatalf("Min must return the second operand on equal zeros, got %v", lo)
	}

	hi := a.Max(b)
	if hi[0] != 1 || !isNaN32(hi[1]) {
		t.Fatalf("Max NaN handling = %v", hi)
	}
}

func TestFloat32x4Compare(t *testing.T) {
	a := Float32x4{1, 2, nan32, 4}
	b := Float32x4{1, 3, nan32, 3}

	tests := []struct {
		name string
		got  Mask32x4
		want uint8
	}{
		{"Eq", a.Eq(b), 0b0001},
		{"Ne", a.Ne(b), 0b1110},
		{"Less", a.Less(b), 0b0010},
		{"LessEq", a.LessEq(b), 0b0011},
		{"Greater", a.Greater(b), 0b1000},
		{"GreaterEq", a.GreaterEq(b), 0b1001},
		{"IsNaN", a.IsNaN(), 0b0100},
	}

	for _, tt := range tests {
		if got := tt.got.Bits(); got != tt.want {
			t.Errorf("%s: bits %04b, want %04b", tt.name, got, tt.want)
		}
		for _, lane := range tt.got {
			if lane != True32 && lane != False32 {
				t.Errorf("%s: lane %#x is not canonical", tt.name, lane)
			}
		}
	}
}

func TestFloat32x4SelectBitwise(t *testing.T) {
	a := Float32x4FromBits(Uint32x4{0xAAAAAAAA, 1, 2, 3})
	b := Float32x4FromBits(Uint32x4{0x55555555, 5, 6, 7})
	m := Mask32x4{0xFFFF0000, True32, False32, True32}

	got := a.Select(m, b).AsUint32x4()
	want := Uint32x4{0xAAAA5555, 1, 6, 3}
	if got != want {
		t.Fatalf("Select = %x, want %x", got, want)
	}

	if generic := Select(m, a, b).AsUint32x4(); generic != want {
		t.Fatalf("package Select = %x, want %x", generic, want)
	}
}

func TestFloat32x4Reduce(t *testing.T) {
	v := Float32x4{3, -1, 4, 1}
	if got := v.ReduceSum(); got != 7 {
		t.Errorf("ReduceSum = %v", got)
	}
	if got := v.ReduceMin(); got != -1 {
		t.Errorf("ReduceMin = %v", got)
	}
	if got := v.ReduceMax(); got != 4 {
		t.Errorf("ReduceMax = %v", got)
	}
	if got := v.Dot(Float32x4{1, 1, 1, 1}); got != 7 {
		t.Errorf("Dot = %v", got)
	}
}

func TestFloat32x4LoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5}
	v := LoadFloat32x4(src)
	if v != (Float32x4{1, 2, 3, 4}) {
		t.Fatalf("Load = %v", v)
	}

	dst := make([]float32, 4)
	v.Store(dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Fatalf("Store[%d] = %v", i, dst[i])
		}
	}

	if p := LoadFloat32x4Partial(src[:2]); p != (Float32x4{1, 2, 0, 0}) {
		t.Fatalf("LoadPartial = %v", p)
	}
	tail := make([]float32, 3)
	if n := v.StorePartial(tail); n != 3 || tail[2] != 3 {
		t.Fatalf("StorePartial = %d %v", n, tail)
	}

	if got := v.With(2, 9).Get(2); got != 9 {
		t.Fatalf("With/Get = %v", got)
	}
}

func TestLoadPanicsOnShortSlice(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"LoadFloat32x4", func() { LoadFloat32x4(make([]float32, 3)) }},
		{"StoreFloat32x4", func() { Float32x4{}.Store(make([]float32, 3)) }},
		{"LoadInt32x4", func() { LoadInt32x4(nil) }},
		{"LoadUint32x4", func() { LoadUint32x4(make([]uint32, 1)) }},
		{"LoadFloat64x2", func() { LoadFloat64x2(make([]float64, 1)) }},
		{"LoadInt64x2", func() { LoadInt64x2(nil) }},
		{"LoadFloat32x2", func() { LoadFloat32x2(make([]float32, 1)) }},
		{"LoadInt32x2", func() { LoadInt32x2(nil) }},
		{"LoadFloat64x4", func() { LoadFloat64x4(make([]float64, 3)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestFloat32x4Conversions(t *testing.T) {
	v := Float32x4{1.9, -1.9, nan32, 3e9}
	if got := v.ToInt32x4(); got != (Int32x4{1, -1, math.MinInt32, math.MinInt32}) {
		t.Fatalf("ToInt32x4 = %v", got)
	}

	// 16777217 is not representable and rounds to even.
	if got := (Int32x4{1, -2, 16777217, 16777219}).ToFloat32x4(); got != (Float32x4{1, -2, 16777216, 16777220}) {
		t.Fatalf("ToFloat32x4 = %v", got)
	}

	wide := Float32x4{0.1, 2, 3, 4}.ToFloat64x4()
	if wide[0] != float64(float32(0.1)) {
		t.Fatalf("ToFloat64x4 = %v", wide)
	}
	if back := wide.ToFloat32x4(); back != (Float32x4{0.1, 2, 3, 4}) {
		t.Fatalf("round trip = %v", back)
	}

	bits := SplatFloat32x4(1).AsUint32x4()
	if bits != SplatUint32x4(0x3F800000) {
		t.Fatalf("AsUint32x4 = %x", bits)
	}
}

func TestFloat32x4Apply(t *testing.T) {
	v := Float32x4{1, 4, 9, 16}
	if got := v.Apply(math.Sqrt); got != (Float32x4{1, 2, 3, 4}) {
		t.Fatalf("Apply = %v", got)
	}
	if got := v.Apply2(SplatFloat32x4(2), math.Pow); got != (Float32x4{1, 16, 81, 256}) {
		t.Fatalf("Apply2 = %v", got)
	}
}

func TestInt32x4(t *testing.T) {
	a := Int32x4{math.MaxInt32, -5, 7, math.MinInt32}
	b := Int32x4{1, 5, -7, 1}

	if got := a.Add(b); got != (Int32x4{math.MinInt32, 0, 0, math.MinInt32 + 1}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Int32x4{math.MaxInt32 - 1, -10, 14, math.MaxInt32}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Abs(); got != (Int32x4{math.MaxInt32, 5, 7, math.MinInt32}) {
		t.Errorf("Abs = %v", got)
	}
	if got := a.Neg(); got != (Int32x4{-math.MaxInt32, 5, -7, math.MinInt32}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Min(b); got != (Int32x4{1, -5, -7, math.MinInt32}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != (Int32x4{math.MaxInt32, 5, 7, 1}) {
		t.Errorf("Max = %v", got)
	}
	if got := (Int32x4{7, -7, 9, 0}).Div(Int32x4{2, 2, -4, 1}); got != (Int32x4{3, -3, -2, 0}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Less(b).Bits(); got != 0b1010 {
		t.Errorf("Less = %04b", got)
	}
	if got := a.GreaterEq(b).Bits(); got != 0b0101 {
		t.Errorf("GreaterEq = %04b", got)
	}
	if got := a.Ne(a).Bits(); got != 0 {
		t.Errorf("Ne self = %04b", got)
	}
	if got := (Int32x4{0xF0, 0xFF, 0, -1}).AndNot(SplatInt32x4(0x30)); got != (Int32x4{0xC0, 0xCF, 0, -0x31}) {
		t.Errorf("AndNot = %v", got)
	}
	if got := a.ReduceMin(); got != math.MinInt32 {
		t.Errorf("ReduceMin = %v", got)
	}
}

func TestInt32x4DivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	_ = SplatInt32x4(1).Div(Int32x4{1, 1, 0, 1})
}

func TestUint32x4UnsignedCompare(t *testing.T) {
	a := Uint32x4{0xFFFFFFFF, 1, 0x80000000, 5}
	b := Uint32x4{1, 0xFFFFFFFF, 0x7FFFFFFF, 5}

	if got := a.Greater(b).Bits(); got != 0b0101 {
		t.Fatalf("Greater = %04b", got)
	}
	if got := a.LessEq(b).Bits(); got != 0b1010 {
		t.Fatalf("LessEq = %04b", got)
	}
	if got := a.Min(b); got != (Uint32x4{1, 1, 0x7FFFFFFF, 5}) {
		t.Fatalf("Min = %x", got)
	}
	if got := a.Add(SplatUint32x4(1)); got != (Uint32x4{0, 2, 0x80000001, 6}) {
		t.Fatalf("Add = %x", got)
	}
	if got := a.ShiftRight(31); got != (Uint32x4{1, 0, 1, 0}) {
		t.Fatalf("ShiftRight = %x", got)
	}
}

func TestFloat64x2(t *testing.T) {
	a := Float64x2{1, math.NaN()}
	b := Float64x2{2, 1}

	if got := a.Min(b); got[0] != 1 || got[1] != 1 {
		t.Errorf("Min = %v", got)
	}
	if got := a.Eq(a).Bits(); got != 0b01 {
		t.Errorf("Eq self = %02b", got)
	}
	if got := a.IsNaN().Bits(); got != 0b10 {
		t.Errorf("IsNaN = %02b", got)
	}
	if got := (Float64x2{-2, negZero}).Abs(); got[0] != 2 || math.Signbit(got[1]) {
		t.Errorf("Abs = %v", got)
	}
	if got := (Float64x2{9, 16}).Sqrt(); got != (Float64x2{3, 4}) {
		t.Errorf("Sqrt = %v", got)
	}
	if got := b.Select(MakeMask64x2(false, true), Float64x2{7, 7}); got != (Float64x2{7, 1}) {
		t.Errorf("Select = %v", got)
	}
	if got := (Float64x2{0.1, -3}).ToFloat32x2(); got != (Float32x2{0.1, -3}) {
		t.Errorf("ToFloat32x2 = %v", got)
	}
}

func TestInt64x2(t *testing.T) {
	a := Int64x2{math.MinInt64, 3}
	b := Int64x2{0, -3}

	if got := a.Abs(); got != (Int64x2{math.MinInt64, 3}) {
		t.Errorf("Abs = %v", got)
	}
	if got := a.Max(b); got != (Int64x2{0, 3}) {
		t.Errorf("Max = %v", got)
	}
	if got := a.Xor(b); got != (Int64x2{math.MinInt64, 3 ^ -3}) {
		t.Errorf("Xor = %v", got)
	}
	if got := a.Less(b).Bits(); got != 0b01 {
		t.Errorf("Less = %02b", got)
	}
	if got := a.ToFloat64x2(); got != (Float64x2{-9223372036854775808, 3}) {
		t.Errorf("ToFloat64x2 = %v", got)
	}
}

func TestFloat32x2MatchesFloat32x4Rules(t *testing.T) {
	a := Float32x2{nan32, negZero2}
	b := Float32x2{1, 0}

	lo := a.Min(b)
	if lo[0] != 1 || math.Float32bits(lo[1]) != 0 {
		t.Fatalf("Min = %v", lo)
	}
	if got := a.Ne(b).Bits(); got != 0b01 {
		t.Fatalf("Ne = %02b", got)
	}
	if got := (Float32x2{nan32, -3.5}).ToInt32x2(); got != (Int32x2{math.MinInt32, -3}) {
		t.Fatalf("ToInt32x2 = %v", got)
	}
	if got := (Float32x2{1, 2}).Select(Mask32x2{True32, False32}, Float32x2{3, 4}); got != (Float32x2{1, 4}) {
		t.Fatalf("Select = %v", got)
	}
	if got := (Float32x2{2, 3}).ToFloat64x2(); got != (Float64x2{2, 3}) {
		t.Fatalf("ToFloat64x2 = %v", got)
	}
}

func TestInt32x2(t *testing.T) {
	a := Int32x2{math.MinInt32, -4}
	if got := a.Abs(); got != (Int32x2{math.MinInt32, 4}) {
		t.Errorf("Abs = %v", got)
	}
	if got := a.Select(MakeMask32x2(false, true), Int32x2{1, 2}); got != (Int32x2{1, -4}) {
		t.Errorf("Select = %v", got)
	}
	if got := a.ToFloat32x2(); got != (Float32x2{-2147483648, -4}) {
		t.Errorf("ToFloat32x2 = %v", got)
	}
}

func TestFloat64x4(t *testing.T) {
	a := Float64x4{1, 2, 3, 4}
	b := Float64x4{4, 3, 2, 1}

	if got := a.Add(b); got != SplatFloat64x4(5) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Min(b); got != (Float64x4{1, 2, 2, 1}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Less(b).Bits(); got != 0b0011 {
		t.Errorf("Less = %04b", got)
	}
	if got := a.Select(a.Greater(b), b); got != (Float64x4{4, 3, 3, 4}) {
		t.Errorf("Select = %v", got)
	}
	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.ReduceMax(); got != 4 {
		t.Errorf("ReduceMax = %v", got)
	}
	if !a.NearlyEqual(a.Add(SplatFloat64x4(1e-12)), 1e-9) {
		t.Error("NearlyEqual rejected a close pack")
	}
}

func TestZero(t *testing.T) {
	if Zero[Float32x4]() != (Float32x4{}) || Zero[Mask64x4]().Any() {
		t.Fatal("Zero is not zero")
	}
}
