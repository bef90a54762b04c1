package num

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"exact", 1, 1, 1e-12, true},
		{"absolute", 1e-10, 2e-10, 1e-9, true},
		{"relative", 1e9, 1e9 + 0.5, 1e-9, true},
		{"too far", 1, 1.1, 1e-3, false},
		{"default eps", 1, 1 + 1e-12, 0, true},
		{"inf", math.Inf(1), math.MaxFloat64, 1e-9, false},
		{"nan", math.NaN(), math.NaN(), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("NearlyEqual(%v, %v, %v) = %v", tt.a, tt.b, tt.eps, got)
			}
		})
	}

	if !NearlyEqual(float32(0.1)+float32(0.2), float32(0.3), 1e-6) {
		t.Error("float32 sum not nearly equal")
	}
}

func TestToleranceOptions(t *testing.T) {
	def := NewTolerance()
	if def != DefaultTolerance() {
		t.Fatalf("NewTolerance() = %+v", def)
	}

	tol := NewTolerance(WithAbs(0.5), WithRel(-1), nil)
	if tol.Abs != 0.5 || tol.Rel != def.Rel {
		t.Fatalf("options applied wrongly: %+v", tol)
	}

	if !tol.Equal(1, 1.4) || tol.Equal(1, 1.6) {
		t.Error("absolute bound not honoured")
	}

	rel := NewTolerance(WithAbs(0), WithRel(0.01))
	if !rel.Equal(1000, 1009) || rel.Equal(1000, 1020) {
		t.Error("relative bound not honoured")
	}
	if rel.Equal(math.NaN(), math.NaN()) {
		t.Error("NaN must never compare equal")
	}
}

func TestEps(t *testing.T) {
	if got := Eps(0); got != DefaultTolerance() {
		t.Fatalf("Eps(0) = %+v", got)
	}
	if got := Eps(-1); got != DefaultTolerance() {
		t.Fatalf("Eps(-1) = %+v", got)
	}
	if got := Eps(1e-3); got != (Tolerance{Abs: 1e-3, Rel: 1e-3}) {
		t.Fatalf("Eps(1e-3) = %+v", got)
	}

	// NearlyEqual and Eps(eps).Equal are the same predicate.
	pairs := [][2]float64{{1, 1.0005}, {1, 1.01}, {1e9, 1e9 + 0.5}, {0, 1e-4}, {math.Inf(1), math.Inf(1)}}
	for _, p := range pairs {
		if NearlyEqual(p[0], p[1], 1e-3) != Eps(1e-3).Equal(p[0], p[1]) {
			t.Errorf("NearlyEqual and Eps disagree on %v", p)
		}
	}
}
