package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float32{1}, []float32{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestNearlyNaN(t *testing.T) {
	nan := math.NaN()
	if !nearly(nan, nan, 0) {
		t.Fatal("NaN should match NaN")
	}
	if nearly(nan, 1, 10) {
		t.Fatal("NaN should not match a number")
	}
	if !nearly(math.Inf(1), math.Inf(1), 0) {
		t.Fatal("+Inf should match +Inf")
	}
}

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, float32(1), float32(1.0000001), 1e-6)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)
	RequireFinite(t, []float32{0, 1, -1})
}
