package vec

import (
	"testing"

	"github.com/cwbudde/algo-linalg/internal/testutil"
)

func TestBatchLengths(t *testing.T) {
	vs := []Vec2[float64]{V2(3.0, 4.0), V2(0.0, 0.0), V2(-5.0, 12.0), V2(1.0, 1.0)}
	b := Pack2(vs)

	lens := make([]float64, b.Len())
	Lengths2(lens, b)
	testutil.RequireSliceNearlyEqual(t, lens, []float64{5, 0, 13, 1.4142135623730951}, 1e-12)

	sq := make([]float64, b.Len())
	LengthsSquared2(sq, b)
	testutil.RequireSliceNearlyEqual(t, sq, []float64{25, 0, 169, 2}, 1e-12)

	for i, v := range vs {
		testutil.RequireNearlyEqual(t, lens[i], v.Len(), 1e-12)
	}
}

func TestBatchMulComponents(t *testing.T) {
	a := Pack2([]Vec2[float64]{V2(1.0, 2.0), V2(3.0, 4.0)})
	b := Pack2([]Vec2[float64]{V2(10.0, 20.0), V2(-1.0, 0.5)})

	dst := NewBatch2(2)
	MulComponents(dst, a, b)
	got := dst.Unpack(nil)
	if got[0] != V2(10.0, 40.0) || got[1] != V2(-3.0, 2.0) {
		t.Fatalf("MulComponents = %v", got)
	}

	MulComponentsInPlace(a, b)
	if a.At(1) != V2(-3.0, 2.0) {
		t.Fatalf("MulComponentsInPlace = %v", a.At(1))
	}

	ScaleComponents(a, V2(2.0, 0.0))
	if a.At(0) != V2(20.0, 0.0) {
		t.Fatalf("ScaleComponents = %v", a.At(0))
	}

	AddComponentsInPlace(a, b)
	if a.At(0) != V2(30.0, 20.0) || a.At(1) != V2(-7.0, 0.5) {
		t.Fatalf("AddComponentsInPlace = %v", a.Unpack(nil))
	}
}

func TestBatchLengthMismatchPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"ragged", func() { Batch2{X: make([]float64, 2), Y: make([]float64, 1)}.Len() }},
		{"Lengths2", func() { Lengths2(make([]float64, 1), NewBatch2(2)) }},
		{"MulComponents", func() { MulComponents(NewBatch2(2), NewBatch2(2), NewBatch2(3)) }},
		{"MulComponentsInPlace", func() { MulComponentsInPlace(NewBatch2(1), NewBatch2(2)) }},
		{"AddComponentsInPlace", func() { AddComponentsInPlace(NewBatch2(3), NewBatch2(2)) }},
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
