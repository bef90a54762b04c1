package vec

import "github.com/cwbudde/algo-vecmath"

// Batch2 stores 2D vectors column-wise: vector i is (X[i], Y[i]).
// Both columns must have the same length.
type Batch2 struct {
	X, Y []float64
}

// NewBatch2 allocates a batch of n zero vectors.
func NewBatch2(n int) Batch2 {
	return Batch2{X: make([]float64, n), Y: make([]float64, n)}
}

// Len returns the number of vectors in b.
func (b Batch2) Len() int {
	b.check()
	return len(b.X)
}

func (b Batch2) check() {
	if len(b.X) != len(b.Y) {
		panic("vec: batch column length mismatch")
	}
}

// At returns vector i.
func (b Batch2) At(i int) Vec2[float64] {
	return Vec2[float64]{b.X[i], b.Y[i]}
}

// Set stores v as vector i.
func (b Batch2) Set(i int, v Vec2[float64]) {
	b.X[i], b.Y[i] = v[0], v[1]
}

// Pack2 copies vs into a new batch.
func Pack2(vs []Vec2[float64]) Batch2 {
	b := NewBatch2(len(vs))
	for i, v := range vs {
		b.Set(i, v)
	}
	return b
}

// Unpack appends the vectors of b to dst and returns the extended slice.
func (b Batch2) Unpack(dst []Vec2[float64]) []Vec2[float64] {
	b.check()
	for i := range b.X {
		dst = append(dst, b.At(i))
	}
	return dst
}

// Lengths2 writes the Euclidean length of every vector of b into dst.
// dst must have the batch length.
func Lengths2(dst []float64, b Batch2) {
	if len(dst) != b.Len() {
		panic("vec: batch length mismatch")
	}
	vecmath.Magnitude(dst, b.X, b.Y)
}

// LengthsSquared2 writes the squared length of every vector of b into dst.
func LengthsSquared2(dst []float64, b Batch2) {
	if len(dst) != b.Len() {
		panic("vec: batch length mismatch")
	}
	vecmath.Power(dst, b.X, b.Y)
}

// MulComponents stores the component-wise product of a and b in dst.
// All three batches must have the same length; dst may alias a or b.
func MulComponents(dst, a, b Batch2) {
	n := dst.Len()
	if a.Len() != n || b.Len() != n {
		panic("vec: batch length mismatch")
	}
	vecmath.MulBlock(dst.X, a.X, b.X)
	vecmath.MulBlock(dst.Y, a.Y, b.Y)
}

// MulComponentsInPlace multiplies dst by src component by component.
func MulComponentsInPlace(dst, src Batch2) {
	if dst.Len() != src.Len() {
		panic("vec: batch length mismatch")
	}
	vecmath.MulBlockInPlace(dst.X, src.X)
	vecmath.MulBlockInPlace(dst.Y, src.Y)
}

// AddComponentsInPlace adds src to dst vector by vector.
func AddComponentsInPlace(dst, src Batch2) {
	if dst.Len() != src.Len() {
		panic("vec: batch length mismatch")
	}
	vecmath.AddBlockInPlace(dst.X, src.X)
	vecmath.AddBlockInPlace(dst.Y, src.Y)
}

// ScaleComponents multiplies every vector of dst by s component by
// component.
func ScaleComponents(dst Batch2, s Vec2[float64]) {
	dst.check()
	vecmath.ScaleBlock(dst.X, dst.X, s[0])
	vecmath.ScaleBlock(dst.Y, dst.Y, s[1])
}
