// Package elem applies scalar math lane by lane to SIMD packs, vectors and
// quaternions.
//
// Any type with Apply and Apply2 methods works with the functions here; a
// type that also provides a dedicated method for an operation (Sqrt, Min,
// Max, Abs, Neg, MulAdd) gets that method instead, so simd.Float32x4 goes
// through its kernel table while vec.Vec3 falls back to Apply.
//
//	v := simd.Float32x4{0, 1, 2, 3}
//	s := elem.Sin(v)      // Apply(math.Sin)
//	r := elem.Sqrt(v)     // v.Sqrt()
//	c := elem.Clamp(v, lo, hi)
package elem
