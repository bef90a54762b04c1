//go:build amd64 && !purego

// Package sse2 provides SSE2 assembly kernels for the simd packs.
//
// SSE2 is part of the x86-64 baseline, so these kernels are usable on every
// amd64 CPU. Float comparisons are left to the generic table.
package sse2

// Assembly function declarations (implemented in sse2_amd64.s)

//go:noescape
func addFloat32x4(a, b [4]float32) [4]float32

//go:noescape
func subFloat32x4(a, b [4]float32) [4]float32

//go:noescape
func mulFloat32x4(a, b [4]float32) [4]float32

//go:noescape
func divFloat32x4(a, b [4]float32) [4]float32

//go:noescape
func minFloat32x4(a, b [4]float32) [4]float32

//go:noescape
func maxFloat32x4(a, b [4]float32) [4]float32

//go:noescape
func sqrtFloat32x4(a [4]float32) [4]float32

//go:noescape
func truncFloat32x4(a [4]float32) [4]int32

//go:noescape
func addFloat64x2(a, b [2]float64) [2]float64

//go:noescape
func subFloat64x2(a, b [2]float64) [2]float64

//go:noescape
func mulFloat64x2(a, b [2]float64) [2]float64

//go:noescape
func divFloat64x2(a, b [2]float64) [2]float64

//go:noescape
func minFloat64x2(a, b [2]float64) [2]float64

//go:noescape
func maxFloat64x2(a, b [2]float64) [2]float64

//go:noescape
func sqrtFloat64x2(a [2]float64) [2]float64

//go:noescape
func addInt32x4(a, b [4]int32) [4]int32

//go:noescape
func subInt32x4(a, b [4]int32) [4]int32

//go:noescape
func eqInt32x4(a, b [4]int32) [4]uint32

//go:noescape
func greaterInt32x4(a, b [4]int32) [4]uint32

//go:noescape
func convertInt32x4(a [4]int32) [4]float32

//go:noescape
func and128(a, b [4]uint32) [4]uint32

//go:noescape
func or128(a, b [4]uint32) [4]uint32

//go:noescape
func xor128(a, b [4]uint32) [4]uint32

//go:noescape
func andNot128(a, b [4]uint32) [4]uint32

//go:noescape
func select128(mask, a, b [4]uint32) [4]uint32
