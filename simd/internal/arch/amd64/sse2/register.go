//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-linalg/internal/cpu"
	"github.com/cwbudde/algo-linalg/simd/internal/arch/registry"
)

// init registers the SSE2 kernels with the simd registry.
//
// Float comparisons and Not128 are not implemented in SSE2 yet; the resolved
// table takes them from the generic entry.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the SSE2 kernel table.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		AddFloat32x4:   addFloat32x4,
		SubFloat32x4:   subFloat32x4,
		MulFloat32x4:   mulFloat32x4,
		DivFloat32x4:   divFloat32x4,
		MinFloat32x4:   minFloat32x4,
		MaxFloat32x4:   maxFloat32x4,
		SqrtFloat32x4:  sqrtFloat32x4,
		TruncFloat32x4: truncFloat32x4,

		AddFloat64x2:  addFloat64x2,
		SubFloat64x2:  subFloat64x2,
		MulFloat64x2:  mulFloat64x2,
		DivFloat64x2:  divFloat64x2,
		MinFloat64x2:  minFloat64x2,
		MaxFloat64x2:  maxFloat64x2,
		SqrtFloat64x2: sqrtFloat64x2,

		AddInt32x4:     addInt32x4,
		SubInt32x4:     subInt32x4,
		EqInt32x4:      eqInt32x4,
		GreaterInt32x4: greaterInt32x4,
		ConvertInt32x4: convertInt32x4,

		And128:    and128,
		Or128:     or128,
		Xor128:    xor128,
		AndNot128: andNot128,
		Select128: select128,
	}
}
