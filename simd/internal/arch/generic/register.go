package generic

import (
	"github.com/cwbudde/algo-linalg/internal/cpu"
	"github.com/cwbudde/algo-linalg/simd/internal/arch/registry"
)

// init registers the generic (pure Go) kernels with the simd registry.
//
// The generic table is complete: accelerated variants may leave any kernel
// nil and the resolved table falls back to the one registered here.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the complete generic kernel table.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddFloat32x4:    AddFloat32x4,
		SubFloat32x4:    SubFloat32x4,
		MulFloat32x4:    MulFloat32x4,
		DivFloat32x4:    DivFloat32x4,
		MinFloat32x4:    MinFloat32x4,
		MaxFloat32x4:    MaxFloat32x4,
		SqrtFloat32x4:   SqrtFloat32x4,
		EqFloat32x4:     EqFloat32x4,
		NeFloat32x4:     NeFloat32x4,
		LessFloat32x4:   LessFloat32x4,
		LessEqFloat32x4: LessEqFloat32x4,
		TruncFloat32x4:  TruncFloat32x4,

		AddFloat64x2:    AddFloat64x2,
		SubFloat64x2:    SubFloat64x2,
		MulFloat64x2:    MulFloat64x2,
		DivFloat64x2:    DivFloat64x2,
		MinFloat64x2:    MinFloat64x2,
		MaxFloat64x2:    MaxFloat64x2,
		SqrtFloat64x2:   SqrtFloat64x2,
		EqFloat64x2:     EqFloat64x2,
		NeFloat64x2:     NeFloat64x2,
		LessFloat64x2:   LessFloat64x2,
		LessEqFloat64x2: LessEqFloat64x2,

		AddInt32x4:     AddInt32x4,
		SubInt32x4:     SubInt32x4,
		EqInt32x4:      EqInt32x4,
		GreaterInt32x4: GreaterInt32x4,
		ConvertInt32x4: ConvertInt32x4,

		And128:    And128,
		Or128:     Or128,
		Xor128:    Xor128,
		AndNot128: AndNot128,
		Not128:    Not128,
		Select128: Select128,
	}
}
