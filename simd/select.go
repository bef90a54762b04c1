package simd

// Pack128 lists the 16-byte packs.
type Pack128 interface {
	Float32x4 | Int32x4 | Uint32x4 | Float64x2 | Int64x2
}

// Mask128 lists the 16-byte masks.
type Mask128 interface {
	Mask32x4 | Mask64x2
}

// Select returns (m & a) | (^m & b) bit by bit. Any 16-byte mask can drive
// any 16-byte pack; the lane widths need not agree.
func Select[M Mask128, V Pack128](m M, a, b V) V {
	return select128(m, a, b)
}

// Zero returns the zero value of a pack or mask.
func Zero[V any]() V {
	var v V
	return v
}
