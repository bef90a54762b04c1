package simd

import "unsafe"

// to128 reinterprets a 16-byte pack or mask as four 32-bit words.
// Only call it with 16-byte types.
func to128[T any](v T) [4]uint32 {
	return *(*[4]uint32)(unsafe.Pointer(&v))
}

// from128 is the inverse of to128. Writing through the word view keeps
// the alignment of T intact.
func from128[T any](w [4]uint32) (v T) {
	*(*[4]uint32)(unsafe.Pointer(&v)) = w
	return v
}

func and128[T any](a, b T) T {
	return from128[T](kern().And128(to128(a), to128(b)))
}

func or128[T any](a, b T) T {
	return from128[T](kern().Or128(to128(a), to128(b)))
}

func xor128[T any](a, b T) T {
	return from128[T](kern().Xor128(to128(a), to128(b)))
}

func andNot128[T any](a, b T) T {
	return from128[T](kern().AndNot128(to128(a), to128(b)))
}

func not128[T any](a T) T {
	return from128[T](kern().Not128(to128(a)))
}

func select128[M, T any](m M, a, b T) T {
	return from128[T](kern().Select128(to128(m), to128(a), to128(b)))
}

const (
	signBit32 = 1 << 31
	signBit64 = 1 << 63
)

var (
	signMask32 = [4]uint32{signBit32, signBit32, signBit32, signBit32}
	signMask64 = to128([2]uint64{signBit64, signBit64})
)
