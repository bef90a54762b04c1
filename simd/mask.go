package simd

import "unsafe"

// Mask32x4 is the result of comparing two 4-lane 32-bit packs. It has the
// layout of [4]uint32.
type Mask32x4 [4]Bool32

// Mask64x2 is the result of comparing two 2-lane 64-bit packs.
type Mask64x2 [2]Bool64

// Mask32x2 is the result of comparing two 2-lane 32-bit packs.
type Mask32x2 [2]Bool32

// Mask64x4 is the result of comparing two Float64x4 packs.
type Mask64x4 [4]Bool64

// MakeMask32x4 builds a canonical mask from four lane values.
func MakeMask32x4(l0, l1, l2, l3 bool) Mask32x4 {
	return Mask32x4{MakeBool32(l0), MakeBool32(l1), MakeBool32(l2), MakeBool32(l3)}
}

// Mask32x4FromBits sets lane i when bit i of bits is set.
func Mask32x4FromBits(bits uint8) Mask32x4 {
	var m Mask32x4
	for i := range m {
		m[i] = MakeBool32(bits&(1<<i) != 0)
	}
	return m
}

// Get reports whether lane i is set.
func (m Mask32x4) Get(i int) bool { return m[i].Bool() }

// With returns m with lane i replaced by a canonical b.
func (m Mask32x4) With(i int, b bool) Mask32x4 {
	m[i] = MakeBool32(b)
	return m
}

// And returns the bitwise AND of m and n.
func (m Mask32x4) And(n Mask32x4) Mask32x4 { return and128(m, n) }

// Or returns the bitwise OR of m and n.
func (m Mask32x4) Or(n Mask32x4) Mask32x4 { return or128(m, n) }

// Xor returns the bitwise XOR of m and n.
func (m Mask32x4) Xor(n Mask32x4) Mask32x4 { return xor128(m, n) }

// AndNot returns the bits of m that are clear in n.
func (m Mask32x4) AndNot(n Mask32x4) Mask32x4 { return andNot128(m, n) }

// Not returns the bitwise complement of m.
func (m Mask32x4) Not() Mask32x4 { return not128(m) }

// All reports whether every lane is true.
func (m Mask32x4) All() bool { return m[0] != 0 && m[1] != 0 && m[2] != 0 && m[3] != 0 }

// Any reports whether at least one lane is true.
func (m Mask32x4) Any() bool { return m[0]|m[1]|m[2]|m[3] != 0 }

// None reports whether every lane is false.
func (m Mask32x4) None() bool { return !m.Any() }

// Bits packs the lanes into the low bits of the result, lane 0 first.
func (m Mask32x4) Bits() uint8 {
	var bits uint8
	for i, b := range m {
		if b != 0 {
			bits |= 1 << i
		}
	}
	return bits
}

// MakeMask64x2 builds a canonical mask from two lane values.
func MakeMask64x2(l0, l1 bool) Mask64x2 {
	return Mask64x2{MakeBool64(l0), MakeBool64(l1)}
}

// Mask64x2FromBits sets lane i when bit i of bits is set.
func Mask64x2FromBits(bits uint8) Mask64x2 {
	return MakeMask64x2(bits&1 != 0, bits&2 != 0)
}

// Get reports whether lane i is set.
func (m Mask64x2) Get(i int) bool { return m[i].Bool() }

// With returns a copy of m with lane i replaced.
func (m Mask64x2) With(i int, b bool) Mask64x2 {
	m[i] = MakeBool64(b)
	return m
}

// And returns the bitwise AND of m and n.
func (m Mask64x2) And(n Mask64x2) Mask64x2 { return and128(m, n) }

// Or returns the bitwise OR of m and n.
func (m Mask64x2) Or(n Mask64x2) Mask64x2 { return or128(m, n) }

// Xor returns the bitwise XOR of m and n.
func (m Mask64x2) Xor(n Mask64x2) Mask64x2 { return xor128(m, n) }

// AndNot returns the bits of m that are clear in n.
func (m Mask64x2) AndNot(n Mask64x2) Mask64x2 { return andNot128(m, n) }

// Not returns the bitwise complement of m.
func (m Mask64x2) Not() Mask64x2 { return not128(m) }

// All reports whether every lane is set.
func (m Mask64x2) All() bool { return m[0] != 0 && m[1] != 0 }

// Any reports whether at least one lane is set.
func (m Mask64x2) Any() bool { return m[0]|m[1] != 0 }

// None reports whether no lane is set.
func (m Mask64x2) None() bool { return m[0]|m[1] == 0 }

// Bits packs lane i into bit i of the result.
func (m Mask64x2) Bits() uint8 {
	var bits uint8
	if m[0] != 0 {
		bits |= 1
	}
	if m[1] != 0 {
		bits |= 2
	}
	return bits
}

// MakeMask32x2 builds a canonical mask from two lane values.
func MakeMask32x2(l0, l1 bool) Mask32x2 {
	return Mask32x2{MakeBool32(l0), MakeBool32(l1)}
}

// Mask32x2FromBits sets lane i when bit i of bits is set.
func Mask32x2FromBits(bits uint8) Mask32x2 {
	return MakeMask32x2(bits&1 != 0, bits&2 != 0)
}

// Get reports whether lane i is set.
func (m Mask32x2) Get(i int) bool { return m[i].Bool() }

// With returns a copy of m with lane i replaced.
func (m Mask32x2) With(i int, b bool) Mask32x2 {
	m[i] = MakeBool32(b)
	return m
}

// And returns the bitwise AND of m and n.
func (m Mask32x2) And(n Mask32x2) Mask32x2 { return Mask32x2{m[0] & n[0], m[1] & n[1]} }

// Or returns the bitwise OR of m and n.
func (m Mask32x2) Or(n Mask32x2) Mask32x2 { return Mask32x2{m[0] | n[0], m[1] | n[1]} }

// Xor returns the bitwise XOR of m and n.
func (m Mask32x2) Xor(n Mask32x2) Mask32x2 { return Mask32x2{m[0] ^ n[0], m[1] ^ n[1]} }

// AndNot returns the bits of m that are clear in n.
func (m Mask32x2) AndNot(n Mask32x2) Mask32x2 { return Mask32x2{m[0] &^ n[0], m[1] &^ n[1]} }

// Not returns the bitwise complement of m.
func (m Mask32x2) Not() Mask32x2 { return Mask32x2{^m[0], ^m[1]} }

// All reports whether every lane is set.
func (m Mask32x2) All() bool { return m[0] != 0 && m[1] != 0 }

// Any reports whether at least one lane is set.
func (m Mask32x2) Any() bool { return m[0]|m[1] != 0 }

// None reports whether no lane is set.
func (m Mask32x2) None() bool { return m[0]|m[1] == 0 }

// Bits packs lane i into bit i of the result.
func (m Mask32x2) Bits() uint8 {
	var bits uint8
	if m[0] != 0 {
		bits |= 1
	}
	if m[1] != 0 {
		bits |= 2
	}
	return bits
}

// MakeMask64x4 builds a canonical mask from four lane values.
func MakeMask64x4(l0, l1, l2, l3 bool) Mask64x4 {
	return Mask64x4{MakeBool64(l0), MakeBool64(l1), MakeBool64(l2), MakeBool64(l3)}
}

// Mask64x4FromBits sets lane i when bit i of bits is set.
func Mask64x4FromBits(bits uint8) Mask64x4 {
	return joinMask64x4(Mask64x2FromBits(bits), Mask64x2FromBits(bits>>2))
}

func joinMask64x4(lo, hi Mask64x2) Mask64x4 {
	return Mask64x4{lo[0], lo[1], hi[0], hi[1]}
}

// Lo returns lanes 0 and 1.
func (m Mask64x4) Lo() Mask64x2 { return Mask64x2{m[0], m[1]} }

// Hi returns lanes 2 and 3.
func (m Mask64x4) Hi() Mask64x2 { return Mask64x2{m[2], m[3]} }

// Get reports whether lane i is set.
func (m Mask64x4) Get(i int) bool { return m[i].Bool() }

// With returns a copy of m with lane i replaced.
func (m Mask64x4) With(i int, b bool) Mask64x4 {
	m[i] = MakeBool64(b)
	return m
}

// And returns the bitwise AND of m and n.
func (m Mask64x4) And(n Mask64x4) Mask64x4 {
	return joinMask64x4(m.Lo().And(n.Lo()), m.Hi().And(n.Hi()))
}

// Or returns the bitwise OR of m and n.
func (m Mask64x4) Or(n Mask64x4) Mask64x4 {
	return joinMask64x4(m.Lo().Or(n.Lo()), m.Hi().Or(n.Hi()))
}

// Xor returns the bitwise XOR of m and n.
func (m Mask64x4) Xor(n Mask64x4) Mask64x4 {
	return joinMask64x4(m.Lo().Xor(n.Lo()), m.Hi().Xor(n.Hi()))
}

// AndNot returns the bits of m that are clear in n.
func (m Mask64x4) AndNot(n Mask64x4) Mask64x4 {
	return joinMask64x4(m.Lo().AndNot(n.Lo()), m.Hi().AndNot(n.Hi()))
}

// Not returns the bitwise complement of m.
func (m Mask64x4) Not() Mask64x4 {
	return joinMask64x4(m.Lo().Not(), m.Hi().Not())
}

// All reports whether every lane is set.
func (m Mask64x4) All() bool { return m.Lo().All() && m.Hi().All() }

// Any reports whether at least one lane is set.
func (m Mask64x4) Any() bool { return m.Lo().Any() || m.Hi().Any() }

// None reports whether no lane is set.
func (m Mask64x4) None() bool { return !m.Any() }

// Bits packs lane i into bit i of the result.
func (m Mask64x4) Bits() uint8 {
	return m.Lo().Bits() | m.Hi().Bits()<<2
}

// AsUint32x4 returns the raw lane bits of m.
func (m Mask32x4) AsUint32x4() Uint32x4 {
	return *(*Uint32x4)(unsafe.Pointer(&m))
}
