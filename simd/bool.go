package simd

// Sized booleans hold either all zero bits (false) or all one bits (true).
// They match the lane width of a pack so a slice of comparison results can
// be stored next to the data it was computed from.
//
// A value with some, but not all, bits set is treated as true by Bool and
// the logical helpers; the bitwise methods keep the exact bit pattern.
type (
	Bool8  uint8
	Bool16 uint16
	Bool32 uint32
	Bool64 uint64
)

// Canonical sized boolean constants.
const (
	False8  Bool8  = 0
	True8   Bool8  = ^Bool8(0)
	False16 Bool16 = 0
	True16  Bool16 = ^Bool16(0)
	False32 Bool32 = 0
	True32  Bool32 = ^Bool32(0)
	False64 Bool64 = 0
	True64  Bool64 = ^Bool64(0)
)

// SizedBool is satisfied by every sized boolean type.
type SizedBool interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BoolOf returns the canonical sized boolean for b.
func BoolOf[B SizedBool](b bool) B {
	if b {
		return ^B(0)
	}
	return 0
}

// Truth reports whether any bit of b is set.
func Truth[B SizedBool](b B) bool {
	return b != 0
}

// ConvertBool converts between sized booleans of different widths.
// The result is canonical.
func ConvertBool[To, From SizedBool](b From) To {
	return BoolOf[To](b != 0)
}

// MakeBool8 returns True8 or False8.
func MakeBool8(b bool) Bool8 { return BoolOf[Bool8](b) }

// MakeBool16 returns True16 or False16.
func MakeBool16(b bool) Bool16 { return BoolOf[Bool16](b) }

// MakeBool32 returns True32 or False32.
func MakeBool32(b bool) Bool32 { return BoolOf[Bool32](b) }

// MakeBool64 returns True64 or False64.
func MakeBool64(b bool) Bool64 { return BoolOf[Bool64](b) }

// Bool reports whether any bit of b is set.
func (b Bool8) Bool() bool { return b != 0 }

// And returns the bitwise AND of b and c.
func (b Bool8) And(c Bool8) Bool8 { return b & c }

// Or returns the bitwise OR of b and c.
func (b Bool8) Or(c Bool8) Bool8 { return b | c }

// Xor returns the bitwise XOR of b and c.
func (b Bool8) Xor(c Bool8) Bool8 { return b ^ c }

// AndNot returns the bits of b that are clear in c.
func (b Bool8) AndNot(c Bool8) Bool8 { return b &^ c }

// Not returns the bitwise complement of b.
func (b Bool8) Not() Bool8 { return ^b }

// Eq compares truthiness and returns a canonical result.
func (b Bool8) Eq(c Bool8) Bool8 { return MakeBool8(b.Bool() == c.Bool()) }

// Ne compares truthiness and returns a canonical result.
func (b Bool8) Ne(c Bool8) Bool8 { return MakeBool8(b.Bool() != c.Bool()) }

// Canonical maps any set bit to all ones.
func (b Bool8) Canonical() Bool8 { return MakeBool8(b.Bool()) }

// Bool reports whether any bit of b is set.
func (b Bool16) Bool() bool { return b != 0 }

// And returns the bitwise AND of b and c.
func (b Bool16) And(c Bool16) Bool16 { return b & c }

// Or returns the bitwise OR of b and c.
func (b Bool16) Or(c Bool16) Bool16 { return b | c }

// Xor returns the bitwise XOR of b and c.
func (b Bool16) Xor(c Bool16) Bool16 { return b ^ c }

// AndNot returns the bits of b that are clear in c.
func (b Bool16) AndNot(c Bool16) Bool16 { return b &^ c }

// Not returns the bitwise complement of b.
func (b Bool16) Not() Bool16 { return ^b }

// Eq compares truthiness and returns a canonical result.
func (b Bool16) Eq(c Bool16) Bool16 { return MakeBool16(b.Bool() == c.Bool()) }

// Ne compares truthiness and returns a canonical result.
func (b Bool16) Ne(c Bool16) Bool16 { return MakeBool16(b.Bool() != c.Bool()) }

// Canonical maps any set bit to all ones.
func (b Bool16) Canonical() Bool16 { return MakeBool16(b.Bool()) }

// Bool reports whether any bit of b is set.
func (b Bool32) Bool() bool { return b != 0 }

// And returns the bitwise AND of b and c.
func (b Bool32) And(c Bool32) Bool32 { return b & c }

// Or returns the bitwise OR of b and c.
func (b Bool32) Or(c Bool32) Bool32 { return b | c }

// Xor returns the bitwise XOR of b and c.
func (b Bool32) Xor(c Bool32) Bool32 { return b ^ c }

// AndNot returns the bits of b that are clear in c.
func (b Bool32) AndNot(c Bool32) Bool32 { return b &^ c }

// Not returns the bitwise complement of b.
func (b Bool32) Not() Bool32 { return ^b }

// Eq compares truthiness and returns a canonical result.
func (b Bool32) Eq(c Bool32) Bool32 { return MakeBool32(b.Bool() == c.Bool()) }

// Ne compares truthiness and returns a canonical result.
func (b Bool32) Ne(c Bool32) Bool32 { return MakeBool32(b.Bool() != c.Bool()) }

// Canonical maps any set bit to all ones.
func (b Bool32) Canonical() Bool32 { return MakeBool32(b.Bool()) }

// Bool reports whether any bit of b is set.
func (b Bool64) Bool() bool { return b != 0 }

// And returns the bitwise AND of b and c.
func (b Bool64) And(c Bool64) Bool64 { return b & c }

// Or returns the bitwise OR of b and c.
func (b Bool64) Or(c Bool64) Bool64 { return b | c }

// Xor returns the bitwise XOR of b and c.
func (b Bool64) Xor(c Bool64) Bool64 { return b ^ c }

// AndNot returns the bits of b that are clear in c.
func (b Bool64) AndNot(c Bool64) Bool64 { return b &^ c }

// Not returns the bitwise complement of b.
func (b Bool64) Not() Bool64 { return ^b }

// Eq compares truthiness and returns a canonical result.
func (b Bool64) Eq(c Bool64) Bool64 { return MakeBool64(b.Bool() == c.Bool()) }

// Ne compares truthiness and returns a canonical result.
func (b Bool64) Ne(c Bool64) Bool64 { return MakeBool64(b.Bool() != c.Bool()) }

// Canonical maps any set bit to all ones.
func (b Bool64) Canonical() Bool64 { return MakeBool64(b.Bool()) }
