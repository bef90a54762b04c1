package generic

// And128 returns a & b.
func And128(a, b [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

// Or128 returns a | b.
func Or128(a, b [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

// Xor128 returns a ^ b.
func Xor128(a, b [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

// AndNot128 returns a &^ b.
func AndNot128(a, b [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = a[i] &^ b[i]
	}
	return r
}

// Not128 returns ^a.
func Not128(a [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = ^a[i]
	}
	return r
}

// Select128 returns (mask & a) | (^mask & b).
func Select128(mask, a, b [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = mask[i]&a[i] | b[i]&^mask[i]
	}
	return r
}
