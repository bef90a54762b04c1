package generic

// AddInt32x4 returns a[i] + b[i] with wrapping.
func AddInt32x4(a, b [4]int32) (r [4]int32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// SubInt32x4 returns a[i] - b[i] with wrapping.
func SubInt32x4(a, b [4]int32) (r [4]int32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// EqInt32x4 sets lanes where a[i] == b[i].
func EqInt32x4(a, b [4]int32) (r [4]uint32) {
	for i := range r {
		r[i] = mask32(a[i] == b[i])
	}
	return r
}

// GreaterInt32x4 sets lanes where a[i] > b[i] (signed).
func GreaterInt32x4(a, b [4]int32) (r [4]uint32) {
	for i := range r {
		r[i] = mask32(a[i] > b[i])
	}
	return r
}

// ConvertInt32x4 converts to float32, rounding to nearest even.
func ConvertInt32x4(a [4]int32) (r [4]float32) {
	for i := range r {
		r[i] = float32(a[i])
	}
	return r
}
