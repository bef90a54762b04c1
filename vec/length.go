package vec

import "math"

// norm returns sqrt(x*x + y*y + z*z + w*w). The squares are summed in
// float64, which cannot overflow or underflow for float32 or integer inputs;
// float64 inputs at the ends of the range are rescaled by the largest
// magnitude first, as math.Hypot does.
func norm(x, y, z, w float64) float64 {
	s := x*x + y*y + z*z + w*w
	if s >= 0x1p-1000 && !math.IsInf(s, 0) {
		return math.Sqrt(s)
	}

	m := math.Max(math.Max(math.Abs(x), math.Abs(y)), math.Max(math.Abs(z), math.Abs(w)))
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	x, y, z, w = x/m, y/m, z/m, w/m
	return m * math.Sqrt(x*x+y*y+z*z+w*w)
}

// unitLength reports whether l can divide a vector into a unit vector.
func unitLength(l float64) bool {
	return l != 0 && !math.IsNaN(l) && !math.IsInf(l, 0)
}
