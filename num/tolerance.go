package num

import "math"

const defaultEpsilon = 1e-9

// NearlyEqual reports whether a and b are equal within eps, first as an
// absolute difference and then relative to the larger magnitude.
// A non-positive eps selects the package default.
func NearlyEqual[T Float](a, b, eps T) bool {
	return Eps(float64(eps)).Equal(float64(a), float64(b))
}

// Tolerance configures approximate comparisons.
type Tolerance struct {
	Abs float64
	Rel float64
}

// ToleranceOption mutates a Tolerance.
type ToleranceOption func(*Tolerance)

// DefaultTolerance returns the tolerance used when no options are given.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Abs: defaultEpsilon,
		Rel: defaultEpsilon,
	}
}

// WithAbs sets the absolute tolerance.
func WithAbs(eps float64) ToleranceOption {
	return func(t *Tolerance) {
		if eps >= 0 {
			t.Abs = eps
		}
	}
}

// WithRel sets the relative tolerance.
func WithRel(eps float64) ToleranceOption {
	return func(t *Tolerance) {
		if eps >= 0 {
			t.Rel = eps
		}
	}
}

// Eps returns the tolerance with both bounds set to eps, the form taken by
// every NearlyEqual method. A non-positive eps selects the default.
func Eps(eps float64) Tolerance {
	if eps <= 0 {
		return DefaultTolerance()
	}
	return Tolerance{Abs: eps, Rel: eps}
}

// NewTolerance applies zero or more options to the default tolerance.
func NewTolerance(opts ...ToleranceOption) Tolerance {
	tol := DefaultTolerance()
	for _, opt := range opts {
		if opt != nil {
			opt(&tol)
		}
	}
	return tol
}

// Equal reports whether a and b agree within the absolute or the relative bound.
// NaN never compares equal.
func (t Tolerance) Equal(a, b float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= t.Abs {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if math.IsInf(largest, 0) {
		return false
	}

	return diff <= t.Rel*largest
}
