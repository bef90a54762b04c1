package vec

import "errors"

// ErrZeroLength is returned when a direction is requested from a vector of
// zero (or NaN) length.
var ErrZeroLength = errors.New("vec: zero-length vector")
