package quat

import "errors"

// ErrZeroLength is returned when a rotation is requested from a quaternion
// of zero (or NaN) length.
var ErrZeroLength = errors.New("quat: zero-length quaternion")
