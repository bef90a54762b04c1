package mat

import (
	"errors"
	"math"
)

// ErrSingular is returned when inverting a matrix whose determinant is zero
// or not finite.
var ErrSingular = errors.New("mat: singular matrix")

func singular(det float64) bool {
	return det == 0 || math.IsNaN(det) || math.IsInf(det, 0)
}
