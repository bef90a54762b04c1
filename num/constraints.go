package num

import "golang.org/x/exp/constraints"

// Float is a constraint for floating-point scalars.
type Float interface {
	constraints.Float
}

// Integer is a constraint for any integer scalar.
type Integer interface {
	constraints.Integer
}

// Signed is a constraint for scalars that can be negated without wrapping
// to an unrelated value.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Number is a constraint for every scalar that vectors can hold.
type Number interface {
	constraints.Integer | constraints.Float
}
