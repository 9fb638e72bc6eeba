package gamemath

import (
	"golang.org/x/exp/constraints"
)

// Number is the constraint for every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Real is the constraint for numeric types that carry a sign.
type Real interface {
	constraints.Signed | constraints.Float
}

// Float is the constraint for floating-point element types.
type Float interface {
	constraints.Float
}
