package datastructure

import (
	"math"

	"github.com/prasetyobagus/anterin/pkg"
)

// equal operator
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= pkg.EPSILON
}

// less than operator
func Lt(a, b float64) bool {
	return a+pkg.EPSILON < b
}

// less than or equal operator
func Le(a, b float64) bool {
	return a <= b+pkg.EPSILON
}

// greater than or equal operator
func Ge(a, b float64) bool {
	return Le(b, a)
}

func Gt(a, b float64) bool {
	return Lt(b, a)
}
