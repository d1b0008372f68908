package math3d

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types a vector can be built over. Every member
// supports arithmetic, comparison and conversion from a float64 constant.
type Float interface {
	constraints.Float
}

func sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}
