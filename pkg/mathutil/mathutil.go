// Package mathutil holds small generic numeric helpers.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to [lo, hi]. When lo > hi the lower bound wins.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func InRange[T Number](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Average returns the arithmetic mean as float64; an empty slice averages to 0.
func Average[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += float64(v)
	}
	return total / float64(len(values))
}

// Round rounds v half away from zero to precision decimal places. A negative
// precision rounds to tens, hundreds and so on.
func Round(v float64, precision int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

// Percentage returns part as a percentage of total; a zero total yields 0.
func Percentage[T Number](part, total T) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
