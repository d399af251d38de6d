// Package solver holds the bounded root finders behind the idf functions.
package solver

import (
	"math"

	"github.com/Borislavv/go-simrand/errs"
)

const (
	// Tiny is the convergence tolerance of every iterative loop.
	Tiny = 1.0e-10

	// MaxIterations caps every iterative loop. Well-posed inputs converge
	// in tens of iterations.
	MaxIterations = 10_000
)

// Func is a cdf or pdf evaluation that may itself fail to converge.
type Func func(x float64) (float64, error)

// Newton solves cdf(x) = u starting from x, iterating
//
//	x = t + (u - cdf(t)) / pdf(t)
//
// until two iterates differ by less than Tiny, relative to |x| once |x|
// exceeds 1. With positive set, a non-positive candidate is replaced by
// half of the previous iterate.
func Newton(fn string, x, u float64, cdf, pdf Func, positive bool, maxIter int) (float64, error) {
	for i := 1; i <= maxIter; i++ {
		t := x

		c, err := cdf(t)
		if err != nil {
			return 0, err
		}
		d, err := pdf(t)
		if err != nil {
			return 0, err
		}

		x = t + (u-c)/d
		if positive && x <= 0 {
			x = 0.5 * t
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, errs.Convergence(fn, i, x)
		}
		if math.Abs(x-t) < Tiny*math.Max(1, math.Abs(x)) {
			return x, nil
		}
	}
	return 0, errs.Convergence(fn, maxIter, x)
}
