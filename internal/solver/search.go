package solver

import (
	"github.com/Borislavv/go-simrand/errs"
)

// SearchBudget is how many unit steps the walk from the mean may take before
// switching to galloping and bisection.
const SearchBudget = 1024

// maxDoublings bounds the galloping phase; 2^62 is past any int64 support.
const maxDoublings = 62

// DiscreteFunc is a cdf over the non-negative integers. It must be
// non-decreasing and must tolerate arguments past the end of a finite support.
type DiscreteFunc func(x int64) (float64, error)

// Search returns the smallest x >= 0 with cdf(x) >= u, starting at start and
// walking one step at a time towards the answer. After budget steps it falls
// back to galloping + bisection over the same cdf, which yields the same x.
func Search(fn string, start int64, u float64, cdf DiscreteFunc, budget int) (int64, error) {
	if start < 0 {
		start = 0
	}
	x := start

	c, err := cdf(x)
	if err != nil {
		return 0, err
	}

	if c >= u {
		// answer is in [0, x]
		for steps := 0; x > 0; steps++ {
			if steps == budget {
				return bisect(-1, x, u, cdf)
			}
			if c, err = cdf(x - 1); err != nil {
				return 0, err
			}
			if c < u {
				return x, nil
			}
			x--
		}
		return 0, nil
	}

	// answer is in (x, +inf)
	for steps := 0; steps < budget; steps++ {
		x++
		if c, err = cdf(x); err != nil {
			return 0, err
		}
		if c >= u {
			return x, nil
		}
	}
	return gallop(fn, x, u, cdf)
}

// gallop doubles the step from lo (cdf(lo) < u) until it brackets u.
func gallop(fn string, lo int64, u float64, cdf DiscreteFunc) (int64, error) {
	step := int64(1)
	for i := 0; i < maxDoublings; i++ {
		hi := lo + step
		c, err := cdf(hi)
		if err != nil {
			return 0, err
		}
		if c >= u {
			return bisect(lo, hi, u, cdf)
		}
		lo = hi
		step <<= 1
	}
	return 0, errs.Convergence(fn, maxDoublings, float64(lo))
}

// bisect narrows cdf(lo) < u <= cdf(hi) down to hi = lo + 1.
// lo = -1 stands for the empty prefix, where the cdf is 0.
func bisect(lo, hi int64, u float64, cdf DiscreteFunc) (int64, error) {
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		c, err := cdf(mid)
		if err != nil {
			return 0, err
		}
		if c >= u {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
