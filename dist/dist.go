// Package dist evaluates probability density (pdf), cumulative distribution
// (cdf) and inverse distribution (idf) functions for six discrete and seven
// continuous random variables.
//
// Notation: x is a possible value of the random variable, u a probability in
// (0, 1), and a, b, n, p, m, s are distribution parameters. Every function
// validates its arguments and returns an *errs.DomainError instead of a
// meaningless number; iterative evaluations that exhaust MaxIterations return
// an *errs.ConvergenceError.
//
//	Discrete            Range (x)   Mean        Variance
//	Bernoulli(p)        0..1        p           p*(1-p)
//	Binomial(n, p)      0..n        n*p         n*p*(1-p)
//	Equilikely(a, b)    a..b        (a+b)/2     ((b-a+1)*(b-a+1)-1)/12
//	Geometric(p)        0...        p/(1-p)     p/((1-p)*(1-p))
//	Pascal(n, p)        0...        n*p/(1-p)   n*p/((1-p)*(1-p))
//	Poisson(m)          0...        m           m
//
//	Continuous          Range (x)   Mean        Variance
//	Uniform(a, b)       a < x < b   (a+b)/2     (b-a)*(b-a)/12
//	Exponential(m)      x > 0       m           m*m
//	Erlang(n, b)        x > 0       n*b         n*b*b
//	Normal(m, s)        all x       m           s*s
//	Lognormal(a, b)     x > 0       exp(a + 0.5*b*b)
//	Chisquare(n)        x > 0       n           2*n
//	Student(n)          all x       0 (n > 1)   n/(n-2) (n > 2)
//
// Discrete idf's return the smallest x with cdf(x) >= u, so idf(cdf(x)) == x.
//
// The kernel keeps its 1e-10 accuracy for shape parameters up to about 1e5.
// Larger ones still converge, the term budget of the incomplete gamma and beta
// functions grows with sqrt(a), but their log-space prefactor is formed from
// terms of size a*ln(a) and loses digits: the error is near 1e-7 at a = 1e8.
package dist

import (
	"math"

	"github.com/Borislavv/go-simrand/errs"
	"github.com/Borislavv/go-simrand/internal/solver"
)

const (
	// Tiny is the convergence tolerance of the special functions and idf solvers.
	Tiny = solver.Tiny

	// MaxIterations caps every Newton loop, and the series and continued
	// fractions of moderate shape parameters.
	MaxIterations = solver.MaxIterations

	sqrt2Pi = 2.506628274631
)

func checkProb(fn string, p float64) error {
	if !(p > 0 && p < 1) {
		return errs.Domain(fn, "p", p, "0 < p < 1")
	}
	return nil
}

func checkU(fn string, u float64) error {
	if !(u > 0 && u < 1) {
		return errs.Domain(fn, "u", u, "0 < u < 1")
	}
	return nil
}

func checkPositive(fn, param string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return errs.Domain(fn, param, v, param+" > 0")
	}
	return nil
}

func checkAtLeastOne(fn, param string, n int64) error {
	if n < 1 {
		return errs.Domain(fn, param, float64(n), param+" >= 1")
	}
	return nil
}

func checkFinite(fn, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.Domain(fn, param, v, "a finite value")
	}
	return nil
}
