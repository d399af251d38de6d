package dist

import (
	"math"

	"github.com/Borislavv/go-simrand/errs"
	"github.com/Borislavv/go-simrand/internal/solver"
)

// UniformPDF: a < b, a <= x <= b.
func UniformPDF(a, b, x float64) (float64, error) {
	if err := checkUniform("UniformPDF", a, b, x); err != nil {
		return 0, err
	}
	return 1 / (b - a), nil
}

// UniformCDF: a < b, a <= x <= b.
func UniformCDF(a, b, x float64) (float64, error) {
	if err := checkUniform("UniformCDF", a, b, x); err != nil {
		return 0, err
	}
	return (x - a) / (b - a), nil
}

// UniformIDF: a < b, 0 < u < 1.
func UniformIDF(a, b, u float64) (float64, error) {
	if err := checkUniformParams("UniformIDF", a, b); err != nil {
		return 0, err
	}
	if err := checkU("UniformIDF", u); err != nil {
		return 0, err
	}
	return a + (b-a)*u, nil
}

// ExponentialPDF: m > 0, x >= 0.
func ExponentialPDF(m, x float64) (float64, error) {
	if err := checkExponential("ExponentialPDF", m, x); err != nil {
		return 0, err
	}
	return (1 / m) * math.Exp(-x/m), nil
}

// ExponentialCDF: m > 0, x >= 0.
func ExponentialCDF(m, x float64) (float64, error) {
	if err := checkExponential("ExponentialCDF", m, x); err != nil {
		return 0, err
	}
	return 1 - math.Exp(-x/m), nil
}

// ExponentialIDF: m > 0, 0 < u < 1.
func ExponentialIDF(m, u float64) (float64, error) {
	if err := checkPositive("ExponentialIDF", "m", m); err != nil {
		return 0, err
	}
	if err := checkU("ExponentialIDF", u); err != nil {
		return 0, err
	}
	return -m * math.Log(1-u), nil
}

// ErlangPDF: n >= 1, b > 0, x > 0.
func ErlangPDF(n int64, b, x float64) (float64, error) {
	if err := checkErlang("ErlangPDF", n, b); err != nil {
		return 0, err
	}
	if err := checkSupport("ErlangPDF", x); err != nil {
		return 0, err
	}
	return erlangPDF(n, b, x), nil
}

// ErlangCDF: n >= 1, b > 0, x > 0.
func ErlangCDF(n int64, b, x float64) (float64, error) {
	if err := checkErlang("ErlangCDF", n, b); err != nil {
		return 0, err
	}
	if err := checkSupport("ErlangCDF", x); err != nil {
		return 0, err
	}
	return erlangCDF(n, b, x)
}

// ErlangIDF: n >= 1, b > 0, 0 < u < 1. Newton-Raphson from the mean n*b.
func ErlangIDF(n int64, b, u float64) (float64, error) {
	if err := checkErlang("ErlangIDF", n, b); err != nil {
		return 0, err
	}
	if err := checkU("ErlangIDF", u); err != nil {
		return 0, err
	}
	return solver.Newton("ErlangIDF", float64(n)*b, u,
		func(x float64) (float64, error) { return erlangCDF(n, b, x) },
		func(x float64) (float64, error) { return erlangPDF(n, b, x), nil },
		true, MaxIterations)
}

// StandardPDF is the Normal(0, 1) density.
func StandardPDF(x float64) (float64, error) {
	if err := checkFinite("StandardPDF", "x", x); err != nil {
		return 0, err
	}
	return standardPDF(x), nil
}

// StandardCDF is the Normal(0, 1) cdf.
func StandardCDF(x float64) (float64, error) {
	if err := checkFinite("StandardCDF", "x", x); err != nil {
		return 0, err
	}
	return standardCDF(x)
}

// StandardIDF is the Normal(0, 1) idf, 0 < u < 1. Newton-Raphson from 0,
// reflected for u > 0.5.
func StandardIDF(u float64) (float64, error) {
	if err := checkU("StandardIDF", u); err != nil {
		return 0, err
	}
	return standardIDF("StandardIDF", u)
}

// NormalPDF: s > 0.
func NormalPDF(m, s, x float64) (float64, error) {
	if err := checkNormal("NormalPDF", m, s, x); err != nil {
		return 0, err
	}
	return standardPDF((x-m)/s) / s, nil
}

// NormalCDF: s > 0.
func NormalCDF(m, s, x float64) (float64, error) {
	if err := checkNormal("NormalCDF", m, s, x); err != nil {
		return 0, err
	}
	return standardCDF((x - m) / s)
}

// NormalIDF: s > 0, 0 < u < 1.
func NormalIDF(m, s, u float64) (float64, error) {
	if err := checkNormal("NormalIDF", m, s, 0); err != nil {
		return 0, err
	}
	if err := checkU("NormalIDF", u); err != nil {
		return 0, err
	}
	z, err := standardIDF("NormalIDF", u)
	if err != nil {
		return 0, err
	}
	return m + s*z, nil
}

// LognormalPDF: b > 0, x > 0.
func LognormalPDF(a, b, x float64) (float64, error) {
	if err := checkLognormal("LognormalPDF", a, b); err != nil {
		return 0, err
	}
	if err := checkSupport("LognormalPDF", x); err != nil {
		return 0, err
	}
	t := (math.Log(x) - a) / b
	return standardPDF(t) / (b * x), nil
}

// LognormalCDF: b > 0, x > 0.
func LognormalCDF(a, b, x float64) (float64, error) {
	if err := checkLognormal("LognormalCDF", a, b); err != nil {
		return 0, err
	}
	if err := checkSupport("LognormalCDF", x); err != nil {
		return 0, err
	}
	return standardCDF((math.Log(x) - a) / b)
}

// LognormalIDF: b > 0, 0 < u < 1.
func LognormalIDF(a, b, u float64) (float64, error) {
	if err := checkLognormal("LognormalIDF", a, b); err != nil {
		return 0, err
	}
	if err := checkU("LognormalIDF", u); err != nil {
		return 0, err
	}
	z, err := standardIDF("LognormalIDF", u)
	if err != nil {
		return 0, err
	}
	return math.Exp(a + b*z), nil
}

// ChisquarePDF: n >= 1, x > 0.
func ChisquarePDF(n int64, x float64) (float64, error) {
	if err := checkAtLeastOne("ChisquarePDF", "n", n); err != nil {
		return 0, err
	}
	if err := checkSupport("ChisquarePDF", x); err != nil {
		return 0, err
	}
	return chisquarePDF(n, x), nil
}

// ChisquareCDF: n >= 1, x > 0.
func ChisquareCDF(n int64, x float64) (float64, error) {
	if err := checkAtLeastOne("ChisquareCDF", "n", n); err != nil {
		return 0, err
	}
	if err := checkSupport("ChisquareCDF", x); err != nil {
		return 0, err
	}
	return chisquareCDF(n, x)
}

// ChisquareIDF: n >= 1, 0 < u < 1. Newton-Raphson from the mean n.
func ChisquareIDF(n int64, u float64) (float64, error) {
	if err := checkAtLeastOne("ChisquareIDF", "n", n); err != nil {
		return 0, err
	}
	if err := checkU("ChisquareIDF", u); err != nil {
		return 0, err
	}
	return solver.Newton("ChisquareIDF", float64(n), u,
		func(x float64) (float64, error) { return chisquareCDF(n, x) },
		func(x float64) (float64, error) { return chisquarePDF(n, x), nil },
		true, MaxIterations)
}

// StudentPDF: n >= 1.
func StudentPDF(n int64, x float64) (float64, error) {
	if err := checkStudent("StudentPDF", n, x); err != nil {
		return 0, err
	}
	return studentPDF(n, x), nil
}

// StudentCDF: n >= 1.
func StudentCDF(n int64, x float64) (float64, error) {
	if err := checkStudent("StudentCDF", n, x); err != nil {
		return 0, err
	}
	return studentCDF(n, x)
}

// StudentIDF: n >= 1, 0 < u < 1. Newton-Raphson from 0 on the lower half,
// reflected for u > 0.5.
func StudentIDF(n int64, u float64) (float64, error) {
	if err := checkAtLeastOne("StudentIDF", "n", n); err != nil {
		return 0, err
	}
	if err := checkU("StudentIDF", u); err != nil {
		return 0, err
	}
	return studentIDF(n, u)
}

/**
 * Unchecked evaluations.
 */

func erlangPDF(n int64, b, x float64) float64 {
	t := float64(n-1)*math.Log(x/b) - (x / b) - math.Log(b) - logGamma(float64(n))
	return math.Exp(t)
}

func erlangCDF(n int64, b, x float64) (float64, error) {
	return inGamma(float64(n), x/b)
}

func standardPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

func standardCDF(x float64) (float64, error) {
	p, q, err := inGammaPQ(0.5, 0.5*x*x)
	if err != nil {
		return 0, err
	}
	if x < 0 {
		return 0.5 * q, nil
	}
	return 0.5 * (1 + p), nil
}

// standardIDF solves in the lower half only; 1-u is exact for u > 0.5.
func standardIDF(fn string, u float64) (float64, error) {
	if u > 0.5 {
		z, err := standardIDF(fn, 1-u)
		return -z, err
	}
	return solver.Newton(fn, 0, u,
		standardCDF,
		func(x float64) (float64, error) { return standardPDF(x), nil },
		false, MaxIterations)
}

func chisquarePDF(n int64, x float64) float64 {
	s := float64(n) / 2
	t := (s-1)*math.Log(x/2) - (x / 2) - math.Log(2) - logGamma(s)
	return math.Exp(t)
}

func chisquareCDF(n int64, x float64) (float64, error) {
	return inGamma(float64(n)/2, x/2)
}

func studentPDF(n int64, x float64) float64 {
	fn := float64(n)
	s := -0.5 * (fn + 1) * math.Log(1+(x*x)/fn)
	t := -logBeta(0.5, fn/2)
	return math.Exp(s+t) / math.Sqrt(fn)
}

// studentCDF works with the tail mass I_w(n/2, 1/2), w = n/(n+x*x), so the
// lower tail never cancels against 1.
func studentCDF(n int64, x float64) (float64, error) {
	fn := float64(n)
	w := fn / (fn + x*x)
	s, err := inBeta(fn/2, 0.5, w)
	if err != nil {
		return 0, err
	}
	if x >= 0 {
		return 1 - 0.5*s, nil
	}
	return 0.5 * s, nil
}

func studentIDF(n int64, u float64) (float64, error) {
	if u > 0.5 {
		t, err := studentIDF(n, 1-u)
		return -t, err
	}
	return solver.Newton("StudentIDF", 0, u,
		func(x float64) (float64, error) { return studentCDF(n, x) },
		func(x float64) (float64, error) { return studentPDF(n, x), nil },
		false, MaxIterations)
}

func checkSupport(fn string, x float64) error {
	if !(x > 0) || math.IsInf(x, 1) {
		return errs.Domain(fn, "x", x, "0 < x < +Inf")
	}
	return nil
}

func checkUniformParams(fn string, a, b float64) error {
	if err := checkFinite(fn, "a", a); err != nil {
		return err
	}
	if err := checkFinite(fn, "b", b); err != nil {
		return err
	}
	if !(a < b) {
		return errs.Domain(fn, "b", b, "a < b")
	}
	return nil
}

func checkUniform(fn string, a, b, x float64) error {
	if err := checkUniformParams(fn, a, b); err != nil {
		return err
	}
	if !(x >= a && x <= b) {
		return errs.Domain(fn, "x", x, "a <= x <= b")
	}
	return nil
}

func checkExponential(fn string, m, x float64) error {
	if err := checkPositive(fn, "m", m); err != nil {
		return err
	}
	if !(x >= 0) || math.IsInf(x, 1) {
		return errs.Domain(fn, "x", x, "0 <= x < +Inf")
	}
	return nil
}

func checkErlang(fn string, n int64, b float64) error {
	if err := checkAtLeastOne(fn, "n", n); err != nil {
		return err
	}
	return checkPositive(fn, "b", b)
}

func checkNormal(fn string, m, s, x float64) error {
	if err := checkFinite(fn, "m", m); err != nil {
		return err
	}
	if err := checkPositive(fn, "s", s); err != nil {
		return err
	}
	return checkFinite(fn, "x", x)
}

func checkLognormal(fn string, a, b float64) error {
	if err := checkFinite(fn, "a", a); err != nil {
		return err
	}
	return checkPositive(fn, "b", b)
}

func checkStudent(fn string, n int64, x float64) error {
	if err := checkAtLeastOne(fn, "n", n); err != nil {
		return err
	}
	return checkFinite(fn, "x", x)
}
