package dist

import (
	"math"

	"github.com/Borislavv/go-simrand/errs"
	"github.com/Borislavv/go-simrand/internal/solver"
)

// BernoulliPDF: 0 < p < 1, x in {0, 1}.
func BernoulliPDF(p float64, x int64) (float64, error) {
	if err := checkBernoulli("BernoulliPDF", p, x); err != nil {
		return 0, err
	}
	if x == 0 {
		return 1 - p, nil
	}
	return p, nil
}

// BernoulliCDF: 0 < p < 1, x in {0, 1}.
func BernoulliCDF(p float64, x int64) (float64, error) {
	if err := checkBernoulli("BernoulliCDF", p, x); err != nil {
		return 0, err
	}
	if x == 0 {
		return 1 - p, nil
	}
	return 1, nil
}

// BernoulliIDF: 0 < p < 1, 0 < u < 1.
func BernoulliIDF(p, u float64) (int64, error) {
	if err := checkProb("BernoulliIDF", p); err != nil {
		return 0, err
	}
	if err := checkU("BernoulliIDF", u); err != nil {
		return 0, err
	}
	if u <= 1-p {
		return 0, nil
	}
	return 1, nil
}

// EquilikelyPDF: a < b, a <= x <= b.
func EquilikelyPDF(a, b, x int64) (float64, error) {
	if err := checkEquilikely("EquilikelyPDF", a, b, x); err != nil {
		return 0, err
	}
	return 1 / (float64(b-a) + 1), nil
}

// EquilikelyCDF: a < b, a <= x <= b.
func EquilikelyCDF(a, b, x int64) (float64, error) {
	if err := checkEquilikely("EquilikelyCDF", a, b, x); err != nil {
		return 0, err
	}
	return equilikelyCDF(a, b, x), nil
}

// EquilikelyIDF: a < b, 0 < u < 1.
func EquilikelyIDF(a, b int64, u float64) (int64, error) {
	if err := checkEquilikelyRange("EquilikelyIDF", a, b); err != nil {
		return 0, err
	}
	if err := checkU("EquilikelyIDF", u); err != nil {
		return 0, err
	}
	x := a + min(int64(u*float64(b-a+1)), b-a)
	return settle(x, a, u, func(x int64) float64 { return equilikelyCDF(a, b, x) }), nil
}

// GeometricPDF: 0 < p < 1, x >= 0.
func GeometricPDF(p float64, x int64) (float64, error) {
	if err := checkGeometric("GeometricPDF", p, x); err != nil {
		return 0, err
	}
	return (1 - p) * math.Exp(float64(x)*math.Log(p)), nil
}

// GeometricCDF: 0 < p < 1, x >= 0.
func GeometricCDF(p float64, x int64) (float64, error) {
	if err := checkGeometric("GeometricCDF", p, x); err != nil {
		return 0, err
	}
	return geometricCDF(p, x), nil
}

// GeometricIDF: 0 < p < 1, 0 < u < 1.
func GeometricIDF(p, u float64) (int64, error) {
	if err := checkProb("GeometricIDF", p); err != nil {
		return 0, err
	}
	if err := checkU("GeometricIDF", u); err != nil {
		return 0, err
	}
	x := int64(math.Log(1-u) / math.Log(p))
	return settle(x, 0, u, func(x int64) float64 { return geometricCDF(p, x) }), nil
}

// BinomialPDF: n >= 1, 0 < p < 1, 0 <= x <= n.
func BinomialPDF(n int64, p float64, x int64) (float64, error) {
	if err := checkBinomial("BinomialPDF", n, p, x); err != nil {
		return 0, err
	}
	s := logChoose(n, x)
	t := float64(x)*math.Log(p) + float64(n-x)*math.Log(1-p)
	return math.Exp(s + t), nil
}

// BinomialCDF: n >= 1, 0 < p < 1, 0 <= x <= n.
func BinomialCDF(n int64, p float64, x int64) (float64, error) {
	if err := checkBinomial("BinomialCDF", n, p, x); err != nil {
		return 0, err
	}
	return binomialCDF(n, p, x)
}

// BinomialIDF: n >= 1, 0 < p < 1, 0 < u < 1. The search starts at the mean.
func BinomialIDF(n int64, p, u float64) (int64, error) {
	if err := checkAtLeastOne("BinomialIDF", "n", n); err != nil {
		return 0, err
	}
	if err := checkProb("BinomialIDF", p); err != nil {
		return 0, err
	}
	if err := checkU("BinomialIDF", u); err != nil {
		return 0, err
	}
	mean := int64(float64(n) * p)
	return solver.Search("BinomialIDF", mean, u, func(x int64) (float64, error) {
		return binomialCDF(n, p, x)
	}, solver.SearchBudget)
}

// PascalPDF: n >= 1, 0 < p < 1, x >= 0.
func PascalPDF(n int64, p float64, x int64) (float64, error) {
	if err := checkPascal("PascalPDF", n, p, x); err != nil {
		return 0, err
	}
	s := logChoose(n+x-1, x)
	t := float64(x)*math.Log(p) + float64(n)*math.Log(1-p)
	return math.Exp(s + t), nil
}

// PascalCDF: n >= 1, 0 < p < 1, x >= 0.
func PascalCDF(n int64, p float64, x int64) (float64, error) {
	if err := checkPascal("PascalCDF", n, p, x); err != nil {
		return 0, err
	}
	return pascalCDF(n, p, x)
}

// PascalIDF: n >= 1, 0 < p < 1, 0 < u < 1. The search starts at the mean.
func PascalIDF(n int64, p, u float64) (int64, error) {
	if err := checkAtLeastOne("PascalIDF", "n", n); err != nil {
		return 0, err
	}
	if err := checkProb("PascalIDF", p); err != nil {
		return 0, err
	}
	if err := checkU("PascalIDF", u); err != nil {
		return 0, err
	}
	mean := int64(float64(n) * p / (1 - p))
	return solver.Search("PascalIDF", mean, u, func(x int64) (float64, error) {
		return pascalCDF(n, p, x)
	}, solver.SearchBudget)
}

// PoissonPDF: m > 0, x >= 0.
func PoissonPDF(m float64, x int64) (float64, error) {
	if err := checkPoisson("PoissonPDF", m, x); err != nil {
		return 0, err
	}
	return math.Exp(-m + float64(x)*math.Log(m) - logFactorial(x)), nil
}

// PoissonCDF: m > 0, x >= 0.
func PoissonCDF(m float64, x int64) (float64, error) {
	if err := checkPoisson("PoissonCDF", m, x); err != nil {
		return 0, err
	}
	return poissonCDF(m, x)
}

// PoissonIDF: m > 0, 0 < u < 1. The search starts at the mean.
func PoissonIDF(m, u float64) (int64, error) {
	if err := checkPositive("PoissonIDF", "m", m); err != nil {
		return 0, err
	}
	if err := checkU("PoissonIDF", u); err != nil {
		return 0, err
	}
	return solver.Search("PoissonIDF", int64(m), u, func(x int64) (float64, error) {
		return poissonCDF(m, x)
	}, solver.SearchBudget)
}

/**
 * Unchecked cdf's, also used as search targets.
 */

func equilikelyCDF(a, b, x int64) float64 {
	return (float64(x-a) + 1) / (float64(b-a) + 1)
}

func geometricCDF(p float64, x int64) float64 {
	return 1 - math.Exp(float64(x+1)*math.Log(p))
}

// binomialCDF is 1 past the end of the support.
func binomialCDF(n int64, p float64, x int64) (float64, error) {
	if x >= n {
		return 1, nil
	}
	t, err := inBeta(float64(x+1), float64(n-x), p)
	if err != nil {
		return 0, err
	}
	return 1 - t, nil
}

func pascalCDF(n int64, p float64, x int64) (float64, error) {
	t, err := inBeta(float64(x+1), float64(n), p)
	if err != nil {
		return 0, err
	}
	return 1 - t, nil
}

func poissonCDF(m float64, x int64) (float64, error) {
	t, err := inGamma(float64(x+1), m)
	if err != nil {
		return 0, err
	}
	return 1 - t, nil
}

// settle moves a closed-form idf candidate onto the smallest x >= lo with
// cdf(x) >= u, absorbing rounding in the closed form. It moves a step or two
// at most.
func settle(x, lo int64, u float64, cdf func(int64) float64) int64 {
	if x < lo {
		x = lo
	}
	for x > lo && cdf(x-1) >= u {
		x--
	}
	for cdf(x) < u {
		x++
	}
	return x
}

func checkBernoulli(fn string, p float64, x int64) error {
	if err := checkProb(fn, p); err != nil {
		return err
	}
	if x != 0 && x != 1 {
		return errs.Domain(fn, "x", float64(x), "x in {0, 1}")
	}
	return nil
}

// checkEquilikelyRange also rejects ranges whose size b-a+1 overflows int64.
func checkEquilikelyRange(fn string, a, b int64) error {
	if a >= b {
		return errs.Domain(fn, "b", float64(b), "a < b")
	}
	if d := b - a; d < 0 || d == math.MaxInt64 {
		return errs.Domain(fn, "b", float64(b), "b - a < MaxInt64")
	}
	return nil
}

func checkEquilikely(fn string, a, b, x int64) error {
	if err := checkEquilikelyRange(fn, a, b); err != nil {
		return err
	}
	if x < a || x > b {
		return errs.Domain(fn, "x", float64(x), "a <= x <= b")
	}
	return nil
}

func checkGeometric(fn string, p float64, x int64) error {
	if err := checkProb(fn, p); err != nil {
		return err
	}
	if x < 0 {
		return errs.Domain(fn, "x", float64(x), "x >= 0")
	}
	return nil
}

func checkBinomial(fn string, n int64, p float64, x int64) error {
	if err := checkAtLeastOne(fn, "n", n); err != nil {
		return err
	}
	if err := checkProb(fn, p); err != nil {
		return err
	}
	if x < 0 || x > n {
		return errs.Domain(fn, "x", float64(x), "0 <= x <= n")
	}
	return nil
}

func checkPascal(fn string, n int64, p float64, x int64) error {
	if err := checkAtLeastOne(fn, "n", n); err != nil {
		return err
	}
	return checkGeometric(fn, p, x)
}

func checkPoisson(fn string, m float64, x int64) error {
	if err := checkPositive(fn, "m", m); err != nil {
		return err
	}
	if x < 0 {
		return errs.Domain(fn, "x", float64(x), "x >= 0")
	}
	return nil
}
