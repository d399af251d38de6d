package dist

import (
	"math"
	"testing"

	"github.com/Borislavv/go-simrand/errs"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

var probabilities = []float64{0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999}

type continuousCase struct {
	name   string
	lo, hi float64
	pdf    func(x float64) (float64, error)
	cdf    func(x float64) (float64, error)
	idf    func(u float64) (float64, error)
	ref    continuousOracle
}

// continuousOracle is the subset of gonum's distributions the tests compare against.
type continuousOracle interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
}

func continuousCases() []continuousCase {
	var cases []continuousCase

	cases = append(cases, continuousCase{
		name: "Uniform(32, 108)", lo: 32, hi: 108,
		pdf: func(x float64) (float64, error) { return UniformPDF(32, 108, x) },
		cdf: func(x float64) (float64, error) { return UniformCDF(32, 108, x) },
		idf: func(u float64) (float64, error) { return UniformIDF(32, 108, u) },
		ref: distuv.Uniform{Min: 32, Max: 108},
	})

	cases = append(cases, continuousCase{
		name: "Exponential(4.7)", lo: 0, hi: 150,
		pdf: func(x float64) (float64, error) { return ExponentialPDF(4.7, x) },
		cdf: func(x float64) (float64, error) { return ExponentialCDF(4.7, x) },
		idf: func(u float64) (float64, error) { return ExponentialIDF(4.7, u) },
		ref: distuv.Exponential{Rate: 1 / 4.7},
	})

	for _, nb := range []struct {
		n int64
		b float64
	}{{1, 1}, {3, 2}, {16, 4}, {41, 0.08}} {
		n, b := nb.n, nb.b
		cases = append(cases, continuousCase{
			name: "Erlang", lo: 0, hi: float64(n)*b + 30*math.Sqrt(float64(n))*b,
			pdf: func(x float64) (float64, error) { return ErlangPDF(n, b, x) },
			cdf: func(x float64) (float64, error) { return ErlangCDF(n, b, x) },
			idf: func(u float64) (float64, error) { return ErlangIDF(n, b, u) },
			ref: distuv.Gamma{Alpha: float64(n), Beta: 1 / b},
		})
	}

	for _, ms := range [][2]float64{{0, 1}, {8.9, 4}, {-19, 3.4}} {
		m, s := ms[0], ms[1]
		cases = append(cases, continuousCase{
			name: "Normal", lo: m - 12*s, hi: m + 12*s,
			pdf: func(x float64) (float64, error) { return NormalPDF(m, s, x) },
			cdf: func(x float64) (float64, error) { return NormalCDF(m, s, x) },
			idf: func(u float64) (float64, error) { return NormalIDF(m, s, u) },
			ref: distuv.Normal{Mu: m, Sigma: s},
		})
	}

	cases = append(cases, continuousCase{
		name: "Lognormal(0.2, 0.5)", lo: 0, hi: 40,
		pdf: func(x float64) (float64, error) { return LognormalPDF(0.2, 0.5, x) },
		cdf: func(x float64) (float64, error) { return LognormalCDF(0.2, 0.5, x) },
		idf: func(u float64) (float64, error) { return LognormalIDF(0.2, 0.5, u) },
		ref: distuv.LogNormal{Mu: 0.2, Sigma: 0.5},
	})

	for _, n := range []int64{2, 5, 10, 39, 100} {
		n := n
		cases = append(cases, continuousCase{
			name: "Chisquare", lo: 0, hi: float64(n) + 40*math.Sqrt(float64(n)),
			pdf: func(x float64) (float64, error) { return ChisquarePDF(n, x) },
			cdf: func(x float64) (float64, error) { return ChisquareCDF(n, x) },
			idf: func(u float64) (float64, error) { return ChisquareIDF(n, u) },
			ref: distuv.ChiSquared{K: float64(n)},
		})
	}

	for _, n := range []int64{2, 3, 5, 10, 61} {
		n := n
		cases = append(cases, continuousCase{
			name: "Student", lo: -40, hi: 40,
			pdf: func(x float64) (float64, error) { return StudentPDF(n, x) },
			cdf: func(x float64) (float64, error) { return StudentCDF(n, x) },
			idf: func(u float64) (float64, error) { return StudentIDF(n, u) },
			ref: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n)},
		})
	}
	return cases
}

// TestContinuous_IDFInvertsCDF verifies cdf(idf(u)) == u across the unit interval.
func TestContinuous_IDFInvertsCDF(t *testing.T) {
	for _, c := range continuousCases() {
		for _, u := range probabilities {
			x, err := c.idf(u)
			require.NoError(t, err, "%s u=%v", c.name, u)

			f, err := c.cdf(x)
			require.NoError(t, err)
			require.InDelta(t, u, f, 1e-9, "%s u=%v", c.name, u)
		}
	}
}

// TestContinuous_MatchesGonum verifies pdf, cdf and idf against gonum's distuv.
func TestContinuous_MatchesGonum(t *testing.T) {
	for _, c := range continuousCases() {
		for i := 1; i < 50; i++ {
			x := c.lo + (c.hi-c.lo)*float64(i)/50

			pdf, err := c.pdf(x)
			require.NoError(t, err)
			require.InDelta(t, c.ref.Prob(x), pdf, 1e-9, "%s pdf(%v)", c.name, x)

			cdf, err := c.cdf(x)
			require.NoError(t, err)
			require.InDelta(t, c.ref.CDF(x), cdf, 1e-8, "%s cdf(%v)", c.name, x)
		}
		for _, u := range probabilities {
			x, err := c.idf(u)
			require.NoError(t, err)

			want := c.ref.Quantile(u)
			require.InDelta(t, want, x, 1e-6*math.Max(1, math.Abs(want)), "%s idf(%v)", c.name, u)
		}
	}
}

// TestContinuous_PDFIntegratesToCDF verifies that Simpson integration of the pdf reproduces cdf differences.
func TestContinuous_PDFIntegratesToCDF(t *testing.T) {
	for _, c := range continuousCases() {
		x1, err := c.idf(0.05)
		require.NoError(t, err)
		x2, err := c.idf(0.95)
		require.NoError(t, err)

		const steps = 2000
		h := (x2 - x1) / steps
		sum := 0.0
		for i := 0; i <= steps; i++ {
			f, err := c.pdf(x1 + float64(i)*h)
			require.NoError(t, err)
			switch {
			case i == 0 || i == steps:
				sum += f
			case i%2 == 1:
				sum += 4 * f
			default:
				sum += 2 * f
			}
		}
		require.InDelta(t, 0.9, sum*h/3, 1e-7, c.name)
	}
}

// TestContinuous_ReferenceValues verifies published inverse values.
func TestContinuous_ReferenceValues(t *testing.T) {
	cases := []struct {
		name string
		idf  func() (float64, error)
		want float64
	}{
		{"StudentIDF(10, .8)", func() (float64, error) { return StudentIDF(10, 0.8) }, 0.8790578285485833},
		{"StudentIDF(10, .975)", func() (float64, error) { return StudentIDF(10, 0.975) }, 2.228138851986},
		{"StudentIDF(100, .975)", func() (float64, error) { return StudentIDF(100, 0.975) }, 1.983971518449},
		{"ChisquareIDF(10, .5)", func() (float64, error) { return ChisquareIDF(10, 0.5) }, 9.341817765668367},
		{"ChisquareIDF(15, .8)", func() (float64, error) { return ChisquareIDF(15, 0.8) }, 19.310657},
		{"ErlangIDF(16, 4, .878)", func() (float64, error) { return ErlangIDF(16, 4, 0.878) }, 82.93476089804142},
		{"ErlangIDF(20, 7, .113)", func() (float64, error) { return ErlangIDF(20, 7, 0.113) }, 103.476309},
		{"NormalIDF(9, 2, .66)", func() (float64, error) { return NormalIDF(9, 2, 0.66) }, 9.82492625888103},
		{"NormalIDF(-19, 3.4, .81)", func() (float64, error) { return NormalIDF(-19, 3.4, 0.81) }, -16.015153},
		{"StandardIDF(.5)", func() (float64, error) { return StandardIDF(0.5) }, 0},
	}
	for _, c := range cases {
		got, err := c.idf()
		require.NoError(t, err, c.name)
		require.InDelta(t, c.want, got, 1e-6, c.name)
	}
}

// TestContinuous_IDFLargeParameters verifies Newton idf's whose roots lie far from the origin.
func TestContinuous_IDFLargeParameters(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 10, 100, 1000, 10_000, 100_000} {
		for _, u := range []float64{0.001, 0.05, 0.5, 0.95, 0.999} {
			tol := 1e-8 * math.Min(u, 1-u)

			x, err := ChisquareIDF(n, u)
			require.NoError(t, err, "ChisquareIDF(%d, %v)", n, u)
			c, err := ChisquareCDF(n, x)
			require.NoError(t, err)
			require.InDelta(t, u, c, tol, "ChisquareIDF(%d, %v) = %v", n, u, x)

			x, err = ErlangIDF(n, 10, u)
			require.NoError(t, err, "ErlangIDF(%d, 10, %v)", n, u)
			c, err = ErlangCDF(n, 10, x)
			require.NoError(t, err)
			require.InDelta(t, u, c, tol, "ErlangIDF(%d, 10, %v) = %v", n, u, x)

			x, err = StudentIDF(n, u)
			require.NoError(t, err, "StudentIDF(%d, %v)", n, u)
			c, err = StudentCDF(n, x)
			require.NoError(t, err)
			require.InDelta(t, u, c, tol, "StudentIDF(%d, %v) = %v", n, u, x)
		}
	}
}

// TestContinuous_IDFExtremeTails verifies tail quantiles against closed forms.
func TestContinuous_IDFExtremeTails(t *testing.T) {
	// Student(1) is Cauchy: the lower quantile is -1/tan(pi*u).
	for _, u := range []float64{1e-9, 1e-6, 0.001} {
		want := -1 / math.Tan(math.Pi*u)

		got, err := StudentIDF(1, u)
		require.NoError(t, err, "u=%v", u)
		require.InEpsilon(t, want, got, 1e-8, "u=%v", u)

		upper := 1 - u
		got, err = StudentIDF(1, upper)
		require.NoError(t, err, "u=%v", upper)
		require.InEpsilon(t, 1/math.Tan(math.Pi*(1-upper)), got, 1e-8, "u=%v", upper)
	}

	// Student(2): (2u-1)/sqrt(2u(1-u)).
	for _, u := range []float64{1e-9, 0.001, 0.999, 1 - 1e-9} {
		got, err := StudentIDF(2, u)
		require.NoError(t, err, "u=%v", u)
		require.InEpsilon(t, (2*u-1)/math.Sqrt(2*u*(1-u)), got, 1e-8, "u=%v", u)
	}

	for _, u := range []float64{1e-15, 1e-9, 1e-6, 1 - 1e-6, 1 - 1e-9} {
		got, err := StandardIDF(u)
		require.NoError(t, err, "u=%v", u)
		require.InEpsilon(t, distuv.UnitNormal.Quantile(u), got, 1e-9, "u=%v", u)
	}

	got, err := StudentIDF(1, 0.999)
	require.NoError(t, err)
	require.InDelta(t, 318.3088389855, got, 1e-6)
}

// TestContinuous_LowerTailCDF verifies that far lower tails keep their relative accuracy.
func TestContinuous_LowerTailCDF(t *testing.T) {
	for _, x := range []float64{-3, -8, -12, -20} {
		got, err := StandardCDF(x)
		require.NoError(t, err)
		require.InEpsilon(t, distuv.UnitNormal.CDF(x), got, 1e-8, "x=%v", x)
	}

	for _, x := range []float64{-1e3, -1e6, -1e9} {
		got, err := StudentCDF(1, x)
		require.NoError(t, err)
		require.InEpsilon(t, math.Atan(-1/x)/math.Pi, got, 1e-8, "x=%v", x)
	}
}

// TestContinuous_Symmetry verifies the symmetric cdf's around their centre.
func TestContinuous_Symmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.7, 1.9, 4} {
		lo, err := StandardCDF(-x)
		require.NoError(t, err)
		hi, err := StandardCDF(x)
		require.NoError(t, err)
		require.InDelta(t, 1.0, lo+hi, 1e-12)

		lo, err = StudentCDF(7, -x)
		require.NoError(t, err)
		hi, err = StudentCDF(7, x)
		require.NoError(t, err)
		require.InDelta(t, 1.0, lo+hi, 1e-12)
	}

	half, err := StudentCDF(4, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, half)
}

// TestContinuous_DomainErrors verifies that invalid parameters are rejected before evaluation.
func TestContinuous_DomainErrors(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	calls := map[string]func() error{
		"UniformPDF a=b":         func() error { _, err := UniformPDF(1, 1, 1); return err },
		"UniformCDF x>b":         func() error { _, err := UniformCDF(0, 1, 1.5); return err },
		"UniformIDF u=1":         func() error { _, err := UniformIDF(0, 1, 1); return err },
		"UniformIDF a=-Inf":      func() error { _, err := UniformIDF(-inf, 1, 0.5); return err },
		"ExponentialPDF m=0":     func() error { _, err := ExponentialPDF(0, 1); return err },
		"ExponentialCDF x<0":     func() error { _, err := ExponentialCDF(1, -0.1); return err },
		"ExponentialIDF u=0":     func() error { _, err := ExponentialIDF(1, 0); return err },
		"ErlangPDF n=0":          func() error { _, err := ErlangPDF(0, 1, 1); return err },
		"ErlangCDF x=0":          func() error { _, err := ErlangCDF(2, 1, 0); return err },
		"ErlangIDF b<0":          func() error { _, err := ErlangIDF(2, -1, 0.5); return err },
		"StandardPDF x=NaN":      func() error { _, err := StandardPDF(nan); return err },
		"StandardCDF x=+Inf":     func() error { _, err := StandardCDF(inf); return err },
		"StandardIDF u=2":        func() error { _, err := StandardIDF(2); return err },
		"NormalPDF s=0":          func() error { _, err := NormalPDF(0, 0, 1); return err },
		"NormalCDF m=NaN":        func() error { _, err := NormalCDF(nan, 1, 0); return err },
		"NormalIDF s=-1":         func() error { _, err := NormalIDF(0, -1, 0.5); return err },
		"LognormalPDF x=0":       func() error { _, err := LognormalPDF(0, 1, 0); return err },
		"LognormalCDF b=0":       func() error { _, err := LognormalCDF(0, 0, 1); return err },
		"LognormalIDF u=NaN":     func() error { _, err := LognormalIDF(0, 1, nan); return err },
		"ChisquarePDF n=0":       func() error { _, err := ChisquarePDF(0, 1); return err },
		"ChisquareCDF x=-1":      func() error { _, err := ChisquareCDF(3, -1); return err },
		"ChisquareIDF u=0":       func() error { _, err := ChisquareIDF(3, 0); return err },
		"StudentPDF n=0":         func() error { _, err := StudentPDF(0, 1); return err },
		"StudentCDF x=-Inf":      func() error { _, err := StudentCDF(3, -inf); return err },
		"StudentIDF u=1":         func() error { _, err := StudentIDF(3, 1); return err },
		"ExponentialPDF x=+Inf":  func() error { _, err := ExponentialPDF(1, inf); return err },
		"ChisquarePDF x=+Inf":    func() error { _, err := ChisquarePDF(2, inf); return err },
		"LognormalIDF a=+Inf":    func() error { _, err := LognormalIDF(inf, 1, 0.5); return err },
		"ErlangIDF b=+Inf":       func() error { _, err := ErlangIDF(2, inf, 0.5); return err },
		"NormalPDF x=NaN":        func() error { _, err := NormalPDF(0, 1, nan); return err },
		"StudentIDF n=-3":        func() error { _, err := StudentIDF(-3, 0.5); return err },
		"ExponentialIDF m=NaN":   func() error { _, err := ExponentialIDF(nan, 0.5); return err },
		"UniformPDF x below a":   func() error { _, err := UniformPDF(2, 3, 1.999); return err },
		"ChisquareIDF n=0 u=0.5": func() error { _, err := ChisquareIDF(0, 0.5); return err },
	}
	for name, call := range calls {
		require.ErrorIs(t, call(), errs.ErrDomain, name)
	}
}
