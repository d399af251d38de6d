// Package estimate accumulates a sample in one pass and turns it into a
// Student-t interval estimate for the mean of the population it came from.
package estimate

import (
	"errors"
	"fmt"
	"math"

	"github.com/Borislavv/go-simrand/dist"
	"github.com/Borislavv/go-simrand/errs"
)

// ErrInsufficientData is returned by Interval for samples of fewer than two points.
var ErrInsufficientData = errors.New("insufficient data")

// Welford is a one-pass mean and standard deviation accumulator.
// The zero value is an empty sample. It is not safe for concurrent use.
type Welford struct {
	n    int64
	mean float64
	sum  float64 // sum of squared deviations from the running mean
	min  float64
	max  float64
}

// Add folds x into the sample.
func (w *Welford) Add(x float64) {
	w.n++
	if w.n == 1 {
		w.min, w.max = x, x
	} else {
		w.min = math.Min(w.min, x)
		w.max = math.Max(w.max, x)
	}

	diff := x - w.mean
	w.sum += diff * diff * float64(w.n-1) / float64(w.n)
	w.mean += diff / float64(w.n)
}

func (w *Welford) N() int64 { return w.n }

func (w *Welford) Mean() float64 { return w.mean }

// Stdev is the population standard deviation sqrt(sum/n); 0 for an empty sample.
func (w *Welford) Stdev() float64 {
	if w.n == 0 {
		return 0
	}
	return math.Sqrt(w.sum / float64(w.n))
}

func (w *Welford) Min() float64 { return w.min }

func (w *Welford) Max() float64 { return w.max }

// Interval is Mean ± HalfWidth at the given confidence Level, built from N points.
type Interval struct {
	Mean      float64
	HalfWidth float64
	Level     float64
	N         int64
}

func (i Interval) Lower() float64 { return i.Mean - i.HalfWidth }

func (i Interval) Upper() float64 { return i.Mean + i.HalfWidth }

// Contains reports whether x lies inside the closed interval.
func (i Interval) Contains(x float64) bool {
	return x >= i.Lower() && x <= i.Upper()
}

func (i Interval) String() string {
	return fmt.Sprintf("%.2f +/- %.2f (%d points, %g confidence)", i.Mean, i.HalfWidth, i.N, i.Level)
}

// Interval builds the level-confidence interval for the population mean,
// 0 < level < 1, from a sample of at least two points.
func (w *Welford) Interval(level float64) (Interval, error) {
	if w.n < 2 {
		return Interval{}, fmt.Errorf("interval from %d points: %w", w.n, ErrInsufficientData)
	}
	if !(level > 0 && level < 1) {
		return Interval{}, errs.Domain("Interval", "level", level, "0 < level < 1")
	}

	u := 1 - 0.5*(1-level)
	t, err := dist.StudentIDF(w.n-1, u)
	if err != nil {
		return Interval{}, fmt.Errorf("critical value for %d degrees of freedom: %w", w.n-1, err)
	}

	return Interval{
		Mean:      w.mean,
		HalfWidth: t * w.Stdev() / math.Sqrt(float64(w.n-1)),
		Level:     level,
		N:         w.n,
	}, nil
}
