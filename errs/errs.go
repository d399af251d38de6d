// Package errs holds the failure taxonomy shared by the stream engine, the
// variate generator and the distribution library.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain marks a parameter outside a documented precondition.
	ErrDomain = errors.New("domain error")

	// ErrConvergence marks an iterative solver that ran out of iterations.
	ErrConvergence = errors.New("convergence failure")

	// ErrSeedRange marks a seed request that cannot produce a state in [1, M-1].
	ErrSeedRange = errors.New("seed out of range")
)

// DomainError reports which argument of which function broke its precondition.
type DomainError struct {
	Func  string
	Param string
	Value float64
	Want  string
}

func Domain(fn, param string, value float64, want string) *DomainError {
	return &DomainError{Func: fn, Param: param, Value: value, Want: want}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %v, want %s", e.Func, e.Param, e.Value, e.Want)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ConvergenceError is returned when a Newton-Raphson, continued-fraction or
// search loop hits its iteration cap. Last is the final iterate.
type ConvergenceError struct {
	Func       string
	Iterations int
	Last       float64
}

func Convergence(fn string, iterations int, last float64) *ConvergenceError {
	return &ConvergenceError{Func: fn, Iterations: iterations, Last: last}
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations (last iterate %v)", e.Func, e.Iterations, e.Last)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// SeedRangeError is returned by seeding operations that were not given a usable seed.
type SeedRangeError struct {
	Seed   int64
	Reason string
}

func (e *SeedRangeError) Error() string {
	return fmt.Sprintf("seed %d: %s", e.Seed, e.Reason)
}

func (e *SeedRangeError) Unwrap() error { return ErrSeedRange }
