// Package stream implements a bank of 256 independent Lehmer generators
// (A = 48271, M = 2^31 - 1) with jump-ahead seeding.
//
// Streams are planted 8,367,782 draws apart in the same underlying cycle, so
// experiments that give each random effect its own stream (arrivals, service
// times, routing) stay uncorrelated without any reseeding cost.
package stream

import (
	"sync"

	"github.com/Borislavv/go-simrand/errs"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

const (
	Modulus        int64 = 2147483647 // 2^31 - 1, prime
	Multiplier     int64 = 48271
	JumpMultiplier int64 = 22925 // Multiplier^8367782 mod Modulus
	Check          int64 = 399268537
	DefaultSeed    int64 = 123456789
	Streams              = 256
)

// Schrage decomposition M = A*Q + R with R < Q for both multipliers.
// Every product below is bounded by A*Q < M < 2^31, so int64 never overflows.
const (
	drawQ = Modulus / Multiplier
	drawR = Modulus % Multiplier
	jumpQ = Modulus / JumpMultiplier
	jumpR = Modulus % JumpMultiplier
)

// Engine owns the stream states and the index of the active stream.
// All methods are safe for concurrent use; draws on the same stream are
// serialized, so a fixed sequence of calls from one goroutine is reproducible.
type Engine struct {
	mu          sync.Mutex
	seeds       [Streams]int64
	root        int64 // stream 0 state at the last plant
	active      int
	initialized bool

	clock    clock.Clock
	logger   zerolog.Logger
	counters *counters
}

// New returns an engine with every stream at DefaultSeed and stream 0 active.
// clk feeds time-based seeds (nil means the wall clock).
func New(clk clock.Clock, logger zerolog.Logger) *Engine {
	if clk == nil {
		clk = clock.New()
	}
	e := &Engine{
		clock:    clk,
		logger:   logger,
		counters: newCounters(),
	}
	for i := range e.seeds {
		e.seeds[i] = DefaultSeed
	}
	return e
}

// Float64 advances the active stream and returns a uniform in (0, 1).
// The smallest and largest possible values are 1/M and 1 - 1/M.
func (e *Engine) Float64() float64 {
	e.mu.Lock()
	s := next(e.seeds[e.active], Multiplier, drawQ, drawR)
	e.seeds[e.active] = s
	e.mu.Unlock()

	e.counters.draws.Add(1)
	return float64(s) / float64(Modulus)
}

// PutSeed sets the state of the active stream:
//   - x > 0: x mod M (a multiple of M is rejected, 0 is absorbing);
//   - x < 0: a state derived from the engine clock;
//   - x == 0: rejected, the caller has to supply a concrete seed.
func (e *Engine) PutSeed(x int64) error {
	s, err := e.normalize(x)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.seeds[e.active] = s
	e.mu.Unlock()

	e.counters.seeds.Add(1)
	return nil
}

// GetSeed returns the state of the active stream.
func (e *Engine) GetSeed() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seeds[e.active]
}

// SelectStream makes stream i mod 256 the active one. Selecting a non-zero
// stream on an engine that was never planted plants DefaultSeed first.
func (e *Engine) SelectStream(i int) {
	e.mu.Lock()
	e.active = ((i % Streams) + Streams) % Streams
	lazy := !e.initialized && e.active != 0
	if lazy {
		e.plant(DefaultSeed)
	}
	active := e.active
	e.mu.Unlock()

	e.counters.selects.Add(1)
	if lazy {
		e.counters.lazyPlants.Add(1)
		e.logger.Debug().
			Int("stream", active).
			Int64("root", DefaultSeed).
			Msg("uninitialized streams planted with default seed")
	}
}

// PlantSeeds seeds stream 0 from x (same rules as PutSeed) and derives every
// other stream by the jump multiplier. The active stream is left as it was.
// On error no state changes.
func (e *Engine) PlantSeeds(x int64) error {
	s, err := e.normalize(x)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.plant(s)
	active := e.active
	e.mu.Unlock()

	e.counters.plants.Add(1)
	e.logger.Debug().
		Int64("root", s).
		Int("stream", active).
		Msg("seeds planted")
	return nil
}

// Stream returns the index of the active stream.
func (e *Engine) Stream() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Root returns the stream 0 seed of the last plant, explicit or lazy, after
// reduction or clock derivation. It is 0 while the engine was never planted.
func (e *Engine) Root() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root
}

// Initialized reports whether the streams were planted, explicitly or lazily.
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Metrics returns cumulative counters since the engine was created.
func (e *Engine) Metrics() (draws, seeds, plants, lazyPlants, selects int64) {
	return e.counters.snapshot()
}

/**
 * Private API.
 */

// plant must be called with e.mu held.
func (e *Engine) plant(root int64) {
	e.initialized = true
	e.root = root
	e.seeds[0] = root
	for j := 1; j < Streams; j++ {
		e.seeds[j] = next(e.seeds[j-1], JumpMultiplier, jumpQ, jumpR)
	}
}

func (e *Engine) normalize(x int64) (int64, error) {
	switch {
	case x > 0:
		if s := x % Modulus; s != 0 {
			return s, nil
		}
		return 0, &errs.SeedRangeError{Seed: x, Reason: "reduces to 0 modulo 2^31-1"}
	case x < 0:
		return clockSeed(e.clock), nil
	default:
		return 0, &errs.SeedRangeError{Seed: x, Reason: "a concrete seed must be supplied"}
	}
}

// next computes (a*s) mod Modulus by Schrage's method.
func next(s, a, q, r int64) int64 {
	t := a*(s%q) - r*(s/q)
	if t > 0 {
		return t
	}
	return t + Modulus
}
