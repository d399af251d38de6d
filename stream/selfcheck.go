package stream

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

var ErrSelfCheck = errors.New("generator self-check failed")

const checkDraws = 10_000

// SelfCheck verifies the implementation on a private engine: seeding stream 0
// with 1 and drawing 10,000 values must leave state Check, and planting 1 must
// put JumpMultiplier into stream 1.
func SelfCheck() error {
	e := New(clock.New(), zerolog.Nop())

	e.SelectStream(0)
	if err := e.PutSeed(1); err != nil {
		return fmt.Errorf("%w: %w", ErrSelfCheck, err)
	}
	for i := 0; i < checkDraws; i++ {
		e.Float64()
	}
	if got := e.GetSeed(); got != Check {
		return fmt.Errorf("%w: stream 0 state after %d draws is %d, want %d", ErrSelfCheck, checkDraws, got, Check)
	}

	e.SelectStream(1)
	if err := e.PlantSeeds(1); err != nil {
		return fmt.Errorf("%w: %w", ErrSelfCheck, err)
	}
	if got := e.GetSeed(); got != JumpMultiplier {
		return fmt.Errorf("%w: stream 1 state after planting 1 is %d, want %d", ErrSelfCheck, got, JumpMultiplier)
	}
	return nil
}
