// Package simrand wires a stream engine, a variate generator on top of it and
// the optional telemetry logger into one handle built from a config.Config.
package simrand

import (
	"context"
	"fmt"
	"io"

	"github.com/Borislavv/go-simrand/config"
	"github.com/Borislavv/go-simrand/internal/telemetry"
	"github.com/Borislavv/go-simrand/stream"
	"github.com/Borislavv/go-simrand/variate"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

type Simrander interface {
	variate.Source
	PutSeed(x int64) error
	GetSeed() int64
	Root() int64
	SelectStream(i int)
	PlantSeeds(x int64) error
	telemetry.Logger
	io.Closer
}

type Simrand struct {
	*stream.Engine
	*variate.Generator
	telemetry.Logger
	cls context.CancelFunc
}

// New builds the engine, applies the engine section (plant the root seed,
// select the stream), and starts telemetry when it is configured. A nil cfg
// means config.Default(); a hand-built cfg is adjusted in place.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Simrand, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.AdjustConfig(); err != nil {
		return nil, fmt.Errorf("adjust config: %w", err)
	}
	logger = logger.Level(cfg.Log.ZerologLevel)

	clk := clock.New()
	engine := stream.New(clk, logger.With().Str("component", "stream").Logger())
	if cfg.Engine.Planted() {
		if err := engine.PlantSeeds(cfg.Engine.Seed); err != nil {
			return nil, fmt.Errorf("plant seeds from %d: %w", cfg.Engine.Seed, err)
		}
	}
	engine.SelectStream(cfg.Engine.Stream)

	ctx, cancel := context.WithCancel(ctx)

	var telemeter telemetry.Logger = telemetry.NoOpLogger{}
	if cfg.Telemetry.Enabled() {
		telemeter = telemetry.New(ctx, clk, logger.With().Str("component", "telemetry").Logger(), engine, cfg.Telemetry.Interval)
	}

	return &Simrand{
		cls:       cancel,
		Engine:    engine,
		Generator: variate.New(engine),
		Logger:    telemeter,
	}, nil
}

func (s *Simrand) Close() error {
	s.cls()
	return s.Logger.Close()
}
