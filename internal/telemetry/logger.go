// Package telemetry periodically logs how the engine is being used: draws,
// seedings, plantings and stream selections per interval.
package telemetry

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	logger   zerolog.Logger
	sampler  sampler
	ticker   *clock.Ticker
	interval time.Duration
	prev     snapshot
	done     chan struct{}
}

// New starts a reporting goroutine that lives until ctx is done or Close is
// called. The ticker and the baseline snapshot are taken before New returns,
// so everything the caller does afterwards lands in the first report.
func New(ctx context.Context, clk clock.Clock, logger zerolog.Logger, engine Metered, interval time.Duration) *Logs {
	if clk == nil {
		clk = clock.New()
	}
	ctx, cancel := context.WithCancel(ctx)
	s := newSampler(engine)
	l := &Logs{
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		sampler:  s,
		ticker:   clk.Ticker(interval),
		interval: interval,
		prev:     s.snapshot(),
		done:     make(chan struct{}),
	}
	go l.loop()
	return l
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

// Close stops the reporting goroutine and waits for it to exit.
func (l *Logs) Close() error {
	l.cancel()
	<-l.done
	return nil
}

func (l *Logs) loop() {
	defer close(l.done)
	defer l.ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-l.ticker.C:
			cur := l.sampler.snapshot()
			d := deltaSnapshot(l.prev, cur)
			l.prev = cur

			l.logger.Info().
				Str("interval", l.interval.String()).
				Int("stream", l.sampler.engine.Stream()).
				Uint64("draws", d.draws).
				Uint64("seeds", d.seeds).
				Uint64("plants", d.plants).
				Uint64("lazy_plants", d.lazyPlants).
				Uint64("selects", d.selects).
				Msg("stream_engine")
		}
	}
}
