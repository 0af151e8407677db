package telemetry

import (
	"context"
	"time"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/rs/zerolog"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

// Logs periodically writes one "cache" record with per-interval counters,
// per-level sizes and whether the contents changed since the previous tick.
type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	logger   zerolog.Logger
	src      Source
	interval time.Duration
	done     chan struct{}
}

// New starts the loop when cfg is enabled; a nil cfg yields an idle Logs.
func New(ctx context.Context, cfg *config.TelemetryCfg, logger zerolog.Logger, src Source) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	l := &Logs{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		src:    src,
		done:   make(chan struct{}),
	}
	if cfg.Enabled() {
		l.interval = cfg.Interval
	}
	return l.run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

// Close stops the loop and waits for it to exit.
func (l *Logs) Close() error {
	l.cancel()
	<-l.done
	return nil
}

func (l *Logs) run() *Logs {
	if l.interval <= 0 {
		close(l.done)
		return l
	}
	go l.loop()
	return l
}

func (l *Logs) loop() {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.src)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			changed := cur.digest != prev.digest
			prev = cur

			l.logger.Info().
				Str("interval", l.interval.String()).
				Ints("level_sizes", d.sizes).
				Uint64("hits", d.hits).
				Uint64("misses", d.misses).
				Float64("hit_ratio", d.hitRatio()).
				Uint64("puts", d.puts).
				Uint64("evict_calls", d.evictCalls).
				Bool("changed", changed).
				Msg("cache")
		}
	}
}
