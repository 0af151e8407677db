// Package workload drives synthetic read/write traffic against a cache at a fixed rate.
// Reads that miss fill the key back in, as a read-through client would.
package workload

import (
	"context"
	"strconv"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/shared/random"
	"github.com/Borislavv/go-tiered-cache/internal/shared/rate"
	"github.com/rs/zerolog"
)

type Target interface {
	Get(key string) (value any, found bool)
	Put(key string, value any)
}

type Report struct {
	Ops    int
	Reads  int
	Writes int
	Hits   int
	Fills  int
}

type Runner struct {
	cfg    *config.WorkloadCfg
	target Target
	rnd    *random.Source
	logger zerolog.Logger
}

// New expects an adjusted cfg; seed 0 takes the current time.
func New(cfg *config.WorkloadCfg, target Target, seed int64, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		target: target,
		rnd:    random.New(0, seed),
		logger: logger,
	}
}

// Run issues cfg.Ops operations, or runs until ctx is done when Ops is 0.
// A bounded run interrupted by ctx returns the partial report with ctx's error.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		rep   Report
		pacer = rate.NewPacer(ctx, r.cfg.Rate)
	)
	r.logger.Info().
		Int("keys", r.cfg.Keys).
		Int("ops", r.cfg.Ops).
		Int("rate", r.cfg.Rate).
		Float64("write_ratio", r.cfg.WriteRatio).
		Float64("skew", r.cfg.Skew).
		Msg("workload started")

	for r.cfg.Ops == 0 || rep.Ops < r.cfg.Ops {
		if !pacer.Wait(ctx) {
			if r.cfg.Ops == 0 {
				break
			}
			r.logger.Warn().Int("done", rep.Ops).Msg("workload interrupted")
			return rep, ctx.Err()
		}
		r.step(&rep)
	}

	r.logger.Info().
		Int("ops", rep.Ops).
		Int("reads", rep.Reads).
		Int("writes", rep.Writes).
		Int("hits", rep.Hits).
		Int("fills", rep.Fills).
		Msg("workload finished")
	return rep, nil
}

func (r *Runner) step(rep *Report) {
	key := Key(r.rnd.Skewed(r.cfg.Keys, r.cfg.Skew))
	rep.Ops++

	if r.rnd.Float64() < r.cfg.WriteRatio {
		r.target.Put(key, rep.Ops)
		rep.Writes++
		return
	}

	rep.Reads++
	if _, found := r.target.Get(key); found {
		rep.Hits++
		return
	}
	r.target.Put(key, rep.Ops)
	rep.Fills++
}

// Key names the i-th key of the workload key space.
func Key(i int) string {
	return "key-" + strconv.Itoa(i)
}
