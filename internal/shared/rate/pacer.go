package rate

import (
	"context"

	"go.uber.org/ratelimit"
)

// Pacer hands out permits at a fixed rate, buffering up to a tenth of a second
// worth of them so consumers absorb scheduling jitter.
type Pacer struct {
	ch    chan struct{}
	l     ratelimit.Limiter
	limit int
}

// NewPacer starts the permit producer; it stops and closes the channel when ctx is done.
func NewPacer(ctx context.Context, limit int) *Pacer {
	p := &Pacer{
		limit: limit,
		ch:    make(chan struct{}, max(limit/10, 1)),
		l:     ratelimit.New(limit),
	}
	go p.produce(ctx)
	return p
}

func (p *Pacer) produce(ctx context.Context) {
	defer close(p.ch)
	for {
		p.l.Take()
		select {
		case <-ctx.Done():
			return
		case p.ch <- struct{}{}:
		}
	}
}

// Wait blocks for the next permit. It returns false once ctx is done or the
// producer has stopped.
func (p *Pacer) Wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case _, ok := <-p.ch:
		return ok
	}
}

func (p *Pacer) Limit() int {
	return p.limit
}
