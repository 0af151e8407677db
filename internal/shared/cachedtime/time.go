// Package cachedtime provides a coarse clock for hot paths that stamp entries on every access.
// Until Run is called (or after its context is done) every call falls through to time.Now.
package cachedtime

import (
	"context"
	"sync/atomic"
	"time"
)

const cacheTimeEach = 10 * time.Millisecond

var (
	nowUnix atomic.Int64
	running atomic.Bool
)

// Run starts refreshing the cached clock every 10ms until ctx is done.
// Calling Run while a ticker is already active is a no-op.
func Run(ctx context.Context) {
	if !running.CompareAndSwap(false, true) {
		return
	}
	nowUnix.Store(time.Now().UnixNano())

	go func() {
		ticker := time.NewTicker(cacheTimeEach)
		defer ticker.Stop()
		defer running.Store(false)

		for {
			select {
			case <-ctx.Done():
				return
			case tt := <-ticker.C:
				nowUnix.Store(tt.UnixNano())
			}
		}
	}()
}

// IsRunning reports whether the cached clock is active.
func IsRunning() bool {
	return running.Load()
}

func Now() time.Time {
	if !running.Load() {
		return time.Now()
	}
	return time.Unix(0, nowUnix.Load())
}

func UnixNano() int64 {
	if !running.Load() {
		return time.Now().UnixNano()
	}
	return nowUnix.Load()
}

func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}
