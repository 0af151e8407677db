package service

import "sync/atomic"

type counters struct {
	hits       atomic.Int64
	misses     atomic.Int64
	puts       atomic.Int64
	evictCalls atomic.Int64
}

func newCounters() *counters {
	return &counters{
		hits:       atomic.Int64{},
		misses:     atomic.Int64{},
		puts:       atomic.Int64{},
		evictCalls: atomic.Int64{},
	}
}

func (c *counters) snapshot() (hits, misses, puts, evictCalls int64) {
	return c.hits.Load(), c.misses.Load(), c.puts.Load(), c.evictCalls.Load()
}
