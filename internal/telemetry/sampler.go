package telemetry

// Source is what the telemetry loop reads from; service.Service satisfies it.
type Source interface {
	Metrics() (hits, misses, puts, evictCalls int64)
	LevelSizes() []int
	Digest() uint64
}

type sampler struct {
	src Source
}

func newSampler(src Source) sampler {
	return sampler{src: src}
}

// snapshot holds cumulative counters (monotonic) plus the state seen at sampling time.
type snapshot struct {
	hits       uint64
	misses     uint64
	puts       uint64
	evictCalls uint64

	sizes  []int
	digest uint64
}

func (s sampler) snapshot() snapshot {
	hits, misses, puts, evictCalls := s.src.Metrics()
	return snapshot{
		hits:       uint64(max(hits, 0)),
		misses:     uint64(max(misses, 0)),
		puts:       uint64(max(puts, 0)),
		evictCalls: uint64(max(evictCalls, 0)),
		sizes:      s.src.LevelSizes(),
		digest:     s.src.Digest(),
	}
}

// deltaSnapshot converts cumulative counters to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta. State fields come from cur.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		hits:       delta(prev.hits, cur.hits),
		misses:     delta(prev.misses, cur.misses),
		puts:       delta(prev.puts, cur.puts),
		evictCalls: delta(prev.evictCalls, cur.evictCalls),
		sizes:      cur.sizes,
		digest:     cur.digest,
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}

// hitRatio is hits/(hits+misses) of one interval, 0 when there were no reads.
func (s snapshot) hitRatio() float64 {
	reads := s.hits + s.misses
	if reads == 0 {
		return 0
	}
	return float64(s.hits) / float64(reads)
}
