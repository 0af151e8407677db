// Package random is a lock-free SplitMix64 source for traffic generation.
// It is not suitable for anything security related.
package random

import (
	"math"
	"runtime"
	"sync/atomic"
	"time"
)

const golden = 0x9e3779b97f4a7c15

type lane struct {
	state atomic.Uint64
	_     [56]byte // keep lanes on separate cache lines
}

// Source spreads callers over several SplitMix64 states to avoid CAS contention.
type Source struct {
	lanes []lane
	mask  uint32
	next  atomic.Uint32
}

// New returns a Source with n lanes rounded up to a power of two
// (GOMAXPROCS*4 when n<=0). A zero seed takes the current time.
func New(n int, seed int64) *Source {
	if n <= 0 {
		n = max(runtime.GOMAXPROCS(0)*4, 1)
	}
	p := 1
	for p < n {
		p <<= 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Source{lanes: make([]lane, p), mask: uint32(p - 1)}
	st := mix(uint64(seed) + golden)
	for i := range s.lanes {
		st += golden
		v := mix(st)
		if v == 0 {
			v = golden
		}
		s.lanes[i].state.Store(v)
	}
	return s
}

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Source) Uint64() uint64 {
	st := &s.lanes[s.next.Add(1)&s.mask].state
	for {
		old := st.Load()
		x := old + golden
		if st.CompareAndSwap(old, x) {
			return mix(x)
		}
	}
}

// Float64 returns a uniform value in [0,1) built from the top 53 bits.
func (s *Source) Float64() float64 {
	const inv53 = 1.0 / (1 << 53)
	return float64(s.Uint64()>>11) * inv53
}

// Intn returns a value in [0,n). It panics when n<=0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn argument must be positive")
	}
	return int(s.Uint64() % uint64(n))
}

// Skewed returns an index in [0,n) biased toward 0: n * u^skew for u uniform in [0,1).
// skew<=1 degrades to uniform.
func (s *Source) Skewed(n int, skew float64) int {
	if n <= 0 {
		panic("random: Skewed argument must be positive")
	}
	u := s.Float64()
	if skew > 1 {
		u = math.Pow(u, skew)
	}
	return min(int(u*float64(n)), n-1)
}

func mix(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
