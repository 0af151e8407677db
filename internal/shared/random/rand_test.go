package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFloat64_ReturnsValidRange verifies that Float64 returns values in [0, 1).
func TestFloat64_ReturnsValidRange(t *testing.T) {
	s := New(4, 1)
	for i := 0; i < 1000; i++ {
		val := s.Float64()
		require.GreaterOrEqual(t, val, 0.0)
		require.Less(t, val, 1.0)
	}
}

// TestFloat64_Distribution verifies that Float64 produces diverse values.
func TestFloat64_Distribution(t *testing.T) {
	s := New(0, 0)
	buckets := make(map[uint64]struct{})
	for i := 0; i < 100; i++ {
		buckets[uint64(s.Float64()*1000)] = struct{}{}
	}
	require.Greater(t, len(buckets), 50)
}

// TestNew_SameSeedSameSequence replays a single-lane source from its seed.
func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(1, 42), New(1, 42)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

// TestIntn_Range stays within [0,n) and panics on non-positive n.
func TestIntn_Range(t *testing.T) {
	s := New(2, 7)
	for i := 0; i < 1000; i++ {
		v := s.Intn(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
	require.Panics(t, func() { s.Intn(0) })
}

// TestSkewed_FavorsLowIndexes concentrates draws on the head of the range.
func TestSkewed_FavorsLowIndexes(t *testing.T) {
	s := New(1, 3)
	const n, draws = 100, 10_000

	var head int
	for i := 0; i < draws; i++ {
		v := s.Skewed(n, 3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		if v < n/10 {
			head++
		}
	}
	// u^3 < 0.1 for u < ~0.464, uniform would give ~10%
	require.Greater(t, head, draws*35/100)
}

// TestUint64_Concurrent verifies thread-safety.
func TestUint64_Concurrent(t *testing.T) {
	s := New(0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := s.Float64()
				if v < 0 || v >= 1 {
					t.Errorf("value out of range: %v", v)
				}
			}
		}()
	}
	wg.Wait()
}
