package service

import (
	"bytes"
	"testing"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/topology"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	c, err := topology.Build[string, any]([]config.LevelCfg{
		{Policy: config.PolicyLRU, Capacity: 2},
		{Policy: config.PolicyLFU, Capacity: 4},
	}, zerolog.Nop())
	require.NoError(t, err)
	return New(c, zerolog.Nop())
}

// TestService_Counters counts hits, misses, puts and evict calls.
func TestService_Counters(t *testing.T) {
	s := newService(t)

	s.Put("a", 1)
	s.Put("b", 2)
	v, found := s.Get("a")
	require.True(t, found)
	require.Equal(t, 1, v)
	_, found = s.Get("missing")
	require.False(t, found)
	s.Evict("a")
	s.Evict("never-stored")

	hits, misses, puts, evictCalls := s.Metrics()
	require.Equal(t, int64(1), hits)
	require.Equal(t, int64(1), misses)
	require.Equal(t, int64(2), puts)
	// absent keys count too
	require.Equal(t, int64(2), evictCalls)
}

// TestService_Digest changes with contents and is stable otherwise.
func TestService_Digest(t *testing.T) {
	s := newService(t)
	empty := s.Digest()
	require.Equal(t, empty, s.Digest())

	s.Put("a", 1)
	withA := s.Digest()
	require.NotEqual(t, empty, withA)

	// reads of an upper-level hit do not change contents
	s.Get("a")
	require.Equal(t, withA, s.Digest())

	s.Clear()
	require.Equal(t, empty, s.Digest())
}

// TestService_AddRemoveLevel reshapes the stack and reports rejected indexes.
func TestService_AddRemoveLevel(t *testing.T) {
	s := newService(t)
	s.Put("a", 1)

	require.NoError(t, s.AddLevel(config.LevelCfg{Policy: config.PolicyLFU, Capacity: 8}, 2))
	require.Equal(t, 3, s.LevelCount())
	require.Equal(t, []int{1, 0, 0}, s.LevelSizes())

	require.NoError(t, s.RemoveLevel(0))
	require.Equal(t, []int{1, 0}, s.LevelSizes())

	require.ErrorIs(t, s.AddLevel(config.LevelCfg{Policy: config.PolicyLRU, Capacity: 1}, 5), cache.ErrOutOfRange)
	require.ErrorIs(t, s.RemoveLevel(-1), cache.ErrOutOfRange)
	require.ErrorIs(t, s.AddLevel(config.LevelCfg{Policy: "fifo", Capacity: 1}, 0), config.ErrInvalidConfig)
	require.Equal(t, 2, s.LevelCount())
}

// TestService_Status renders the coordinator's view.
func TestService_Status(t *testing.T) {
	s := newService(t)
	s.Put("a", 1)

	require.Equal(t, "Level 0 (lru, 1/2): [a=1]\nLevel 1 (lfu, 0/4): []\n", s.Status())
}

// TestService_LogsReshape writes info records for level changes.
func TestService_LogsReshape(t *testing.T) {
	var buf bytes.Buffer
	c := cache.New[string, any]()
	s := New(c, zerolog.New(&buf))

	require.NoError(t, s.AddLevel(config.LevelCfg{Policy: config.PolicyLRU, Capacity: 1}, 0))
	require.Contains(t, buf.String(), `"message":"cache level added"`)

	require.NoError(t, s.RemoveLevel(0))
	require.Contains(t, buf.String(), `"message":"cache level removed"`)
}
