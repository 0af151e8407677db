package workload

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/service"
	"github.com/Borislavv/go-tiered-cache/internal/topology"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type mapTarget struct {
	mu   sync.Mutex
	data map[string]any
}

func (m *mapTarget) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *mapTarget) Put(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func workloadCfg(ops int, writeRatio float64) *config.WorkloadCfg {
	return &config.WorkloadCfg{Keys: 10, Ops: ops, Rate: 100_000, WriteRatio: writeRatio, Skew: 1}
}

// TestRunner_BoundedRun issues exactly Ops operations and accounts for each.
func TestRunner_BoundedRun(t *testing.T) {
	target := &mapTarget{data: make(map[string]any)}
	r := New(workloadCfg(200, 0.3), target, 1, zerolog.Nop())

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 200, rep.Ops)
	require.Equal(t, rep.Ops, rep.Reads+rep.Writes)
	require.Equal(t, rep.Reads, rep.Hits+rep.Fills)
	require.LessOrEqual(t, len(target.data), 10)
}

// TestRunner_ReadOnlyFillsMisses puts every missed key, so fills never exceed the key space.
func TestRunner_ReadOnlyFillsMisses(t *testing.T) {
	target := &mapTarget{data: make(map[string]any)}
	r := New(workloadCfg(100, 0), target, 2, zerolog.Nop())

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Zero(t, rep.Writes)
	require.LessOrEqual(t, rep.Fills, 10)
	require.Equal(t, rep.Fills, len(target.data))
}

// TestRunner_InterruptedBoundedRun returns the context error with a partial report.
func TestRunner_InterruptedBoundedRun(t *testing.T) {
	cfg := workloadCfg(1_000_000, 0.5)
	cfg.Rate = 1000
	r := New(cfg, &mapTarget{data: make(map[string]any)}, 3, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	rep, err := r.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, rep.Ops, cfg.Ops)
}

// TestRunner_UnboundedRunStopsCleanly ends without error when ctx is done.
func TestRunner_UnboundedRunStopsCleanly(t *testing.T) {
	r := New(workloadCfg(0, 0.5), &mapTarget{data: make(map[string]any)}, 4, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	rep, err := r.Run(ctx)
	require.NoError(t, err)
	require.Positive(t, rep.Ops)
}

// TestRunner_AgainstCache keeps the default topology within its capacities.
func TestRunner_AgainstCache(t *testing.T) {
	svc := service.New(topology.Default[string, any](zerolog.Nop()), zerolog.Nop())
	cfg := &config.WorkloadCfg{Keys: 2000, Ops: 3000, Rate: 1_000_000, WriteRatio: 0.2, Skew: 2}
	r := New(cfg, svc, 5, zerolog.Nop())

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	sizes := svc.LevelSizes()
	require.LessOrEqual(t, sizes[0], 100)
	require.LessOrEqual(t, sizes[1], 500)

	hits, misses, _, _ := svc.Metrics()
	require.Equal(t, int64(rep.Hits), hits)
	require.Equal(t, int64(rep.Reads-rep.Hits), misses)
}

// TestKey formats indexes into the key space.
func TestKey(t *testing.T) {
	require.Equal(t, "key-0", Key(0))
	require.Equal(t, "key-42", Key(42))
}
