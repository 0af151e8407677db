package telemetry

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	hits   atomic.Int64
	digest atomic.Uint64
}

func (f *fakeSource) Metrics() (hits, misses, puts, evictCalls int64) {
	return f.hits.Load(), 0, 0, 0
}

func (f *fakeSource) LevelSizes() []int { return []int{1, 2} }

func (f *fakeSource) Digest() uint64 { return f.digest.Load() }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestDeltaSnapshot subtracts counters and treats a reset as a fresh start.
func TestDeltaSnapshot(t *testing.T) {
	prev := snapshot{hits: 10, misses: 5, puts: 3, evictCalls: 1, digest: 1}
	cur := snapshot{hits: 15, misses: 2, puts: 3, evictCalls: 4, sizes: []int{7}, digest: 2}

	d := deltaSnapshot(prev, cur)

	require.Equal(t, uint64(5), d.hits)
	require.Equal(t, uint64(2), d.misses)
	require.Equal(t, uint64(0), d.puts)
	require.Equal(t, uint64(3), d.evictCalls)
	require.Equal(t, []int{7}, d.sizes)
	require.Equal(t, uint64(2), d.digest)
}

// TestSnapshot_HitRatio is zero without reads.
func TestSnapshot_HitRatio(t *testing.T) {
	require.Zero(t, snapshot{}.hitRatio())
	require.InDelta(t, 0.75, snapshot{hits: 3, misses: 1}.hitRatio(), 1e-9)
}

// TestLogs_Disabled does not start a loop for a nil config.
func TestLogs_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(context.Background(), nil, zerolog.New(&buf), &fakeSource{})

	require.Zero(t, l.Interval())
	require.NoError(t, l.Close())
	require.Empty(t, buf.String())
}

// TestLogs_WritesRecords emits records with deltas and the changed flag.
func TestLogs_WritesRecords(t *testing.T) {
	var (
		out = &syncBuffer{}
		src = &fakeSource{}
	)
	src.digest.Store(1)

	l := New(context.Background(), &config.TelemetryCfg{Interval: 5 * time.Millisecond}, zerolog.New(out), src)
	defer func() { _ = l.Close() }()
	require.Equal(t, 5*time.Millisecond, l.Interval())

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"changed":false`)
	}, time.Second, time.Millisecond)

	src.hits.Store(6)
	src.digest.Store(2)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"changed":true`)
	}, time.Second, time.Millisecond)

	require.NoError(t, l.Close())
	logs := out.String()
	require.Contains(t, logs, `"message":"cache"`)
	require.Contains(t, logs, `"level_sizes":[1,2]`)
	require.Contains(t, logs, `"hits":6`)
}

// TestLogs_StopsOnParentCancel exits when the parent context is done.
func TestLogs_StopsOnParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := New(ctx, &config.TelemetryCfg{Interval: time.Millisecond}, zerolog.Nop(), &fakeSource{})

	cancel()
	require.Eventually(t, func() bool {
		select {
		case <-l.done:
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}
