package cache

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/Borislavv/go-tiered-cache/internal/level"
	"github.com/rs/zerolog"
)

var ErrOutOfRange = errors.New("cache level index out of range")

type Cacher[K comparable, V any] interface {
	Get(key K) (value V, found bool)
	Put(key K, value V)
	Evict(key K)
	Clear()
	AddLevel(lvl level.Level[K, V], index int) error
	RemoveLevel(index int) (level.Level[K, V], error)
	LevelCount() int
	LevelSizes() []int
	GetLevel(index int) (level.Level[K, V], error)
	String() string
}

// MultiLevel stacks cache levels by priority: index 0 is the fastest tier.
//
// One RWMutex guards the whole stack. Get takes the exclusive lock as well: a read
// reorders policy metadata and may promote into upper levels, and levels are not
// synchronized on their own.
type MultiLevel[K comparable, V any] struct {
	mu     sync.RWMutex
	levels []level.Level[K, V]
	logger zerolog.Logger
}

func New[K comparable, V any](opts ...Option) *MultiLevel[K, V] {
	o := newOptions(opts)
	return &MultiLevel[K, V]{logger: o.logger}
}

// AddLevel inserts lvl at index (0..LevelCount). A level inserted above another one
// is seeded with a copy of that level's entries; the source keeps its copies.
func (c *MultiLevel[K, V]) AddLevel(lvl level.Level[K, V], index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index > len(c.levels) {
		return fmt.Errorf("%w: add at %d, levels %d", ErrOutOfRange, index, len(c.levels))
	}
	c.levels = slices.Insert(c.levels, index, lvl)

	var seeded int
	if index < len(c.levels)-1 {
		seeded = copyInto(lvl, c.levels[index+1])
	}

	c.logger.Debug().
		Int("level_index", index).
		Str("policy", string(lvl.Kind())).
		Int("capacity", lvl.Capacity()).
		Int("seeded", seeded).
		Msg("cache level added")
	return nil
}

// RemoveLevel detaches the level at index and re-puts its entries into the level now
// holding that slot, or into the new last level when the removed one was last.
func (c *MultiLevel[K, V]) RemoveLevel(index int) (level.Level[K, V], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.levels) {
		return nil, fmt.Errorf("%w: remove at %d, levels %d", ErrOutOfRange, index, len(c.levels))
	}
	removed := c.levels[index]
	c.levels = slices.Delete(c.levels, index, index+1)

	var moved int
	if len(c.levels) > 0 {
		target := min(index, len(c.levels)-1)
		moved = copyInto(c.levels[target], removed)
	}

	c.logger.Debug().
		Int("level_index", index).
		Str("policy", string(removed.Kind())).
		Int("moved", moved).
		Msg("cache level removed")
	return removed, nil
}

// Get scans levels in priority order and promotes a hit into every level above it.
func (c *MultiLevel[K, V]) Get(key K) (value V, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, lvl := range c.levels {
		if value, found = lvl.Get(key); found {
			for j := i - 1; j >= 0; j-- {
				c.levels[j].Put(key, value)
			}
			return value, true
		}
	}
	return value, false
}

// Put writes to level 0 and drops key from every lower level.
func (c *MultiLevel[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.levels) == 0 {
		return
	}
	c.levels[0].Put(key, value)
	for _, lvl := range c.levels[1:] {
		lvl.Evict(key)
	}
}

func (c *MultiLevel[K, V]) Evict(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, lvl := range c.levels {
		lvl.Evict(key)
	}
}

// Clear empties every level; the level stack itself is kept.
func (c *MultiLevel[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, lvl := range c.levels {
		lvl.Clear()
	}
}

func (c *MultiLevel[K, V]) LevelCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.levels)
}

// LevelSizes returns the current number of entries per level, in priority order.
func (c *MultiLevel[K, V]) LevelSizes() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sizes := make([]int, len(c.levels))
	for i, lvl := range c.levels {
		sizes[i] = lvl.Size()
	}
	return sizes
}

// GetLevel returns the live level at index. Driving it directly bypasses the
// coordinator's lock; use it for inspection only.
func (c *MultiLevel[K, V]) GetLevel(index int) (level.Level[K, V], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.levels) {
		return nil, fmt.Errorf("%w: get at %d, levels %d", ErrOutOfRange, index, len(c.levels))
	}
	return c.levels[index], nil
}

// String renders one line per level with its full contents, keys in lexical order.
func (c *MultiLevel[K, V]) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sb strings.Builder
	for i, lvl := range c.levels {
		all := lvl.GetAll()
		pairs := make([]string, 0, len(all))
		for k, entry := range all {
			pairs = append(pairs, fmt.Sprintf("%v=%v", k, entry.Value()))
		}
		sort.Strings(pairs)
		fmt.Fprintf(&sb, "Level %d (%s, %d/%d): [%s]\n", i, lvl.Kind(), len(all), lvl.Capacity(), strings.Join(pairs, " "))
	}
	return sb.String()
}

// copyInto puts src's entries into dst in src's eviction order, coldest first,
// so when dst is smaller the entries src ranks hottest are the ones that stay.
func copyInto[K comparable, V any](dst, src level.Level[K, V]) int {
	entries := src.Ordered()
	for _, entry := range entries {
		dst.Put(entry.Key(), entry.Value())
	}
	return len(entries)
}
