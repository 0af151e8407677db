// Package level implements capacity-bounded cache tiers.
//
// A level owns its key->entry store and one eviction policy; it consults the policy
// for a victim when an insert would overflow the capacity. Levels are not
// synchronized and must only be driven by a single multi-level coordinator.
package level

import (
	"fmt"

	"github.com/Borislavv/go-tiered-cache/internal/policy"
	"github.com/Borislavv/go-tiered-cache/model"
)

// Kind names the eviction policy backing a level.
type Kind string

const (
	KindLRU Kind = "lru"
	KindLFU Kind = "lfu"
)

type Level[K comparable, V any] interface {
	// Get returns the stored value and refreshes the key's eviction metadata on hit.
	Get(key K) (value V, found bool)
	// Put inserts or overwrites key, evicting the policy's victim first if the level is full.
	Put(key K, value V)
	// Evict drops key from the store and the policy; no-op if absent.
	Evict(key K)
	Size() int
	IsEmpty() bool
	// Clear drops every entry and the policy's accumulated history.
	Clear()
	// GetAll returns a snapshot copy of the store.
	GetAll() map[K]model.Entry[K, V]
	// Ordered returns snapshot copies in the policy's eviction order, coldest first.
	Ordered() []model.Entry[K, V]
	Capacity() int
	Kind() Kind
}

// store is the key->entry map shared by both level kinds.
type store[K comparable, V any] struct {
	kind      Kind
	capacity  int
	items     map[K]*model.Entry[K, V]
	policy    policy.Policy[K, V]
	newPolicy func(capacity int) policy.Policy[K, V]
	touch     bool // whether Get stamps the entry itself
}

func newStore[K comparable, V any](kind Kind, capacity int, touch bool, newPolicy func(int) policy.Policy[K, V]) store[K, V] {
	if capacity <= 0 {
		panic(fmt.Sprintf("level: %s capacity must be positive, got %d", kind, capacity))
	}
	return store[K, V]{
		kind:      kind,
		capacity:  capacity,
		items:     make(map[K]*model.Entry[K, V], capacity),
		policy:    newPolicy(capacity),
		newPolicy: newPolicy,
		touch:     touch,
	}
}

func (s *store[K, V]) Get(key K) (value V, found bool) {
	entry, found := s.items[key]
	if !found {
		return value, false
	}
	if s.touch {
		entry.Touch()
	}
	s.policy.Update(key, entry)
	return entry.Value(), true
}

func (s *store[K, V]) Put(key K, value V) {
	if _, found := s.items[key]; !found && len(s.items) >= s.capacity {
		if victim, ok := s.policy.Evict(); ok {
			delete(s.items, victim)
		}
	}
	entry := model.NewEntry(key, value)
	s.items[key] = entry
	s.policy.Add(key, entry)
}

func (s *store[K, V]) Evict(key K) {
	delete(s.items, key)
	s.policy.Remove(key)
}

func (s *store[K, V]) Size() int     { return len(s.items) }
func (s *store[K, V]) IsEmpty() bool { return len(s.items) == 0 }
func (s *store[K, V]) Capacity() int { return s.capacity }
func (s *store[K, V]) Kind() Kind    { return s.kind }

func (s *store[K, V]) Clear() {
	clear(s.items)
	s.policy = s.newPolicy(s.capacity)
}

func (s *store[K, V]) Ordered() []model.Entry[K, V] {
	keys := s.policy.Order()
	out := make([]model.Entry[K, V], 0, len(keys))
	for _, k := range keys {
		if entry, found := s.items[k]; found {
			out = append(out, *entry)
		}
	}
	return out
}

func (s *store[K, V]) GetAll() map[K]model.Entry[K, V] {
	out := make(map[K]model.Entry[K, V], len(s.items))
	for k, v := range s.items {
		out[k] = *v
	}
	return out
}
