package level

import "github.com/Borislavv/go-tiered-cache/internal/policy"

// LRU is a level evicting the least recently touched key.
// Recency lives in the list order only, so Get leaves entry timestamps alone.
type LRU[K comparable, V any] struct {
	store[K, V]
}

// NewLRU panics on a non-positive capacity.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{store: newStore[K, V](KindLRU, capacity, false, func(c int) policy.Policy[K, V] {
		return policy.NewLRU[K, V](c)
	})}
}

// LFU is a level evicting the least frequently used key, oldest first on ties.
// Get stamps the entry's last access time and access count.
type LFU[K comparable, V any] struct {
	store[K, V]
}

// NewLFU panics on a non-positive capacity.
func NewLFU[K comparable, V any](capacity int) *LFU[K, V] {
	return &LFU[K, V]{store: newStore[K, V](KindLFU, capacity, true, func(c int) policy.Policy[K, V] {
		return policy.NewLFU[K, V](c)
	})}
}

// New builds a level of the given kind.
func New[K comparable, V any](kind Kind, capacity int) (Level[K, V], bool) {
	switch kind {
	case KindLRU:
		return NewLRU[K, V](capacity), true
	case KindLFU:
		return NewLFU[K, V](capacity), true
	default:
		return nil, false
	}
}
