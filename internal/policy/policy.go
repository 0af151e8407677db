// Package policy implements the eviction oracles used by cache levels.
//
// A Policy tracks recency or frequency metadata for the keys of exactly one level
// and names the victim when that level runs out of room. It never touches the
// level's own key->entry store: removing the victim from the store is the caller's job.
//
// Implementations are not synchronized; the owning level relies on the
// multi-level coordinator's lock.
package policy

import "github.com/Borislavv/go-tiered-cache/model"

type Policy[K comparable, V any] interface {
	// Add starts tracking key (or re-seeds it if already tracked).
	Add(key K, entry *model.Entry[K, V])
	// Remove forgets key; no-op if untracked.
	Remove(key K)
	// Update records an access of a tracked key.
	Update(key K, entry *model.Entry[K, V])
	// Evict picks, forgets and returns the next victim. ok is false when nothing is tracked.
	Evict() (key K, ok bool)
	// Len is the number of tracked keys.
	Len() int
	// Order lists tracked keys in eviction order, the next victim first.
	Order() []K
}
