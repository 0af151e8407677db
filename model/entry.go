package model

import "github.com/Borislavv/go-tiered-cache/internal/shared/cachedtime"

// Entry is the value object a cache level stores per key.
// It is owned by exactly one level; promotion between levels creates a new Entry.
type Entry[K comparable, V any] struct {
	key          K
	value        V
	lastAccessed int64  // unix nano
	accessCount  uint64 // reads + the initial insert
}

// NewEntry stamps the entry with the current time and an access count of 1.
func NewEntry[K comparable, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{
		key:          key,
		value:        value,
		lastAccessed: cachedtime.UnixNano(),
		accessCount:  1,
	}
}

// Accessors take a value receiver so snapshot copies (Level.GetAll) stay readable.

func (e Entry[K, V]) Key() K              { return e.key }
func (e Entry[K, V]) Value() V            { return e.value }
func (e Entry[K, V]) LastAccessed() int64 { return e.lastAccessed }
func (e Entry[K, V]) AccessCount() uint64 { return e.accessCount }

// Touch records a successful read.
func (e *Entry[K, V]) Touch() {
	e.lastAccessed = cachedtime.UnixNano()
	e.accessCount++
}
