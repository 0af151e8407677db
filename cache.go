// Package tieredcache is a generic in-memory cache built from an ordered stack of
// capacity-bounded levels. Level 0 is the fastest tier; reads promote hits toward it
// and writes land in it while invalidating every lower level.
//
// A typical two-tier setup:
//
//	c := tieredcache.New[string, any]()
//	_ = c.AddLevel(tieredcache.NewLRULevel[string, any](100), 0)
//	_ = c.AddLevel(tieredcache.NewLFULevel[string, any](500), 1)
package tieredcache

import (
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/level"
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/rs/zerolog"
)

type (
	Cache[K comparable, V any] = cache.MultiLevel[K, V]
	Level[K comparable, V any] = level.Level[K, V]
	Entry[K comparable, V any] = model.Entry[K, V]
	Option                     = cache.Option
	Kind                       = level.Kind
)

const (
	KindLRU = level.KindLRU
	KindLFU = level.KindLFU
)

// ErrOutOfRange is returned by AddLevel, RemoveLevel and GetLevel for an invalid index.
var ErrOutOfRange = cache.ErrOutOfRange

// New returns a cache with no levels.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	return cache.New[K, V](opts...)
}

func WithLogger(logger zerolog.Logger) Option {
	return cache.WithLogger(logger)
}

// NewLRULevel panics on a non-positive capacity.
func NewLRULevel[K comparable, V any](capacity int) Level[K, V] {
	return level.NewLRU[K, V](capacity)
}

// NewLFULevel panics on a non-positive capacity.
func NewLFULevel[K comparable, V any](capacity int) Level[K, V] {
	return level.NewLFU[K, V](capacity)
}
