// Package service exposes a string-keyed multi-level cache to applications.
// It delegates every call to the core and only adds logging, counters and a
// cheap digest of the cache's contents.
package service

import (
	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/topology"
	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"
)

type Cacher interface {
	Get(key string) (value any, found bool)
	Put(key string, value any)
	Evict(key string)
	Clear()
	AddLevel(cfg config.LevelCfg, index int) error
	RemoveLevel(index int) error
	LevelCount() int
	LevelSizes() []int
	Status() string
	Digest() uint64
	Metrics() (hits, misses, puts, evictCalls int64)
}

type Service struct {
	cache    cache.Cacher[string, any]
	logger   zerolog.Logger
	counters *counters
}

func New(c cache.Cacher[string, any], logger zerolog.Logger) *Service {
	return &Service{
		cache:    c,
		logger:   logger,
		counters: newCounters(),
	}
}

func (s *Service) Get(key string) (any, bool) {
	value, found := s.cache.Get(key)
	if found {
		s.counters.hits.Add(1)
	} else {
		s.counters.misses.Add(1)
	}
	return value, found
}

func (s *Service) Put(key string, value any) {
	s.cache.Put(key, value)
	s.counters.puts.Add(1)
}

// Evict drops key from every level. The evict counter counts calls, absent keys included.
func (s *Service) Evict(key string) {
	s.cache.Evict(key)
	s.counters.evictCalls.Add(1)
}

func (s *Service) Clear() {
	s.cache.Clear()
	s.logger.Info().Msg("cache cleared")
}

// AddLevel builds a level from cfg and inserts it at index.
func (s *Service) AddLevel(cfg config.LevelCfg, index int) error {
	lvl, err := topology.NewLevel[string, any](cfg)
	if err != nil {
		return err
	}
	if err = s.cache.AddLevel(lvl, index); err != nil {
		s.logger.Warn().Err(err).Int("level_index", index).Msg("add cache level rejected")
		return err
	}
	s.logger.Info().
		Int("level_index", index).
		Str("policy", string(cfg.Policy)).
		Int("capacity", cfg.Capacity).
		Msg("cache level added")
	return nil
}

func (s *Service) RemoveLevel(index int) error {
	removed, err := s.cache.RemoveLevel(index)
	if err != nil {
		s.logger.Warn().Err(err).Int("level_index", index).Msg("remove cache level rejected")
		return err
	}
	s.logger.Info().
		Int("level_index", index).
		Str("policy", string(removed.Kind())).
		Int("entries", removed.Size()).
		Msg("cache level removed")
	return nil
}

func (s *Service) LevelCount() int {
	return s.cache.LevelCount()
}

func (s *Service) LevelSizes() []int {
	return s.cache.LevelSizes()
}

// Status is the coordinator's per-level rendering.
func (s *Service) Status() string {
	return s.cache.String()
}

// Digest hashes the status rendering; equal digests mean no level changed its contents.
func (s *Service) Digest() uint64 {
	return xxh3.HashString(s.cache.String())
}

// Metrics returns cumulative counters; evictCalls is the number of Evict calls, not removals.
func (s *Service) Metrics() (hits, misses, puts, evictCalls int64) {
	return s.counters.snapshot()
}
