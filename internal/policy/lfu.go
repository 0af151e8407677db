package policy

import (
	"container/list"
	"maps"
	"slices"

	"github.com/Borislavv/go-tiered-cache/model"
)

type lfuItem[K comparable, V any] struct {
	entry *model.Entry[K, V]
	freq  uint64
	elem  *list.Element // position inside buckets[freq]
}

// LFU evicts the least frequently used key in O(1).
//
// Keys sharing a frequency live in one bucket ordered by arrival at that frequency,
// so ties are broken FIFO. minFreq always names the smallest populated bucket
// (0 when nothing is tracked).
type LFU[K comparable, V any] struct {
	capacity int
	items    map[K]*lfuItem[K, V]
	buckets  map[uint64]*list.List
	minFreq  uint64
}

func NewLFU[K comparable, V any](capacity int) *LFU[K, V] {
	return &LFU[K, V]{
		capacity: capacity,
		items:    make(map[K]*lfuItem[K, V], max(capacity, 0)),
		buckets:  make(map[uint64]*list.List),
	}
}

// Add puts key into the frequency-1 bucket and resets minFreq to 1.
// A tracked key is re-seeded at frequency 1; an untracked key arriving at capacity evicts first.
func (p *LFU[K, V]) Add(key K, entry *model.Entry[K, V]) {
	if item, found := p.items[key]; found {
		p.detach(item)
		item.entry = entry
		p.attach(key, item, 1)
		p.minFreq = 1
		return
	}

	if p.capacity > 0 && len(p.items) >= p.capacity {
		p.Evict()
	}

	item := &lfuItem[K, V]{entry: entry}
	p.items[key] = item
	p.attach(key, item, 1)
	p.minFreq = 1
}

func (p *LFU[K, V]) Remove(key K) {
	item, found := p.items[key]
	if !found {
		return
	}
	delete(p.items, key)
	if p.detach(item) && item.freq == p.minFreq {
		p.recomputeMin()
	}
}

// Update bumps the frequency of a tracked key by one; untracked keys are ignored.
func (p *LFU[K, V]) Update(key K, entry *model.Entry[K, V]) {
	item, found := p.items[key]
	if !found {
		return
	}
	old := item.freq
	item.entry = entry
	if p.detach(item) && old == p.minFreq {
		// the key itself lands on old+1, so that is the new minimum
		p.minFreq = old + 1
	}
	p.attach(key, item, old+1)
}

func (p *LFU[K, V]) Evict() (key K, ok bool) {
	if len(p.items) == 0 {
		return key, false
	}
	bucket := p.buckets[p.minFreq]
	if bucket == nil {
		// unreachable while the minFreq invariant holds
		p.recomputeMin()
		bucket = p.buckets[p.minFreq]
	}

	key = bucket.Front().Value.(K)
	item := p.items[key]
	delete(p.items, key)
	if p.detach(item) {
		p.recomputeMin()
	}
	return key, true
}

func (p *LFU[K, V]) Len() int { return len(p.items) }

// MinFrequency returns the frequency of the next eviction candidate.
func (p *LFU[K, V]) MinFrequency() uint64 { return p.minFreq }

// Frequency returns the tracked frequency of key.
func (p *LFU[K, V]) Frequency(key K) (uint64, bool) {
	if item, found := p.items[key]; found {
		return item.freq, true
	}
	return 0, false
}

// Order walks buckets from the lowest frequency up, each bucket oldest arrival first.
func (p *LFU[K, V]) Order() []K {
	out := make([]K, 0, len(p.items))
	for _, freq := range slices.Sorted(maps.Keys(p.buckets)) {
		for el := p.buckets[freq].Front(); el != nil; el = el.Next() {
			out = append(out, el.Value.(K))
		}
	}
	return out
}

func (p *LFU[K, V]) attach(key K, item *lfuItem[K, V], freq uint64) {
	bucket := p.buckets[freq]
	if bucket == nil {
		bucket = list.New()
		p.buckets[freq] = bucket
	}
	item.freq = freq
	item.elem = bucket.PushBack(key)
}

// detach unlinks item from its bucket and reports whether the bucket was dropped as empty.
func (p *LFU[K, V]) detach(item *lfuItem[K, V]) (emptied bool) {
	bucket := p.buckets[item.freq]
	if bucket == nil || item.elem == nil {
		return false
	}
	bucket.Remove(item.elem)
	item.elem = nil
	if bucket.Len() == 0 {
		delete(p.buckets, item.freq)
		return true
	}
	return false
}

// recomputeMin scans the populated buckets; it runs only when the minimum bucket empties
// through Remove or Evict, where no cheaper successor is known.
func (p *LFU[K, V]) recomputeMin() {
	p.minFreq = 0
	for freq := range p.buckets {
		if p.minFreq == 0 || freq < p.minFreq {
			p.minFreq = freq
		}
	}
}
