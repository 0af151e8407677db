package policy

import (
	"container/list"

	"github.com/Borislavv/go-tiered-cache/model"
)

type lruNode[K comparable, V any] struct {
	key   K
	entry *model.Entry[K, V]
}

// LRU orders keys by recency: front is the most recently touched, back is the victim.
// It never trims itself; the owning level decides when to call Evict.
type LRU[K comparable, V any] struct {
	lru  *list.List
	lidx map[K]*list.Element
}

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		lru:  list.New(),
		lidx: make(map[K]*list.Element, max(capacity, 0)),
	}
}

// Add inserts key at the front or moves it there.
func (p *LRU[K, V]) Add(key K, entry *model.Entry[K, V]) {
	if el := p.lidx[key]; el != nil {
		el.Value.(*lruNode[K, V]).entry = entry
		p.lru.MoveToFront(el)
		return
	}
	p.lidx[key] = p.lru.PushFront(&lruNode[K, V]{key: key, entry: entry})
}

// Update is the same insert-or-move as Add.
func (p *LRU[K, V]) Update(key K, entry *model.Entry[K, V]) {
	p.Add(key, entry)
}

func (p *LRU[K, V]) Remove(key K) {
	if el := p.lidx[key]; el != nil {
		p.lru.Remove(el)
		delete(p.lidx, key)
	}
}

func (p *LRU[K, V]) Evict() (key K, ok bool) {
	el := p.lru.Back()
	if el == nil {
		return key, false
	}
	node := p.lru.Remove(el).(*lruNode[K, V])
	delete(p.lidx, node.key)
	return node.key, true
}

func (p *LRU[K, V]) Len() int { return p.lru.Len() }

// Order returns tracked keys from coldest to hottest.
func (p *LRU[K, V]) Order() []K {
	out := make([]K, 0, p.lru.Len())
	for el := p.lru.Back(); el != nil; el = el.Prev() {
		out = append(out, el.Value.(*lruNode[K, V]).key)
	}
	return out
}
