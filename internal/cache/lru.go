// internal/cache/lru.go
//
// Tiny TTL-aware LRU used to memoize backend lookups whose answers change
// rarely (labeled picklists, place details).  No external deps; good for a
// few thousand entries.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a non-generic least-recently-used cache with per-cache TTL.
// Keys must be comparable; values can be any.  Safe for concurrent use.
type LRU struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	ll   *list.List
	dict map[any]*list.Element
}

type pair struct {
	key     any
	val     any
	expires time.Time
}

// New returns an LRU with the given capacity and TTL.  A zero TTL means
// entries never expire.  Panics on cap < 1.
func New(capacity int, ttl time.Duration) *LRU {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	return &LRU{
		cap:  capacity,
		ttl:  ttl,
		ll:   list.New(),
		dict: make(map[any]*list.Element, capacity),
	}
}

// Get retrieves a live value and marks it MRU.  Expired entries are
// evicted on the spot and report a miss.
func (c *LRU) Get(key any) (val any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, hit := c.dict[key]
	if !hit {
		return nil, false
	}
	p := ele.Value.(pair)
	if !p.expires.IsZero() && time.Now().After(p.expires) {
		c.ll.Remove(ele)
		delete(c.dict, key)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return p.val, true
}

// Add inserts or updates a value, stamping a fresh expiry.
func (c *LRU) Add(key, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expires time.Time
	if c.ttl > 0 {
		expires = time.Now().Add(c.ttl)
	}
	if ele, hit := c.dict[key]; hit {
		ele.Value = pair{key, val, expires}
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(pair{key, val, expires})
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(pair).key)
	}
}

// Len reports current size, expired entries included.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
