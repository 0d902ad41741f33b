package validator

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	key       string
	validator Validator
}

// validatorCache is a bounded LRU of compiled validators keyed by schema
// fingerprint. Stored validators are never handed out directly.
type validatorCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newValidatorCache(capacity int) *validatorCache {
	return &validatorCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// get returns a duplicate of the cached validator.
func (c *validatorCache) get(key string) (Validator, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.eviction.MoveToFront(elem)
	return elem.Value.(*cacheEntry).validator.Duplicate(), true
}

// put stores v, evicting the least recently used entry when full.
func (c *validatorCache) put(key string, v Validator) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).validator = v
		return
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, validator: v})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

func (c *validatorCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

func (c *validatorCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}
