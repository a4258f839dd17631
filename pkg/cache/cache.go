package cache

import (
	"sync"
	"time"
)

// Clock permite controlar o tempo nos testes.
type Clock func() time.Time

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache guarda valores em memória com expiração por TTL.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   Clock
	items map[string]entry
}

func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

func NewWithClock(ttl time.Duration, now Clock) *Cache {
	return &Cache{
		ttl:   ttl,
		now:   now,
		items: make(map[string]entry),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	c.items[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
