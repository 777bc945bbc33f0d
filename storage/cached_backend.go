package storage

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cachedSlot struct {
	value   string
	present bool
}

// CachedBackend serves repeated reads from an LRU cache in front of another
// backend. Writes go through to the underlying backend first; a failed write
// drops the cached entry so the next read goes back to the source.
//
// Every write bumps a per-key generation. A read that missed the cache only
// fills it when no write to the key completed while it was reading, so a
// slow read never replaces a newer value with an older one.
type CachedBackend struct {
	next  Backend
	cache *lru.Cache[string, cachedSlot]

	mu   sync.Mutex
	gens map[string]uint64
}

func NewCachedBackend(next Backend, size int) (*CachedBackend, error) {
	cache, err := lru.New[string, cachedSlot](size)
	if err != nil {
		return nil, err
	}
	return &CachedBackend{next: next, cache: cache, gens: make(map[string]uint64)}, nil
}

func (c *CachedBackend) Get(ctx context.Context, key string) (string, bool, error) {
	if hit, ok := c.cache.Get(key); ok {
		return hit.value, hit.present, nil
	}

	c.mu.Lock()
	gen := c.gens[key]
	c.mu.Unlock()

	value, present, err := c.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}

	c.mu.Lock()
	if c.gens[key] == gen {
		c.cache.Add(key, cachedSlot{value: value, present: present})
	}
	c.mu.Unlock()
	return value, present, nil
}

func (c *CachedBackend) Set(ctx context.Context, key, value string) error {
	err := c.next.Set(ctx, key, value)
	c.written(key, cachedSlot{value: value, present: true}, err)
	return err
}

func (c *CachedBackend) Remove(ctx context.Context, key string) error {
	err := c.next.Remove(ctx, key)
	c.written(key, cachedSlot{}, err)
	return err
}

// written records a finished write to key. The generation moves even when
// the write failed, since the source may hold either value.
func (c *CachedBackend) written(key string, slot cachedSlot, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[key]++
	if err != nil {
		c.cache.Remove(key)
		return
	}
	c.cache.Add(key, slot)
}
