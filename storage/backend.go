// Package storage persists card sets and the usage counter in durable
// key-value slots.
//
// A Backend holds opaque string values under string keys. The Store keeps the
// whole collection of card sets in one slot and rewrites it on every change;
// the UsageCounter keeps its value in another.
package storage

import (
	"context"
	"sync"
)

const (
	// CollectionKey holds the JSON array of every card set.
	CollectionKey = "@flashcard_sets"

	// UsageKey holds the number of cards generated so far, as decimal text.
	UsageKey = "@total_cards_generated"
)

// Backend is a durable key-value slot store.
type Backend interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// MemoryBackend keeps slots in process memory. It is what tests and the
// "memory" storage mode use.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
