package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps objects in-process for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]string
}

// NewMemoryStore initializes an empty in-memory object store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]string)}
}

// Get returns a stored object.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.objects[key]
	return text, ok, nil
}

// Put stores an object, replacing any previous version.
func (m *MemoryStore) Put(ctx context.Context, key, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = text
	return nil
}

// Len reports how many objects are stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
