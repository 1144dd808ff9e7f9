// Package cache provides the fetch-result cache used by the graph
// populator. Payloads are opaque bytes; the codec in this package
// defines the stable segment-list format.
package cache

import (
	"context"
	"sync"
	"time"
)

// Store is the cache contract consumed by the populator. A nil Store is
// valid and means every fetch is a live provider call.
type Store interface {
	// Get returns the payload for key, or false on a miss. Backend
	// failures are reported as misses by implementations.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores the payload under key with the given TTL. Failures are
	// logged by implementations and never propagated.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
	Close() error
}

type memoryEntry struct {
	payload []byte
	expiry  time.Time
}

// Memory is an in-process Store with per-entry TTLs.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	payload := make([]byte, len(entry.payload))
	copy(payload, entry.payload)
	return payload, true
}

func (m *Memory) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	m.mu.Lock()
	m.entries[key] = memoryEntry{payload: stored, expiry: time.Now().Add(ttl)}
	m.mu.Unlock()
}

func (m *Memory) Close() error {
	return nil
}
