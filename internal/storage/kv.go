package storage

import (
	"errors"
	"strings"
	"sync"
)

// ErrInvalidKey is returned when a key contains path separators or
// traversal sequences.
var ErrInvalidKey = errors.New("invalid storage key")

// KV is a namespaced key-value store of string blobs. Get and Set are
// synchronous from the caller's point of view; there is no versioning and
// no migration path. Implementations must be safe for concurrent use.
type KV interface {
	// Get returns the blob stored under key and whether it exists.
	Get(key string) (string, bool)

	// Set stores the blob under key, replacing any previous value.
	Set(key, value string) error
}

func validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}

// MemoryStore is an in-memory KV used by tests and keyless dev runs.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

// Get implements KV.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Set implements KV.
func (s *MemoryStore) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
	return nil
}
