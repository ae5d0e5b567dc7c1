package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements KV with one file per key under a base directory.
// Layout:
//
//	<baseDir>/
//	  └── <key>.json
//
// Keys are validated against path traversal before touching the
// filesystem.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates the base directory if needed. An empty baseDir
// defaults to ~/.kissandost.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".kissandost")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	return &FileStore{baseDir: baseDir}, nil
}

// Get implements KV. Unreadable blobs are treated as absent; the caller
// recovers as if no snapshot existed.
func (s *FileStore) Get(key string) (string, bool) {
	if err := validateKey(key); err != nil {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[storage] read %s: %v", key, err)
		}
		return "", false
	}
	return string(data), true
}

// Set implements KV. The blob is written to a temp file first so a crash
// mid-write never clobbers the previous snapshot.
func (s *FileStore) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace blob: %w", err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}
