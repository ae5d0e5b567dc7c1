package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Get("missing"); ok {
		t.Fatal("missing key should not exist")
	}

	if err := s.Set("sessions", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	got, ok := s.Get("sessions")
	if !ok || got != `[{"id":"a"}]` {
		t.Fatalf("unexpected value: %q ok=%v", got, ok)
	}

	// Overwrite replaces.
	if err := s.Set("sessions", "[]"); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	got, _ = s.Get("sessions")
	if got != "[]" {
		t.Fatalf("unexpected value after overwrite: %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	if _, ok := s.Get("missing"); ok {
		t.Fatal("missing key should not exist")
	}

	if err := s.Set("sessions", `{"v":1}`); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	got, ok := s.Get("sessions")
	if !ok || got != `{"v":1}` {
		t.Fatalf("unexpected value: %q ok=%v", got, ok)
	}

	// Value survives a new store over the same directory.
	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	got, ok = reopened.Get("sessions")
	if !ok || got != `{"v":1}` {
		t.Fatalf("value should survive reopen: %q ok=%v", got, ok)
	}
}

func TestFileStoreRejectsTraversalKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	for _, key := range []string{"", "a/b", `a\b`, "..", "../x"} {
		if err := s.Set(key, "v"); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
		if _, ok := s.Get(key); ok {
			t.Fatalf("key %q: Get should report absent", key)
		}
	}
}

func TestFileStoreWritesUnderBaseDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	if err := s.Set("snapshot", "data"); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "snapshot.json")); err != nil {
		t.Fatalf("expected snapshot.json under base dir: %v", err)
	}
}
