package state

import (
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewFileStore(path)

	id, err := s.Get()
	if err != nil {
		t.Fatalf("get sur fichier absent: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty selection, got %q", id)
	}

	if err := s.Set("company-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	id, err = s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if id != "company-1" {
		t.Fatalf("expected company-1, got %q", id)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id, err = s.Get()
	if err != nil {
		t.Fatalf("get après clear: %v", err)
	}
	if id != "" {
		t.Fatalf("expected cleared selection, got %q", id)
	}
	// Clearing twice must stay silent.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s := NewFileStore(path)
	if err := s.Set("company-2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	id, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if id != "company-2" {
		t.Fatalf("expected company-2, got %q", id)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Set("x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	id, _ := s.Get()
	if id != "x" {
		t.Fatalf("expected x, got %q", id)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id, _ = s.Get()
	if id != "" {
		t.Fatalf("expected empty after clear, got %q", id)
	}
}
