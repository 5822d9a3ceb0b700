package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	store := NewFileTokenStore(path)

	if err := store.Save("tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil || got != "tok-1" {
		t.Fatalf("expected tok-1, got %q (%v)", got, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected owner-only permissions, got %o", perm)
	}
}

func TestFileTokenStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "absent"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}

func TestFileTokenStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)

	if err := store.Save("tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, got %v", err)
	}

	// Clearing again stays a no-op.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
