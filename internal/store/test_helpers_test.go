package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/rallyref/internal/preset"
)

// createTestStore opens a fresh database in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPreset(id, name string) preset.Preset {
	return preset.Preset{ID: id, Name: name, Player1: name + "-1", Player2: name + "-2"}
}
