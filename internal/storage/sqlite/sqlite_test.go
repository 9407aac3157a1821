package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/splitease/splitease/internal/storage"
	"github.com/splitease/splitease/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestNew_ReopensExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "bills.db")

	first, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	first.Close()

	// Migrations must be a no-op the second time
	second, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer second.Close()
}
