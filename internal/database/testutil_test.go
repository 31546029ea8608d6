package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestStore creates an in-memory store with the full schema
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	store := NewSQLiteStore(db, nil)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupTestStoreFile creates a file-based store for testing persistence across reopen
func setupTestStoreFile(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return NewSQLiteStore(db, nil), path
}

// newTask builds a valid task record for tests
func newTask(id string, status models.Status, order int, labels ...string) *models.Task {
	now := time.Now()
	return &models.Task{
		ID:          id,
		Title:       "Task " + id,
		Description: "",
		Status:      status,
		Labels:      labels,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
