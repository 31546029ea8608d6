package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// SetupTestStore creates an in-memory store with the full schema.
// The store is closed when the test finishes.
func SetupTestStore(t testing.TB) *database.SQLiteStore {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	store := database.NewSQLiteStore(db, nil)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// CreateTestTask writes a task record directly and returns it
func CreateTestTask(t testing.TB, store database.TaskStore, title string, status models.Status, order int, labels ...string) *models.Task {
	t.Helper()

	now := time.Now()
	task := &models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    status,
		Labels:    append([]string{}, labels...),
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.PutTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// CreateTestLabel writes a label record directly and returns it
func CreateTestLabel(t testing.TB, store database.LabelStore, name, color string) *models.Label {
	t.Helper()

	label := &models.Label{ID: uuid.NewString(), Name: name, Color: color}
	if err := store.PutLabel(context.Background(), label); err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}
	return label
}
