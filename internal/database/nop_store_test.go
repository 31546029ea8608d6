package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tasklane/internal/models"
)

func TestNopStore_ReadsAreEmpty(t *testing.T) {
	ctx := context.Background()
	store := NopStore{}

	tasks, err := store.GetAllTasks(ctx)
	if err != nil || len(tasks) != 0 {
		t.Errorf("Expected no tasks and no error, got %v, %v", tasks, err)
	}

	byIndex, err := store.GetTasksByIndex(ctx, TaskIndexStatus, "todo")
	if err != nil || len(byIndex) != 0 {
		t.Errorf("Expected empty index scan, got %v, %v", byIndex, err)
	}

	labels, err := store.GetAllLabels(ctx)
	if err != nil || len(labels) != 0 {
		t.Errorf("Expected no labels and no error, got %v, %v", labels, err)
	}

	if _, err := store.GetTask(ctx, "x"); !IsNotFound(err) {
		t.Errorf("Expected not found from GetTask, got %v", err)
	}
	if _, err := store.GetLabel(ctx, "x"); !IsNotFound(err) {
		t.Errorf("Expected not found from GetLabel, got %v", err)
	}
}

func TestNopStore_WritesAreNoOps(t *testing.T) {
	ctx := context.Background()
	store := NopStore{}

	task := newTask("t1", models.StatusTodo, 0)
	if err := store.PutTask(ctx, task); err != nil {
		t.Errorf("PutTask should succeed, got %v", err)
	}
	if err := store.PutTasks(ctx, []*models.Task{task}); err != nil {
		t.Errorf("PutTasks should succeed, got %v", err)
	}
	if err := store.DeleteTask(ctx, "t1"); err != nil {
		t.Errorf("DeleteTask should succeed, got %v", err)
	}
	if err := store.PutLabel(ctx, &models.Label{ID: "l1"}); err != nil {
		t.Errorf("PutLabel should succeed, got %v", err)
	}
	if err := store.DeleteLabel(ctx, "l1"); err != nil {
		t.Errorf("DeleteLabel should succeed, got %v", err)
	}

	tasks, _ := store.GetAllTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("NopStore must not retain writes, got %d tasks", len(tasks))
	}
}

func TestOpen_DegradesToNopStore(t *testing.T) {
	// A regular file where a directory is expected makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	store := Open(context.Background(), filepath.Join(blocker, "sub", "tasks.db"), nil)
	defer store.Close()

	if _, ok := store.(NopStore); !ok {
		t.Fatalf("Expected NopStore fallback, got %T", store)
	}

	tasks, err := store.GetAllTasks(context.Background())
	if err != nil || len(tasks) != 0 {
		t.Errorf("Fallback store should return empty results, got %v, %v", tasks, err)
	}
}
