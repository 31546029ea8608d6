package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/models"
)

func TestPutAndGetTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	task := newTask("t1", models.StatusTodo, 0, "l1", "l2")
	task.Description = "write the docs"
	require.NoError(t, store.PutTask(ctx, task))

	got, err := store.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Task t1", got.Title)
	assert.Equal(t, "write the docs", got.Description)
	assert.Equal(t, models.StatusTodo, got.Status)
	assert.Equal(t, []string{"l1", "l2"}, got.Labels)
	assert.True(t, got.CreatedAt.Equal(task.CreatedAt), "created_at should round-trip exactly")
	assert.True(t, got.UpdatedAt.Equal(task.UpdatedAt), "updated_at should round-trip exactly")
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)

	_, err := store.GetTask(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.True(t, IsNotFound(err))
}

func TestPutTask_Upsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	task := newTask("t1", models.StatusTodo, 0, "l1")
	require.NoError(t, store.PutTask(ctx, task))

	task.Title = "renamed"
	task.Status = models.StatusDone
	task.Order = 4
	task.Labels = []string{"l2"}
	require.NoError(t, store.PutTask(ctx, task))

	all, err := store.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "renamed", all[0].Title)
	assert.Equal(t, models.StatusDone, all[0].Status)
	assert.Equal(t, 4, all[0].Order)
	assert.Equal(t, []string{"l2"}, all[0].Labels)
}

func TestPutTask_DeduplicatesLabels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.PutTask(ctx, newTask("t1", models.StatusTodo, 0, "a", "b", "a")))

	got, err := store.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Labels)
}

func TestPutTask_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	tests := []struct {
		name string
		task *models.Task
	}{
		{"nil task", nil},
		{"empty id", newTask("", models.StatusTodo, 0)},
		{"unknown status", newTask("t1", models.Status("blocked"), 0)},
	}

	for _, tt := range tests {
		err := store.PutTask(ctx, tt.task)
		assert.ErrorIs(t, err, ErrInvalidRecord, tt.name)
	}
}

func TestPutTasks_IsAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	err := store.PutTasks(ctx, []*models.Task{
		newTask("t1", models.StatusTodo, 0),
		newTask("t2", models.Status("bogus"), 1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))

	all, err := store.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "no task should be written when one record is invalid")
}

func TestGetTasksByIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.PutTasks(ctx, []*models.Task{
		newTask("a", models.StatusTodo, 1, "bug"),
		newTask("b", models.StatusTodo, 0),
		newTask("c", models.StatusDone, 0, "bug", "ui"),
	}))

	todo, err := store.GetTasksByIndex(ctx, TaskIndexStatus, string(models.StatusTodo))
	require.NoError(t, err)
	require.Len(t, todo, 2)
	assert.Equal(t, "b", todo[0].ID, "status index results are ordered by position")
	assert.Equal(t, "a", todo[1].ID)

	bugs, err := store.GetTasksByIndex(ctx, TaskIndexLabel, "bug")
	require.NoError(t, err)
	ids := []string{}
	for _, task := range bugs {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{"a", "c"}, ids)

	// Label index results still carry every label of the task
	for _, task := range bugs {
		if task.ID == "c" {
			assert.Equal(t, []string{"bug", "ui"}, task.Labels)
		}
	}

	_, err = store.GetTasksByIndex(ctx, TaskIndex("title"), "x")
	assert.Error(t, err)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.PutTask(ctx, newTask("t1", models.StatusTodo, 0, "l1")))
	require.NoError(t, store.DeleteTask(ctx, "t1"))

	_, err := store.GetTask(ctx, "t1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	byLabel, err := store.GetTasksByIndex(ctx, TaskIndexLabel, "l1")
	require.NoError(t, err)
	assert.Empty(t, byLabel, "label index rows should go with the task")

	// Deleting again is not an error
	assert.NoError(t, store.DeleteTask(ctx, "t1"))
}

func TestSkipsUnknownStatusOnRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.PutTask(ctx, newTask("ok", models.StatusTodo, 0)))
	_, err := store.DB().ExecContext(ctx,
		`INSERT INTO tasks (id, title, status, sort_order, created_at, updated_at)
		 VALUES ('bad', 'Bad', 'archived', 0, 0, 0)`)
	require.NoError(t, err)

	all, err := store.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].ID)
	assert.Equal(t, "", all[0].Description, "NULL descriptions read back as empty")
}

func TestLabelRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.PutLabel(ctx, &models.Label{ID: "l2", Name: "ui", Color: "#10B981"}))
	require.NoError(t, store.PutLabel(ctx, &models.Label{ID: "l1", Name: "bug", Color: "#EF4444"}))

	labels, err := store.GetAllLabels(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "bug", labels[0].Name, "labels are ordered by name")

	require.NoError(t, store.PutLabel(ctx, &models.Label{ID: "l1", Name: "defect", Color: "#000000"}))
	got, err := store.GetLabel(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "defect", got.Name)
	assert.Equal(t, "#000000", got.Color)

	require.NoError(t, store.DeleteLabel(ctx, "l1"))
	_, err = store.GetLabel(ctx, "l1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, store.PutLabel(ctx, &models.Label{Name: "no id"}), ErrInvalidRecord)
}

func TestDeleteLabel_LeavesTaskReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.PutLabel(ctx, &models.Label{ID: "l1", Name: "bug", Color: "#EF4444"}))
	require.NoError(t, store.PutTask(ctx, newTask("t1", models.StatusTodo, 0, "l1")))
	require.NoError(t, store.DeleteLabel(ctx, "l1"))

	got, err := store.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1"}, got.Labels, "record-level delete does not cascade")
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, path := setupTestStoreFile(t)

	require.NoError(t, store.PutTask(ctx, newTask("t1", models.StatusInProgress, 3, "l1")))
	require.NoError(t, store.PutLabel(ctx, &models.Label{ID: "l1", Name: "bug", Color: "#EF4444"}))
	require.NoError(t, store.Close())

	reopened := Open(ctx, path, nil)
	defer reopened.Close()

	_, isSQLite := reopened.(*SQLiteStore)
	require.True(t, isSQLite, "reopening a valid path should give a SQLite store")

	task, err := reopened.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, task.Status)
	assert.Equal(t, 3, task.Order)

	labels, err := reopened.GetAllLabels(ctx)
	require.NoError(t, err)
	assert.Len(t, labels, 1)
}
