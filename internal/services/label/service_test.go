package label

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T) (*service, *database.SQLiteStore) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	svc := NewService(store, nil).(*service)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

// failingPutStore fails every bulk write
type failingPutStore struct {
	*database.SQLiteStore
}

func (failingPutStore) PutTasks(context.Context, []*models.Task) error {
	return errors.New("disk full")
}

// ============================================================================
// CREATE / UPDATE
// ============================================================================

func TestCreateLabel(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	label, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "bug", Color: "#EF4444"})
	require.NoError(t, err)
	assert.NotEmpty(t, label.ID)
	assert.Equal(t, "bug", label.Name)
	assert.Equal(t, "#EF4444", label.Color)

	got, err := svc.GetLabel(ctx, label.ID)
	require.NoError(t, err)
	assert.Equal(t, label, got)
}

func TestCreateLabel_DefaultColor(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	label, err := svc.CreateLabel(context.Background(), CreateLabelRequest{Name: "misc"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLabelColor, label.Color)
}

func TestCreateLabel_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		req     CreateLabelRequest
		wantErr error
	}{
		{"empty name", CreateLabelRequest{Name: "", Color: "#FFFFFF"}, ErrEmptyName},
		{"name too long", CreateLabelRequest{Name: strings.Repeat("n", 51), Color: "#FFFFFF"}, ErrNameTooLong},
		{"short color", CreateLabelRequest{Name: "x", Color: "#FFF"}, ErrInvalidColor},
		{"no hash", CreateLabelRequest{Name: "x", Color: "FFFFFF"}, ErrInvalidColor},
		{"non hex", CreateLabelRequest{Name: "x", Color: "#GGGGGG"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateLabel(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestUpdateLabel(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	label, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "bug"})
	require.NoError(t, err)

	updated, err := svc.UpdateLabel(ctx, &models.Label{ID: label.ID, Name: "defect", Color: "#8B5CF6"})
	require.NoError(t, err)
	assert.Equal(t, "defect", updated.Name)

	all, err := svc.GetAllLabels(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "#8B5CF6", all[0].Color)
}

func TestUpdateLabel_Errors(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateLabel(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidLabelID)

	_, err = svc.UpdateLabel(ctx, &models.Label{ID: "missing", Name: "x", Color: "#000000"})
	assert.ErrorIs(t, err, ErrLabelNotFound)

	_, err = svc.UpdateLabel(ctx, &models.Label{ID: "missing", Name: "x", Color: "red"})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

// ============================================================================
// CASCADE DELETE
// ============================================================================

func TestDeleteLabel_StripsReferences(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	ctx := context.Background()

	bug := testutil.CreateTestLabel(t, store, "bug", "#EF4444")
	ui := testutil.CreateTestLabel(t, store, "ui", "#3B82F6")

	a := testutil.CreateTestTask(t, store, "A", models.StatusTodo, 0, bug.ID, ui.ID)
	b := testutil.CreateTestTask(t, store, "B", models.StatusDone, 0, ui.ID)
	c := testutil.CreateTestTask(t, store, "C", models.StatusTodo, 2, bug.ID)

	rewritten, err := svc.DeleteLabel(ctx, bug.ID)
	require.NoError(t, err)
	require.Len(t, rewritten, 2, "only A and C referenced the label")
	for _, task := range rewritten {
		assert.NotContains(t, task.Labels, bug.ID)
		assert.True(t, task.UpdatedAt.Equal(svc.now()))
	}

	_, err = svc.GetLabel(ctx, bug.ID)
	assert.ErrorIs(t, err, ErrLabelNotFound)

	tasks, err := store.GetAllTasks(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotContains(t, task.Labels, bug.ID, "task %s still references deleted label", task.Title)
	}

	gotA, err := store.GetTask(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ui.ID}, gotA.Labels)
	assert.True(t, gotA.UpdatedAt.Equal(svc.now()), "rewritten tasks get a fresh UpdatedAt")

	gotB, err := store.GetTask(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, gotB.UpdatedAt.Equal(b.UpdatedAt), "untouched tasks keep their UpdatedAt")

	gotC, err := store.GetTask(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, gotC.Labels)
	assert.Equal(t, 2, gotC.Order)
}

func TestDeleteLabel_InvalidID(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.DeleteLabel(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidLabelID)
}

func TestDeleteLabel_StripFailureLeavesDanglingReferences(t *testing.T) {
	t.Parallel()
	store := testutil.SetupTestStore(t)
	svc := NewService(failingPutStore{store}, nil)
	ctx := context.Background()

	bug := testutil.CreateTestLabel(t, store, "bug", "#EF4444")
	a := testutil.CreateTestTask(t, store, "A", models.StatusTodo, 0, bug.ID)
	b := testutil.CreateTestTask(t, store, "B", models.StatusTodo, 1, bug.ID)

	_, err := svc.DeleteLabel(ctx, bug.ID)
	require.Error(t, err)

	// Label record is gone, tasks survive with the old reference
	_, err = store.GetLabel(ctx, bug.ID)
	assert.True(t, database.IsNotFound(err))

	for _, id := range []string{a.ID, b.ID} {
		task, err := store.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{bug.ID}, task.Labels)
	}

	// Healing with a working store removes the dangling references
	healer := NewService(store, nil)
	n, err := healer.StripLabel(ctx, bug.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStripLabel_NoReferences(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	n, err := svc.StripLabel(context.Background(), "unused")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
