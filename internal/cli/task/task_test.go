package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/testutil"
	"github.com/thenoetrevino/tasklane/internal/testutil/cli"
)

// ============================================================================
// Command Structure Tests
// ============================================================================

func TestTaskCmd_Subcommands(t *testing.T) {
	cmd := TaskCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create", "list", "show", "update", "delete", "move", "drop"}, names)

	for _, sub := range cmd.Commands() {
		assert.NotNil(t, sub.Flags().Lookup("json"), "%s is missing --json", sub.Name())
		assert.NotNil(t, sub.Flags().Lookup("quiet"), "%s is missing --quiet", sub.Name())
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestCreateTask_Quiet(t *testing.T) {
	store, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Simple Task", "--quiet"})
	require.NoError(t, err)

	id := strings.TrimSpace(output)
	require.NotEmpty(t, id)

	stored, err := store.GetTask(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Simple Task", stored.Title)
	assert.Equal(t, models.StatusTodo, stored.Status)
	assert.Equal(t, 0, stored.Order)
}

func TestCreateTask_AllFieldsJSON(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	bug := testutil.CreateTestLabel(t, store, "bug", "#EF4444")
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"--title", "Detailed Task",
		"--description", "Steps to **reproduce**",
		"--status", "in-progress",
		"--label", "Bug",
		"--json",
	})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "created", data["action"])

	task := data["task"].(map[string]interface{})
	assert.Equal(t, "Detailed Task", task["title"])
	assert.Equal(t, "Steps to **reproduce**", task["description"])
	assert.Equal(t, "inProgress", task["status"])

	labels := task["labels"].([]interface{})
	require.Len(t, labels, 1)
	assert.Equal(t, bug.ID, labels[0].(map[string]interface{})["id"])

	stored, err := store.GetTask(context.Background(), task["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, []string{bug.ID}, stored.Labels)
}

func TestCreateTask_AppendsToColumn(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, store, "existing", models.StatusDone, 4)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "next", "--status", "done", "--quiet"})
	require.NoError(t, err)

	stored, err := store.GetTask(context.Background(), strings.TrimSpace(output))
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Order)
}

func TestCreateTask_Negative(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "blank title", args: []string{"--title", "   "}, wantCode: clipkg.ExitUsage},
		{name: "title too long", args: []string{"--title", strings.Repeat("x", 256)}, wantCode: clipkg.ExitValidation},
		{name: "invalid status", args: []string{"--title", "x", "--status", "blocked"}, wantCode: clipkg.ExitValidation},
		{name: "unknown label", args: []string{"--title", "x", "--label", "nope"}, wantCode: clipkg.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, app := cli.SetupCLITest(t)

			_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, clipkg.ExitCode(err))

			tasks, err := store.GetAllTasks(context.Background())
			require.NoError(t, err)
			assert.Empty(t, tasks)
		})
	}
}

func TestCreateTask_MissingTitleFlag(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--quiet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

// ============================================================================
// List Tests
// ============================================================================

func TestListTasks_JSON(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	bug := testutil.CreateTestLabel(t, store, "bug", "#EF4444")
	testutil.CreateTestTask(t, store, "B", models.StatusTodo, 1, bug.ID)
	testutil.CreateTestTask(t, store, "A", models.StatusTodo, 0)
	testutil.CreateTestTask(t, store, "C", models.StatusDone, 0, bug.ID)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, "all", data["statusFilter"])
	columns := data["columns"].([]interface{})
	require.Len(t, columns, 3)

	todo := columns[0].(map[string]interface{})
	assert.Equal(t, "todo", todo["status"])
	assert.Equal(t, float64(2), todo["count"])
	todoTasks := todo["tasks"].([]interface{})
	assert.Equal(t, "A", todoTasks[0].(map[string]interface{})["title"])
	assert.Equal(t, "B", todoTasks[1].(map[string]interface{})["title"])

	assert.Equal(t, float64(0), columns[1].(map[string]interface{})["count"])
	assert.Equal(t, float64(1), columns[2].(map[string]interface{})["count"])
}

func TestListTasks_Filters(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	bug := testutil.CreateTestLabel(t, store, "bug", "#EF4444")
	b := testutil.CreateTestTask(t, store, "B", models.StatusTodo, 1, bug.ID)
	testutil.CreateTestTask(t, store, "A", models.StatusTodo, 0)
	testutil.CreateTestTask(t, store, "C", models.StatusDone, 0, bug.ID)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "todo", "--label", "bug", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, b.ID, strings.TrimSpace(output))

	assert.Equal(t, bug.ID, app.LabelFilter())
	assert.Equal(t, "todo", string(app.StatusFilter()))
}

func TestListTasks_EmptyState(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(output, "No tasks"))
	assert.NotContains(t, output, "All tasks completed")
}

func TestListTasks_Celebration(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, store, "only", models.StatusDone, 0)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "All tasks completed")
}

func TestListTasks_InvalidFilter(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "later"})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--label", "missing"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

// ============================================================================
// Show Tests
// ============================================================================

func TestShowTask(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	task := testutil.CreateTestTask(t, store, "Write release notes", models.StatusInProgress, 0)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID[:8]})
	require.NoError(t, err)
	assert.Contains(t, output, "Write release notes")
	assert.Contains(t, output, task.ID)

	output, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID, "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, task.ID, data["id"])
	assert.Equal(t, "inProgress", data["status"])
}

func TestShowTask_NotFound(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"deadbeef"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

// ============================================================================
// Update Tests
// ============================================================================

func TestUpdateTask(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	bug := testutil.CreateTestLabel(t, store, "bug", "#EF4444")
	ui := testutil.CreateTestLabel(t, store, "ui", "#3B82F6")
	task := testutil.CreateTestTask(t, store, "Old", models.StatusTodo, 0, bug.ID)
	cli.Reload(t, app)

	_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--title", "New", "--label", "ui", "--quiet"})
	require.NoError(t, err)

	stored, err := store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.Title)
	assert.Equal(t, []string{ui.ID}, stored.Labels)
	assert.Equal(t, models.StatusTodo, stored.Status)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--clear-labels", "--quiet"})
	require.NoError(t, err)
	stored, err = store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Labels)
}

func TestUpdateTask_Negative(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	task := testutil.CreateTestTask(t, store, "Keep", models.StatusTodo, 0)
	cli.Reload(t, app)

	_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID})
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--title", ""})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))

	stored, err := store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep", stored.Title)
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestDeleteTask(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	task := testutil.CreateTestTask(t, store, "Doomed", models.StatusTodo, 0)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{task.ID, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, task.ID, strings.TrimSpace(output))

	_, err = store.GetTask(context.Background(), task.ID)
	assert.Error(t, err)
	assert.Empty(t, app.Tasks())
}

// ============================================================================
// Move / Drop Tests
// ============================================================================

func TestMoveTask_RaisesCelebration(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, store, "done already", models.StatusDone, 0)
	task := testutil.CreateTestTask(t, store, "last one", models.StatusTodo, 0)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{task.ID, "--status", "done", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	moved := data["task"].(map[string]interface{})
	assert.Equal(t, "done", moved["status"])
	assert.Equal(t, float64(1), moved["order"])

	assert.True(t, app.AllTasksCompleted())
	assert.True(t, app.Celebrating())
}

func TestMoveTask_RequiresStatus(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	task := testutil.CreateTestTask(t, store, "x", models.StatusTodo, 0)
	cli.Reload(t, app)

	_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{task.ID})
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}

func TestDropTask_SameColumnShiftsDown(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	a := testutil.CreateTestTask(t, store, "A", models.StatusTodo, 0)
	b := testutil.CreateTestTask(t, store, "B", models.StatusTodo, 1)
	c := testutil.CreateTestTask(t, store, "C", models.StatusTodo, 2)
	cli.Reload(t, app)

	_, err := cli.ExecuteCLICommand(t, app, DropCmd(), []string{a.ID, "--status", "todo", "--quiet"})
	require.NoError(t, err)

	want := map[string]int{b.ID: 0, a.ID: 1, c.ID: 2}
	for id, order := range want {
		stored, err := store.GetTask(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, order, stored.Order, stored.Title)
	}
}

func TestDropTask_OtherColumnAppends(t *testing.T) {
	store, app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, store, "D", models.StatusInProgress, 3)
	a := testutil.CreateTestTask(t, store, "A", models.StatusTodo, 0)
	cli.Reload(t, app)

	output, err := cli.ExecuteCLICommand(t, app, DropCmd(), []string{a.ID, "--status", "inProgress"})
	require.NoError(t, err)
	assert.Contains(t, output, "dropped")

	stored, err := store.GetTask(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, stored.Status)
	assert.Equal(t, 4, stored.Order)
}
