package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to the end of another status",
		Long: `Change a task's status. The task is placed after every task already
in the target column.

Examples:
  tasklane task move 3f2a --status=inProgress
  tasklane task move 3f2a --status=done --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runMove), parseStatusFlag),
	}

	cmd.Flags().String("status", "", "Target status: todo, inProgress, done (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

// DropCmd returns the task drop subcommand
func DropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop <task-id>",
		Short: "Drop a task onto a status column, as on the board",
		Long: `Apply a drag-and-drop of a task onto a column.

Dropping onto the task's own column moves it one slot down.
Dropping onto another column moves it to the end of that column.

Examples:
  tasklane task drop 3f2a --status=todo
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runDrop), parseStatusFlag),
	}

	cmd.Flags().String("status", "", "Column to drop onto: todo, inProgress, done (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func parseStatusFlag(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseStatus("status")
	return err
}

func runMove(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	id, status, err := taskAndStatus(application.Tasks(), args)
	if err != nil {
		return nil, err
	}

	task, err := application.ChangeStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return taskAction{Action: "moved", Task: newTaskView(task, application.Labels())}, nil
}

func runDrop(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	id, status, err := taskAndStatus(application.Tasks(), args)
	if err != nil {
		return nil, err
	}

	if err := application.DropTask(ctx, id, status); err != nil {
		return nil, err
	}
	task := findTask(application.Tasks(), id)
	if task == nil {
		return nil, &cli.NotFoundError{Kind: "task", Ref: id}
	}
	return taskAction{Action: "dropped", Task: newTaskView(task, application.Labels())}, nil
}

func taskAndStatus(tasks []*models.Task, args *handler.Arguments) (string, models.Status, error) {
	ref, err := args.Arg(0, "task id")
	if err != nil {
		return "", "", err
	}
	id, err := cli.ResolveTaskID(tasks, ref)
	if err != nil {
		return "", "", err
	}
	status, err := cli.ParseStatus(args.GetString("status", ""))
	if err != nil {
		return "", "", err
	}
	return id, status, nil
}
