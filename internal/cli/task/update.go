package task

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's title, description, or labels",
		Long: `Update fields of an existing task. Only the flags given are changed.
Use "task move" or "task drop" to change the status.

Examples:
  tasklane task update 3f2a --title="Fix login bug"
  echo "## Steps" | tasklane task update 3f2a --description=-
  tasklane task update 3f2a --label=bug --label=ui
  tasklane task update 3f2a --clear-labels
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runUpdate)),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description in markdown (use - for stdin)")
	cmd.Flags().StringSlice("label", nil, "Replace labels with these names or IDs (repeatable)")
	cmd.Flags().Bool("clear-labels", false, "Remove every label from the task")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	if !args.Has("title") && !args.Has("description") && !args.Has("label") && !args.GetBool("clear-labels") {
		return nil, &cli.UsageError{Msg: "nothing to update: pass --title, --description, --label or --clear-labels"}
	}
	if args.Has("label") && args.GetBool("clear-labels") {
		return nil, &cli.UsageError{Msg: "--label and --clear-labels cannot be combined"}
	}

	ref, err := args.Arg(0, "task id")
	if err != nil {
		return nil, err
	}
	tasks := application.Tasks()
	id, err := cli.ResolveTaskID(tasks, ref)
	if err != nil {
		return nil, err
	}

	task := findTask(tasks, id)

	if args.Has("title") {
		task.Title = args.GetString("title", task.Title)
	}
	if args.Has("description") {
		task.Description, err = cli.ReadDescription(args.GetString("description", ""), os.Stdin)
		if err != nil {
			return nil, err
		}
	}
	if args.Has("label") {
		task.Labels, err = resolveLabels(application.Labels(), args.GetStringSlice("label", nil))
		if err != nil {
			return nil, err
		}
	}
	if args.GetBool("clear-labels") {
		task.Labels = []string{}
	}

	updated, err := application.UpdateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	return taskAction{Action: "updated", Task: newTaskView(updated, application.Labels())}, nil
}
