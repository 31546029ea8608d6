package task

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/models"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task at the end of its status column.

Examples:
  # Simple task (human-readable output)
  tasklane task create --title="Fix bug"

  # JSON output for agents
  tasklane task create --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(tasklane task create --title="Fix bug" --quiet)

  # Full example with all options
  tasklane task create \
    --title="Add dark mode" \
    --description="Toggle with **t** on the board" \
    --status=inProgress \
    --label=ui --label=feature
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate), parseCreateFlags),
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("status", string(models.StatusTodo), "Status: todo, inProgress, done")
	cmd.Flags().StringSlice("label", nil, "Label name or ID (repeatable)")

	// Agent-friendly flags (REQUIRED on all commands)
	handler.AddOutputFlags(cmd)

	return cmd
}

func parseCreateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseString("title"); err != nil {
		return err
	}
	_, err := parser.ParseStatus("status")
	return err
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	status, err := cli.ParseStatus(args.GetString("status", string(models.StatusTodo)))
	if err != nil {
		return nil, err
	}

	description, err := cli.ReadDescription(args.GetString("description", ""), os.Stdin)
	if err != nil {
		return nil, err
	}

	labelIDs, err := resolveLabels(application.Labels(), args.GetStringSlice("label", nil))
	if err != nil {
		return nil, err
	}

	task, err := application.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       args.GetString("title", ""),
		Description: description,
		Status:      status,
		LabelIDs:    labelIDs,
	})
	if err != nil {
		return nil, err
	}

	return taskAction{Action: "created", Task: newTaskView(task, application.Labels())}, nil
}

// resolveLabels maps label names or ids onto label ids
func resolveLabels(labels []*models.Label, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := cli.ResolveLabelID(labels, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
