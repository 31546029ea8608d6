package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	ref, err := args.Arg(0, "task id")
	if err != nil {
		return nil, err
	}
	id, err := cli.ResolveTaskID(application.Tasks(), ref)
	if err != nil {
		return nil, err
	}

	if err := application.RemoveTask(ctx, id); err != nil {
		return nil, err
	}
	return deleted{ID: id, Deleted: true}, nil
}
