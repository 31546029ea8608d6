package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
)

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <label>",
		Short: "Delete a label and remove it from every task",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	ref, err := args.Arg(0, "label")
	if err != nil {
		return nil, err
	}
	id, err := cli.ResolveLabelID(application.Labels(), ref)
	if err != nil {
		return nil, err
	}

	detached := 0
	for _, t := range application.Tasks() {
		if t.HasLabel(id) {
			detached++
		}
	}

	if err := application.RemoveLabel(ctx, id); err != nil {
		return nil, err
	}
	return labelDeleted{ID: id, Deleted: true, Detached: detached}, nil
}
