package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all labels",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	tasks := application.Tasks()
	labels := application.Labels()
	result := make(labelList, len(labels))
	for i, l := range labels {
		result[i] = newLabelView(l, tasks)
	}
	return result, nil
}
