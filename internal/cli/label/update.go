package label

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// UpdateCmd returns the label update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <label>",
		Short: "Rename or recolor a label",
		Long: `Update a label, given by name or ID.

Examples:
  tasklane label update bug --name=defect
  tasklane label update bug --color=#F59E0B --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runUpdate), parseUpdateFlags),
	}

	cmd.Flags().String("name", "", "New label name")
	cmd.Flags().String("color", "", "New label color in hex format")

	handler.AddOutputFlags(cmd)

	return cmd
}

func parseUpdateFlags(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("color") {
		return &cli.UsageError{Msg: "nothing to update: pass --name or --color"}
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		return cli.ValidateColorHex(color)
	}
	return nil
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	ref, err := args.Arg(0, "label")
	if err != nil {
		return nil, err
	}
	labels := application.Labels()
	id, err := cli.ResolveLabelID(labels, ref)
	if err != nil {
		return nil, err
	}

	label := models.FindLabel(labels, id)
	if args.Has("name") {
		label.Name = strings.TrimSpace(args.GetString("name", ""))
	}
	if args.Has("color") {
		label.Color = args.GetString("color", label.Color)
	}

	updated, err := application.UpdateLabel(ctx, label)
	if err != nil {
		return nil, err
	}
	return labelAction{Action: "updated", Label: newLabelView(updated, application.Tasks())}, nil
}
