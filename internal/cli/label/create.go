package label

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/models"
	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: fmt.Sprintf(`Create a new label.

Preset colors: %s
Without --color the label is %s.

Examples:
  tasklane label create --name=bug --color=#EF4444
  LABEL_ID=$(tasklane label create --name=ui --quiet)
`, strings.Join(models.DefaultLabelColors, " "), models.DefaultLabelColor),
		RunE: handler.Command(handler.HandlerFunc(runCreate), parseCreateFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "Label name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("color", "", "Label color in hex format (e.g., #FF5733)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func parseCreateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseString("name"); err != nil {
		return err
	}
	_, err := parser.ParseColor("color")
	return err
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	label, err := application.CreateLabel(ctx, labelservice.CreateLabelRequest{
		Name:  strings.TrimSpace(args.GetString("name", "")),
		Color: args.GetString("color", ""),
	})
	if err != nil {
		return nil, err
	}
	return labelAction{Action: "created", Label: newLabelView(label, nil)}, nil
}
