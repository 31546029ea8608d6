// Package theme implements the "tasklane theme" command
package theme

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// ThemeCmd returns the theme command with its get, set and toggle subcommands.
// Without a subcommand it prints the current theme.
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
		Long: `Show or change the light/dark theme. The choice is saved in the
preferences file and used by the board and the web page.

Examples:
  tasklane theme
  tasklane theme set dark
  tasklane theme toggle --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runGet)),
	}
	handler.AddOutputFlags(cmd)

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runGet)),
	}
	handler.AddOutputFlags(get)

	set := &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Switch to the given theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ThemeLight), string(models.ThemeDark)},
		RunE:      handler.SimpleCommand(handler.HandlerFunc(runSet)),
	}
	handler.AddOutputFlags(set)

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runToggle)),
	}
	handler.AddOutputFlags(toggle)

	cmd.AddCommand(get, set, toggle)
	return cmd
}

// result is the output of every theme command
type result struct {
	Theme   models.Theme `json:"theme"`
	Changed bool         `json:"changed"`
}

// GetID returns the theme name for quiet output
func (r result) GetID() string {
	return string(r.Theme)
}

// Render returns the human-readable line
func (r result) Render() string {
	if r.Changed {
		return fmt.Sprintf("%s Theme set to %s", styles.SuccessStyle.Render("✓"), r.Theme)
	}
	return fmt.Sprintf("Theme: %s", r.Theme)
}

func runGet(ctx context.Context, args *handler.Arguments) (any, error) {
	return result{Theme: args.CLI.App.Theme()}, nil
}

func runSet(ctx context.Context, args *handler.Arguments) (any, error) {
	raw, err := args.Arg(0, "theme")
	if err != nil {
		return nil, err
	}
	theme, err := models.ParseTheme(raw)
	if err != nil {
		return nil, &cli.UsageError{Msg: err.Error()}
	}
	if err := args.CLI.App.SetTheme(theme); err != nil {
		return nil, err
	}
	return result{Theme: theme, Changed: true}, nil
}

func runToggle(ctx context.Context, args *handler.Arguments) (any, error) {
	theme, err := args.CLI.App.ToggleTheme()
	if err != nil {
		return nil, err
	}
	return result{Theme: theme, Changed: true}, nil
}
