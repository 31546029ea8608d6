package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/label"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/cli/task"
	"github.com/thenoetrevino/tasklane/internal/cli/theme"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/launcher"
	"github.com/thenoetrevino/tasklane/internal/logging"
)

var (
	configPath string
	logCloser  io.Closer
)

// NewRootCmd builds the tasklane command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasklane",
		Short: "Tasklane - a local kanban board",
		Long: `Tasklane keeps a three-column kanban board (Todo, In Progress, Done)
in a local database. Use the subcommands to script it, "tasklane board"
for the terminal UI, or "tasklane serve" for the web page.`,
		PersistentPreRunE: setup,
		RunE:              runBoard,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tasklane/config.yaml)")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(label.LabelCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
	rootCmd.AddCommand(boardCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}

// Execute runs the root command. Errors a subcommand has not already
// printed are written to stderr.
func Execute(version string) error {
	rootCmd := NewRootCmd()
	rootCmd.Version = version

	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}

	var reported *cli.ReportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// setup loads configuration, starts file logging and applies the theme's
// colors before any subcommand runs
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	closer, err := logging.Init(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer

	styles.Init(cfg.Scheme(currentTheme(cfg)))
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))

	slog.Debug("command started", "command", cmd.CommandPath(), "config", cfg.Path())
	return nil
}

// currentTheme is the saved preference, else the configured default
func currentTheme(cfg *config.Config) string {
	saved, ok, err := config.NewPreferences(cfg.PreferencesPath()).LoadTheme()
	if err != nil || !ok {
		return cfg.DefaultTheme
	}
	return string(saved)
}

func boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the board in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runBoard,
	}
}

func runBoard(cmd *cobra.Command, _ []string) error {
	return launcher.Launch(cmd.Context(), cli.ConfigFromContext(cmd.Context()))
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board as a web page with a JSON API",
		Long: `Serve the board over HTTP. The page, the JSON API under /api and
Prometheus metrics under /metrics share one listener.

Examples:
  tasklane serve
  tasklane serve --addr 127.0.0.1:8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := cli.ConfigFromContext(cmd.Context())
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.Server.Addr
			}
			return launcher.Serve(cmd.Context(), cfg, addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config, 127.0.0.1:7070)")
	return cmd
}
