package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool
}

// NewCLI opens the board described by cfg and loads it into memory
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	application := NewApp(ctx, cfg, nil)
	if err := application.Load(ctx); err != nil {
		_ = application.Close()
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// NewApp wires an App from configuration. Storage that cannot be opened
// degrades to an in-memory board instead of failing.
func NewApp(ctx context.Context, cfg *config.Config, extra []app.Option) *app.App {
	logger := slog.Default()
	store := database.Open(ctx, cfg.DatabasePath(), logger)

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithThemeStore(config.NewPreferences(cfg.PreferencesPath())),
		app.WithDefaultTheme(models.Theme(cfg.DefaultTheme)),
		app.WithCelebrationTimeout(cfg.CelebrationTimeout),
	}
	return app.New(store, append(opts, extra...)...)
}

// Close cleans up CLI resources. Injected apps are left open for their owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp makes commands use application instead of opening storage
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// WithConfig attaches the loaded configuration to ctx
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration attached to ctx, or defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the command. An App injected with
// WithApp is reused; otherwise storage is opened from the configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := ConfigFromContext(ctx)

	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application, Config: cfg}, nil
	}

	return NewCLI(ctx, cfg)
}
