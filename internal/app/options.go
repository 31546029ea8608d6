package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tasklane/internal/metrics"
	"github.com/thenoetrevino/tasklane/internal/models"
	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger             *slog.Logger
	metrics            *metrics.Metrics
	themes             ThemeStore
	defaultTheme       models.Theme
	celebrationTimeout time.Duration
	taskService        taskservice.Service
	labelService       labelservice.Service
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithMetrics records operation counts and board sizes in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}

// WithThemeStore persists the theme preference in store
func WithThemeStore(store ThemeStore) Option {
	return func(cfg *appConfig) {
		cfg.themes = store
	}
}

// WithDefaultTheme sets the theme used when no preference is saved
func WithDefaultTheme(theme models.Theme) Option {
	return func(cfg *appConfig) {
		cfg.defaultTheme = theme
	}
}

// WithCelebrationTimeout sets how long the celebration stays raised.
// Zero or negative keeps it raised until dismissed.
func WithCelebrationTimeout(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.celebrationTimeout = d
	}
}

// WithServices replaces the store-backed services
func WithServices(tasks taskservice.Service, labels labelservice.Service) Option {
	return func(cfg *appConfig) {
		cfg.taskService = tasks
		cfg.labelService = labels
	}
}
