package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/metrics"
	"github.com/thenoetrevino/tasklane/internal/server"
	"github.com/thenoetrevino/tasklane/internal/tui"
)

// drainTimeout bounds how long a cancelled program gets to restore the terminal
const drainTimeout = 2 * time.Second

// notifyContext cancels ctx on interrupt or SIGTERM for graceful shutdown
func notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// Launch opens the board described by cfg and runs the TUI until the user
// quits or a shutdown signal arrives. A failed initial load is shown on the
// board rather than returned.
func Launch(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := notifyContext(ctx)
	defer cancel()

	application := cli.NewApp(ctx, cfg, nil)
	defer closeApp(application)

	if err := application.Load(ctx); err != nil {
		slog.Warn("initial load failed", "error", err)
	}

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		errChan <- tui.Run(ctx, application, cfg)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(drainTimeout):
		}
	}

	return nil
}

// Serve opens the board described by cfg and serves it over HTTP on addr
// until a shutdown signal arrives. Board operations are exported as
// Prometheus metrics next to the Go runtime collectors.
func Serve(ctx context.Context, cfg *config.Config, addr string) error {
	ctx, cancel := notifyContext(ctx)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	application := cli.NewApp(ctx, cfg, []app.Option{app.WithMetrics(metrics.New(reg))})
	defer closeApp(application)

	if err := application.Load(ctx); err != nil {
		slog.Warn("initial load failed", "error", err)
	}

	e := server.New(application, reg, slog.Default())
	if err := server.Serve(ctx, e, addr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func closeApp(application *app.App) {
	if err := application.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
