// Package server exposes the board over HTTP: a static page, a JSON API
// backed by the application facade, and Prometheus metrics.
package server

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thenoetrevino/tasklane/internal/app"
)

//go:embed static/index.html
var indexHTML []byte

const (
	maxBodySize     = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// New builds the echo instance with every route registered.
// A nil gatherer serves the default Prometheus registry.
func New(application *app.App, gatherer prometheus.Gatherer, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	Register(e, application, gatherer)
	return e
}

// Register mounts the page, the API and the operational endpoints on e
func Register(e *echo.Echo, application *app.App, gatherer prometheus.Gatherer) {
	e.GET("/", index)
	e.GET("/healthz", healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	api.GET("/state", getState(application))

	api.POST("/tasks", createTask(application))
	api.POST("/tasks/reorder", reorderTasks(application))
	api.PUT("/tasks/:id", updateTask(application))
	api.DELETE("/tasks/:id", deleteTask(application))
	api.POST("/tasks/:id/status", changeStatus(application))
	api.POST("/tasks/:id/drop", dropTask(application))

	api.POST("/labels", createLabel(application))
	api.PUT("/labels/:id", updateLabel(application))
	api.DELETE("/labels/:id", deleteLabel(application))

	api.PUT("/filters", setFilters(application))
	api.POST("/celebration/dismiss", dismissCelebration(application))
	api.POST("/theme/toggle", toggleTheme(application))
}

// Serve runs e on addr until ctx is cancelled, then shuts it down gracefully
func Serve(ctx context.Context, e *echo.Echo, addr string) error {
	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errChan
}

func index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}

func healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
