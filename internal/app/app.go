// Package app is the application state facade: it owns the in-memory board
// cache, the filters and the theme, and routes every change through the
// task and label services.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/metrics"
	"github.com/thenoetrevino/tasklane/internal/models"
	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// App holds all application services and the board state shown to users.
// Every exported method takes the same mutex, so operations are applied
// one at a time in the order they are issued.
type App struct {
	store   database.RecordStore
	logger  *slog.Logger
	metrics *metrics.Metrics
	themes  ThemeStore

	// Service layer (business logic)
	TaskService  taskservice.Service
	LabelService labelservice.Service

	mu           sync.Mutex
	tasks        []*models.Task
	labels       []*models.Label
	statusFilter StatusFilter
	labelFilter  string
	theme        models.Theme
	lastErr      string

	allCompleted       bool
	celebrating        bool
	celebrationTimeout time.Duration
	celebrationTimer   *time.Timer
	celebrationSeq     uint64
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(store database.RecordStore, opts ...Option) *App {
	cfg := &appConfig{
		defaultTheme: models.ThemeLight,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.taskService == nil {
		cfg.taskService = taskservice.NewService(store)
	}
	if cfg.labelService == nil {
		cfg.labelService = labelservice.NewService(store, cfg.logger)
	}

	a := &App{
		store:              store,
		logger:             cfg.logger,
		metrics:            cfg.metrics,
		themes:             cfg.themes,
		TaskService:        cfg.taskService,
		LabelService:       cfg.labelService,
		tasks:              []*models.Task{},
		labels:             []*models.Label{},
		statusFilter:       FilterAll,
		labelFilter:        LabelFilterAll,
		celebrationTimeout: cfg.celebrationTimeout,
	}
	a.theme = a.initialTheme(cfg.defaultTheme)
	return a
}

// Close stops the celebration timer and closes the record store
func (a *App) Close() error {
	a.mu.Lock()
	a.stopCelebrationTimer()
	a.mu.Unlock()

	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Load replaces the cache with everything in storage
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tasks, err := a.TaskService.GetAllTasks(ctx)
	if err != nil {
		return a.fail(OpLoad, err)
	}
	labels, err := a.LabelService.GetAllLabels(ctx)
	if err != nil {
		return a.fail(OpLoad, err)
	}

	models.SortByOrder(tasks)
	a.tasks = tasks
	a.labels = labels
	a.lastErr = ""

	// The first evaluation sets the baseline without celebrating
	if a.filtersCleared() {
		a.allCompleted = models.AllCompleted(a.tasks)
	}

	a.succeed(OpLoad)
	a.logger.Debug("board loaded", "tasks", len(tasks), "labels", len(labels))
	return nil
}

// Err returns the message of the last failed operation, or "" when the
// last load succeeded and nothing has failed since
func (a *App) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// ClearError forgets the last failure message
func (a *App) ClearError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastErr = ""
}

// Tasks returns a copy of every cached task ordered by position
func (a *App) Tasks() []*models.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return models.CloneTasks(a.tasks)
}

// Labels returns a copy of every cached label
func (a *App) Labels() []*models.Label {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneLabels(a.labels)
}

// Snapshot is a consistent copy of the whole board state
type Snapshot struct {
	Tasks             []*models.Task  `json:"tasks"`
	Labels            []*models.Label `json:"labels"`
	StatusFilter      StatusFilter    `json:"statusFilter"`
	LabelFilter       string          `json:"labelFilter"`
	AllTasksCompleted bool            `json:"allTasksCompleted"`
	Celebrating       bool            `json:"celebrating"`
	Theme             models.Theme    `json:"theme"`
	Error             string          `json:"error,omitempty"`
}

// Snapshot returns the board state taken under one lock
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Tasks:             models.CloneTasks(a.tasks),
		Labels:            cloneLabels(a.labels),
		StatusFilter:      a.statusFilter,
		LabelFilter:       a.labelFilter,
		AllTasksCompleted: a.allCompleted,
		Celebrating:       a.celebrating,
		Theme:             a.theme,
		Error:             a.lastErr,
	}
}

// fail records, logs and counts a failed operation. Callers hold a.mu.
func (a *App) fail(op Op, err error) error {
	opErr := &OperationError{Op: op, Err: err}
	a.lastErr = opErr.Error()
	a.metrics.ObserveOperation(string(op), err)

	level := slog.LevelError
	if IsValidation(err) || IsNotFound(err) {
		level = slog.LevelWarn
	}
	a.logger.Log(context.Background(), level, opErr.Error(), "op", string(op), "error", err)
	return opErr
}

// succeed counts a successful operation and publishes board sizes. Callers hold a.mu.
func (a *App) succeed(op Op) {
	a.metrics.ObserveOperation(string(op), nil)
	a.metrics.SetBoard(a.tasks, len(a.labels))
}

// indexOfTask returns the cache position of id, or -1. Callers hold a.mu.
func (a *App) indexOfTask(id string) int {
	for i, t := range a.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneLabels(labels []*models.Label) []*models.Label {
	out := make([]*models.Label, len(labels))
	for i, l := range labels {
		out[i] = l.Clone()
	}
	return out
}

// AsOperationError unwraps err into an *OperationError when it is one
func AsOperationError(err error) (*OperationError, bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}
