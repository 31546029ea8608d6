package database

import (
	"context"
	"errors"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// Record store errors
var (
	// ErrRecordNotFound is returned by Get* when no record has the given id
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecord is returned when a record fails validation at the storage boundary
	ErrInvalidRecord = errors.New("invalid record")
)

// TaskIndex names a secondary index on the tasks table
type TaskIndex string

const (
	// TaskIndexStatus indexes tasks by their status
	TaskIndexStatus TaskIndex = "status"
	// TaskIndexLabel is a multi-entry index: a task appears once per label it carries
	TaskIndexLabel TaskIndex = "labels"
)

// TaskStore defines record operations on the tasks table.
type TaskStore interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	GetTasksByIndex(ctx context.Context, index TaskIndex, value string) ([]*models.Task, error)
	PutTask(ctx context.Context, task *models.Task) error
	// PutTasks writes every task or none of them
	PutTasks(ctx context.Context, tasks []*models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// LabelStore defines record operations on the labels table.
type LabelStore interface {
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabel(ctx context.Context, id string) (*models.Label, error)
	PutLabel(ctx context.Context, label *models.Label) error
	DeleteLabel(ctx context.Context, id string) error
}

// RecordStore is the durable key/record storage behind the repositories.
// Consumers can depend on TaskStore or LabelStore alone.
type RecordStore interface {
	TaskStore
	LabelStore
	Close() error
}

// Compile-time verification that both implementations satisfy RecordStore
var (
	_ RecordStore = (*SQLiteStore)(nil)
	_ RecordStore = NopStore{}
)
