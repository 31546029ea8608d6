package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// NopStore is the inert RecordStore used when no storage is available.
// Reads return empty results and writes succeed without persisting anything,
// so the application stays usable without persistence.
type NopStore struct{}

func (NopStore) GetAllTasks(context.Context) ([]*models.Task, error) {
	return []*models.Task{}, nil
}

func (NopStore) GetTask(_ context.Context, id string) (*models.Task, error) {
	return nil, fmt.Errorf("task %s: %w", id, ErrRecordNotFound)
}

func (NopStore) GetTasksByIndex(context.Context, TaskIndex, string) ([]*models.Task, error) {
	return []*models.Task{}, nil
}

func (NopStore) PutTask(context.Context, *models.Task) error { return nil }
func (NopStore) PutTasks(context.Context, []*models.Task) error { return nil }
func (NopStore) DeleteTask(context.Context, string) error { return nil }

func (NopStore) GetAllLabels(context.Context) ([]*models.Label, error) {
	return []*models.Label{}, nil
}

func (NopStore) GetLabel(_ context.Context, id string) (*models.Label, error) {
	return nil, fmt.Errorf("label %s: %w", id, ErrRecordNotFound)
}

func (NopStore) PutLabel(context.Context, *models.Label) error { return nil }
func (NopStore) DeleteLabel(context.Context, string) error { return nil }
func (NopStore) Close() error { return nil }
