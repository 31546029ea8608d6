package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tasklane/internal/models"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// DropTask applies a drag-and-drop of task id onto the status column.
//
// Dropping onto the task's own column shifts it one slot toward the end
// and renumbers that column 0..n-1. Dropping onto another column appends
// the task there.
func (a *App) DropTask(ctx context.Context, id string, status models.Status) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !status.Valid() {
		return a.fail(OpChangeStatus, taskservice.ErrInvalidStatus)
	}

	i := a.indexOfTask(id)
	if i < 0 {
		return a.fail(OpChangeStatus, fmt.Errorf("drop %s: %w", id, taskservice.ErrTaskNotFound))
	}

	if a.tasks[i].Status != status {
		_, err := a.changeStatus(ctx, id, status)
		return err
	}

	reordered := planShift(a.tasks, id)
	if reordered == nil {
		return nil
	}
	return a.updateTaskOrder(ctx, reordered)
}

// planShift returns the status partition of id with id moved one slot later
// and every order renumbered from zero. It returns nil when id is unknown.
// The input tasks are not modified.
func planShift(tasks []*models.Task, id string) []*models.Task {
	var target *models.Task
	for _, t := range tasks {
		if t.ID == id {
			target = t
			break
		}
	}
	if target == nil {
		return nil
	}

	partition := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == target.Status {
			partition = append(partition, t.Clone())
		}
	}
	models.SortByOrder(partition)

	from := 0
	for i, t := range partition {
		if t.ID == id {
			from = i
			break
		}
	}
	to := min(len(partition)-1, from+1)

	moved := partition[from]
	partition = append(partition[:from], partition[from+1:]...)
	partition = append(partition[:to], append([]*models.Task{moved}, partition[to:]...)...)

	for i, t := range partition {
		t.Order = i
	}
	return partition
}
