package app

import (
	"context"

	"github.com/thenoetrevino/tasklane/internal/models"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// CreateTask creates a task at the end of its status and adds it to the cache
func (a *App) CreateTask(ctx context.Context, req taskservice.CreateTaskRequest) (*models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	task, err := a.TaskService.CreateTask(ctx, req)
	if err != nil {
		return nil, a.fail(OpCreateTask, err)
	}

	a.tasks = append(a.tasks, task.Clone())
	models.SortByOrder(a.tasks)
	a.succeed(OpCreateTask)
	a.refreshCompletion()
	return task, nil
}

// UpdateTask persists every field of task and replaces the cached copy
func (a *App) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	updated, err := a.TaskService.UpdateTask(ctx, task)
	if err != nil {
		return nil, a.fail(OpUpdateTask, err)
	}

	a.replaceCached(updated)
	a.succeed(OpUpdateTask)
	a.refreshCompletion()
	return updated, nil
}

// RemoveTask deletes a task and drops it from the cache
func (a *App) RemoveTask(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.TaskService.DeleteTask(ctx, id); err != nil {
		return a.fail(OpDeleteTask, err)
	}

	if i := a.indexOfTask(id); i >= 0 {
		a.tasks = append(a.tasks[:i], a.tasks[i+1:]...)
	}
	a.succeed(OpDeleteTask)
	a.refreshCompletion()
	return nil
}

// ChangeStatus moves a task to the end of another status
func (a *App) ChangeStatus(ctx context.Context, id string, status models.Status) (*models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.changeStatus(ctx, id, status)
}

// UpdateTaskOrder persists tasks verbatim and merges them into the cache by id
func (a *App) UpdateTaskOrder(ctx context.Context, tasks []*models.Task) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.updateTaskOrder(ctx, tasks)
}

func (a *App) changeStatus(ctx context.Context, id string, status models.Status) (*models.Task, error) {
	task, err := a.TaskService.ChangeStatus(ctx, id, status)
	if err != nil {
		return nil, a.fail(OpChangeStatus, err)
	}

	a.replaceCached(task)
	a.succeed(OpChangeStatus)
	a.refreshCompletion()
	return task, nil
}

func (a *App) updateTaskOrder(ctx context.Context, tasks []*models.Task) error {
	if err := a.TaskService.ReorderTasks(ctx, tasks); err != nil {
		return a.fail(OpReorderTasks, err)
	}

	for _, t := range tasks {
		a.replaceCached(t)
	}
	a.succeed(OpReorderTasks)
	a.refreshCompletion()
	return nil
}

// replaceCached swaps in a copy of task, or appends it if unknown, and keeps
// the cache sorted. Callers hold a.mu.
func (a *App) replaceCached(task *models.Task) {
	if i := a.indexOfTask(task.ID); i >= 0 {
		a.tasks[i] = task.Clone()
	} else {
		a.tasks = append(a.tasks, task.Clone())
	}
	models.SortByOrder(a.tasks)
}
