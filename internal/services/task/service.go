package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// MaxTitleLength is the longest task title accepted, in bytes
const MaxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	GetTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error)
	GetTasksByLabel(ctx context.Context, labelID string) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Ordering
	ChangeStatus(ctx context.Context, id string, status models.Status) (*models.Task, error)
	ReorderTasks(ctx context.Context, tasks []*models.Task) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.Status
	LabelIDs    []string
}

// service implements Service interface
type service struct {
	repo database.TaskStore
	now  func() time.Time
}

// NewService creates a new task service
func NewService(repo database.TaskStore) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// GetAllTasks returns every task ordered by position
func (s *service) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}

	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetTasksByStatus returns the tasks of one status partition
func (s *service) GetTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	tasks, err := s.repo.GetTasksByIndex(ctx, database.TaskIndexStatus, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by status: %w", err)
	}
	return tasks, nil
}

// GetTasksByLabel returns every task carrying labelID
func (s *service) GetTasksByLabel(ctx context.Context, labelID string) ([]*models.Task, error) {
	tasks, err := s.repo.GetTasksByIndex(ctx, database.TaskIndexLabel, labelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by label: %w", err)
	}
	return tasks, nil
}

// CreateTask validates the request and appends the new task to the end of its
// status. An empty status means todo.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.Status == "" {
		req.Status = models.StatusTodo
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.nextOrder(ctx, req.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	now := s.now()
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Labels:      append([]string{}, req.LabelIDs...),
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.PutTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask persists every field of task as given and refreshes UpdatedAt.
// Order is written verbatim, never recomputed.
func (s *service) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil || task.ID == "" {
		return nil, ErrInvalidTaskID
	}
	if err := validateTitle(task.Title); err != nil {
		return nil, err
	}
	if !task.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	existing, err := s.GetTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	updated := task.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now()

	if err := s.repo.PutTask(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return updated, nil
}

// DeleteTask removes a task. Nothing references tasks, so there is no cascade.
func (s *service) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidTaskID
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ChangeStatus moves a task to the end of the given status partition
func (s *service) ChangeStatus(ctx context.Context, id string, status models.Status) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := s.nextOrder(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to change status: %w", err)
	}

	task.Status = status
	task.Order = order
	task.UpdatedAt = s.now()

	if err := s.repo.PutTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to change status: %w", err)
	}

	return task, nil
}

// ReorderTasks writes the given tasks verbatim in a single transaction
func (s *service) ReorderTasks(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	for _, t := range tasks {
		if t == nil || t.ID == "" {
			return ErrInvalidTaskID
		}
		if !t.Status.Valid() {
			return ErrInvalidStatus
		}
	}

	if err := s.repo.PutTasks(ctx, tasks); err != nil {
		return fmt.Errorf("failed to reorder tasks: %w", err)
	}
	return nil
}

// nextOrder returns max(order in status)+1, or 0 for an empty partition
func (s *service) nextOrder(ctx context.Context, status models.Status) (int, error) {
	partition, err := s.repo.GetTasksByIndex(ctx, database.TaskIndexStatus, string(status))
	if err != nil {
		return 0, err
	}
	return models.MaxOrder(partition) + 1, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
