package label

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// MaxNameLength is the longest label name accepted, in bytes
const MaxNameLength = 50

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all label-related business operations
type Service interface {
	// Read operations
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabel(ctx context.Context, id string) (*models.Label, error)

	// Write operations
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error)
	// DeleteLabel returns the tasks it rewrote, as persisted
	DeleteLabel(ctx context.Context, id string) ([]*models.Task, error)

	// StripLabel removes id from every task that references it and
	// returns how many tasks were rewritten
	StripLabel(ctx context.Context, id string) (int, error)
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	Name  string
	Color string // Hex color like #3B82F6, empty means the default
}

// service implements Service interface
type service struct {
	repo   database.RecordStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new label service. The repo must expose both tables
// because deleting a label rewrites the tasks that reference it.
func NewService(repo database.RecordStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GetAllLabels returns every label ordered by name
func (s *service) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	labels, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
	}
	return labels, nil
}

// GetLabel retrieves a single label
func (s *service) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	if id == "" {
		return nil, ErrInvalidLabelID
	}

	label, err := s.repo.GetLabel(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to get label: %w", err)
	}
	return label, nil
}

// CreateLabel creates a new label with validation
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	if req.Color == "" {
		req.Color = models.DefaultLabelColor
	}
	if err := validateLabel(req.Name, req.Color); err != nil {
		return nil, err
	}

	label := &models.Label{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Color: req.Color,
	}

	if err := s.repo.PutLabel(ctx, label); err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	return label, nil
}

// UpdateLabel replaces the stored label with the same id
func (s *service) UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	if label == nil || label.ID == "" {
		return nil, ErrInvalidLabelID
	}
	if err := validateLabel(label.Name, label.Color); err != nil {
		return nil, err
	}

	if _, err := s.GetLabel(ctx, label.ID); err != nil {
		return nil, err
	}

	updated := label.Clone()
	if err := s.repo.PutLabel(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update label: %w", err)
	}

	return updated, nil
}

// DeleteLabel deletes the label record and then strips its id from every task.
//
// The label is removed first. If stripping fails afterwards, tasks are left
// with a dangling reference that StripLabel can clean up later; no task is
// ever lost.
func (s *service) DeleteLabel(ctx context.Context, id string) ([]*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidLabelID
	}

	if err := s.repo.DeleteLabel(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete label: %w", err)
	}

	rewritten, err := s.stripLabel(ctx, id)
	if err != nil {
		s.logger.Error("label deleted but task references remain",
			"label_id", id, "error", err)
		return nil, fmt.Errorf("failed to delete label: %w", err)
	}

	s.logger.Debug("label deleted", "label_id", id, "tasks_rewritten", len(rewritten))
	return rewritten, nil
}

// StripLabel removes id from every task that references it in one transaction
func (s *service) StripLabel(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, ErrInvalidLabelID
	}

	rewritten, err := s.stripLabel(ctx, id)
	if err != nil {
		return 0, err
	}
	return len(rewritten), nil
}

func (s *service) stripLabel(ctx context.Context, id string) ([]*models.Task, error) {
	tasks, err := s.repo.GetTasksByIndex(ctx, database.TaskIndexLabel, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks for label: %w", err)
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	now := s.now()
	for _, task := range tasks {
		task.Labels = task.WithoutLabel(id)
		task.UpdatedAt = now
	}

	if err := s.repo.PutTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to rewrite tasks: %w", err)
	}

	return tasks, nil
}

// validateLabel checks the user-editable fields of a label
func validateLabel(name, color string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !hexColorRegex.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}
