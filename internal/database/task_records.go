package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// ============================================================================
// Task Records
// ============================================================================

const taskColumns = `t.id, t.title, t.description, t.status, t.sort_order, t.created_at, t.updated_at`

// GetAllTasks retrieves every task, ordered by position
func (s *SQLiteStore) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return s.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks t ORDER BY t.sort_order, t.created_at`)
}

// GetTask retrieves a single task by id
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (*models.Task, error) {
	tasks, err := s.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("task %s: %w", id, ErrRecordNotFound)
	}
	return tasks[0], nil
}

// GetTasksByIndex retrieves all tasks whose indexed field matches value
func (s *SQLiteStore) GetTasksByIndex(ctx context.Context, index TaskIndex, value string) ([]*models.Task, error) {
	switch index {
	case TaskIndexStatus:
		return s.queryTasks(ctx,
			`SELECT `+taskColumns+` FROM tasks t WHERE t.status = ? ORDER BY t.sort_order`, value)
	case TaskIndexLabel:
		return s.queryTasks(ctx,
			`SELECT `+taskColumns+`
			 FROM tasks t
			 INNER JOIN task_labels tl ON tl.task_id = t.id
			 WHERE tl.label_id = ?
			 ORDER BY t.sort_order`, value)
	default:
		return nil, fmt.Errorf("unknown task index %q", index)
	}
}

// PutTask inserts or replaces a task and its label entries
func (s *SQLiteStore) PutTask(ctx context.Context, task *models.Task) error {
	return s.PutTasks(ctx, []*models.Task{task})
}

// PutTasks inserts or replaces tasks inside a single transaction.
// If any task fails validation nothing is written.
func (s *SQLiteStore) PutTasks(ctx context.Context, tasks []*models.Task) error {
	for _, task := range tasks {
		if err := validateTask(task); err != nil {
			return err
		}
	}

	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, task := range tasks {
			if err := putTask(ctx, tx, task); err != nil {
				return fmt.Errorf("failed to put task %s: %w", task.ID, err)
			}
		}
		return nil
	})
}

// DeleteTask removes a task. Deleting an unknown id is not an error.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func validateTask(task *models.Task) error {
	if task == nil {
		return fmt.Errorf("nil task: %w", ErrInvalidRecord)
	}
	if task.ID == "" {
		return fmt.Errorf("task id is empty: %w", ErrInvalidRecord)
	}
	if !task.Status.Valid() {
		return fmt.Errorf("task %s has unknown status %q: %w", task.ID, task.Status, ErrInvalidRecord)
	}
	return nil
}

func putTask(ctx context.Context, q querier, task *models.Task) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, status, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			status = excluded.status,
			sort_order = excluded.sort_order,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		task.ID, task.Title, task.Description, string(task.Status), task.Order,
		toUnixNano(task.CreatedAt), toUnixNano(task.UpdatedAt),
	)
	if err != nil {
		return err
	}

	// Replace the multi-entry label index rows for this task
	if _, err := q.ExecContext(ctx, `DELETE FROM task_labels WHERE task_id = ?`, task.ID); err != nil {
		return err
	}
	for i, labelID := range dedupe(task.Labels) {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO task_labels (task_id, label_id, idx) VALUES (?, ?, ?)`,
			task.ID, labelID, i,
		); err != nil {
			return err
		}
	}
	return nil
}

// queryTasks runs a task SELECT and attaches label IDs to the results
func (s *SQLiteStore) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		var (
			task        models.Task
			description sql.NullString
			status      string
			createdAt   int64
			updatedAt   int64
		)
		if err := rows.Scan(
			&task.ID, &task.Title, &description, &status,
			&task.Order, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		task.Status = models.Status(status)
		if !task.Status.Valid() {
			s.logger.Warn("skipping task with unknown status", "task_id", task.ID, "status", status)
			continue
		}
		task.Description = NullStringToString(description)
		task.CreatedAt = fromUnixNano(createdAt)
		task.UpdatedAt = fromUnixNano(updatedAt)
		task.Labels = []string{}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachLabels(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// attachLabels fills in Labels for the given tasks with a single query
func (s *SQLiteStore) attachLabels(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[string]*models.Task, len(tasks))
	args := make([]any, 0, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
		args = append(args, t.ID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id, label_id FROM task_labels
		 WHERE task_id IN (`+placeholders(len(args))+`)
		 ORDER BY task_id, idx`, args...)
	if err != nil {
		return fmt.Errorf("failed to load task labels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, labelID string
		if err := rows.Scan(&taskID, &labelID); err != nil {
			return err
		}
		if t, ok := byID[taskID]; ok {
			t.Labels = append(t.Labels, labelID)
		}
	}
	return rows.Err()
}

// IsNotFound reports whether err is a missing-record error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}
