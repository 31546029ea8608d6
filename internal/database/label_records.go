package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// ============================================================================
// Label Records
// ============================================================================

// GetAllLabels retrieves every label ordered by name
func (s *SQLiteStore) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM labels ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		label := &models.Label{}
		if err := rows.Scan(&label.ID, &label.Name, &label.Color); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// GetLabel retrieves a single label by id
func (s *SQLiteStore) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	label := &models.Label{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, color FROM labels WHERE id = ?`, id,
	).Scan(&label.ID, &label.Name, &label.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("label %s: %w", id, ErrRecordNotFound)
	}
	if err != nil {
		return nil, err
	}
	return label, nil
}

// PutLabel inserts or replaces a label
func (s *SQLiteStore) PutLabel(ctx context.Context, label *models.Label) error {
	if label == nil || label.ID == "" {
		return fmt.Errorf("label id is empty: %w", ErrInvalidRecord)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO labels (id, name, color) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, color = excluded.color`,
		label.ID, label.Name, label.Color,
	)
	return err
}

// DeleteLabel removes the label record only.
// Task references are left for the caller to clean up.
func (s *SQLiteStore) DeleteLabel(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	return err
}
