package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed.
// Every statement is idempotent so it is safe to run on each open.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,

		// status index, used for max-order lookups and status filtering
		`CREATE INDEX IF NOT EXISTS idx_tasks_status
		ON tasks(status, sort_order)`,

		// Multi-entry label index: one row per (task, label) pair.
		// idx preserves the order labels were given in.
		`CREATE TABLE IF NOT EXISTS task_labels (
			task_id TEXT NOT NULL,
			label_id TEXT NOT NULL,
			idx INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (task_id, label_id),
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_task_labels_label
		ON task_labels(label_id)`,

		// No foreign key from task_labels.label_id: label deletion cleans up
		// references explicitly (see label.Service.DeleteLabel).
		`CREATE TABLE IF NOT EXISTS labels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '#3B82F6'
		)`,
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
