package database

import (
	"context"
	"log/slog"
)

// Open returns a RecordStore for the database at dbPath.
// It never fails: when the database cannot be opened the error is logged
// and an inert NopStore is returned instead.
func Open(ctx context.Context, dbPath string, logger *slog.Logger) RecordStore {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := InitDB(ctx, dbPath)
	if err != nil {
		logger.Warn("storage unavailable, running without persistence",
			"path", dbPath, "error", err)
		return NopStore{}
	}

	logger.Debug("storage opened", "path", dbPath)
	return NewSQLiteStore(db, logger)
}
