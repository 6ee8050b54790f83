// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns ~/.cofre/tasks.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cofre", "tasks.db"), nil
}

// InitDB opens the task database at path and bootstraps the schema.
// The returned handle is meant to be opened once and shared for the
// lifetime of the process.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One persistent handle; sqlite serializes the single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeQuietly(db)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
