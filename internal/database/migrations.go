package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/cofre/internal/models"
)

const createTasksTable = `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL
	)
`

// EnsureSchema creates the tasks table if it does not already exist.
// Safe to call any number of times.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTasksTable); err != nil {
		return models.NewStorageError("ensure schema", err)
	}
	return nil
}
