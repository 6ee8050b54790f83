package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/cofre/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// openTestDB opens an in-memory database without bootstrapping the schema
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every pooled connection would otherwise get its own empty :memory: db
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestRepo returns a ready repo over a fresh in-memory database
func setupTestRepo(t *testing.T) (*sql.DB, *TaskRepo) {
	t.Helper()
	db := openTestDB(t)
	repo, err := OpenTaskRepo(context.Background(), db)
	if err != nil {
		t.Fatalf("Failed to open task repo: %v", err)
	}
	return db, repo
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cofre-test.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })

	return newDB
}

// taskIDs collects the ids of tasks in order
func taskIDs(tasks []*models.Task) []int {
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
