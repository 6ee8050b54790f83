package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/cofre/internal/database"
	_ "modernc.org/sqlite"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with the tasks table in place.
// The pool is pinned to one connection so every query sees the same :memory: db.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestTask inserts a task directly and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title, description string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, description) VALUES (?, ?)", title, description)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CountTasks returns the number of rows in the tasks table
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return count
}
