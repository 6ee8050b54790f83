package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/cofre/internal/app"
	"github.com/thenoetrevino/cofre/internal/secretstore"
	"github.com/thenoetrevino/cofre/internal/testutil"
)

// SetupCLITest creates an in-memory DB and a memory secret backend and
// returns the DB, the backend, and an App built over both.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *secretstore.MemoryBackend, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	backend := secretstore.NewMemoryBackend()

	appInstance, err := app.New(context.Background(), db, app.WithSecretBackend(backend))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	return db, backend, appInstance
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title, description string) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, description)
}

// CountTasks wraps testutil.CountTasks for CLI tests
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	return testutil.CountTasks(t, db)
}
