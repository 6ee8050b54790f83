package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/cofre/internal/database"
	"github.com/thenoetrevino/cofre/internal/secretstore"
	secretservice "github.com/thenoetrevino/cofre/internal/services/secret"
	taskservice "github.com/thenoetrevino/cofre/internal/services/task"
)

// App holds all application services and provides dependency injection.
// The two stores share nothing; they only live in the same container.
type App struct {
	db *sql.DB

	TaskService   taskservice.Service
	SecretService secretservice.Service
}

// New creates a new App over an open task database.
// The schema is bootstrapped here, so a failure is fatal for the caller.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*App, error) {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repo, err := database.OpenTaskRepo(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task store: %w", err)
	}

	if cfg.secretBackend == nil {
		cfg.secretBackend = secretstore.NewKeyringBackend(secretstore.DefaultService)
	}

	return &App{
		db:            db,
		TaskService:   taskservice.NewService(repo, cfg.logger),
		SecretService: secretservice.NewService(cfg.secretBackend, cfg.logger),
	}, nil
}

// Close releases the task database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
