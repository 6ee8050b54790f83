// Package cli holds the shared plumbing for the cofre subcommands
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/cofre/internal/app"
	"github.com/thenoetrevino/cofre/internal/cli/styles"
	"github.com/thenoetrevino/cofre/internal/config"
	"github.com/thenoetrevino/cofre/internal/database"
	"github.com/thenoetrevino/cofre/internal/logging"
	"github.com/thenoetrevino/cofre/internal/secretstore"
)

type contextKey string

const appKey contextKey = "cofre-app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the App was injected and belongs to the caller
	owned bool
}

// WithApp returns a context carrying an already-built App.
// Commands executed with it skip config loading and database setup.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App stored in ctx,
// or builds a fresh one from the user's config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads config, opens both stores, and wires the services
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := logging.Init("", level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	backend, err := secretstore.New(cfg.Secrets.Backend, cfg.Secrets.Service)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application, err := app.New(ctx, db,
		app.WithSecretBackend(backend),
		app.WithLogger(slog.Default()),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
