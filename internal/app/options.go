package app

import (
	"log/slog"

	"github.com/thenoetrevino/cofre/internal/secretstore"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	secretBackend secretstore.Backend
	logger        *slog.Logger
}

// WithSecretBackend sets the medium behind the secret service
func WithSecretBackend(b secretstore.Backend) Option {
	return func(cfg *appConfig) {
		cfg.secretBackend = b
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
