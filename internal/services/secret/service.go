package secret

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/cofre/internal/secretstore"
)

// Service defines the scalar secret operations
type Service interface {
	SetSecret(ctx context.Context, key, value string) error
	// GetSecret reports found=false, with no error, when key was never set
	GetSecret(ctx context.Context, key string) (value string, found bool, err error)
	DeleteSecret(ctx context.Context, key string) error
}

type service struct {
	backend secretstore.Backend
	logger  *slog.Logger
}

// NewService creates a secret service writing through to backend
func NewService(backend secretstore.Backend, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		backend: backend,
		logger:  logger,
	}
}

func (s *service) SetSecret(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == "" {
		return ErrEmptyValue
	}

	if err := s.backend.Set(ctx, key, value); err != nil {
		// never log the value
		s.logger.Debug("secret write failed", "key", key, "error", err)
		return fmt.Errorf("failed to store secret %q: %w", key, err)
	}
	return nil
}

func (s *service) GetSecret(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	value, found, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Debug("secret read failed", "key", key, "error", err)
		return "", false, fmt.Errorf("failed to read secret %q: %w", key, err)
	}
	return value, found, nil
}

func (s *service) DeleteSecret(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Debug("secret delete failed", "key", key, "error", err)
		return fmt.Errorf("failed to delete secret %q: %w", key, err)
	}
	return nil
}
