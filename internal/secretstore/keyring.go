package secretstore

import (
	"context"
	"errors"

	"github.com/thenoetrevino/cofre/internal/models"
	"github.com/zalando/go-keyring"
)

// KeyringBackend keeps entries in the OS keyring (Keychain, Secret Service,
// Windows Credential Manager). Encryption is the platform's business.
type KeyringBackend struct {
	service string
}

// NewKeyringBackend files every entry under service
func NewKeyringBackend(service string) *KeyringBackend {
	if service == "" {
		service = DefaultService
	}
	return &KeyringBackend{service: service}
}

// Service returns the keyring service name in use
func (b *KeyringBackend) Service() string {
	return b.service
}

func (b *KeyringBackend) Set(_ context.Context, key, value string) error {
	return models.NewStorageError("set secret", keyring.Set(b.service, key, value))
}

func (b *KeyringBackend) Get(_ context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(b.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, models.NewStorageError("get secret", err)
	}
	return value, true, nil
}

func (b *KeyringBackend) Delete(_ context.Context, key string) error {
	err := keyring.Delete(b.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return models.NewStorageError("delete secret", err)
}
