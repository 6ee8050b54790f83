// Package secretstore holds the media behind the scalar secret store.
// Every backend writes through on each call; nothing is cached in process.
package secretstore

import (
	"context"
	"fmt"
)

// Backend kinds accepted by New
const (
	KindKeyring = "keyring"
	KindMemory  = "memory"
)

// DefaultService is the keyring service name entries are filed under
const DefaultService = "cofre"

// Backend stores one string value per key.
type Backend interface {
	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Get returns the value for key. A missing key reports found=false
	// with a nil error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// New returns the backend registered under kind.
func New(kind, service string) (Backend, error) {
	switch kind {
	case KindKeyring, "":
		return NewKeyringBackend(service), nil
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown secret backend %q (must be: %s, %s)", kind, KindKeyring, KindMemory)
	}
}
