package secretstore

import (
	"context"
	"sync"
)

// MemoryBackend is a process-local map. Entries vanish on exit.
type MemoryBackend struct {
	mutex  sync.Mutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: map[string]string{},
	}
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.values, key)
	return nil
}
