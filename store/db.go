package store

import (
	"sync"
)

// Backend is the raw key/value persistence behind a Client. Values are opaque
// byte slices; Get returns nil without an error when a key is absent.
type Backend interface {
	Get(key string) ([]byte, error)
	// Put creates or overwrites the value stored under key.
	Put(key string, value []byte) error
	// Update reads the current value of key (nil if absent), passes it to fn
	// and stores the result, all as a single unit.
	Update(key string, fn func(old []byte) ([]byte, error)) error
	// Close releases the underlying storage
	Close() error
}

// MemoryBackend keeps values in process memory. It is used by tests and by
// dry runs that must not touch the data directory.
type MemoryBackend struct {
	data map[string][]byte
	mu   sync.Mutex
}

func NewMemory() *MemoryBackend {
	return &MemoryBackend{
		data: make(map[string][]byte),
	}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)

	return nil
}

func (m *MemoryBackend) Update(
	key string,
	fn func(old []byte) ([]byte, error),
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var old []byte
	if v, ok := m.data[key]; ok {
		old = append([]byte(nil), v...)
	}

	value, err := fn(old)
	if err != nil {
		return err
	}

	m.data[key] = value

	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
