package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rebelice/lazystay/internal/filter"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by a Backend for a key that was never written
var ErrNotFound = errors.New("filter slot not found")

// Backend is the key-value storage behind a Store
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Clear() error
	Close() error
}

// Store holds the last applied filter of every list, one slot per key
type Store struct {
	backend Backend
}

// New creates a store over backend
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// ResetAll forgets every slot
func (s *Store) ResetAll() error {
	if err := s.backend.Clear(); err != nil {
		return fmt.Errorf("failed to reset filter slots: %w", err)
	}
	return nil
}

// Close releases the backend
func (s *Store) Close() error {
	return s.backend.Close()
}

// Slot is the typed view of one key
type Slot[F filter.Cloner[F]] struct {
	store    *Store
	key      string
	pristine func() F
}

// NewSlot binds key to the filter type F. pristine supplies the value
// returned for a key that has never been set.
func NewSlot[F filter.Cloner[F]](s *Store, key string, pristine func() F) *Slot[F] {
	return &Slot[F]{store: s, key: key, pristine: pristine}
}

// Key returns the slot key
func (sl *Slot[F]) Key() string {
	return sl.key
}

// Get returns the stored value, or the pristine value if none was stored.
// A stored value that cannot be decoded yields the pristine value and an error.
func (sl *Slot[F]) Get() (F, error) {
	data, err := sl.store.backend.Read(sl.key)
	if errors.Is(err, ErrNotFound) {
		return sl.pristine(), nil
	}
	if err != nil {
		return sl.pristine(), fmt.Errorf("failed to read filter slot %q: %w", sl.key, err)
	}

	v := sl.pristine()
	if err := yaml.Unmarshal(data, &v); err != nil {
		return sl.pristine(), fmt.Errorf("failed to decode filter slot %q: %w", sl.key, err)
	}
	// Clone turns facets decoded as null back into empty selections
	return v.Clone(), nil
}

// Set replaces the stored value
func (sl *Slot[F]) Set(v F) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode filter slot %q: %w", sl.key, err)
	}
	if err := sl.store.backend.Write(sl.key, data); err != nil {
		return fmt.Errorf("failed to write filter slot %q: %w", sl.key, err)
	}
	return nil
}

// MemoryBackend keeps slots in process memory
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (m *MemoryBackend) Read(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots = make(map[string][]byte)
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
