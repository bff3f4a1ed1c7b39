package snapshots

import (
	"context"
	"sync"
)

// MemoryStore keeps snapshots in memory and is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

// Load returns a copy of the stored bytes.
func (s *MemoryStore) Load(ctx context.Context, owner, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validKey(owner, key) {
		return nil, ErrInvalidInput
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[owner][key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data.
func (s *MemoryStore) Save(ctx context.Context, owner, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validKey(owner, key) {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[owner] == nil {
		s.data[owner] = make(map[string][]byte)
	}
	s.data[owner][key] = append([]byte(nil), data...)
	return nil
}

var _ Store = (*MemoryStore)(nil)
