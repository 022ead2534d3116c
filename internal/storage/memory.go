package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. Used by the "memory" backend and tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *MemoryStore) Save(_ context.Context, blobs ...Blob) error {
	if err := validate(blobs); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range blobs {
		s.blobs[b.Key] = append([]byte(nil), b.Data...)
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
