package storage

import (
	"context"
	"sync"
)

type InMemStorage struct {
	mu          sync.RWMutex
	collections map[Collection][]byte
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{collections: make(map[Collection][]byte)}
}

func (s *InMemStorage) Read(_ context.Context, c Collection) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.collections[c]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (s *InMemStorage) Write(_ context.Context, c Collection, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[c] = append([]byte(nil), payload...)
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}
