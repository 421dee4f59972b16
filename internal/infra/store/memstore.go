package store

import (
	"context"
	"sync"
)

// MemoryStore is the in-process variant used by tests and development. It
// provides the same serialization guarantees as the durable stores:
// snapshots are handed out as deep copies, and Update holds the write lock
// for the whole read-modify-write cycle.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: NewEmptySnapshot()}
}

func (s *MemoryStore) ReadSnapshot(_ context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone(), nil
}

func (s *MemoryStore) WriteSnapshot(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, mutate func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	if err := mutate(next); err != nil {
		return err
	}
	s.snap = next
	return nil
}

var _ Store = (*MemoryStore)(nil)
