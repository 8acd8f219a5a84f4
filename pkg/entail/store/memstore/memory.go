package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{records: make(map[string]store.Record)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveExplanation inserts or replaces an explanation keyed by ID.
func (s *Store) SaveExplanation(ctx context.Context, r store.Record) error {
	if r.ID == "" {
		return fmt.Errorf("%w: explanation id required", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[r.ID]; ok {
		r.CreatedAt = existing.CreatedAt
	}
	s.records[r.ID] = r
	return nil
}

// GetExplanation implements store.Store.
func (s *Store) GetExplanation(ctx context.Context, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return store.Record{}, fmt.Errorf("explanation %s: %w", id, internalerr.ErrNotFound)
	}
	return r, nil
}

// RecentExplanations returns up to k explanations, newest first.
func (s *Store) RecentExplanations(ctx context.Context, k int) ([]store.Record, error) {
	if k <= 0 {
		k = 10
	}
	s.mu.RLock()
	out := make([]store.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}
