// Package memory provides the in-memory corpus store. The corpus is
// built once by the ingestion pass at startup and read-only after,
// so a slice behind an RWMutex is all the storage the process needs.
package memory

import (
	"context"
	"sync"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory, insertion-ordered implementation of
// driven.CorpusStore.
type CorpusStore struct {
	mu           sync.RWMutex
	requirements []domain.Requirement
}

// NewCorpusStore creates an empty in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// Append adds a record to the end of the corpus.
func (s *CorpusStore) Append(_ context.Context, req domain.Requirement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requirements = append(s.requirements, req)
	return nil
}

// All returns a copy of every record in insertion order, so callers
// can never mutate the backing corpus.
func (s *CorpusStore) All(_ context.Context) []domain.Requirement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Requirement, len(s.requirements))
	copy(out, s.requirements)
	return out
}

// Count returns the number of records in the corpus.
func (s *CorpusStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requirements)
}
