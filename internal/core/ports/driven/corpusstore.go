package driven

import (
	"context"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// CorpusStore holds the requirement corpus in insertion order.
// It is append-only during the single ingestion pass at startup and
// read-only thereafter; queries are linear scans over the snapshot.
type CorpusStore interface {
	// Append adds a record to the end of the corpus.
	Append(ctx context.Context, req domain.Requirement) error

	// All returns every record in insertion order.
	// The returned slice must not be mutated by callers.
	All(ctx context.Context) []domain.Requirement

	// Count returns the number of records in the corpus.
	Count(ctx context.Context) int
}
