package driving

import (
	"context"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// RequirementService exposes the query operations over the corpus.
type RequirementService interface {
	// Search narrows the corpus by the supplied filters.
	// Returns domain.ErrNoFilter when every filter is absent.
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Requirement, error)

	// GetReference resolves a free-form reference string to a record.
	// Returns domain.ErrNotFound when no record matches.
	GetReference(ctx context.Context, reference string) (*domain.Requirement, error)

	// GenerateChecklist builds a compliance checklist for the given
	// standards. Returns domain.ErrNoStandards when the standards
	// list is missing or empty.
	GenerateChecklist(ctx context.Context, filter domain.ChecklistFilter) ([]domain.ChecklistItem, error)

	// Count returns the number of loaded records (health probe).
	Count(ctx context.Context) int

	// Stats returns the number of loaded records per standard.
	Stats(ctx context.Context) map[string]int
}

// IngestService builds the corpus from a document source.
type IngestService interface {
	// Ingest runs the single sequential ingestion pass. Per-document
	// failures are logged and skipped. Returns the number of records
	// loaded.
	Ingest(ctx context.Context) (int, error)
}
