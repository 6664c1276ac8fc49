// Package generic probes free-form objects that match neither
// structured variant. The object itself is assembled through the
// field-fallback chains, and known nested collection fields are
// recursed into as fresh generic documents, so loosely-structured
// fallback documents still yield multiple records.
package generic

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/records"
)

// nestedKeys are the collection fields recursed into, in probe order.
var nestedKeys = []string{"requirements", "sections", "clauses", "items"}

// Ensure Handler implements the interface.
var _ driven.SchemaHandler = (*Handler)(nil)

// Handler extracts records from free-form documents.
type Handler struct{}

// New creates a generic handler.
func New() *Handler {
	return &Handler{}
}

// Variant returns the document shape this handler walks.
func (h *Handler) Variant() domain.SchemaVariant {
	return domain.VariantGeneric
}

// Extract assembles the object itself, then unions the records of
// every element of any known nested collection.
func (h *Handler) Extract(doc map[string]any, src domain.RawDocument) []domain.Requirement {
	return h.extract(doc, src, 1)
}

func (h *Handler) extract(doc map[string]any, src domain.RawDocument, ordinal int) []domain.Requirement {
	ctx := records.Context{
		Standard: src.Standard,
		Domain:   src.Domain,
	}

	var reqs []domain.Requirement
	if req := records.Assemble(doc, ctx, ordinal); req != nil {
		reqs = append(reqs, *req)
	}

	for _, key := range nestedKeys {
		arr, ok := doc[key].([]any)
		if !ok {
			continue
		}
		for i, elem := range arr {
			child, ok := elem.(map[string]any)
			if !ok {
				continue
			}
			reqs = append(reqs, h.extract(child, src, i+1)...)
		}
	}

	return reqs
}
