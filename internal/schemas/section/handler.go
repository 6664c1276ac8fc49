// Package section walks section-rooted documents: a nested "document"
// object holding sections directly, with no directive level. Records
// from this shape always carry an empty directive code.
package section

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/records"
	"github.com/7ammad/saudi-standards-api/internal/schemas/walk"
	"github.com/7ammad/saudi-standards-api/internal/segmenter"
)

// Ensure Handler implements the interface.
var _ driven.SchemaHandler = (*Handler)(nil)

// Handler extracts records from section-rooted documents.
type Handler struct {
	seg *segmenter.Segmenter
}

// New creates a section-rooted handler.
func New(seg *segmenter.Segmenter) *Handler {
	return &Handler{seg: seg}
}

// Variant returns the document shape this handler walks.
func (h *Handler) Variant() domain.SchemaVariant {
	return domain.VariantSectionRooted
}

// Extract walks the nested document's sections. The walk is identical
// to the directive-rooted one, a single level shallower.
func (h *Handler) Extract(doc map[string]any, src domain.RawDocument) []domain.Requirement {
	inner, ok := doc["document"].(map[string]any)
	if !ok {
		return nil
	}

	ctx := records.Context{
		Standard: src.Standard,
		Domain:   src.Domain,
	}

	var reqs []domain.Requirement
	for _, sec := range walk.Sections(inner) {
		reqs = append(reqs, walk.Section(sec, ctx, h.seg)...)
	}

	return reqs
}
