// Package directive walks directive-rooted documents: a top-level
// array of directives, each holding sections, each holding clauses
// and/or free-running clause text.
package directive

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/records"
	"github.com/7ammad/saudi-standards-api/internal/schemas/walk"
	"github.com/7ammad/saudi-standards-api/internal/segmenter"
)

// Ensure Handler implements the interface.
var _ driven.SchemaHandler = (*Handler)(nil)

// Handler extracts records from directive-rooted documents.
type Handler struct {
	seg *segmenter.Segmenter
}

// New creates a directive-rooted handler.
func New(seg *segmenter.Segmenter) *Handler {
	return &Handler{seg: seg}
}

// Variant returns the document shape this handler walks.
func (h *Handler) Variant() domain.SchemaVariant {
	return domain.VariantDirectiveRooted
}

// Extract iterates directives and their sections, emitting one record
// per explicit clause and one per segmented span of section text.
func (h *Handler) Extract(doc map[string]any, src domain.RawDocument) []domain.Requirement {
	var reqs []domain.Requirement

	directives, _ := doc["directives"].([]any)
	for _, d := range directives {
		dir, ok := d.(map[string]any)
		if !ok {
			continue
		}

		ctx := records.Context{
			Standard:      src.Standard,
			DirectiveCode: walk.Code(dir),
			Domain:        src.Domain,
		}

		for _, sec := range walk.Sections(dir) {
			reqs = append(reqs, walk.Section(sec, ctx, h.seg)...)
		}
	}

	return reqs
}
