// Package walk holds the section traversal shared by the
// directive-rooted and section-rooted schema handlers.
package walk

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/records"
	"github.com/7ammad/saudi-standards-api/internal/segmenter"
)

// Field-name spellings shared by both structured variants.
var (
	codeKeys    = []string{"code", "id", "number"}
	titleKeys   = []string{"title", "heading", "name"}
	textKeys    = []string{"text", "content", "body"}
	clauseKeys  = []string{"clauses", "requirements", "items"}
	sectionKeys = []string{"sections", "structured_sections"}
)

// Sections returns the section objects of a directive or document
// object, trying the known field spellings in order.
func Sections(obj map[string]any) []map[string]any {
	return ObjectList(obj, sectionKeys...)
}

// Code returns the code of a directive or section object.
func Code(obj map[string]any) string {
	return records.FirstString(obj, codeKeys...)
}

// Section emits the records of one section object. Explicit clause
// objects each become a record; independently, a non-empty free-text
// field is segmented and its records appended. The two paths are
// additive: sources sometimes carry partially-structured clauses next
// to a still-useful free-text rendering, and the engine deliberately
// emits both without deduplication.
func Section(sec map[string]any, ctx records.Context, seg *segmenter.Segmenter) []domain.Requirement {
	ctx.SectionCode = Code(sec)
	ctx.SectionTitle = records.FirstString(sec, titleKeys...)

	var reqs []domain.Requirement

	for i, clause := range ObjectList(sec, clauseKeys...) {
		if req := records.Assemble(clause, ctx, i+1); req != nil {
			reqs = append(reqs, *req)
		}
	}

	if text := records.FirstString(sec, textKeys...); text != "" {
		reqs = append(reqs, seg.Segment(text, ctx)...)
	}

	return reqs
}

// ObjectList returns the first present, non-empty array of objects
// among the given keys. Non-object elements are skipped.
func ObjectList(obj map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		arr, ok := obj[key].([]any)
		if !ok || len(arr) == 0 {
			continue
		}
		out := make([]map[string]any, 0, len(arr))
		for _, v := range arr {
			if m, ok := v.(map[string]any); ok {
				out = append(out, m)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
