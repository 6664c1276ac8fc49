package schemas

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/logger"
)

// Classify determines which structural variant a document matches.
// The rules are evaluated in strict order:
//
//  1. An array-valued "directives" field marks a directive-rooted
//     document.
//  2. A nested "document" object holding an array of sections marks a
//     section-rooted document.
//  3. Everything else is generic.
//
// A top-level array is a traversal rule handled by the registry, not
// a variant of its own.
func Classify(doc map[string]any) domain.SchemaVariant {
	if _, ok := doc["directives"].([]any); ok {
		return domain.VariantDirectiveRooted
	}
	if inner, ok := doc["document"].(map[string]any); ok {
		if _, ok := inner["sections"].([]any); ok {
			return domain.VariantSectionRooted
		}
		if _, ok := inner["structured_sections"].([]any); ok {
			return domain.VariantSectionRooted
		}
	}
	return domain.VariantGeneric
}

// Registry holds one handler per schema variant and routes documents
// to them.
type Registry struct {
	handlers map[domain.SchemaVariant]driven.SchemaHandler
}

// NewRegistry creates an empty registry. Use RegisterDefaults to
// install the built-in handlers.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[domain.SchemaVariant]driven.SchemaHandler),
	}
}

// Register adds a handler for its variant, replacing any previous one.
func (r *Registry) Register(h driven.SchemaHandler) {
	r.handlers[h.Variant()] = h
}

// Extract classifies the raw document and emits its requirement
// records. A top-level array is traversed element-wise with the
// results concatenated in order.
func (r *Registry) Extract(raw domain.RawDocument) []domain.Requirement {
	return r.extractValue(raw.Data, raw)
}

func (r *Registry) extractValue(v any, raw domain.RawDocument) []domain.Requirement {
	switch doc := v.(type) {
	case []any:
		var reqs []domain.Requirement
		for _, elem := range doc {
			reqs = append(reqs, r.extractValue(elem, raw)...)
		}
		return reqs

	case map[string]any:
		variant := Classify(doc)
		handler, ok := r.handlers[variant]
		if !ok {
			// The generic handler accepts anything; without it the
			// document cannot be walked.
			handler, ok = r.handlers[domain.VariantGeneric]
			if !ok {
				logger.Warn("Schemas: no handler for variant %s, skipping %s", variant, raw.URI)
				return nil
			}
		}
		logger.Debug("Schemas: %s classified as %s", raw.URI, variant)
		return handler.Extract(doc, raw)
	}

	return nil
}
