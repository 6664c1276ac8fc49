package driven

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// Extractor turns one raw document into its requirement records.
// The schema registry is the only implementation; the interface keeps
// ingestion independent of how documents are classified.
type Extractor interface {
	// Extract emits the records of one raw document in source order.
	Extract(raw domain.RawDocument) []domain.Requirement
}

// SchemaHandler extracts requirement records from one structural
// variant of a source document. Handlers are selected by variant; the
// generic handler accepts anything, so extraction never fails for an
// unrecognised shape, it degrades to zero or few records.
type SchemaHandler interface {
	// Variant returns the document shape this handler walks.
	Variant() domain.SchemaVariant

	// Extract walks the document and emits one record per clause-like
	// unit found. doc is the raw document's top-level object; src
	// supplies the standard and domain derived from the file name.
	Extract(doc map[string]any, src domain.RawDocument) []domain.Requirement
}
