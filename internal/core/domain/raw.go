package domain

// RawDocument represents one parsed source document before extraction.
// It is the connector's output: a self-describing tree of key/value data
// paired with the identity derived from the source file name.
type RawDocument struct {
	// SourceID links to the connector that produced this document.
	SourceID string

	// URI is the original location (file path).
	URI string

	// Standard is the source-family code derived from the file name.
	Standard string

	// Domain is the coarse topical tag derived from the file name.
	Domain string

	// Data is the parsed document tree. Its concrete type is
	// map[string]any or []any as produced by the JSON decoder.
	Data any
}

// SchemaVariant identifies which of the recognised structural shapes
// a raw document matches. Classification is by presence of expected
// top-level fields; VariantGeneric is the universal fallback, so
// classification never fails.
type SchemaVariant int

const (
	// VariantGeneric is a single free-form object probed field by field.
	VariantGeneric SchemaVariant = iota

	// VariantDirectiveRooted nests directive -> section -> clause.
	VariantDirectiveRooted

	// VariantSectionRooted nests document -> section -> clause,
	// with no directive level.
	VariantSectionRooted
)

// String returns the variant name for logging.
func (v SchemaVariant) String() string {
	switch v {
	case VariantDirectiveRooted:
		return "directive-rooted"
	case VariantSectionRooted:
		return "section-rooted"
	default:
		return "generic"
	}
}
