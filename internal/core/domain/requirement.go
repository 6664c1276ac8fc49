package domain

import "strings"

// MaxTextLength caps the full body text of a requirement.
const MaxTextLength = 10000

// MaxTitleLength caps a title derived from body text.
const MaxTitleLength = 200

// Requirement represents one atomic normalized unit of regulatory text.
// It is the canonical record produced by ingestion, whatever the shape
// of the source document.
type Requirement struct {
	// ID is the internal identifier assigned at ingestion.
	ID string

	// Standard is the source-family code, e.g. "HCIS_SEC" or "SBC".
	Standard string

	// DirectiveCode identifies the enclosing directive.
	// Always empty for section-rooted and generic documents.
	DirectiveCode string

	// SectionCode identifies the enclosing section.
	SectionCode string

	// ClauseID identifies the clause within its section.
	// Not guaranteed unique across the corpus.
	ClauseID string

	// Title is the human-readable heading.
	Title string

	// Text is the full requirement body, capped at MaxTextLength.
	Text string

	// FacilityClass is the facility classification the requirement applies to.
	FacilityClass string

	// Domain is the coarse topical tag, e.g. "security" or "fire safety".
	Domain string

	// Tags are free-form labels; insertion order is irrelevant.
	Tags []string

	// Reference is the lookup key, synthesized when the source omits one.
	// Uniqueness is NOT guaranteed; the first match wins on lookup.
	Reference string
}

// Valid reports whether the requirement carries any content.
// Records failing this check are discarded silently during assembly.
func (r *Requirement) Valid() bool {
	return r.Title != "" || r.Text != ""
}

// ChecklistItem is a requirement reshaped for compliance checklists.
type ChecklistItem struct {
	ID            string `json:"id"`
	Standard      string `json:"standard"`
	DirectiveCode string `json:"directive_code,omitempty"`
	SectionCode   string `json:"section_code,omitempty"`
	ClauseID      string `json:"clause_id,omitempty"`
	Title         string `json:"title"`

	// Requirement is the full body text of the underlying record.
	Requirement string `json:"requirement"`

	Reference string `json:"reference"`

	// Mandatory is always true; checklist items are not advisory.
	Mandatory bool `json:"mandatory"`
}

// NewChecklistItem reshapes a requirement into a checklist item.
func NewChecklistItem(r Requirement) ChecklistItem {
	return ChecklistItem{
		ID:            r.ID,
		Standard:      r.Standard,
		DirectiveCode: r.DirectiveCode,
		SectionCode:   r.SectionCode,
		ClauseID:      r.ClauseID,
		Title:         r.Title,
		Requirement:   r.Text,
		Reference:     r.Reference,
		Mandatory:     true,
	}
}

// NormalizeReference canonicalises a reference string for lookup.
// Stored references and query strings are normalized identically:
// lower-case, underscores become spaces, whitespace runs collapse to
// a single space, surrounding whitespace is trimmed.
func NormalizeReference(ref string) string {
	ref = strings.ToLower(ref)
	ref = strings.ReplaceAll(ref, "_", " ")
	return strings.Join(strings.Fields(ref), " ")
}
