// Package records assembles canonical requirement records from
// clause-like objects and from segmented text. Source schemas spell
// the same attribute several ways, so every attribute is resolved
// through an ordered fallback chain of field names.
package records

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// Context carries the enclosing identity down to each assembled record.
type Context struct {
	// Standard is the source-family code.
	Standard string

	// DirectiveCode is empty for section-rooted and generic documents.
	DirectiveCode string

	// SectionCode identifies the enclosing section.
	SectionCode string

	// Domain is the topical tag inherited from the source.
	Domain string

	// SectionTitle is the enclosing section's own title, used as the
	// last fallback for a clause title.
	SectionTitle string
}

// Fallback chains per attribute, tried in order; the first present,
// non-empty value wins.
var (
	clauseIDKeys = []string{"clauseId", "clause_id", "id", "number", "code"}
	titleKeys    = []string{"title", "heading", "name"}
	textKeys     = []string{"text", "content", "body", "description", "requirement"}
	classKeys    = []string{"facilityClass", "facility_class", "facility", "class"}
	domainKeys   = []string{"domain", "category"}
	tagKeys      = []string{"tags", "keywords", "labels"}
	refKeys      = []string{"reference", "ref"}
)

// Assemble builds a canonical record from one clause-like object.
// ordinal is the 1-based position of the object within its parent,
// used for the synthetic "Requirement {n}" title. Returns nil when
// the object carries neither a title nor any text.
func Assemble(obj map[string]any, ctx Context, ordinal int) *domain.Requirement {
	title := FirstString(obj, titleKeys...)
	if title == "" {
		title = ctx.SectionTitle
	}
	text := CleanText(FirstString(obj, textKeys...))

	// A record exists only if the source supplied some content.
	if title == "" && text == "" {
		return nil
	}

	clauseID := FirstString(obj, clauseIDKeys...)
	text = Truncate(text, domain.MaxTextLength)

	if title == "" {
		title = deriveTitle(text, clauseID, ordinal)
	}

	dom := FirstString(obj, domainKeys...)
	if dom == "" {
		dom = ctx.Domain
	}

	ref := FirstString(obj, refKeys...)
	if ref == "" {
		ref = SynthesizeReference(ctx, clauseID)
	}

	return &domain.Requirement{
		ID:            uuid.New().String(),
		Standard:      ctx.Standard,
		DirectiveCode: ctx.DirectiveCode,
		SectionCode:   ctx.SectionCode,
		ClauseID:      clauseID,
		Title:         title,
		Text:          text,
		FacilityClass: FirstString(obj, classKeys...),
		Domain:        dom,
		Tags:          StringSlice(obj, tagKeys...),
		Reference:     ref,
	}
}

// FromText builds a record for one segmented span of free text.
// label is the captured clause label; when empty the 1-based ordinal
// is used instead. The text must already be cleaned.
func FromText(text, label string, ctx Context, ordinal int) *domain.Requirement {
	if text == "" {
		return nil
	}

	clauseID := label
	if clauseID == "" {
		clauseID = strconv.Itoa(ordinal)
	}

	text = Truncate(text, domain.MaxTextLength)

	return &domain.Requirement{
		ID:            uuid.New().String(),
		Standard:      ctx.Standard,
		DirectiveCode: ctx.DirectiveCode,
		SectionCode:   ctx.SectionCode,
		ClauseID:      clauseID,
		Title:         deriveTitle(text, clauseID, ordinal),
		Text:          text,
		Domain:        ctx.Domain,
		Reference:     SynthesizeReference(ctx, clauseID),
	}
}

// SynthesizeReference builds the lookup key for a record that carries
// no explicit reference: "{standard} {directive} {section} {clause}"
// with whitespace collapsed and trimmed, so absent parts leave no gaps.
func SynthesizeReference(ctx Context, clauseID string) string {
	parts := []string{ctx.Standard, ctx.DirectiveCode, ctx.SectionCode, clauseID}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// deriveTitle takes the first sentence of the text, or a synthetic
// label when there is no text to derive from.
func deriveTitle(text, clauseID string, ordinal int) string {
	if text != "" {
		return Truncate(FirstSentence(text), domain.MaxTitleLength)
	}
	if clauseID != "" {
		return "Clause " + clauseID
	}
	return fmt.Sprintf("Requirement %d", ordinal)
}

// FirstSentence returns the text up to and including the first
// sentence terminator (. ! ?) that ends a word, or the whole text if
// there is none. A terminator counts only when followed by whitespace
// or the end of the text, so the dots inside a clause label such as
// "4.3.1" never cut the sentence short.
func FirstSentence(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if i+1 == len(text) || text[i+1] == ' ' {
				return strings.TrimSpace(text[:i+1])
			}
		}
	}
	return text
}

// CleanText collapses internal whitespace runs to single spaces and
// trims the result.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate caps s at max bytes, backing off to the nearest rune
// boundary so the cut never leaves invalid UTF-8.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// FirstString returns the first present, non-empty string value among
// the given keys. Numeric values are rendered as their decimal form,
// so "number": 4.3 resolves to "4.3".
func FirstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// StringSlice returns the first present, non-empty string slice among
// the given keys. JSON arrays decode as []any; non-string elements
// are skipped.
func StringSlice(obj map[string]any, keys ...string) []string {
	for _, key := range keys {
		arr, ok := obj[key].([]any)
		if !ok || len(arr) == 0 {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
