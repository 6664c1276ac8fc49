package segmenter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/records"
)

// minCascadeLength is the shortest cleaned capture a cascade strategy
// keeps. Shorter captures are headers or stray numbers, not clauses.
const minCascadeLength = 20

// minParagraphLength is the paragraph filter applied first.
const minParagraphLength = 100

// minShortParagraphLength is the relaxed filter used when few long
// paragraphs survive.
const minShortParagraphLength = 50

var (
	// dottedLabel matches any dotted numeric label; strategies filter
	// by component count afterwards, since RE2 has no lookahead.
	dottedLabel = regexp.MustCompile(`\b\d+(?:\.\d+)+\b`)

	// articleMarker matches "Article (n)" with an optional colon.
	articleMarker = regexp.MustCompile(`\bArticle\s*\((\d+)\)\s*:?`)

	blankLine = regexp.MustCompile(`\n\s*\n`)
)

// labelStrategy segments on dotted numeric clause labels with a given
// component count range. Each segment runs from its label to the next
// accepted label, the next article marker, or end of text, and keeps
// the label as both clauseId and text prefix.
type labelStrategy struct {
	name     string
	minParts int
	maxParts int
}

func (s *labelStrategy) Name() string { return s.name }

func (s *labelStrategy) Segment(text string, ctx records.Context) []domain.Requirement {
	matches := dottedLabel.FindAllStringIndex(text, -1)
	if len(matches) < 2 {
		return nil
	}

	// Keep only labels within the component range.
	var starts []int
	var labels []string
	for _, m := range matches {
		label := text[m[0]:m[1]]
		parts := strings.Count(label, ".") + 1
		if parts >= s.minParts && parts <= s.maxParts {
			starts = append(starts, m[0])
			labels = append(labels, label)
		}
	}
	if len(starts) < 2 {
		return nil
	}

	// Segment boundaries are accepted labels and article markers.
	cuts := append([]int{}, starts...)
	for _, m := range articleMarker.FindAllStringIndex(text, -1) {
		cuts = append(cuts, m[0])
	}
	cuts = append(cuts, len(text))
	sort.Ints(cuts)

	var reqs []domain.Requirement
	for i, start := range starts {
		end := nextCut(cuts, start)
		clean := records.CleanText(text[start:end])
		if len(clean) <= minCascadeLength {
			continue
		}
		if req := records.FromText(clean, labels[i], ctx, len(reqs)+1); req != nil {
			reqs = append(reqs, *req)
		}
	}
	if len(reqs) < 2 {
		return nil
	}
	return reqs
}

// articleStrategy segments on "Article (n)" markers.
type articleStrategy struct{}

func (s *articleStrategy) Name() string { return "article" }

func (s *articleStrategy) Segment(text string, ctx records.Context) []domain.Requirement {
	matches := articleMarker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) < 2 {
		return nil
	}

	var reqs []domain.Requirement
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		clean := records.CleanText(text[m[0]:end])
		if len(clean) <= minCascadeLength {
			continue
		}
		label := text[m[2]:m[3]]
		if req := records.FromText(clean, label, ctx, len(reqs)+1); req != nil {
			reqs = append(reqs, *req)
		}
	}
	if len(reqs) < 2 {
		return nil
	}
	return reqs
}

// paragraphStrategy splits on blank lines. Paragraphs longer than 100
// cleaned characters are kept; when 3 or fewer survive, the filter is
// relaxed to 50 characters so short but real paragraphs still emit.
type paragraphStrategy struct{}

func (s *paragraphStrategy) Name() string { return "paragraph" }

func (s *paragraphStrategy) Segment(text string, ctx records.Context) []domain.Requirement {
	var cleaned []string
	for _, p := range blankLine.Split(text, -1) {
		if c := records.CleanText(p); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	minLen := minParagraphLength
	if count := countLonger(cleaned, minParagraphLength); count <= 3 {
		minLen = minShortParagraphLength
	}

	var reqs []domain.Requirement
	for _, p := range cleaned {
		if len(p) <= minLen {
			continue
		}
		if req := records.FromText(p, "", ctx, len(reqs)+1); req != nil {
			reqs = append(reqs, *req)
		}
	}
	if len(reqs) == 0 {
		return nil
	}
	return reqs
}

// wholeTextStrategy emits the entire cleaned text as one record when
// it is long enough to be worth keeping. This is the terminal member
// of the cascade: it guarantees a record for any sufficiently long
// input and none for short or empty input.
type wholeTextStrategy struct{}

func (s *wholeTextStrategy) Name() string { return "whole-text" }

func (s *wholeTextStrategy) Segment(text string, ctx records.Context) []domain.Requirement {
	clean := records.CleanText(text)
	if len(clean) <= minParagraphLength {
		return nil
	}
	req := records.FromText(clean, "", ctx, 1)
	if req == nil {
		return nil
	}
	return []domain.Requirement{*req}
}

// nextCut returns the first boundary strictly after pos.
func nextCut(cuts []int, pos int) int {
	for _, c := range cuts {
		if c > pos {
			return c
		}
	}
	return cuts[len(cuts)-1]
}

// countLonger counts strings longer than min characters.
func countLonger(items []string, min int) int {
	n := 0
	for _, s := range items {
		if len(s) > min {
			n++
		}
	}
	return n
}
