// Package segmenter decomposes free-running clause text into atomic
// requirement records. Source documents often carry a section's whole
// body as one string with no explicit clause objects; the segmenter
// recovers the clauses using a priority cascade of pattern strategies,
// falling back to paragraph and whole-text splitting when no pattern
// applies.
package segmenter

import (
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/logger"
	"github.com/7ammad/saudi-standards-api/internal/records"
)

// Strategy is one segmentation heuristic. Segment returns the ordered
// records it recovered, or nil when it does not accept the text; the
// cascade tries the next strategy on nil.
type Strategy interface {
	// Name returns the strategy name for logging.
	Name() string

	// Segment decomposes text into records, or returns nil.
	Segment(text string, ctx records.Context) []domain.Requirement
}

// Segmenter runs strategies in priority order and returns the first
// accepted result. The paragraph and whole-text fallbacks are ordinary
// members at the end of the list, so any text longer than 100 cleaned
// characters yields at least one record and shorter text yields none.
type Segmenter struct {
	strategies []Strategy
}

// New creates a segmenter with the default strategy cascade.
func New() *Segmenter {
	return &Segmenter{
		strategies: []Strategy{
			&labelStrategy{name: "numbered-clause", minParts: 3, maxParts: 4},
			&articleStrategy{},
			&labelStrategy{name: "bare-section", minParts: 2, maxParts: 2},
			&paragraphStrategy{},
			&wholeTextStrategy{},
		},
	}
}

// Segment decomposes a text block into atomic requirement records.
// ctx supplies the enclosing standard, directive, section, and domain
// used for reference synthesis.
func (s *Segmenter) Segment(text string, ctx records.Context) []domain.Requirement {
	for _, strat := range s.strategies {
		if reqs := strat.Segment(text, ctx); reqs != nil {
			logger.Debug("Segmenter: strategy %q produced %d records", strat.Name(), len(reqs))
			return reqs
		}
	}
	return nil
}
