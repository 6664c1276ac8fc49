package services

import (
	"context"
	"strings"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driving"
	"github.com/7ammad/saudi-standards-api/internal/logger"
)

// Ensure RequirementService implements the interface.
var _ driving.RequirementService = (*RequirementService)(nil)

// RequirementService answers queries over the finished corpus.
// Every operation is a pure linear scan; the corpus never changes
// after ingestion, so the service is safe for concurrent readers.
type RequirementService struct {
	store driven.CorpusStore
}

// NewRequirementService creates a new requirement query service.
func NewRequirementService(store driven.CorpusStore) *RequirementService {
	return &RequirementService{store: store}
}

// Search narrows the corpus by each supplied filter in turn, then
// truncates to the limit.
func (s *RequirementService) Search(
	ctx context.Context, filter domain.SearchFilter,
) ([]domain.Requirement, error) {
	logger.Section("Search Execution")

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	logger.Debug("Filters: standard=%q directive=%q class=%q domain=%q query=%q limit=%d",
		filter.Standard, filter.DirectiveCode, filter.FacilityClass, filter.Domain,
		filter.Query, limit)

	results := s.store.All(ctx)
	results = narrow(results, filter.Standard, func(r *domain.Requirement) string { return r.Standard })
	results = narrow(results, filter.DirectiveCode, func(r *domain.Requirement) string { return r.DirectiveCode })
	results = narrow(results, filter.FacilityClass, func(r *domain.Requirement) string { return r.FacilityClass })
	results = narrow(results, filter.Domain, func(r *domain.Requirement) string { return r.Domain })

	if filter.Query != "" {
		matched := make([]domain.Requirement, 0)
		for i := range results {
			if fuzzyMatch(results[i].Title, filter.Query) || fuzzyMatch(results[i].Text, filter.Query) {
				matched = append(matched, results[i])
			}
		}
		results = matched
	}

	logger.Debug("Matched %d records", len(results))
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// GetReference resolves a free-form reference string to a record.
// Both sides are normalized identically; an exact match wins, then
// the first record whose reference ends with the query.
func (s *RequirementService) GetReference(
	ctx context.Context, reference string,
) (*domain.Requirement, error) {
	query := domain.NormalizeReference(reference)
	if query == "" {
		return nil, domain.ErrNotFound
	}

	all := s.store.All(ctx)
	for i := range all {
		if domain.NormalizeReference(all[i].Reference) == query {
			return &all[i], nil
		}
	}
	for i := range all {
		if strings.HasSuffix(domain.NormalizeReference(all[i].Reference), query) {
			logger.Debug("Reference %q resolved by suffix to %q", reference, all[i].Reference)
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// GenerateChecklist selects records for the requested standards and
// reshapes them as checklist items. FacilityClass and Domains are
// soft filters: each is applied only to records that carry the
// attribute, and only kept if it leaves at least one record; a
// filter that would empty the result set is silently ignored.
func (s *RequirementService) GenerateChecklist(
	ctx context.Context, filter domain.ChecklistFilter,
) ([]domain.ChecklistItem, error) {
	logger.Section("Checklist Generation")

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var selected []domain.Requirement
	for _, r := range s.store.All(ctx) {
		if matchesAny(r.Standard, filter.Standards) {
			selected = append(selected, r)
		}
	}
	logger.Debug("Standards filter matched %d records", len(selected))

	if filter.FacilityClass != "" {
		selected = softNarrow(selected,
			func(r *domain.Requirement) string { return r.FacilityClass },
			func(v string) bool { return contains(v, filter.FacilityClass) },
			"facility class")
	}
	if len(filter.Domains) > 0 {
		selected = softNarrow(selected,
			func(r *domain.Requirement) string { return r.Domain },
			func(v string) bool { return matchesAny(v, filter.Domains) },
			"domains")
	}

	items := make([]domain.ChecklistItem, len(selected))
	for i, r := range selected {
		items[i] = domain.NewChecklistItem(r)
	}
	return items, nil
}

// Count returns the number of loaded records.
func (s *RequirementService) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Stats returns the number of loaded records per standard.
func (s *RequirementService) Stats(ctx context.Context) map[string]int {
	stats := make(map[string]int)
	for _, r := range s.store.All(ctx) {
		stats[r.Standard]++
	}
	return stats
}

// narrow keeps records whose field contains the filter value.
// An empty filter passes everything through untouched.
func narrow(
	reqs []domain.Requirement, filter string, field func(*domain.Requirement) string,
) []domain.Requirement {
	if filter == "" {
		return reqs
	}
	out := make([]domain.Requirement, 0)
	for i := range reqs {
		if contains(field(&reqs[i]), filter) {
			out = append(out, reqs[i])
		}
	}
	return out
}

// softNarrow applies an optional checklist filter. Only records with
// a non-empty attribute are considered; if the test leaves at least
// one of them, they replace the working set, otherwise the filter is
// ignored and the prior set kept.
func softNarrow(
	reqs []domain.Requirement,
	field func(*domain.Requirement) string,
	test func(string) bool,
	name string,
) []domain.Requirement {
	matched := make([]domain.Requirement, 0)
	for i := range reqs {
		v := field(&reqs[i])
		if v != "" && test(v) {
			matched = append(matched, reqs[i])
		}
	}
	if len(matched) == 0 {
		logger.Debug("Soft filter %q matched nothing, keeping %d records", name, len(reqs))
		return reqs
	}
	return matched
}

// fuzzyMatch accepts the query as a whole substring of the target, or
// every whitespace-delimited token independently as a substring. This
// is an AND-of-tokens relaxation, not edit-distance fuzziness.
func fuzzyMatch(target, query string) bool {
	target = strings.ToLower(target)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return false
	}
	if strings.Contains(target, query) {
		return true
	}
	for _, token := range strings.Fields(query) {
		if !strings.Contains(target, token) {
			return false
		}
	}
	return true
}

// matchesAny reports whether the value contains any of the filters.
func matchesAny(value string, filters []string) bool {
	for _, f := range filters {
		if contains(value, f) {
			return true
		}
	}
	return false
}

// contains is a case-insensitive substring test.
func contains(value, filter string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
