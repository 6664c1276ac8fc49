package domain

// DefaultSearchLimit is applied when a search filter omits a limit.
const DefaultSearchLimit = 50

// SearchFilter narrows the corpus for a requirements search.
// Every supplied field is applied as a sequential narrowing; at least
// one field must be supplied.
type SearchFilter struct {
	// Standard filters by source-family code (substring match).
	Standard string

	// DirectiveCode filters by directive code (substring match).
	DirectiveCode string

	// FacilityClass filters by facility classification (substring match).
	FacilityClass string

	// Domain filters by topical tag (substring match).
	Domain string

	// Query is matched against title OR text: the full query as a
	// substring, or every whitespace-delimited token independently.
	Query string

	// Limit is the maximum number of results (default DefaultSearchLimit).
	Limit int
}

// Empty reports whether no filter field is supplied.
func (f SearchFilter) Empty() bool {
	return f.Standard == "" &&
		f.DirectiveCode == "" &&
		f.FacilityClass == "" &&
		f.Domain == "" &&
		f.Query == ""
}

// Validate checks that at least one filter field is supplied.
func (f SearchFilter) Validate() error {
	if f.Empty() {
		return ErrNoFilter
	}
	return nil
}

// ChecklistFilter selects the records for a compliance checklist.
type ChecklistFilter struct {
	// Standards is mandatory and non-empty; a record is kept when its
	// standard matches any entry.
	Standards []string

	// FacilityClass is a soft filter: applied only if it leaves at
	// least one record, silently ignored otherwise.
	FacilityClass string

	// Domains is a soft filter with the same policy as FacilityClass.
	Domains []string
}

// Validate checks that the mandatory standards filter is supplied.
func (f ChecklistFilter) Validate() error {
	if len(f.Standards) == 0 {
		return ErrNoStandards
	}
	return nil
}
