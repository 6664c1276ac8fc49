package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driven/storage/memory"
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

func newTestService(t *testing.T, reqs ...domain.Requirement) *RequirementService {
	t.Helper()
	store := memory.NewCorpusStore()
	for _, r := range reqs {
		require.NoError(t, store.Append(context.Background(), r))
	}
	return NewRequirementService(store)
}

func testCorpus() []domain.Requirement {
	return []domain.Requirement{
		{
			Standard: "HCIS_SEC", DirectiveCode: "SEC-05", SectionCode: "4.3",
			ClauseID: "4.3.1", Title: "Fencing",
			Text:          "Perimeter fences must be at least 2m high.",
			FacilityClass: "class 1", Domain: "security",
			Reference: "HCIS_SEC SEC-05 4.3 4.3.1",
		},
		{
			Standard: "HCIS_SEC", DirectiveCode: "SEC-05", SectionCode: "4.3",
			ClauseID: "4.3.2", Title: "Gates",
			Text:      "Gates must be locked and monitored.",
			Domain:    "security",
			Reference: "HCIS_SEC SEC-05 4.3 4.3.2",
		},
		{
			Standard: "SBC", SectionCode: "9.1", ClauseID: "9.1.1",
			Title: "Egress", Text: "Exit doors must open outward.",
			FacilityClass: "class 2", Domain: "building",
			Reference: "SBC 9.1 9.1.1",
		},
	}
}

func TestRequirementService_Search(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testCorpus()...)

	t.Run("rejects empty filter", func(t *testing.T) {
		_, err := svc.Search(ctx, domain.SearchFilter{})
		assert.ErrorIs(t, err, domain.ErrNoFilter)
	})

	t.Run("narrows by standard", func(t *testing.T) {
		results, err := svc.Search(ctx, domain.SearchFilter{Standard: "HCIS_SEC"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("standard match is a case-insensitive substring", func(t *testing.T) {
		results, err := svc.Search(ctx, domain.SearchFilter{Standard: "hcis"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("filters combine as sequential narrowing", func(t *testing.T) {
		results, err := svc.Search(ctx, domain.SearchFilter{
			Standard:      "HCIS_SEC",
			FacilityClass: "class 1",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "4.3.1", results[0].ClauseID)
	})

	t.Run("query matches title or text", func(t *testing.T) {
		results, err := svc.Search(ctx, domain.SearchFilter{Query: "Egress"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "SBC", results[0].Standard)
	})

	t.Run("query tokens match independently", func(t *testing.T) {
		// "locked gates" is not a substring of anything, but both
		// tokens appear in the gates record.
		results, err := svc.Search(ctx, domain.SearchFilter{Query: "locked gates"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "4.3.2", results[0].ClauseID)
	})

	t.Run("no match yields empty result, not an error", func(t *testing.T) {
		results, err := svc.Search(ctx, domain.SearchFilter{Query: "no such words here"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("limit truncates results", func(t *testing.T) {
		results, err := svc.Search(ctx, domain.SearchFilter{Standard: "HCIS_SEC", Limit: 1})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "4.3.1", results[0].ClauseID)
	})

	t.Run("default limit applies", func(t *testing.T) {
		var many []domain.Requirement
		for i := 0; i < domain.DefaultSearchLimit+10; i++ {
			many = append(many, domain.Requirement{
				Standard: "HCIS_SEC", Title: "r", Text: "text",
			})
		}
		big := newTestService(t, many...)

		results, err := big.Search(ctx, domain.SearchFilter{Standard: "HCIS_SEC"})
		require.NoError(t, err)
		assert.Len(t, results, domain.DefaultSearchLimit)
	})
}

func TestRequirementService_GetReference(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testCorpus()...)

	t.Run("exact normalized match", func(t *testing.T) {
		req, err := svc.GetReference(ctx, "hcis sec sec-05 4.3 4.3.2")
		require.NoError(t, err)
		assert.Equal(t, "4.3.2", req.ClauseID)
	})

	t.Run("underscores and case are normalized", func(t *testing.T) {
		req, err := svc.GetReference(ctx, "HCIS_SEC_SEC-05_4.3_4.3.1")
		require.NoError(t, err)
		assert.Equal(t, "4.3.1", req.ClauseID)
	})

	t.Run("suffix match as fallback", func(t *testing.T) {
		req, err := svc.GetReference(ctx, "9.1 9.1.1")
		require.NoError(t, err)
		assert.Equal(t, "SBC", req.Standard)
	})

	t.Run("first match wins on duplicate references", func(t *testing.T) {
		dup := newTestService(t,
			domain.Requirement{Title: "first", Reference: "STD 1.1"},
			domain.Requirement{Title: "second", Reference: "STD 1.1"},
		)
		req, err := dup.GetReference(ctx, "STD 1.1")
		require.NoError(t, err)
		assert.Equal(t, "first", req.Title)
	})

	t.Run("unknown reference is not found", func(t *testing.T) {
		_, err := svc.GetReference(ctx, "unknown")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty reference is not found", func(t *testing.T) {
		_, err := svc.GetReference(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequirementService_GenerateChecklist(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testCorpus()...)

	t.Run("rejects missing standards", func(t *testing.T) {
		_, err := svc.GenerateChecklist(ctx, domain.ChecklistFilter{})
		assert.ErrorIs(t, err, domain.ErrNoStandards)
	})

	t.Run("standards filter is mandatory and hard", func(t *testing.T) {
		items, err := svc.GenerateChecklist(ctx, domain.ChecklistFilter{
			Standards: []string{"SBC"},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Exit doors must open outward.", items[0].Requirement)
		assert.True(t, items[0].Mandatory)
	})

	t.Run("multiple standards union", func(t *testing.T) {
		items, err := svc.GenerateChecklist(ctx, domain.ChecklistFilter{
			Standards: []string{"HCIS_SEC", "SBC"},
		})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("facility class narrows when it matches", func(t *testing.T) {
		items, err := svc.GenerateChecklist(ctx, domain.ChecklistFilter{
			Standards:     []string{"HCIS_SEC"},
			FacilityClass: "class 1",
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "4.3.1", items[0].ClauseID)
	})

	t.Run("facility class matching nothing is silently ignored", func(t *testing.T) {
		// The standards filter alone matches two records; a facility
		// class that matches none of them is dropped, not enforced.
		items, err := svc.GenerateChecklist(ctx, domain.ChecklistFilter{
			Standards:     []string{"HCIS_SEC"},
			FacilityClass: "class 99",
		})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("domains soft filter", func(t *testing.T) {
		items, err := svc.GenerateChecklist(ctx, domain.ChecklistFilter{
			Standards: []string{"HCIS_SEC", "SBC"},
			Domains:   []string{"building"},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "SBC", items[0].Standard)
	})
}

func TestRequirementService_Count(t *testing.T) {
	svc := newTestService(t, testCorpus()...)
	assert.Equal(t, 3, svc.Count(context.Background()))
}

func TestRequirementService_Stats(t *testing.T) {
	svc := newTestService(t, testCorpus()...)
	stats := svc.Stats(context.Background())
	assert.Equal(t, map[string]int{"HCIS_SEC": 2, "SBC": 1}, stats)
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name   string
		target string
		query  string
		want   bool
	}{
		{"full substring", "gates must be locked", "must be", true},
		{"all tokens present", "gates must be locked", "locked gates", true},
		{"one token missing", "gates must be locked", "locked doors", false},
		{"case insensitive", "Gates Must Be Locked", "gates LOCKED", true},
		{"empty query", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzyMatch(tt.target, tt.query))
		})
	}
}
