package cli

import (
	"context"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// mockRequirementService is a mock implementation of driving.RequirementService.
type mockRequirementService struct {
	results   []domain.Requirement
	single    *domain.Requirement
	checklist []domain.ChecklistItem
	stats     map[string]int
	count     int
	err       error
}

func (m *mockRequirementService) Search(
	_ context.Context, _ domain.SearchFilter,
) ([]domain.Requirement, error) {
	return m.results, m.err
}

func (m *mockRequirementService) GetReference(
	_ context.Context, _ string,
) (*domain.Requirement, error) {
	return m.single, m.err
}

func (m *mockRequirementService) GenerateChecklist(
	_ context.Context, _ domain.ChecklistFilter,
) ([]domain.ChecklistItem, error) {
	return m.checklist, m.err
}

func (m *mockRequirementService) Count(_ context.Context) int {
	return m.count
}

func (m *mockRequirementService) Stats(_ context.Context) map[string]int {
	return m.stats
}

// setupTestServices swaps in a canned requirement service and returns
// a cleanup function restoring the previous one.
func setupTestServices() func() {
	old := requirementService
	requirementService = &mockRequirementService{
		results: []domain.Requirement{
			{
				Reference: "HCIS_SEC SEC-05 4.3 4.3.1",
				Standard:  "HCIS_SEC",
				ClauseID:  "4.3.1",
				Title:     "Fencing",
				Text:      "Perimeter fences must be at least 2m high.",
			},
		},
		single: &domain.Requirement{
			Reference: "HCIS_SEC SEC-05 4.3 4.3.1",
			Standard:  "HCIS_SEC",
			Title:     "Fencing",
			Text:      "Perimeter fences must be at least 2m high.",
		},
		checklist: []domain.ChecklistItem{
			{
				Reference:   "HCIS_SEC SEC-05 4.3 4.3.1",
				Standard:    "HCIS_SEC",
				Title:       "Fencing",
				Requirement: "Perimeter fences must be at least 2m high.",
				Mandatory:   true,
			},
		},
		stats: map[string]int{"HCIS_SEC": 1},
		count: 1,
	}
	return func() {
		requirementService = old
	}
}
