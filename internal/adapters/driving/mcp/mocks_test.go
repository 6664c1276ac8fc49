package mcp

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

	lastSearchFilter    domain.SearchFilter
	lastReference       string
	lastChecklistFilter domain.ChecklistFilter
}

func (m *mockRequirementService) Search(
	_ context.Context, filter domain.SearchFilter,
) ([]domain.Requirement, error) {
	m.lastSearchFilter = filter
	return m.results, m.err
}

func (m *mockRequirementService) GetReference(
	_ context.Context, reference string,
) (*domain.Requirement, error) {
	m.lastReference = reference
	return m.single, m.err
}

func (m *mockRequirementService) GenerateChecklist(
	_ context.Context, filter domain.ChecklistFilter,
) ([]domain.ChecklistItem, error) {
	m.lastChecklistFilter = filter
	return m.checklist, m.err
}

func (m *mockRequirementService) Count(_ context.Context) int {
	return m.count
}

func (m *mockRequirementService) Stats(_ context.Context) map[string]int {
	return m.stats
}
