package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// SearchInput is the input schema for the search_requirements tool.
type SearchInput struct {
	Standard      string `json:"standard,omitempty" jsonschema:"standard code to filter by, e.g. HCIS_SEC"`
	DirectiveCode string `json:"directive_code,omitempty" jsonschema:"directive code to filter by, e.g. SEC-05"`
	FacilityClass string `json:"facility_class,omitempty" jsonschema:"facility classification to filter by"`
	Domain        string `json:"domain,omitempty" jsonschema:"domain to filter by, e.g. security or fire safety"`
	Query         string `json:"query,omitempty" jsonschema:"free-text query matched against titles and texts"`
	Limit         int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
}

// SearchOutput is the output schema for the search_requirements tool.
type SearchOutput struct {
	Results []RequirementOutput `json:"results"`
	Count   int                 `json:"count"`
}

// RequirementOutput represents a single requirement record.
type RequirementOutput struct {
	Reference     string   `json:"reference"`
	Standard      string   `json:"standard"`
	DirectiveCode string   `json:"directive_code,omitempty"`
	SectionCode   string   `json:"section_code,omitempty"`
	ClauseID      string   `json:"clause_id,omitempty"`
	Title         string   `json:"title"`
	Text          string   `json:"text"`
	FacilityClass string   `json:"facility_class,omitempty"`
	Domain        string   `json:"domain,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// ReferenceInput is the input schema for the get_reference tool.
type ReferenceInput struct {
	Reference string `json:"reference" jsonschema:"the requirement reference to resolve, e.g. HCIS_SEC SEC-05 4.3 4.3.1"`
}

// ChecklistInput is the input schema for the generate_checklist tool.
type ChecklistInput struct {
	Standards     []string `json:"standards" jsonschema:"standard codes to draw requirements from (at least one)"`
	FacilityClass string   `json:"facility_class,omitempty" jsonschema:"facility classification to narrow by where records carry one"`
	Domains       []string `json:"domains,omitempty" jsonschema:"domains to narrow by where records carry one"`
}

// ChecklistOutput is the output schema for the generate_checklist tool.
type ChecklistOutput struct {
	Items []ChecklistItemOutput `json:"items"`
	Count int                   `json:"count"`
}

// ChecklistItemOutput represents a single checklist item.
type ChecklistItemOutput struct {
	Reference   string `json:"reference"`
	Standard    string `json:"standard"`
	ClauseID    string `json:"clause_id,omitempty"`
	Title       string `json:"title"`
	Requirement string `json:"requirement"`
	Mandatory   bool   `json:"mandatory"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_requirements",
		Description: "Search regulatory requirements by standard, directive, facility class, domain, or free text",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_reference",
		Description: "Resolve a requirement reference to its full record",
	}, s.handleGetReference)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_checklist",
		Description: "Generate a compliance checklist for one or more standards",
	}, s.handleGenerateChecklist)
}

// handleSearch handles the search_requirements tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	filter := domain.SearchFilter{
		Standard:      input.Standard,
		DirectiveCode: input.DirectiveCode,
		FacilityClass: input.FacilityClass,
		Domain:        input.Domain,
		Query:         input.Query,
		Limit:         input.Limit,
	}

	results, err := s.requirements.Search(ctx, filter)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]RequirementOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = toRequirementOutput(&results[i])
	}
	return nil, output, nil
}

// handleGetReference handles the get_reference tool invocation.
func (s *Server) handleGetReference(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReferenceInput,
) (*mcp.CallToolResult, RequirementOutput, error) {
	req, err := s.requirements.GetReference(ctx, input.Reference)
	if err != nil {
		return nil, RequirementOutput{}, err
	}
	return nil, toRequirementOutput(req), nil
}

// handleGenerateChecklist handles the generate_checklist tool invocation.
func (s *Server) handleGenerateChecklist(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChecklistInput,
) (*mcp.CallToolResult, ChecklistOutput, error) {
	filter := domain.ChecklistFilter{
		Standards:     input.Standards,
		FacilityClass: input.FacilityClass,
		Domains:       input.Domains,
	}

	items, err := s.requirements.GenerateChecklist(ctx, filter)
	if err != nil {
		return nil, ChecklistOutput{}, err
	}

	output := ChecklistOutput{
		Items: make([]ChecklistItemOutput, len(items)),
		Count: len(items),
	}
	for i := range items {
		output.Items[i] = ChecklistItemOutput{
			Reference:   items[i].Reference,
			Standard:    items[i].Standard,
			ClauseID:    items[i].ClauseID,
			Title:       items[i].Title,
			Requirement: items[i].Requirement,
			Mandatory:   items[i].Mandatory,
		}
	}
	return nil, output, nil
}

func toRequirementOutput(r *domain.Requirement) RequirementOutput {
	return RequirementOutput{
		Reference:     r.Reference,
		Standard:      r.Standard,
		DirectiveCode: r.DirectiveCode,
		SectionCode:   r.SectionCode,
		ClauseID:      r.ClauseID,
		Title:         r.Title,
		Text:          r.Text,
		FacilityClass: r.FacilityClass,
		Domain:        r.Domain,
		Tags:          r.Tags,
	}
}
