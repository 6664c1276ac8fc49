package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for corpus resources.
const uriScheme = "standards://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "Record counts per loaded standard",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)
}

// handleCorpusResource reports the loaded corpus: total record count
// and a per-standard breakdown. An empty corpus signals that
// ingestion found no documents.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type standardInfo struct {
		Standard string `json:"standard"`
		Count    int    `json:"count"`
	}
	type corpusInfo struct {
		Total     int            `json:"total"`
		Standards []standardInfo `json:"standards"`
	}

	stats := s.requirements.Stats(ctx)

	info := corpusInfo{
		Total:     s.requirements.Count(ctx),
		Standards: make([]standardInfo, 0, len(stats)),
	}
	for standard, count := range stats {
		info.Standards = append(info.Standards, standardInfo{Standard: standard, Count: count})
	}
	sort.Slice(info.Standards, func(i, j int) bool {
		return info.Standards[i].Standard < info.Standards[j].Standard
	})

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
