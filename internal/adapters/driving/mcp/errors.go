// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants query the standards corpus through tools and
// resources.
package mcp

import "errors"

// ErrMissingRequirementService is returned when the requirement service is not provided.
var ErrMissingRequirementService = errors.New("mcp: requirement service is required")
