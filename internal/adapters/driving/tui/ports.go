// Package tui provides an interactive terminal browser over the
// requirements corpus, built on bubbletea.
package tui

import (
	"errors"

	"github.com/7ammad/saudi-standards-api/internal/core/ports/driving"
)

// ErrMissingRequirementService is returned when the requirement service is not provided.
var ErrMissingRequirementService = errors.New("tui: requirement service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Requirements answers search and reference queries.
	Requirements driving.RequirementService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Requirements == nil {
		return ErrMissingRequirementService
	}
	return nil
}
