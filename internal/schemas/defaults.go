package schemas

import (
	"github.com/7ammad/saudi-standards-api/internal/schemas/directive"
	"github.com/7ammad/saudi-standards-api/internal/schemas/generic"
	"github.com/7ammad/saudi-standards-api/internal/schemas/section"
	"github.com/7ammad/saudi-standards-api/internal/segmenter"
)

// RegisterDefaults installs the built-in handlers for every variant.
// Call this during application initialisation.
func RegisterDefaults(r *Registry, seg *segmenter.Segmenter) {
	r.Register(directive.New(seg))
	r.Register(section.New(seg))
	r.Register(generic.New())
}

// NewDefault creates a registry with the default handlers and
// segmenter cascade.
func NewDefault() *Registry {
	r := NewRegistry()
	RegisterDefaults(r, segmenter.New())
	return r
}
