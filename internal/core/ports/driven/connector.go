package driven

import (
	"context"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// Connector loads raw parsed documents from a data source.
// The filesystem connector is the only implementation today; the
// interface exists so ingestion stays independent of where documents
// come from.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// SourceID returns the configured source ID.
	SourceID() string

	// Validate checks the connector is ready to load.
	// For filesystem, this checks the path exists and is readable.
	Validate(ctx context.Context) error

	// FullLoad streams every document from the source in a stable
	// order. A document that fails to read or parse is reported on
	// the error channel and does not stop the stream. Both channels
	// are closed when the load completes.
	FullLoad(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Watch reports documents that change after the initial load.
	// The corpus itself is immutable once built; watchers use this to
	// signal that a restart is needed to pick up changes.
	Watch(ctx context.Context) (<-chan domain.RawDocument, error)

	// Close releases resources.
	Close() error
}
