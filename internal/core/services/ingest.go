package services

import (
	"context"
	"fmt"

	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driving"
	"github.com/7ammad/saudi-standards-api/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the corpus in one sequential pass at startup.
// A document that fails to read or parse is logged and skipped; the
// pass continues with the remaining documents.
type IngestService struct {
	connector driven.Connector
	extractor driven.Extractor
	store     driven.CorpusStore
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	connector driven.Connector,
	extractor driven.Extractor,
	store driven.CorpusStore,
) *IngestService {
	return &IngestService{
		connector: connector,
		extractor: extractor,
		store:     store,
	}
}

// Ingest loads every document from the connector, extracts its
// records, and appends them to the corpus in source order. Returns
// the number of records loaded.
func (s *IngestService) Ingest(ctx context.Context) (int, error) {
	logger.Section("Corpus Ingestion")

	if err := s.connector.Validate(ctx); err != nil {
		return 0, fmt.Errorf("validate source: %w", err)
	}

	docs, errs := s.connector.FullLoad(ctx)

	count := 0
	for docs != nil || errs != nil {
		select {
		case raw, ok := <-docs:
			if !ok {
				docs = nil
				continue
			}
			reqs := s.extractor.Extract(raw)
			for _, req := range reqs {
				if err := s.store.Append(ctx, req); err != nil {
					return count, fmt.Errorf("append record: %w", err)
				}
			}
			count += len(reqs)
			logger.Debug("Ingested %s: %d records", raw.URI, len(reqs))

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			// Per-document failure is isolated; the pass continues.
			logger.Warn("Ingestion: skipping document: %v", err)
		}
	}

	logger.Info("Ingestion complete: %d records", count)
	return count, nil
}
