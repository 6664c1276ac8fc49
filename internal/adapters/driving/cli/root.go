// Package cli wires the cobra command tree and bootstraps the
// application: configuration, document ingestion, and the query
// services the commands run against.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driven/config/file"
	"github.com/7ammad/saudi-standards-api/internal/adapters/driven/storage/memory"
	"github.com/7ammad/saudi-standards-api/internal/connectors/filesystem"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driving"
	"github.com/7ammad/saudi-standards-api/internal/core/services"
	"github.com/7ammad/saudi-standards-api/internal/logger"
	"github.com/7ammad/saudi-standards-api/internal/schemas"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

var (
	verbose bool
	docsDir string

	configStore        driven.ConfigStore
	docsConnector      driven.Connector
	requirementService driving.RequirementService
)

var rootCmd = &cobra.Command{
	Use:   "standards-api",
	Short: "Query engine for Saudi regulatory standards",
	Long: `standards-api loads Saudi regulatory standards documents (HCIS
directives, SBC, NFPA) from JSON files and answers search, reference,
and checklist queries over the extracted requirements.

Documents are read once at startup from the configured directory;
point it at your document set with --docs or the documents_dir config
key.`,
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs", "", "directory containing standards documents (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap builds the service graph and loads the corpus. Commands
// that never touch the corpus skip it; tests inject their own
// services, which also skips it.
func bootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if !commandNeedsCorpus(cmd) || requirementService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store

	dir := docsDir
	if dir == "" {
		dir = store.GetString(file.KeyDocumentsDir)
	}
	if dir == "" {
		return errors.New("no documents directory configured; pass --docs or set documents_dir")
	}

	connector := filesystem.New("documents", dir)
	docsConnector = connector
	corpus := memory.NewCorpusStore()
	ingest := services.NewIngestService(connector, schemas.NewDefault(), corpus)

	count, err := ingest.Ingest(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}
	logger.Info("Loaded %d requirements from %s", count, dir)

	requirementService = services.NewRequirementService(corpus)
	return nil
}

// commandNeedsCorpus reports whether the command queries the corpus.
func commandNeedsCorpus(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", "config":
			return false
		}
	}
	return true
}
