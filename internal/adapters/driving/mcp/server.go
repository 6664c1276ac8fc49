package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driving"
	"github.com/7ammad/saudi-standards-api/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the standards corpus over MCP. It speaks JSON-RPC
// over stdio by default and streamable HTTP when given an address.
type Server struct {
	requirements driving.RequirementService
	server       *mcp.Server
}

// NewServer wires the requirement service into an MCP server with all
// tools and resources registered.
func NewServer(requirements driving.RequirementService) (*Server, error) {
	if requirements == nil {
		return nil, ErrMissingRequirementService
	}

	s := &Server{
		requirements: requirements,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "saudi-standards-api",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// WatchDocuments drains change notifications from the document source
// and logs each one. The corpus is immutable once loaded, so the log
// line tells operators a restart is needed to pick the change up.
func (s *Server) WatchDocuments(docs <-chan domain.RawDocument) {
	go func() {
		for doc := range docs {
			logger.Warn("Document %s changed; restart to reload the corpus", doc.URI)
		}
	}()
}

// Serve blocks until the context is cancelled or the transport fails.
// An empty addr selects stdio; otherwise the server listens for
// streamable HTTP on addr and shuts down gracefully on cancellation.
func (s *Server) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		return s.server.Run(ctx, &mcp.StdioTransport{})
	}

	httpServer := &http.Server{
		Addr: addr,
		Handler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return s.server
		}, nil),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving over http: %w", err)
	}
	return nil
}
