package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

The corpus is loaded once at startup. With --watch, changes to the
documents directory are logged so operators know a restart is needed
to pick them up.

Examples:
  # Stdio mode (default, for Claude Desktop)
  standards-api mcp serve --docs /data/standards

  # HTTP mode (for MCP Inspector, remote access)
  standards-api mcp serve --docs /data/standards --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "log document changes while serving")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port == 0 && configStore != nil {
		port = configStore.GetInt("mcp_port")
	}

	server, err := mcp.NewServer(requirementService)
	if err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch && docsConnector != nil {
		changes, err := docsConnector.Watch(cmd.Context())
		if err != nil {
			return fmt.Errorf("watching documents: %w", err)
		}
		server.WatchDocuments(changes)
	}

	addr := ""
	if port > 0 {
		addr = fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
	}
	return server.Serve(cmd.Context(), addr)
}
