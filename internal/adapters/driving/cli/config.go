package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Reads and writes the standards-api configuration file.

Known keys:
  documents_dir  directory containing standards documents
  search_limit   default maximum number of search results
  mcp_port       HTTP port for the MCP server (0 = stdio)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func openConfig() error {
	if configStore != nil {
		return nil
	}
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := openConfig(); err != nil {
		return err
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := openConfig(); err != nil {
		return err
	}

	key, raw := args[0], args[1]

	// Store integers as integers so GetInt works
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}
