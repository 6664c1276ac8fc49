package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the loaded corpus",
	Long:  `Reports how many requirements are loaded, broken down by standard.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if requirementService == nil {
		return errors.New("requirement service not configured")
	}

	ctx := cmd.Context()
	total := requirementService.Count(ctx)
	stats := requirementService.Stats(ctx)

	cmd.Printf("Loaded requirements: %d\n", total)
	if len(stats) == 0 {
		return nil
	}

	standards := make([]string, 0, len(stats))
	for standard := range stats {
		standards = append(standards, standard)
	}
	sort.Strings(standards)

	cmd.Println()
	for _, standard := range standards {
		cmd.Printf("  %-12s %d\n", standard, stats[standard])
	}
	return nil
}
