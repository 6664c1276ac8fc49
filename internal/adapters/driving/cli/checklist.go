package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

var (
	checklistStandards []string
	checklistClass     string
	checklistDomains   []string
	checklistJSON      bool
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Generate a compliance checklist",
	Long: `Generates a compliance checklist from the requirements of one or
more standards. --class and --domain narrow the checklist where
records carry the attribute; a narrowing that would empty the
checklist is ignored rather than enforced.`,
	RunE: runChecklist,
}

func init() {
	checklistCmd.Flags().StringSliceVar(&checklistStandards, "standards", nil, "standard codes to include (required)")
	checklistCmd.Flags().StringVar(&checklistClass, "class", "", "facility classification")
	checklistCmd.Flags().StringSliceVar(&checklistDomains, "domain", nil, "domains to include")
	checklistCmd.Flags().BoolVar(&checklistJSON, "json", false, "output the checklist as JSON")
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, _ []string) error {
	if requirementService == nil {
		return errors.New("requirement service not configured")
	}

	filter := domain.ChecklistFilter{
		Standards:     checklistStandards,
		FacilityClass: checklistClass,
		Domains:       checklistDomains,
	}

	items, err := requirementService.GenerateChecklist(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("generating checklist: %w", err)
	}

	if checklistJSON {
		return printJSON(cmd, items)
	}

	if len(items) == 0 {
		cmd.Println("No requirements matched.")
		return nil
	}

	cmd.Printf("Checklist (%d items):\n\n", len(items))
	for i := range items {
		cmd.Printf("  [ ] %s - %s\n", items[i].Reference, items[i].Title)
		if snippet := snippet(items[i].Requirement, 120); snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
	}
	return nil
}
