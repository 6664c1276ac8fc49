package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var referenceJSON bool

var referenceCmd = &cobra.Command{
	Use:   "reference <reference>",
	Short: "Look up a requirement by reference",
	Long: `Resolves a requirement reference like "HCIS_SEC SEC-05 4.3 4.3.1"
to its full record. Case and separators are normalized, and a partial
reference matches the first record it is a suffix of.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReference,
}

func init() {
	referenceCmd.Flags().BoolVar(&referenceJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(referenceCmd)
}

func runReference(cmd *cobra.Command, args []string) error {
	if requirementService == nil {
		return errors.New("requirement service not configured")
	}

	reference := strings.Join(args, " ")
	req, err := requirementService.GetReference(cmd.Context(), reference)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", reference, err)
	}

	if referenceJSON {
		return printJSON(cmd, req)
	}

	cmd.Printf("%s\n", req.Reference)
	cmd.Printf("  Standard: %s\n", req.Standard)
	if req.DirectiveCode != "" {
		cmd.Printf("  Directive: %s\n", req.DirectiveCode)
	}
	if req.SectionCode != "" {
		cmd.Printf("  Section: %s\n", req.SectionCode)
	}
	if req.ClauseID != "" {
		cmd.Printf("  Clause: %s\n", req.ClauseID)
	}
	cmd.Printf("  Title: %s\n", req.Title)
	if req.FacilityClass != "" {
		cmd.Printf("  Facility class: %s\n", req.FacilityClass)
	}
	if req.Domain != "" {
		cmd.Printf("  Domain: %s\n", req.Domain)
	}
	cmd.Println()
	cmd.Println(req.Text)
	return nil
}
