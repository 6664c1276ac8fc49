package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driven/config/file"
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

var (
	searchStandard  string
	searchDirective string
	searchClass     string
	searchDomain    string
	searchLimit     int
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search requirements",
	Long: `Searches the loaded requirements. The free-text query matches
titles and requirement texts; a result must contain the whole query or
every word of it. Combine with --standard, --directive, --class, and
--domain to narrow the scope. At least one filter or a query is
required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchStandard, "standard", "", "standard code, e.g. HCIS_SEC")
	searchCmd.Flags().StringVar(&searchDirective, "directive", "", "directive code, e.g. SEC-05")
	searchCmd.Flags().StringVar(&searchClass, "class", "", "facility classification")
	searchCmd.Flags().StringVar(&searchDomain, "domain", "", "domain, e.g. security")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if requirementService == nil {
		return errors.New("requirement service not configured")
	}

	limit := searchLimit
	if !cmd.Flags().Changed("limit") && configStore != nil {
		if configured := configStore.GetInt(file.KeySearchLimit); configured > 0 {
			limit = configured
		}
	}

	filter := domain.SearchFilter{
		Standard:      searchStandard,
		DirectiveCode: searchDirective,
		FacilityClass: searchClass,
		Domain:        searchDomain,
		Limit:         limit,
	}
	if len(args) > 0 {
		filter.Query = args[0]
	}

	results, err := requirementService.Search(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, results)
	}
	return printRequirementList(cmd, results)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printRequirementList(cmd *cobra.Command, results []domain.Requirement) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s\n", i+1, results[i].Reference)
		cmd.Printf("      %s\n", results[i].Title)
		if snippet := snippet(results[i].Text, 120); snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}
	return nil
}

// snippet shortens text for list display, cutting on a rune boundary.
func snippet(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max] + "..."
}
