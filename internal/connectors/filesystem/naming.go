package filesystem

import (
	"strings"
	"unicode"
)

// namingRule maps filename tokens to a standard code and domain.
// Rules are checked in order; the first whose tokens all appear wins.
type namingRule struct {
	tokens   []string
	standard string
	domain   string
}

var namingRules = []namingRule{
	{tokens: []string{"hcis", "sec"}, standard: "HCIS_SEC", domain: "security"},
	{tokens: []string{"hcis", "saf"}, standard: "HCIS_SAF", domain: "safety"},
	{tokens: []string{"sbc"}, standard: "SBC", domain: "building"},
	{tokens: []string{"nfpa"}, standard: "NFPA", domain: "fire safety"},
}

// DeriveStandard infers the standard code and domain from a document
// filename. Unrecognised names fall back to the first two filename
// tokens upper-cased and joined with an underscore, domain "general".
func DeriveStandard(filename string) (standard, domain string) {
	name := strings.TrimSuffix(filename, ".json")
	lower := strings.ToLower(name)

	for _, rule := range namingRules {
		matched := true
		for _, token := range rule.tokens {
			if !strings.Contains(lower, token) {
				matched = false
				break
			}
		}
		if matched {
			return rule.standard, rule.domain
		}
	}

	tokens := splitTokens(lower)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	if len(tokens) == 0 {
		return "UNKNOWN", "general"
	}
	return strings.ToUpper(strings.Join(tokens, "_")), "general"
}

// splitTokens breaks a filename into alphanumeric runs.
func splitTokens(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
