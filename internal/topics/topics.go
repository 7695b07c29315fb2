// Package topics classifies filtered token sets against a fixed theme table.
package topics

// Theme names. The declaration order of themeTable below is the output
// order; downstream composers key insight text off these names.
const (
	ThemeTechnology = "Technology & Innovation"
	ThemeFinance    = "Finance & Investment"
	ThemeHealthcare = "Healthcare & Medical"
	ThemeBusiness   = "Business & Industry"
	ThemeResearch   = "Research & Analysis"
	ThemeMarket     = "Market Trends"
)

// Theme pairs a label with the keyword set that triggers it.
type Theme struct {
	Name     string   // Display label, e.g. "Technology & Innovation"
	Keywords []string // Any single hit in the token set matches the theme
}

// themeTable is a fixed lookup, never re-parsed or re-ordered per call.
// The keyword sets are part of the external contract and must not drift.
var themeTable = []Theme{
	{ThemeTechnology, []string{"technology", "innovation", "tech", "ai", "artificial", "intelligence", "machine", "learning", "digital", "algorithm"}},
	{ThemeFinance, []string{"finance", "fintech", "investment", "money", "financial", "banking", "payment", "market", "economic", "economy"}},
	{ThemeHealthcare, []string{"healthcare", "health", "medical", "medicine", "patient", "treatment", "clinical", "pharmaceutical"}},
	{ThemeBusiness, []string{"business", "industry", "company", "corporate", "startup", "enterprise", "commercial", "growth", "development"}},
	{ThemeResearch, []string{"research", "analysis", "study", "data", "findings", "report", "paper", "academic", "scientific"}},
	{ThemeMarket, []string{"trend", "trending", "market", "growth", "increase", "sector", "industry", "demand", "consumer"}},
}

// Classify returns the names of every theme whose keyword set intersects the
// token set, in table declaration order. A theme with one keyword hit ranks
// the same as one with ten; matches are never sorted by strength. No match
// yields an empty slice, not an error.
func Classify(tokens []string) []string {
	present := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		present[token] = true
	}

	var matched []string
	for _, theme := range themeTable {
		for _, keyword := range theme.Keywords {
			if present[keyword] {
				matched = append(matched, theme.Name)
				break
			}
		}
	}
	return matched
}
