// Package summary expands an AnalysisResult into a multi-sentence executive
// narrative through a fixed sequence of rule-based clause emitters.
package summary

import (
	"fmt"
	"strings"

	"trendwatch/internal/core"
	"trendwatch/internal/topics"
)

// topicInsights maps matched themes to their insight fragment, in theme
// declaration order. Wording is part of the external contract.
var topicInsights = []struct {
	Topic   string
	Insight string
}{
	{topics.ThemeTechnology, "significant technological advancement and innovation activity"},
	{topics.ThemeFinance, "active financial markets and investment opportunities"},
	{topics.ThemeHealthcare, "developments in healthcare and medical research"},
	{topics.ThemeBusiness, "business growth and industrial development"},
	{topics.ThemeResearch, "ongoing research initiatives and analytical studies"},
	{topics.ThemeMarket, "emerging market trends and consumer behavior shifts"},
}

// techTriggerWords are the top-keyword spellings that fire the
// technology-transformation implication.
var techTriggerWords = []string{"technology", "tech", "ai", "digital"}

// Summarize composes the executive summary for a successful analysis.
// An upstream failure propagates as an error payload embedding the upstream
// message; an analysis with neither keywords nor topics yields a no-signal
// error. Clause groups are emitted independently, in fixed order, and joined
// with single spaces.
func Summarize(result core.AnalysisResult) core.ExecutiveSummary {
	if result.Status != core.StatusSuccess {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "Unknown error in analysis"
		}
		return core.ExecutiveSummary{
			Status:       core.StatusError,
			ErrorMessage: fmt.Sprintf("Analysis results indicate failure: %s", msg),
		}
	}

	if len(result.Keywords) == 0 && len(result.Topics) == 0 {
		return core.ExecutiveSummary{
			Status:       core.StatusError,
			ErrorMessage: "No meaningful keywords or topics found in analysis results.",
		}
	}

	parts := []string{openingClause(result.Topics)}
	if clause := findingsClause(result.Keywords); clause != "" {
		parts = append(parts, clause)
	}
	if clause := insightsClause(result.Topics); clause != "" {
		parts = append(parts, clause)
	}
	if clause := implicationsClause(result.Keywords, result.Topics); clause != "" {
		parts = append(parts, clause)
	}
	parts = append(parts, closingClause(result.SummaryNotes))
	if clause := recommendationClause(result.Keywords); clause != "" {
		parts = append(parts, clause)
	}

	return core.ExecutiveSummary{
		Status:  core.StatusSuccess,
		Summary: strings.Join(parts, " "),
	}
}

// openingClause names the single topic, the count plus lowercased topic
// list, or a generic fallback when nothing matched.
func openingClause(matched []string) string {
	switch len(matched) {
	case 0:
		return "Executive Summary: Analysis of collected data reveals diverse content patterns."
	case 1:
		return fmt.Sprintf("Executive Summary: Analysis reveals a primary focus on %s.", strings.ToLower(matched[0]))
	default:
		return fmt.Sprintf("Executive Summary: Analysis reveals key themes across %d major areas: %s.",
			len(matched), strings.ToLower(strings.Join(matched, ", ")))
	}
}

// findingsClause reports the leading keywords; the phrasing differs when
// fewer than three are available.
func findingsClause(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	top := keywords
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) >= 3 {
		return fmt.Sprintf("Key findings center around %s, %s, and %s, indicating strong market interest and activity in these areas.",
			top[0], top[1], top[2])
	}
	return fmt.Sprintf("Key findings highlight %s as primary areas of focus.", strings.Join(top, ", "))
}

// insightsClause collects the insight fragment of every matched theme and
// joins them with an "and" before the last.
func insightsClause(matched []string) string {
	present := make(map[string]bool, len(matched))
	for _, topic := range matched {
		present[topic] = true
	}

	var insights []string
	for _, entry := range topicInsights {
		if present[entry.Topic] {
			insights = append(insights, entry.Insight)
		}
	}

	switch len(insights) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("The analysis indicates %s.", insights[0])
	default:
		return fmt.Sprintf("The analysis indicates %s, and %s.",
			strings.Join(insights[:len(insights)-1], ", "), insights[len(insights)-1])
	}
}

// implicationsClause evaluates the three strategic trigger patterns over the
// top-5 keywords and matched topics. The triggers are independent, each
// fires at most once, and they append in declaration order.
func implicationsClause(keywords, matched []string) string {
	top := keywords
	if len(top) > 5 {
		top = top[:5]
	}
	lowered := make(map[string]bool, len(top))
	for _, keyword := range top {
		lowered[strings.ToLower(keyword)] = true
	}
	present := make(map[string]bool, len(matched))
	for _, topic := range matched {
		present[topic] = true
	}

	var implications []string

	if lowered["fintech"] || present[topics.ThemeFinance] {
		implications = append(implications, "opportunities in financial technology and digital payment solutions")
	}

	for _, word := range techTriggerWords {
		if lowered[word] {
			implications = append(implications, "potential for technology-driven transformation and automation")
			break
		}
	}

	if lowered["healthcare"] || present[topics.ThemeHealthcare] {
		implications = append(implications, "growth prospects in healthcare innovation and medical technology")
	}

	if len(implications) == 0 {
		return ""
	}
	return fmt.Sprintf("Strategic implications suggest %s.", strings.Join(implications, ", "))
}

// closingClause carries the upstream narrative verbatim, or a generic
// closing sentence when the analysis produced no notes.
func closingClause(notes string) string {
	if notes != "" {
		return "Overall assessment: " + notes
	}
	return "The combined analysis provides valuable insights for strategic decision-making and market positioning."
}

// recommendationClause names the top two keywords, only emitted when at
// least three keywords exist.
func recommendationClause(keywords []string) string {
	if len(keywords) < 3 {
		return ""
	}
	return fmt.Sprintf("Recommendation: Continue monitoring developments in %s and %s for emerging opportunities and competitive intelligence.",
		keywords[0], keywords[1])
}
