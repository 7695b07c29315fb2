// Package analyze wires the normalize, tokenize, and classify stages into
// the analyze operation and produces the one-sentence analysis narrative.
package analyze

import (
	"fmt"
	"strings"

	"trendwatch/internal/core"
	"trendwatch/internal/normalize"
	"trendwatch/internal/tokenize"
	"trendwatch/internal/topics"
)

// Analyze runs the full analysis pipeline over a loosely-typed source
// mapping (or comprehensive analysis result). It never returns a Go error;
// failures surface as {status: error, error_message} payloads so callers can
// branch on status alone. Each call is a pure function of its input: no
// caches, no counters, no retained references.
func Analyze(input any) core.AnalysisResult {
	texts, err := normalize.Flatten(input)
	if err != nil {
		return core.AnalysisResult{
			Status:       core.StatusError,
			ErrorMessage: err.Error(),
		}
	}

	tokens := tokenize.Tokens(texts)
	keywords := tokenize.TopTerms(tokens, tokenize.DefaultTopN)
	matched := topics.Classify(tokens)

	return core.AnalysisResult{
		Status:       core.StatusSuccess,
		Keywords:     keywords,
		Topics:       matched,
		SummaryNotes: narrative(keywords, matched, len(texts)),
	}
}

// narrative composes the analysis summary sentence. The wording is a fixed
// template pinned by golden tests, not free text.
func narrative(keywords, matched []string, itemCount int) string {
	if len(matched) == 0 {
		return fmt.Sprintf("Analysis of %d items shows diverse content without clear dominant themes.", itemCount)
	}

	dominant := matched
	if len(dominant) > 3 {
		dominant = dominant[:3]
	}
	terms := keywords
	if len(terms) > 5 {
		terms = terms[:5]
	}

	return fmt.Sprintf("Analysis of %d items reveals dominant themes in %s. Key recurring terms include %s.",
		itemCount, strings.Join(dominant, ", "), strings.Join(terms, ", "))
}
