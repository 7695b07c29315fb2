// Package tokenize implements word extraction, stopword filtering, and
// frequency ranking over the flattened source text.
package tokenize

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultTopN is the number of ranked terms the analysis pipeline reports.
const DefaultTopN = 10

// wordPattern matches maximal runs of ASCII letters. Digits and punctuation
// act as separators and are dropped entirely, so "web3" tokenizes to "web".
var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// stopwords is a fixed, hand-curated set: common English function words plus
// domain noise words that dominate mock feeds (sample, latest, news, ...).
// A static list keeps ranking deterministic and auditable at this scale;
// there is deliberately no stemming, so e.g. "fintech" never merges with
// "finance".
var stopwords = makeSet([]string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "up", "about", "into", "through", "during", "before", "after",
	"above", "below", "between", "among", "this", "that", "these", "those", "i",
	"me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
	"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers",
	"herself", "it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "am", "is",
	"are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "will", "would", "should", "could", "can", "may",
	"might", "must", "shall", "sample", "latest", "new", "today", "news",
})

// Tokens lowercases the texts, joins them with single spaces, and returns
// the letter-run tokens that survive the stopword and minimum-length
// (len > 2) filters, in order of occurrence.
func Tokens(texts []string) []string {
	combined := strings.ToLower(strings.Join(texts, " "))
	words := wordPattern.FindAllString(combined, -1)

	var filtered []string
	for _, word := range words {
		if len(word) > 2 && !stopwords[word] {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// TopTerms returns the n most frequent tokens, most frequent first. Equal
// counts keep first-occurrence order, so identical input always yields an
// identical ranking.
func TopTerms(tokens []string, n int) []string {
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, token := range tokens {
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n > 0 && len(order) > n {
		order = order[:n]
	}
	return order
}

func makeSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}
