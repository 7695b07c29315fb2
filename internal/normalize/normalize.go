// Package normalize converts loosely-typed per-source records into the flat
// text list consumed by the analysis pipeline.
package normalize

import "errors"

// Sentinel errors surfaced verbatim as error_message payloads at the
// analysis boundary, so their wording is part of the external contract.
var (
	// ErrInvalidInput is returned when the top-level argument is not a
	// non-empty mapping.
	ErrInvalidInput = errors.New("Invalid inputs provided. Expected dictionary with content data.")

	// ErrNoContent is returned when every extraction rule came up empty. The
	// message names both possible causes: missing keys and empty arrays.
	ErrNoContent = errors.New("No valid content found in inputs. Expected 'news', 'research', and 'social' keys with content arrays, or a comprehensive analysis result.")
)

// Flatten extracts text from a mapping of source-category name to record
// lists, or from a pre-combined comprehensive analysis result. The returned
// slice preserves input order; its length is the accepted item count.
//
// Extraction rules per category:
//   - news, social: each record must expose a "content" string; skipped otherwise.
//   - research: "content", or failing that a non-empty "title"; skipped otherwise.
//   - comprehensive form: news_analysis.articles[].content and
//     social_media_analysis.posts[].content, each gated on a "success" status,
//     consulted only when the category rules accepted nothing.
func Flatten(input any) ([]string, error) {
	m, ok := input.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, ErrInvalidInput
	}

	var texts []string

	for _, rec := range records(m["news"]) {
		if content, ok := stringField(rec, "content"); ok {
			texts = append(texts, content)
		}
	}

	for _, rec := range records(m["research"]) {
		content, ok := stringField(rec, "content")
		if !ok || content == "" {
			content, ok = stringField(rec, "title")
		}
		if ok && content != "" {
			texts = append(texts, content)
		}
	}

	for _, rec := range records(m["social"]) {
		if content, ok := stringField(rec, "content"); ok {
			texts = append(texts, content)
		}
	}

	// A comprehensive analysis result carries nested per-source outputs
	// instead of flat category lists. Only unwrapped when the category rules
	// accepted nothing, and only for nested results that reported success.
	if len(texts) == 0 {
		_, hasNews := m["news_analysis"]
		_, hasSocial := m["social_media_analysis"]
		if hasNews && hasSocial {
			texts = append(texts, nestedContent(m["news_analysis"], "articles")...)
			texts = append(texts, nestedContent(m["social_media_analysis"], "posts")...)
		}
	}

	if len(texts) == 0 {
		return nil, ErrNoContent
	}
	return texts, nil
}

// records coerces a category value into its record maps, dropping anything
// that is not list-of-mapping shaped.
func records(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var recs []map[string]any
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// stringField reads a string-valued key from a record.
func stringField(rec map[string]any, key string) (string, bool) {
	s, ok := rec[key].(string)
	return s, ok
}

// nestedContent unwraps {"status": "success", <listKey>: [{"content": ...}]}.
func nestedContent(v any, listKey string) []string {
	nested, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if status, _ := stringField(nested, "status"); status != "success" {
		return nil
	}
	var texts []string
	for _, rec := range records(nested[listKey]) {
		if content, ok := stringField(rec, "content"); ok {
			texts = append(texts, content)
		}
	}
	return texts
}
