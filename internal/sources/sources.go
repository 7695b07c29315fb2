// Package sources provides the external data collaborators that feed the
// analysis pipeline. The providers are mocks standing in for real news,
// research, and social backends: they expand fixed template tables for a
// domain keyword instead of performing network I/O, which keeps the whole
// pipeline deterministic end to end.
package sources

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trendwatch/internal/core"
)

// Source tags attached to generated records.
const (
	SourceNews   = "NewsAPI"
	SourceArxiv  = "arXiv"
	SourceSSRN   = "SSRN"
	SourceSocial = "X.com"
)

// ErrDomainRequired is returned by every provider for a blank domain.
var ErrDomainRequired = errors.New("Domain keyword required.")

// recordTemplate is one mock entry: a source tag plus a text template with a
// single %s slot for the domain keyword.
type recordTemplate struct {
	source string
	text   string
}

var newsTemplates = []recordTemplate{
	{SourceNews, "Sample headline about %s #1"},
	{SourceNews, "Sample headline about %s #2"},
	{SourceNews, "Breaking: Major %s company announces breakthrough innovation"},
	{SourceNews, "Industry experts predict significant growth in %s sector"},
	{SourceNews, "New regulations could impact %s market dynamics"},
	{SourceNews, "Global %s market reaches record high this quarter"},
	{SourceNews, "Startup disrupts traditional %s industry with AI technology"},
	{SourceNews, "Investment surge in %s companies signals market confidence"},
	{SourceNews, "Research reveals consumer trends shifting toward %s solutions"},
	{SourceNews, "International summit addresses future of %s innovation"},
}

var researchTemplates = []recordTemplate{
	{SourceArxiv, "Sample research paper about %s #1"},
	{SourceSSRN, "Sample research paper about %s #2"},
	{SourceArxiv, "Deep Learning Applications in %s: A Comprehensive Review"},
	{SourceSSRN, "Market Dynamics and Innovation Patterns in the %s Industry"},
	{SourceArxiv, "Machine Learning Methods for %s Optimization and Analysis"},
	{SourceSSRN, "Economic Impact of %s Technologies on Global Markets"},
	{SourceArxiv, "Algorithmic Approaches to %s Problem Solving"},
	{SourceSSRN, "Investment Trends and Risk Assessment in %s Sector"},
	{SourceArxiv, "Statistical Models for %s Data Processing and Prediction"},
	{SourceSSRN, "Regulatory Framework and Policy Implications for %s Development"},
}

var socialTemplates = []recordTemplate{
	{SourceSocial, "Latest trending post about %s #1"},
	{SourceSocial, "Latest trending post about %s #2"},
	{SourceSocial, "Breaking news in %s industry today! #innovation"},
	{SourceSocial, "New developments in %s are changing the game"},
	{SourceSocial, "Just discovered an amazing %s startup"},
	{SourceSocial, "Thread: Why %s is the future of technology (1/5)"},
	{SourceSocial, "Market analysis shows %s growing 200%% this year"},
	{SourceSocial, "Investors are bullish on %s companies #investing"},
	{SourceSocial, "Conference highlights: The state of %s in 2025"},
	{SourceSocial, "Hot take: %s will dominate the next decade #prediction"},
}

// searchDomain is the single mock search shared by all providers; the
// category only selects the template table and source tags.
func searchDomain(domain string, templates []recordTemplate) ([]core.ContentRecord, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, ErrDomainRequired
	}
	records := make([]core.ContentRecord, len(templates))
	for i, tmpl := range templates {
		records[i] = core.ContentRecord{
			Source: tmpl.source,
			Text:   fmt.Sprintf(tmpl.text, domain),
		}
	}
	return records, nil
}

// SearchNews returns mock news articles about the domain.
func SearchNews(domain string) ([]core.ContentRecord, error) {
	return searchDomain(domain, newsTemplates)
}

// SearchResearch returns mock research paper titles about the domain.
func SearchResearch(domain string) ([]core.ContentRecord, error) {
	return searchDomain(domain, researchTemplates)
}

// SearchSocial returns mock social posts about the domain. Real social
// backends report failures in-band as content strings (missing credentials
// and the like); the pipeline treats such records as ordinary text, so this
// mock needs no error channel beyond the blank-domain check.
func SearchSocial(domain string) ([]core.ContentRecord, error) {
	return searchDomain(domain, socialTemplates)
}

// Enabled selects which providers participate in collection.
type Enabled struct {
	News     bool
	Research bool
	Social   bool
}

// All enables every provider.
func All() Enabled {
	return Enabled{News: true, Research: true, Social: true}
}

// Collect gathers the enabled providers into the loosely-typed mapping the
// analyze operation consumes, plus the total record count.
func Collect(domain string, enabled Enabled) (map[string]any, int, error) {
	input := map[string]any{}
	count := 0

	if enabled.News {
		news, err := SearchNews(domain)
		if err != nil {
			return nil, 0, err
		}
		input["news"] = asMaps(news, "content")
		count += len(news)
	}
	if enabled.Research {
		papers, err := SearchResearch(domain)
		if err != nil {
			return nil, 0, err
		}
		input["research"] = asMaps(papers, "title")
		count += len(papers)
	}
	if enabled.Social {
		posts, err := SearchSocial(domain)
		if err != nil {
			return nil, 0, err
		}
		input["social"] = asMaps(posts, "content")
		count += len(posts)
	}

	return input, count, nil
}

// Comprehensive bundles news and social results into the nested
// pre-combined form the normalizer also accepts.
func Comprehensive(domain string) (map[string]any, error) {
	news, err := SearchNews(domain)
	if err != nil {
		return nil, err
	}
	posts, err := SearchSocial(domain)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"status":    core.StatusSuccess,
		"domain":    domain,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"news_analysis": map[string]any{
			"status":   core.StatusSuccess,
			"articles": asMaps(news, "content"),
		},
		"social_media_analysis": map[string]any{
			"status": core.StatusSuccess,
			"posts":  asMaps(posts, "content"),
		},
		"summary": map[string]any{
			"total_news_articles": len(news),
			"total_social_posts":  len(posts),
			"sources_analyzed":    []any{SourceNews, SourceSocial},
		},
	}, nil
}

// MergeDocuments appends extracted document records to the research
// category, where plain content records are accepted alongside titled
// papers.
func MergeDocuments(input map[string]any, docs []core.ContentRecord) {
	if len(docs) == 0 {
		return
	}
	existing, _ := input["research"].([]any)
	input["research"] = append(existing, asMaps(docs, "content")...)
}

// asMaps converts records to the []any-of-map shape the normalizer walks,
// storing the text under the given key ("content" or "title").
func asMaps(records []core.ContentRecord, key string) []any {
	items := make([]any, len(records))
	for i, rec := range records {
		items[i] = map[string]any{
			"source": rec.Source,
			key:      rec.Text,
		}
	}
	return items
}
