// Package core defines the shared data types passed between pipeline stages.
package core

import "time"

// Status values carried by every pipeline payload. Callers branch on these
// rather than on Go errors; the analysis boundary never panics.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ContentRecord is a normalized unit of text with provenance.
type ContentRecord struct {
	Source string `json:"source"` // Where the text came from (e.g. "NewsAPI", "X.com", a file path)
	Text   string `json:"text"`   // Non-empty text content
}

// AnalysisResult is the contract between analysis and summarization.
// It is created fresh per request and never merged across requests.
type AnalysisResult struct {
	Status       string   `json:"status"`                  // StatusSuccess or StatusError
	Keywords     []string `json:"keywords,omitempty"`      // Top-ranked terms, most frequent first
	Topics       []string `json:"topics,omitempty"`        // Matched themes in declaration order
	SummaryNotes string   `json:"summary_notes,omitempty"` // One-sentence narrative of the findings
	ErrorMessage string   `json:"error_message,omitempty"` // Set only when Status is StatusError
}

// ExecutiveSummary is the terminal artifact, derived from one AnalysisResult.
type ExecutiveSummary struct {
	Status       string `json:"status"`                  // StatusSuccess or StatusError
	Summary      string `json:"summary,omitempty"`       // Multi-sentence executive narrative
	ErrorMessage string `json:"error_message,omitempty"` // Set only when Status is StatusError
}

// TrendReport bundles one full pipeline run for rendering.
type TrendReport struct {
	ID          string           `json:"id"`           // Unique identifier for the report
	Domain      string           `json:"domain"`       // Domain keyword the run was scoped to
	GeneratedAt time.Time        `json:"generated_at"` // Timestamp when the report was generated
	ItemCount   int              `json:"item_count"`   // Number of collected input records
	Analysis    AnalysisResult   `json:"analysis"`     // Keyword/topic analysis output
	Summary     ExecutiveSummary `json:"summary"`      // Executive summary output
}
