package render

import (
	"os"
	"strings"
	"testing"
	"time"

	"trendwatch/internal/core"
	"trendwatch/internal/topics"
)

func sampleReport() core.TrendReport {
	return core.TrendReport{
		ID:          "report-1",
		Domain:      "Fintech",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ItemCount:   30,
		Analysis: core.AnalysisResult{
			Status:       core.StatusSuccess,
			Keywords:     []string{"fintech", "innovation"},
			Topics:       []string{topics.ThemeFinance},
			SummaryNotes: "Analysis of 30 items reveals dominant themes in Finance & Investment. Key recurring terms include fintech, innovation.",
		},
		Summary: core.ExecutiveSummary{
			Status:  core.StatusSuccess,
			Summary: "Executive Summary: Analysis reveals a primary focus on finance & investment.",
		},
	}
}

func TestMarkdown_Sections(t *testing.T) {
	content := Markdown(sampleReport())

	for _, want := range []string{
		"# Trend Report - Fintech - 2025-06-01",
		"30 items analyzed",
		"## Top Keywords",
		"1. fintech",
		"## Topics",
		"- Finance & Investment",
		"## Analysis Notes",
		"## Executive Summary",
		"Executive Summary: Analysis reveals a primary focus on finance & investment.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestMarkdown_FailedAnalysis(t *testing.T) {
	report := core.TrendReport{
		Domain:      "Fintech",
		GeneratedAt: time.Now(),
		Analysis: core.AnalysisResult{
			Status:       core.StatusError,
			ErrorMessage: "No valid content found in inputs.",
		},
	}

	content := Markdown(report)
	if !strings.Contains(content, "Analysis failed: No valid content found in inputs.") {
		t.Errorf("failed analysis not reported: %s", content)
	}
	if strings.Contains(content, "## Top Keywords") {
		t.Error("failed analysis should not render keyword sections")
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	filePath, err := WriteReport(sampleReport(), dir)
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if !strings.HasSuffix(filePath, "trend_fintech_2025-06-01.md") {
		t.Errorf("unexpected file name: %s", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(content), "# Trend Report - Fintech") {
		t.Error("written file should contain the rendered report")
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Fintech":        "fintech",
		"AI/Tech Trends": "ai-tech-trends",
		"  ":             "report",
	}
	for in, want := range cases {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
