// Package render writes trend reports as markdown files.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trendwatch/internal/core"
)

// Markdown renders a TrendReport as a markdown document.
func Markdown(report core.TrendReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Trend Report - %s - %s\n\n", report.Domain, report.GeneratedAt.UTC().Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("*Report ID: %s, %d items analyzed*\n\n", report.ID, report.ItemCount))

	if report.Analysis.Status != core.StatusSuccess {
		sb.WriteString(fmt.Sprintf("Analysis failed: %s\n", report.Analysis.ErrorMessage))
		return sb.String()
	}

	sb.WriteString("## Top Keywords\n\n")
	if len(report.Analysis.Keywords) == 0 {
		sb.WriteString("No keywords survived filtering.\n\n")
	} else {
		for i, keyword := range report.Analysis.Keywords {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, keyword))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Topics\n\n")
	if len(report.Analysis.Topics) == 0 {
		sb.WriteString("No dominant topics detected.\n\n")
	} else {
		for _, topic := range report.Analysis.Topics {
			sb.WriteString(fmt.Sprintf("- %s\n", topic))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Analysis Notes\n\n")
	sb.WriteString(report.Analysis.SummaryNotes + "\n\n")

	sb.WriteString("## Executive Summary\n\n")
	if report.Summary.Status == core.StatusSuccess {
		sb.WriteString(report.Summary.Summary + "\n")
	} else {
		sb.WriteString(fmt.Sprintf("Summary unavailable: %s\n", report.Summary.ErrorMessage))
	}

	return sb.String()
}

// WriteReport renders the report and saves it as a dated markdown file in
// outputDir, creating the directory when needed. Returns the file path.
func WriteReport(report core.TrendReport, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "reports"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	filename := fmt.Sprintf("trend_%s_%s.md", slug(report.Domain), report.GeneratedAt.UTC().Format("2006-01-02"))
	filePath := filepath.Join(outputDir, filename)

	if err := os.WriteFile(filePath, []byte(Markdown(report)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", filePath, err)
	}
	return filePath, nil
}

// slug makes a domain keyword safe for filenames.
func slug(domain string) string {
	cleaned := strings.ToLower(strings.TrimSpace(domain))
	cleaned = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, cleaned)
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return "report"
	}
	return cleaned
}
