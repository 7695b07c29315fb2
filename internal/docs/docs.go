// Package docs extracts plain text from local PDF and HTML documents so
// they can join the analysis input as additional content records.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"trendwatch/internal/core"
)

// Extraction limits, matching the truncation behavior of the document
// analyzer this replaces: at most ten pages per PDF and a fixed character
// budget per document.
const (
	maxPages = 10
	maxChars = 15000

	truncationNote = "... [content truncated due to size]"
)

// ExtractDir scans dir (non-recursively) for .pdf and .html files and
// returns one record per document. Per-file extraction failures do not abort
// the scan; they travel in-band as error text in the record's content, which
// the pipeline tokenizes like any other text.
func ExtractDir(dir string) ([]core.ContentRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents directory %s: %w", dir, err)
	}

	var records []core.ContentRecord
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var text string
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf":
			text, err = extractPDF(path)
		case ".html", ".htm":
			text, err = extractHTML(path)
		default:
			continue
		}

		if err != nil {
			records = append(records, core.ContentRecord{
				Source: path,
				Text:   fmt.Sprintf("Error processing file: %v", err),
			})
			continue
		}
		records = append(records, core.ContentRecord{Source: path, Text: Clean(text)})
	}
	return records, nil
}

// Clean collapses whitespace, enforces the character budget, and lowercases
// the text so document tokens line up with the lowercased pipeline input.
func Clean(text string) string {
	cleaned := strings.Join(strings.Fields(text), " ")
	if len(cleaned) > maxChars {
		cleaned = cleaned[:maxChars] + truncationNote
	}
	return strings.ToLower(cleaned)
}

// extractPDF reads up to maxPages of text from a PDF file.
func extractPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	pages := reader.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable page, keep whatever the rest yields.
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractHTML parses an HTML file and returns its visible text, with
// script/style and other non-content elements removed.
func extractHTML(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open HTML file %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML from %s: %w", path, err)
	}

	doc.Find("script, style, nav, footer, header, aside, form, iframe, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return text, nil
}
