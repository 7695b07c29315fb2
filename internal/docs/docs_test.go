package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClean_CollapsesWhitespaceAndLowercases(t *testing.T) {
	got := Clean("  Fintech\n\nInnovation \t Report  ")
	want := "fintech innovation report"
	if got != want {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestClean_TruncatesLongText(t *testing.T) {
	got := Clean(strings.Repeat("a", 20000))

	if !strings.HasSuffix(got, truncationNote) {
		t.Errorf("truncated text should carry the truncation note, got suffix %q", got[len(got)-40:])
	}
	if len(got) != maxChars+len(truncationNote) {
		t.Errorf("len = %d, want %d", len(got), maxChars+len(truncationNote))
	}
}

func TestExtractDir_HTML(t *testing.T) {
	dir := t.TempDir()
	html := `<html><head><style>body { color: red }</style></head>
<body><script>var x = 1;</script><p>Fintech Adoption Study</p></body></html>`
	if err := os.WriteFile(filepath.Join(dir, "report.html"), []byte(html), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := ExtractDir(dir)
	if err != nil {
		t.Fatalf("ExtractDir returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Text != "fintech adoption study" {
		t.Errorf("Text = %q, want script/style stripped and lowercased", records[0].Text)
	}
}

func TestExtractDir_SkipsUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := ExtractDir(dir)
	if err != nil {
		t.Fatalf("ExtractDir returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestExtractDir_CorruptPDFBecomesInBandError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := ExtractDir(dir)
	if err != nil {
		t.Fatalf("ExtractDir returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 in-band error record", len(records))
	}
	if !strings.HasPrefix(records[0].Text, "Error processing file:") {
		t.Errorf("Text = %q, want in-band error text", records[0].Text)
	}
}

func TestExtractDir_MissingDirectory(t *testing.T) {
	if _, err := ExtractDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
