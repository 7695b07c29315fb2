package normalize

import (
	"errors"
	"testing"
)

func TestFlatten_InvalidInput(t *testing.T) {
	inputs := []any{
		nil,
		"not a mapping",
		42,
		[]any{map[string]any{"content": "text"}},
		map[string]any{},
	}

	for _, input := range inputs {
		if _, err := Flatten(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Flatten(%v) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestFlatten_NoContent(t *testing.T) {
	inputs := []any{
		map[string]any{"news": []any{}, "research": []any{}, "social": []any{}},
		map[string]any{"unrelated": "value"},
		map[string]any{"news": []any{map[string]any{"title": "no content key"}}},
		map[string]any{"news": "not a list"},
	}

	for _, input := range inputs {
		_, err := Flatten(input)
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("Flatten(%v) error = %v, want ErrNoContent", input, err)
		}
	}
}

func TestFlatten_CategoryExtraction(t *testing.T) {
	input := map[string]any{
		"news": []any{
			map[string]any{"source": "NewsAPI", "content": "news one"},
			map[string]any{"source": "NewsAPI"}, // no content, skipped
		},
		"research": []any{
			map[string]any{"source": "arXiv", "title": "paper title"},
			map[string]any{"source": "SSRN", "content": "paper content", "title": "ignored"},
			map[string]any{"source": "arXiv"}, // neither key, skipped
		},
		"social": []any{
			map[string]any{"source": "X.com", "content": "a post"},
		},
	}

	texts, err := Flatten(input)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}

	want := []string{"news one", "paper title", "paper content", "a post"}
	if len(texts) != len(want) {
		t.Fatalf("Flatten accepted %d items, want %d: %v", len(texts), len(want), texts)
	}
	for i, text := range want {
		if texts[i] != text {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], text)
		}
	}
}

func TestFlatten_ResearchTitleFallback(t *testing.T) {
	input := map[string]any{
		"research": []any{
			map[string]any{"content": "", "title": "fallback title"},
			map[string]any{"content": "", "title": ""},
		},
	}

	texts, err := Flatten(input)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(texts) != 1 || texts[0] != "fallback title" {
		t.Errorf("texts = %v, want [fallback title]", texts)
	}
}

func TestFlatten_ComprehensiveResult(t *testing.T) {
	input := map[string]any{
		"news_analysis": map[string]any{
			"status": "success",
			"articles": []any{
				map[string]any{"source": "NewsAPI", "content": "article text"},
			},
		},
		"social_media_analysis": map[string]any{
			"status": "success",
			"posts": []any{
				map[string]any{"source": "X.com", "content": "post text"},
			},
		},
	}

	texts, err := Flatten(input)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	want := []string{"article text", "post text"}
	for i, text := range want {
		if texts[i] != text {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], text)
		}
	}
}

func TestFlatten_ComprehensiveSkipsFailedSections(t *testing.T) {
	input := map[string]any{
		"news_analysis": map[string]any{
			"status": "error",
			"articles": []any{
				map[string]any{"content": "should be ignored"},
			},
		},
		"social_media_analysis": map[string]any{
			"status": "success",
			"posts": []any{
				map[string]any{"content": "kept"},
			},
		},
	}

	texts, err := Flatten(input)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(texts) != 1 || texts[0] != "kept" {
		t.Errorf("texts = %v, want [kept]", texts)
	}
}

func TestFlatten_CategoriesTakePrecedenceOverComprehensive(t *testing.T) {
	input := map[string]any{
		"news": []any{
			map[string]any{"content": "direct record"},
		},
		"news_analysis": map[string]any{
			"status": "success",
			"articles": []any{
				map[string]any{"content": "nested record"},
			},
		},
		"social_media_analysis": map[string]any{
			"status": "success",
			"posts":  []any{},
		},
	}

	texts, err := Flatten(input)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(texts) != 1 || texts[0] != "direct record" {
		t.Errorf("texts = %v, want [direct record]", texts)
	}
}
