package content

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeKidneyCoercesAndDrops(t *testing.T) {
	body := map[string]any{
		"hero": map[string]any{
			"badge": 42,
			"title": "Kidney Care",
		},
		"stats": []any{
			map[string]any{"icon": "award", "value": "25+", "label": "Years"},
			map[string]any{"icon": "", "value": "  ", "label": ""},
			map[string]any{"icon": nil, "value": true, "label": map[string]any{}},
		},
		"procedures": map[string]any{
			"items": []any{
				map[string]any{"name": "", "focusPoints": "first point\n\n  second point  \n"},
			},
		},
		"unknown": "ignored",
	}

	page := SanitizeKidney(body)

	if page.Hero.Badge != "" {
		t.Fatalf("non-string badge should coerce to empty, got %q", page.Hero.Badge)
	}
	if page.Hero.Title != "Kidney Care" {
		t.Fatalf("title = %q", page.Hero.Title)
	}
	if len(page.Stats) != 1 {
		t.Fatalf("expected all-empty stat rows dropped, got %d rows", len(page.Stats))
	}
	if len(page.Procedures.Items) != 1 {
		t.Fatalf("row with only focus points should be kept, got %d rows", len(page.Procedures.Items))
	}
	got := page.Procedures.Items[0].FocusPoints
	if len(got) != 2 || got[0] != "first point" || got[1] != "second point" {
		t.Fatalf("focus points = %v", got)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	bodies := map[string]map[string]any{
		PageKidney:  {"stats": []any{map[string]any{"value": 7}, map[string]any{"value": "real"}}},
		PageHome:    {"transplant": map[string]any{"careJourneyItems": "a\nb"}},
		PageTourism: {"map": map[string]any{"locations": []any{map[string]any{"name": "Dubai", "lat": "25.2"}}}},
	}
	for page, body := range bodies {
		t.Run(page, func(t *testing.T) {
			first, err := Sanitize(page, body)
			if err != nil {
				t.Fatal(err)
			}
			var roundTrip map[string]any
			if err := json.Unmarshal(first, &roundTrip); err != nil {
				t.Fatal(err)
			}
			second, err := Sanitize(page, roundTrip)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(first, second) {
				t.Fatalf("sanitize not idempotent:\n first=%s\nsecond=%s", first, second)
			}
		})
	}
}

func TestSanitizeUnknownPage(t *testing.T) {
	raw, err := Sanitize("no-such-page", map[string]any{"x": 1})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "{}" {
		t.Fatalf("unknown page should sanitize to empty object, got %s", raw)
	}
}

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *float64
	}{
		{"json number", 25.2, ptr(25.2)},
		{"numeric string", " 55.3 ", ptr(55.3)},
		{"empty string", "", nil},
		{"garbage", "north", nil},
		{"nil", nil, nil},
		{"bool", true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := number(tc.in)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("want nil, got %v", *got)
			case tc.want != nil && (got == nil || *got != *tc.want):
				t.Fatalf("want %v, got %v", *tc.want, got)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }

func TestChainFallsThrough(t *testing.T) {
	dir := t.TempDir()
	snapshot := []byte(`{"hero":{"title":"from snapshot"}}`)
	if err := os.WriteFile(filepath.Join(dir, PageKidney+".json"), snapshot, 0o644); err != nil {
		t.Fatal(err)
	}

	failing := ProviderFunc(func(context.Context, string) (json.RawMessage, error) {
		return nil, ErrNotFound
	})
	empty := ProviderFunc(func(context.Context, string) (json.RawMessage, error) {
		return json.RawMessage(`{}`), nil
	})
	chain := Chain{failing, empty, FileProvider{Dir: dir}, DefaultProvider{}}

	doc, err := chain.Load(context.Background(), PageKidney)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		t.Fatal(err)
	}
	hero, _ := m["hero"].(map[string]any)
	if hero["title"] != "from snapshot" {
		t.Fatalf("expected snapshot tier to win, got %s", doc)
	}

	// No snapshot for home, so the built-in defaults serve it.
	doc, err = chain.Load(context.Background(), PageHome)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(doc, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) == 0 {
		t.Fatal("default tier returned empty document")
	}
}

func TestFileProviderRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PageHome+".json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := FileProvider{Dir: dir}.Load(context.Background(), PageHome)
	if err != ErrNotFound {
		t.Fatalf("invalid snapshot should read as not found, got %v", err)
	}
}
