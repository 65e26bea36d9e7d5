package adminui

import (
	"encoding/json"
	"reflect"
	"testing"

	"clinic/api/internal/content"
)

// A document that went through the sanitizer must survive a render/collect
// round trip through the form unchanged.
func TestKidneyEditorRoundTrip(t *testing.T) {
	original := content.SanitizeKidney(map[string]any{
		"hero": map[string]any{"badge": "Kidney Centre", "title": "Advanced renal care"},
		"stats": []any{
			map[string]any{"icon": "heart", "value": "500+", "label": "Transplants"},
			map[string]any{"value": "24/7", "label": "Dialysis"},
		},
		"procedures": map[string]any{
			"title": "What we do",
			"items": []any{
				map[string]any{
					"name":        "Transplant",
					"description": "Living and deceased donor programmes.",
					"focusPoints": []any{"Donor workup", "Lifelong follow-up"},
				},
			},
		},
		"journey": map[string]any{
			"title": "Your journey",
			"steps": []any{map[string]any{"title": "Referral", "description": "Bring your reports."}},
		},
		"symptoms": map[string]any{
			"title": "Warning signs",
			"categories": []any{
				map[string]any{"title": "Urinary", "items": []any{"Foamy urine", "Blood in urine"}},
			},
			"cta": map[string]any{"text": "Book now", "link": "/appointments"},
		},
		"support": map[string]any{
			"title":     "We are with you",
			"pillars":   []any{map[string]any{"icon": "hands", "title": "Counselling"}},
			"resources": []any{map[string]any{"title": "Diet guide", "link": "/guides/diet"}},
		},
		"cta": map[string]any{"heading": "Talk to us", "buttonText": "Call"},
	})

	editor, ok := EditorFor(content.PageKidney)
	if !ok {
		t.Fatal("no kidney editor")
	}

	rebuilt := content.SanitizeKidney(editor.Document(editor.FormValues(content.DocMap(original))))
	if !reflect.DeepEqual(original, rebuilt) {
		a, _ := json.MarshalIndent(original, "", "  ")
		b, _ := json.MarshalIndent(rebuilt, "", "  ")
		t.Fatalf("round trip changed the document:\noriginal: %s\nrebuilt: %s", a, b)
	}
}

func TestTourismEditorRoundTripKeepsCoordinates(t *testing.T) {
	original := content.SanitizeTourism(map[string]any{
		"healthGateways": map[string]any{
			"title":    "Care across borders",
			"services": []any{map[string]any{"icon": "plane", "title": "Travel desk"}},
			"contact":  map[string]any{"email": "care@example.com"},
		},
		"process": map[string]any{
			"title": "How it works",
			"steps": []any{map[string]any{"title": "Send reports"}},
		},
		"map": map[string]any{
			"title": "Where patients come from",
			"locations": []any{
				map[string]any{"name": "Beirut", "lat": 33.8938, "lng": 35.5018, "stat": "120", "statLabel": "patients"},
				map[string]any{"name": "Unknown origin"},
			},
		},
	})

	editor, _ := EditorFor(content.PageTourism)
	rebuilt := content.SanitizeTourism(editor.Document(editor.FormValues(content.DocMap(original))))
	if !reflect.DeepEqual(original, rebuilt) {
		a, _ := json.MarshalIndent(original, "", "  ")
		b, _ := json.MarshalIndent(rebuilt, "", "  ")
		t.Fatalf("round trip changed the document:\noriginal: %s\nrebuilt: %s", a, b)
	}
	if rebuilt.Map.Locations[0].Lat == nil || *rebuilt.Map.Locations[0].Lat != 33.8938 {
		t.Fatal("latitude lost in the form round trip")
	}
	if rebuilt.Map.Locations[1].Lat != nil {
		t.Fatal("absent coordinates must stay absent, not become 0")
	}
}

func TestHomeEditorRoundTripKeepsLineLists(t *testing.T) {
	original := content.SanitizeHome(map[string]any{
		"hero": map[string]any{"title": "Welcome"},
		"transplant": map[string]any{
			"heading":          "Transplant programme",
			"careJourneyItems": []any{"Referral", "Evaluation", "Surgery"},
			"stats":            []any{map[string]any{"value": "98%", "label": "Graft survival"}},
		},
	})

	editor, _ := EditorFor(content.PageHome)
	rebuilt := content.SanitizeHome(editor.Document(editor.FormValues(content.DocMap(original))))
	if !reflect.DeepEqual(original, rebuilt) {
		t.Fatal("round trip changed the document")
	}
	if len(rebuilt.Transplant.CareJourneyItems) != 3 {
		t.Fatalf("care journey items = %v", rebuilt.Transplant.CareJourneyItems)
	}
}

func TestEditorForUnknownPage(t *testing.T) {
	if _, ok := EditorFor("pricing"); ok {
		t.Fatal("unknown page must not have an editor")
	}
}
