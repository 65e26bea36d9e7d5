// Package content defines the typed page documents behind the public site
// (home, medical tourism, kidney department) and the canonicalization pass
// that turns arbitrary request bodies into fully-defaulted documents.
package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Page names are the fixed keys under which singleton documents are stored.
const (
	PageHome    = "home"
	PageTourism = "medical-tourism"
	PageKidney  = "kidney"
)

// Pages lists every singleton page key.
var Pages = []string{PageHome, PageTourism, PageKidney}

// str coerces a raw JSON value to a string; anything that is not a string
// (including nil) becomes "".
func str(v any) string {
	s, _ := v.(string)
	return s
}

// obj returns the named sub-object of m, or an empty map when absent or of
// the wrong shape. Lookups never fail on partial input.
func obj(m map[string]any, key string) map[string]any {
	child, _ := m[key].(map[string]any)
	if child == nil {
		return map[string]any{}
	}
	return child
}

func list(m map[string]any, key string) []any {
	items, _ := m[key].([]any)
	return items
}

// stringList accepts either an actual list of strings or a single
// newline-delimited string (how multi-line text fields arrive from the admin
// form). Lines are trimmed and blanks dropped.
func stringList(v any) []string {
	switch value := v.(type) {
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s := strings.TrimSpace(str(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return SplitLines(value)
	default:
		return []string{}
	}
}

// CleanList trims every entry and drops blanks, keeping order.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SplitLines splits a newline-delimited string into trimmed non-blank lines.
func SplitLines(value string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(value, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// number coerces a raw JSON value to an optional float. JSON numbers and
// numeric strings parse; everything else (including "") is absent, never 0.
func number(v any) *float64 {
	switch value := v.(type) {
	case float64:
		f := value
		return &f
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func anyNonBlank(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

// DocMap converts a typed document back into the generic map form the
// sanitizers consume. Re-editing a stored document goes through JSON anyway,
// so this is the canonical round-trip.
func DocMap(doc any) map[string]any {
	raw, err := json.Marshal(doc)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// Sanitize canonicalizes a raw body for the named page. Unknown page names
// yield an empty map.
func Sanitize(page string, body map[string]any) (json.RawMessage, error) {
	var doc any
	switch page {
	case PageHome:
		doc = SanitizeHome(body)
	case PageTourism:
		doc = SanitizeTourism(body)
	case PageKidney:
		doc = SanitizeKidney(body)
	default:
		doc = map[string]any{}
	}
	return json.Marshal(doc)
}
