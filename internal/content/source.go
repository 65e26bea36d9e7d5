package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Provider yields the stored document for a page, or ErrNotFound when it has
// nothing for that page. Providers are stacked into a Chain so the site always
// has content: database first, then on-disk snapshot, then built-in defaults.
type Provider interface {
	Load(ctx context.Context, page string) (json.RawMessage, error)
}

// ErrNotFound signals that a provider has no document for the page. The chain
// moves on to the next tier.
var ErrNotFound = errors.New("content: page not found")

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, page string) (json.RawMessage, error)

func (f ProviderFunc) Load(ctx context.Context, page string) (json.RawMessage, error) {
	return f(ctx, page)
}

// FileProvider serves page snapshots from <dir>/<page>.json.
type FileProvider struct {
	Dir string
}

func (p FileProvider) Load(_ context.Context, page string) (json.RawMessage, error) {
	raw, err := os.ReadFile(filepath.Join(p.Dir, page+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read page snapshot: %w", err)
	}
	if !json.Valid(raw) {
		return nil, ErrNotFound
	}
	return json.RawMessage(raw), nil
}

// DefaultProvider serves the built-in documents. It never returns ErrNotFound
// for a known page, making it the terminal tier.
type DefaultProvider struct{}

func (DefaultProvider) Load(_ context.Context, page string) (json.RawMessage, error) {
	doc := DefaultPage(page)
	if len(doc) == 0 {
		return nil, ErrNotFound
	}
	return json.Marshal(doc)
}

// Chain tries each provider in order and returns the first non-empty document.
// A tier that fails outright is skipped the same as one that has no content,
// so a database outage degrades to snapshots rather than a 500.
type Chain []Provider

func (c Chain) Load(ctx context.Context, page string) (json.RawMessage, error) {
	for _, provider := range c {
		doc, err := provider.Load(ctx, page)
		if err != nil {
			continue
		}
		if isEmptyDoc(doc) {
			continue
		}
		return doc, nil
	}
	return nil, ErrNotFound
}

func isEmptyDoc(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return true
	}
	return len(m) == 0
}
