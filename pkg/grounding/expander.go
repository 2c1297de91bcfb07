package grounding

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"ghostwriter/pkg/fetch"
)

const defaultExcerptRunes = 1200

// Expander fetches a hit's page and distills its main text so the prompt can
// carry more than a two-line snippet.
type Expander struct {
	client *fetch.Client
	limit  int
}

// NewExpander builds an Expander. limit <= 0 uses the default excerpt length.
func NewExpander(client *fetch.Client, limit int) *Expander {
	if limit <= 0 {
		limit = defaultExcerptRunes
	}
	return &Expander{client: client, limit: limit}
}

// Expand returns the readable body text of rawURL, truncated to the
// configured rune limit.
func (e *Expander) Expand(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid hit URL: %w", err)
	}

	body, err := e.client.Get(ctx, rawURL, nil)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	runes := []rune(text)
	if len(runes) > e.limit {
		text = string(runes[:e.limit])
	}
	return text, nil
}
