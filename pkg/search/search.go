// Package search wraps an external web/news search provider with the retry
// and fallback behavior the generation pipeline depends on.
package search

import "context"

// Kind selects the provider vertical.
type Kind string

const (
	KindNews Kind = "news"
	KindText Kind = "text"
)

// Hit is a single search result. Hits are ephemeral; they only live long
// enough to be folded into a grounding context.
type Hit struct {
	Title string
	Body  string
	URL   string
}

// Options tune a single provider call.
type Options struct {
	Region string
	// TimeLimit restricts result age: "d", "w" or "m". Empty means no limit.
	TimeLimit  string
	MaxResults int
}

// Provider is the underlying search engine. Implementations may return an
// error or an empty slice; both cases are absorbed by Resilient.
type Provider interface {
	News(ctx context.Context, query string, opts Options) ([]Hit, error)
	Text(ctx context.Context, query string, opts Options) ([]Hit, error)
}
