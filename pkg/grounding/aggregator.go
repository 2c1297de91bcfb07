// Package grounding turns raw search hits into the context blob that anchors
// a generation prompt to something real.
package grounding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ghostwriter/pkg/search"
)

// NoDataPlaceholder is returned when no usable search data exists. The prompt
// builder keys off this exact string to stop the model from claiming
// real-time grounding.
const NoDataPlaceholder = "검색 정보 없음. 지식 기반 작성."

// Mode selects how aggressively the aggregator queries.
type Mode string

const (
	// ModeSales favors fresh news: weekly window, text fallback only when
	// news comes up empty.
	ModeSales Mode = "sales"
	// ModeInfo widens to a monthly window and tops up with general text
	// results when news coverage is thin.
	ModeInfo Mode = "info"
)

// Client is the search surface the aggregator consumes. *search.Resilient
// satisfies it; by contract the result is never empty and never an error.
type Client interface {
	Search(ctx context.Context, query string, kind search.Kind, opts search.Options) []search.Hit
}

// Aggregator builds grounding context strings. It never fails: anything that
// goes wrong degrades to NoDataPlaceholder.
type Aggregator struct {
	client   Client
	region   string
	expander *Expander
	logger   *slog.Logger
}

func NewAggregator(client Client, region string, expander *Expander, logger *slog.Logger) *Aggregator {
	if region == "" {
		region = "kr-kr"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{client: client, region: region, expander: expander, logger: logger}
}

// BuildContext gathers search hits for keyword and formats them as one text
// blob. Insertion order is preserved; no dedup, no ranking.
func (a *Aggregator) BuildContext(ctx context.Context, keyword string, mode Mode) string {
	var newsHits, textHits []search.Hit
	var label string

	switch mode {
	case ModeInfo:
		label = "출처"
		news := a.client.Search(ctx, keyword, search.KindNews, search.Options{
			Region: a.region, TimeLimit: "m", MaxResults: 5,
		})
		newsHits = genuine(news)
		if len(newsHits) < 3 {
			text := a.client.Search(ctx, keyword, search.KindText, search.Options{
				Region: a.region, MaxResults: 5,
			})
			textHits = genuine(text)
		}
	default:
		label = "기사"
		news := a.client.Search(ctx, keyword, search.KindNews, search.Options{
			Region: a.region, TimeLimit: "w", MaxResults: 6,
		})
		newsHits = genuine(news)
		if len(newsHits) == 0 {
			text := a.client.Search(ctx, keyword, search.KindText, search.Options{
				Region: a.region, MaxResults: 6,
			})
			textHits = genuine(text)
		}
	}

	hits := append(newsHits, textHits...)

	if len(hits) == 0 {
		a.logger.Info("no grounding data for keyword", "keyword", keyword, "mode", mode)
		return NoDataPlaceholder
	}

	var b strings.Builder
	for _, h := range hits {
		fmt.Fprintf(&b, "%s: %s\n내용: %s\n\n", label, h.Title, h.Body)
	}

	if a.expander != nil {
		excerpt := a.expandFirst(ctx, newsHits)
		if excerpt == "" {
			excerpt = a.expandFirst(ctx, textHits)
		}
		if excerpt != "" {
			fmt.Fprintf(&b, "본문 발췌: %s\n\n", excerpt)
		}
	}

	return b.String()
}

// expandFirst pulls the readable body text of the first hit that has a URL
// and expands cleanly. Failures are logged and the next hit is tried; the
// snippet context is still usable without an excerpt.
func (a *Aggregator) expandFirst(ctx context.Context, hits []search.Hit) string {
	for _, h := range hits {
		if h.URL == "" {
			continue
		}
		excerpt, err := a.expander.Expand(ctx, h.URL)
		if err != nil {
			a.logger.Debug("hit expansion failed", "url", h.URL, "error", err)
			continue
		}
		if excerpt != "" {
			return excerpt
		}
	}
	return ""
}

// genuine filters out the rate-limit sentinel so it never masquerades as data.
func genuine(hits []search.Hit) []search.Hit {
	out := hits[:0:0]
	for _, h := range hits {
		if !search.IsSentinel(h) {
			out = append(out, h)
		}
	}
	return out
}
