package search

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ghostwriter/pkg/fetch"
)

const ddgEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGo implements Provider by scraping the DuckDuckGo HTML endpoint.
// The endpoint needs no API key, which is why the original operator workflow
// standardized on it; the trade-off is occasional rate limiting, handled one
// layer up by Resilient.
type DuckDuckGo struct {
	client   *fetch.Client
	endpoint string
}

// NewDuckDuckGo builds the provider. endpoint is overridable for tests;
// pass "" for the real service.
func NewDuckDuckGo(client *fetch.Client, endpoint string) *DuckDuckGo {
	if endpoint == "" {
		endpoint = ddgEndpoint
	}
	return &DuckDuckGo{client: client, endpoint: endpoint}
}

func (d *DuckDuckGo) News(ctx context.Context, query string, opts Options) ([]Hit, error) {
	params := d.params(query, opts)
	params.Set("ia", "news")
	params.Set("iar", "news")
	return d.search(ctx, params, opts.MaxResults)
}

func (d *DuckDuckGo) Text(ctx context.Context, query string, opts Options) ([]Hit, error) {
	return d.search(ctx, d.params(query, opts), opts.MaxResults)
}

func (d *DuckDuckGo) params(query string, opts Options) url.Values {
	params := url.Values{}
	params.Set("q", query)
	if opts.Region != "" {
		params.Set("kl", opts.Region)
	}
	if opts.TimeLimit != "" {
		params.Set("df", opts.TimeLimit)
	}
	return params
}

func (d *DuckDuckGo) search(ctx context.Context, params url.Values, limit int) ([]Hit, error) {
	doc, err := d.client.GetDocument(ctx, fetch.BuildURL(d.endpoint, params), nil)
	if err != nil {
		return nil, err
	}
	return parseResults(doc, limit), nil
}

// parseResults maps DuckDuckGo result nodes to hits. Redirect wrappers around
// result links are unwrapped to the target URL.
func parseResults(doc *goquery.Document, limit int) []Hit {
	var hits []Hit
	doc.Find("div.result").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if limit > 0 && len(hits) >= limit {
			return false
		}

		anchor := s.Find("a.result__a").First()
		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			return true
		}

		href, _ := anchor.Attr("href")
		body := strings.TrimSpace(s.Find(".result__snippet").First().Text())

		hits = append(hits, Hit{
			Title: title,
			Body:  body,
			URL:   unwrapRedirect(href),
		})
		return true
	})
	return hits
}

// unwrapRedirect extracts the uddg target from DuckDuckGo's /l/ redirect links.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" {
		// Protocol-relative redirect link; normalize so callers can fetch it.
		return "https:" + href
	}
	return href
}
