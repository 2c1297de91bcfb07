// Package images resolves short image queries to usable URLs, best-effort.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"ghostwriter/pkg/fetch"
)

const (
	unsplashEndpoint = "https://api.unsplash.com"
	// genericFallback is used when even the themed stock service cannot be
	// reached; a broken lookup must never break the article.
	genericFallback = "https://picsum.photos/800/600"
)

// Lookup resolves a query to an image URL. Implementations never fail; a
// usable fallback URL is always returned.
type Lookup interface {
	Search(ctx context.Context, query string) string
}

// Unsplash queries the Unsplash search API when an access key is configured
// and degrades to themed stock-photo URLs otherwise.
type Unsplash struct {
	client    *fetch.Client
	accessKey string
	endpoint  string
	logger    *slog.Logger
}

// NewUnsplash builds the lookup. endpoint is overridable for tests; pass ""
// for the real API.
func NewUnsplash(client *fetch.Client, accessKey, endpoint string, logger *slog.Logger) *Unsplash {
	if endpoint == "" {
		endpoint = unsplashEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Unsplash{client: client, accessKey: accessKey, endpoint: endpoint, logger: logger}
}

type searchPhotosResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Search resolves query to an image URL. With no access key the themed
// loremflickr URL is returned directly; API or decode failures fall through
// to the generic stock photo.
func (u *Unsplash) Search(ctx context.Context, query string) string {
	if u.accessKey == "" {
		return themedFallback(query)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	headers := map[string]string{
		"Authorization": fmt.Sprintf("Client-ID %s", u.accessKey),
	}

	body, err := u.client.Get(ctx, fetch.BuildURL(u.endpoint+"/search/photos", params), headers)
	if err != nil {
		u.logger.Debug("unsplash lookup failed", "query", query, "error", err)
		return genericFallback
	}

	var resp searchPhotosResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Results) == 0 {
		return themedFallback(query)
	}
	return resp.Results[0].URLs.Regular
}

func themedFallback(query string) string {
	return fmt.Sprintf("https://loremflickr.com/800/600/business,%s", url.PathEscape(query))
}
