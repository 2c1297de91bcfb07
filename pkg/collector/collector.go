// Package collector harvests keyword candidates for future articles.
//
// Two sources feed the store: the Naver shopping best-seller page, scraped
// for embedded product JSON, and a web search for "{키워드} 추천" picks.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"ghostwriter/pkg/fetch"
	"ghostwriter/pkg/keystore"
	"ghostwriter/pkg/search"
)

const (
	// DefaultCategoryID is the Naver best category for 가전/디지털.
	DefaultCategoryID = "50000006"

	naverBestURL = "https://snxbest.naver.com/product/best/click?categoryCategoryId=%s"

	maxBestItems = 20
	maxPickItems = 10
)

// The best page ships product data inline as JSON. Pulling the two fields
// with regexes is deliberately lighter than parsing the whole payload.
var (
	productNameRe = regexp.MustCompile(`"productName":"(.*?)"`)
	originURLRe   = regexp.MustCompile(`"originUrl":"(.*?)"`)
)

type Collector struct {
	fetcher  *fetch.Client
	searcher *search.Resilient
	store    *keystore.DB
	logger   *slog.Logger

	bestURL string
}

func New(fetcher *fetch.Client, searcher *search.Resilient, store *keystore.DB, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		fetcher:  fetcher,
		searcher: searcher,
		store:    store,
		logger:   logger,
		bestURL:  naverBestURL,
	}
}

// CollectNaverBest scrapes the best-seller page for categoryID and stores
// the product names as keyword candidates. Returns how many were new.
func (c *Collector) CollectNaverBest(ctx context.Context, categoryID string) (int, error) {
	if categoryID == "" {
		categoryID = DefaultCategoryID
	}

	body, err := c.fetcher.Get(ctx, fmt.Sprintf(c.bestURL, categoryID), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch best page: %w", err)
	}

	entries := parseBestPage(string(body))
	if len(entries) == 0 {
		return 0, fmt.Errorf("no products found on best page for category %s", categoryID)
	}

	inserted := 0
	for _, e := range entries {
		ok, err := c.store.Insert(e)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}

	c.logger.Info("collected best keywords",
		"category", categoryID,
		"found", len(entries),
		"new", inserted)
	return inserted, nil
}

// parseBestPage pairs product names with their origin links.
func parseBestPage(body string) []keystore.Entry {
	titles := productNameRe.FindAllStringSubmatch(body, maxBestItems)
	links := originURLRe.FindAllStringSubmatch(body, maxBestItems)

	n := len(titles)
	if len(links) < n {
		n = len(links)
	}

	entries := make([]keystore.Entry, 0, n)
	for i := 0; i < n; i++ {
		title := titles[i][1]
		link := strings.ReplaceAll(links[i][1], `\u0026`, "&")
		if title == "" {
			continue
		}
		entries = append(entries, keystore.Entry{
			Keyword: title,
			Product: title,
			Link:    link,
			Source:  "naver_best",
		})
	}
	return entries
}

// CollectPicks searches for "{keyword} 추천" and stores the top results as
// candidates. Returns how many were new.
func (c *Collector) CollectPicks(ctx context.Context, keyword string) (int, error) {
	if strings.TrimSpace(keyword) == "" {
		return 0, fmt.Errorf("keyword is required")
	}

	hits := c.searcher.Search(ctx, keyword+" 추천", search.KindText, search.Options{MaxResults: maxPickItems})

	inserted := 0
	for _, h := range hits {
		if search.IsSentinel(h) {
			continue
		}
		ok, err := c.store.Insert(keystore.Entry{
			Keyword: h.Title,
			Product: h.Title,
			Link:    h.URL,
			Source:  "picks",
		})
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}

	c.logger.Info("collected pick keywords",
		"keyword", keyword,
		"found", len(hits),
		"new", inserted)
	return inserted, nil
}
