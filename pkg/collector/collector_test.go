package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ghostwriter/pkg/fetch"
	"ghostwriter/pkg/keystore"
	"ghostwriter/pkg/search"
)

const bestPageBody = `<html><script>window.__DATA__ = {"products":[
{"productName":"한일 전기장판 더블","originUrl":"https://shopping.example.com/p/1?a=1\u0026b=2\u0026c=3","rank":1},
{"productName":"샤오미 가습기 4L","originUrl":"https://shopping.example.com/p/2","rank":2},
{"productName":"","originUrl":"https://shopping.example.com/p/3","rank":3}
]}</script></html>`

// fixedProvider returns the same hits for every text search.
type fixedProvider struct {
	hits []search.Hit

	lastQuery string
}

func (p *fixedProvider) News(ctx context.Context, query string, opts search.Options) ([]search.Hit, error) {
	return nil, fmt.Errorf("news not supported")
}

func (p *fixedProvider) Text(ctx context.Context, query string, opts search.Options) ([]search.Hit, error) {
	p.lastQuery = query
	return p.hits, nil
}

func newTestCollector(t *testing.T, bestURL string, provider search.Provider) (*Collector, *keystore.DB) {
	t.Helper()

	store, err := keystore.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	searcher := search.NewResilient(provider, 3, 5*time.Second, logger)
	c := New(fetch.NewClient(5*time.Second), searcher, store, logger)
	if bestURL != "" {
		c.bestURL = bestURL
	}
	return c, store
}

func TestCollectNaverBest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("categoryCategoryId"); got != "50000006" {
			t.Errorf("category param = %q, want %q", got, "50000006")
		}
		fmt.Fprint(w, bestPageBody)
	}))
	defer server.Close()

	c, store := newTestCollector(t, server.URL+"/best?categoryCategoryId=%s", nil)

	n, err := c.CollectNaverBest(context.Background(), "")
	if err != nil {
		t.Fatalf("CollectNaverBest() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CollectNaverBest() = %d, want 2 (empty product name skipped)", n)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("store has %d entries, want 2", len(entries))
	}

	// Newest first, so the second product is at index 0.
	if entries[1].Keyword != "한일 전기장판 더블" {
		t.Errorf("entry keyword = %q, want %q", entries[1].Keyword, "한일 전기장판 더블")
	}
	if want := "https://shopping.example.com/p/1?a=1&b=2&c=3"; entries[1].Link != want {
		t.Errorf("entry link = %q, want %q (JSON-escaped ampersands unescaped)", entries[1].Link, want)
	}
	if entries[0].Source != "naver_best" {
		t.Errorf("entry source = %q, want %q", entries[0].Source, "naver_best")
	}
}

func TestCollectNaverBestEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>점검 중입니다</body></html>")
	}))
	defer server.Close()

	c, _ := newTestCollector(t, server.URL+"/best?categoryCategoryId=%s", nil)

	if _, err := c.CollectNaverBest(context.Background(), "50000003"); err == nil {
		t.Fatal("CollectNaverBest() on empty page error = nil, want error")
	}
}

func TestCollectPicks(t *testing.T) {
	provider := &fixedProvider{hits: []search.Hit{
		{Title: "2026 가습기 추천 TOP 10", URL: "https://blog.example.com/1"},
		{Title: "가성비 가습기 정리", URL: "https://blog.example.com/2"},
	}}
	c, store := newTestCollector(t, "", provider)

	n, err := c.CollectPicks(context.Background(), "가습기")
	if err != nil {
		t.Fatalf("CollectPicks() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CollectPicks() = %d, want 2", n)
	}
	if provider.lastQuery != "가습기 추천" {
		t.Errorf("search query = %q, want %q", provider.lastQuery, "가습기 추천")
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("store has %d entries, want 2", len(entries))
	}
	if entries[0].Source != "picks" {
		t.Errorf("entry source = %q, want %q", entries[0].Source, "picks")
	}

	// Re-running the same collection only yields duplicates.
	n, err = c.CollectPicks(context.Background(), "가습기")
	if err != nil {
		t.Fatalf("second CollectPicks() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second CollectPicks() = %d, want 0", n)
	}
}

func TestCollectPicksEmptyKeyword(t *testing.T) {
	c, _ := newTestCollector(t, "", &fixedProvider{})

	if _, err := c.CollectPicks(context.Background(), "   "); err == nil {
		t.Fatal("CollectPicks() with blank keyword error = nil, want error")
	}
}
