package images

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ghostwriter/pkg/fetch"
)

func newTestUnsplash(t *testing.T, key string, handler http.HandlerFunc) *Unsplash {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUnsplash(fetch.NewClient(5*time.Second), key, srv.URL, logger)
}

func TestSearch_NoKeyUsesThemedFallback(t *testing.T) {
	u := newTestUnsplash(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("API must not be called without an access key")
	})

	got := u.Search(context.Background(), "coffee shop")

	if !strings.HasPrefix(got, "https://loremflickr.com/800/600/business,") {
		t.Errorf("Search() = %q, want themed loremflickr URL", got)
	}
}

func TestSearch_APIResult(t *testing.T) {
	u := newTestUnsplash(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Client-ID test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"results":[{"urls":{"regular":"https://images.unsplash.com/photo-1"}}]}`))
	})

	got := u.Search(context.Background(), "coffee")

	if got != "https://images.unsplash.com/photo-1" {
		t.Errorf("Search() = %q, want API result URL", got)
	}
}

func TestSearch_EmptyAPIResultsFallBack(t *testing.T) {
	u := newTestUnsplash(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	got := u.Search(context.Background(), "coffee")

	if !strings.HasPrefix(got, "https://loremflickr.com/") {
		t.Errorf("Search() = %q, want themed fallback", got)
	}
}

func TestSearch_APIFailureUsesGenericFallback(t *testing.T) {
	u := newTestUnsplash(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	got := u.Search(context.Background(), "coffee")

	if got != genericFallback {
		t.Errorf("Search() = %q, want %q", got, genericFallback)
	}
}
