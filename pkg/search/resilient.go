package search

import (
	"context"
	"log/slog"
	"time"
)

// SentinelTitle marks the synthetic hit returned when every retry failed.
// The aggregator uses it to avoid feeding fake grounding data to the model.
const SentinelTitle = "검색 제한(Rate Limit) 감지됨"

const sentinelBody = "검색 엔진 사용량이 많아 요청이 일시적으로 차단되었습니다. " +
	"실시간 검색 정보를 사용할 수 없으므로 최신 정보 인용 없이 일반 지식 기반으로 작성해야 합니다."

// IsSentinel reports whether h is the fallback placeholder rather than a
// genuine search result.
func IsSentinel(h Hit) bool {
	return h.Title == SentinelTitle
}

// Resilient wraps a Provider so that Search never fails and never returns an
// empty result set. Failed or empty calls are retried with a growing delay;
// once retries are exhausted a single sentinel hit is returned instead.
type Resilient struct {
	provider Provider
	attempts int
	timeout  time.Duration
	logger   *slog.Logger

	// sleep is swapped out in tests to avoid real delays.
	sleep func(time.Duration)
}

// NewResilient builds the wrapper. attempts <= 0 defaults to 3 and
// timeout <= 0 defaults to 20s.
func NewResilient(p Provider, attempts int, timeout time.Duration, logger *slog.Logger) *Resilient {
	if attempts <= 0 {
		attempts = 3
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resilient{
		provider: p,
		attempts: attempts,
		timeout:  timeout,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// Search queries the provider vertical selected by kind. The query string is
// passed through as-is, empty or not; the provider decides what to do with it.
func (r *Resilient) Search(ctx context.Context, query string, kind Kind, opts Options) []Hit {
	if r.provider == nil {
		return r.fallback(query, kind)
	}

	for attempt := 0; attempt < r.attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		hits, err := r.call(callCtx, query, kind, opts)
		cancel()

		if err == nil && len(hits) > 0 {
			return hits
		}

		// A dead parent context fails every remaining attempt the same way;
		// skip straight to the sentinel instead of sleeping through retries.
		if ctx.Err() != nil {
			r.logger.Debug("search context done", "query", query, "kind", kind, "attempt", attempt, "error", ctx.Err())
			break
		}

		// Empty results usually mean a soft block, errors a hard one; wait a
		// little longer for the latter before retrying.
		if err != nil {
			r.logger.Debug("search attempt failed", "query", query, "kind", kind, "attempt", attempt, "error", err)
			r.sleep(time.Duration(2+attempt) * time.Second)
		} else {
			r.logger.Debug("search attempt returned no results", "query", query, "kind", kind, "attempt", attempt)
			r.sleep(time.Duration(1+attempt) * time.Second)
		}
	}

	return r.fallback(query, kind)
}

func (r *Resilient) call(ctx context.Context, query string, kind Kind, opts Options) ([]Hit, error) {
	if kind == KindNews {
		return r.provider.News(ctx, query, opts)
	}
	return r.provider.Text(ctx, query, opts)
}

func (r *Resilient) fallback(query string, kind Kind) []Hit {
	r.logger.Warn("search unavailable, returning sentinel", "query", query, "kind", kind)
	return []Hit{{
		Title: SentinelTitle,
		Body:  sentinelBody,
		URL:   "https://duckduckgo.com",
	}}
}
