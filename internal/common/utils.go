package common

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"ghostwriter/models"
	"ghostwriter/pkg/fetch"
	"ghostwriter/pkg/grounding"
	"ghostwriter/pkg/images"
	"ghostwriter/pkg/langcheck"
	"ghostwriter/pkg/llm"
	"ghostwriter/pkg/render"
	"ghostwriter/pkg/search"
)

// NewLogger builds the shared JSON logger. quiet drops everything below
// error so piped output stays clean.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by the --config flag.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	return models.LoadConfig(c.String("config"))
}

// NewSearcher assembles the web search stack from config.
func NewSearcher(cfg *models.Config, logger *slog.Logger) *search.Resilient {
	client := fetch.NewClient(cfg.Search.Timeout)
	provider := search.NewDuckDuckGo(client, "")
	return search.NewResilient(provider, cfg.Search.Attempts, cfg.Search.Timeout, logger)
}

// NewAggregator builds the grounding context aggregator, with optional hit
// expansion when the config asks for it.
func NewAggregator(cfg *models.Config, searcher *search.Resilient, logger *slog.Logger) *grounding.Aggregator {
	var expander *grounding.Expander
	if cfg.Search.ExpandHits {
		expander = grounding.NewExpander(fetch.NewClient(cfg.Search.Timeout), 0)
	}
	return grounding.NewAggregator(searcher, cfg.Search.Region, expander, logger)
}

// NewGenerator returns the model client, or the offline mock when the
// --mock flag is set.
func NewGenerator(ctx context.Context, c *cli.Context, cfg *models.Config) (llm.Generator, error) {
	if c.Bool("mock") {
		return llm.Mock{}, nil
	}
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set (use --mock for offline runs)")
	}
	return llm.NewGemini(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
}

// NewRenderer builds the transform pipeline. The --seed flag fixes the
// style randomness for reproducible output.
func NewRenderer(c *cli.Context, cfg *models.Config, logger *slog.Logger) *render.Renderer {
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	lookup := images.NewUnsplash(fetch.NewClient(cfg.Search.Timeout), cfg.Images.AccessKey, "", logger)
	return render.NewRenderer(rng, lookup, logger)
}

// NewChecker builds the output language checker.
func NewChecker(logger *slog.Logger) *langcheck.Checker {
	return langcheck.New(logger)
}
