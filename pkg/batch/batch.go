// Package batch drives end-to-end article generation: grounding context,
// model call, and render pipeline per row, with per-row failures captured
// as artifacts instead of aborting the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ghostwriter/pkg/archive"
	"ghostwriter/pkg/grounding"
	"ghostwriter/pkg/langcheck"
	"ghostwriter/pkg/llm"
	"ghostwriter/pkg/render"
	"ghostwriter/pkg/rows"
)

// Mode labels matched by substring against the spreadsheet's 모드 column.
const (
	ModeNaverSales   = "네이버수익"
	ModeNaverInfo    = "네이버정보"
	ModeTistoryInfo  = "티스토리정보"
	ModeTistorySales = "티스토리수익"
)

const titleMaxRunes = 20

// Progress is called after each row completes, success or not.
type Progress func(done, total int, keyword string)

type Runner struct {
	aggregator *grounding.Aggregator
	generator  llm.Generator
	renderer   *render.Renderer
	checker    *langcheck.Checker
	logger     *slog.Logger
}

func NewRunner(aggregator *grounding.Aggregator, generator llm.Generator, renderer *render.Renderer, checker *langcheck.Checker, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		aggregator: aggregator,
		generator:  generator,
		renderer:   renderer,
		checker:    checker,
		logger:     logger,
	}
}

// Generate produces one article for a single request. Batch and the
// single-article command share this path.
func (r *Runner) Generate(ctx context.Context, mode, keyword, product, link string) (render.Article, error) {
	switch {
	case strings.Contains(mode, ModeNaverSales):
		facts := r.aggregator.BuildContext(ctx, keyword, grounding.ModeSales)
		raw, err := r.generator.Generate(ctx, llm.BuildNaverSalesPrompt(keyword, product, link, facts))
		if err != nil {
			return render.Article{}, err
		}
		return r.renderer.NaverSales(raw, keyword, product, link)

	case strings.Contains(mode, ModeNaverInfo):
		facts := r.aggregator.BuildContext(ctx, keyword, grounding.ModeInfo)
		raw, err := r.generator.Generate(ctx, llm.BuildNaverInfoPrompt(keyword, facts))
		if err != nil {
			return render.Article{}, err
		}
		return r.renderer.NaverInfo(ctx, raw)

	case strings.Contains(mode, ModeTistoryInfo):
		facts := r.aggregator.BuildContext(ctx, keyword, grounding.ModeInfo)
		raw, err := r.generator.Generate(ctx, llm.BuildTistoryInfoPrompt(keyword, facts))
		if err != nil {
			return render.Article{}, err
		}
		return r.renderer.TistoryInfo(raw)

	case strings.Contains(mode, ModeTistorySales):
		facts := r.aggregator.BuildContext(ctx, keyword, grounding.ModeSales)
		raw, err := r.generator.Generate(ctx, llm.BuildTistorySalesPrompt(keyword, product, link, facts))
		if err != nil {
			return render.Article{}, err
		}
		return r.renderer.TistorySales(raw, product, link)
	}

	return render.Article{}, fmt.Errorf("unknown mode %q", mode)
}

// Run processes rows sequentially and returns one artifact per row, in row
// order. A failing row yields an error artifact and processing continues.
func (r *Runner) Run(ctx context.Context, rs []rows.Row, progress Progress) []archive.Artifact {
	artifacts := make([]archive.Artifact, 0, len(rs))

	for i, row := range rs {
		artifacts = append(artifacts, r.processRow(ctx, i, row))
		if progress != nil {
			progress(i+1, len(rs), row.Keyword)
		}
	}

	return artifacts
}

func (r *Runner) processRow(ctx context.Context, i int, row rows.Row) archive.Artifact {
	article, err := r.Generate(ctx, row.Mode, row.Keyword, row.Product, row.Link)
	if err != nil {
		r.logger.Error("row failed",
			"row", i+1,
			"keyword", row.Keyword,
			"error", err)
		return archive.Artifact{
			Name:    fmt.Sprintf("%d_error.txt", i+1),
			Content: []byte(fmt.Sprintf("오류 발생: %v", err)),
		}
	}

	if r.checker != nil {
		r.checker.Warn(row.Keyword, article.HTML)
	}

	r.logger.Info("row rendered",
		"row", i+1,
		"keyword", row.Keyword,
		"title", article.Title)
	return archive.Artifact{
		Name:    fmt.Sprintf("%d_%s.html", i+1, sanitizeTitle(article.Title)),
		Content: []byte(article.HTML),
	}
}

// sanitizeTitle truncates to 20 runes and strips characters that are unsafe
// in archive entry names.
func sanitizeTitle(title string) string {
	runes := []rune(title)
	if len(runes) > titleMaxRunes {
		runes = runes[:titleMaxRunes]
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, string(runes))
	return strings.TrimSpace(cleaned)
}
