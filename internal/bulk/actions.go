package bulk

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"ghostwriter/internal/common"
	"ghostwriter/pkg/archive"
	"ghostwriter/pkg/batch"
	"ghostwriter/pkg/rows"
)

// BatchAction processes a spreadsheet of rows and writes a ZIP of one
// artifact per row.
func BatchAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	rowsPath := c.String("rows")
	if rowsPath == "" {
		return fmt.Errorf("--rows is required")
	}

	rs, err := rows.Load(rowsPath)
	if err != nil {
		return fmt.Errorf("failed to load rows: %w", err)
	}
	if len(rs) == 0 {
		return fmt.Errorf("no usable rows in %s", rowsPath)
	}

	generator, err := common.NewGenerator(c.Context, c, cfg)
	if err != nil {
		logger.Error("failed to initialize model client", "error", err)
		os.Exit(2)
	}

	searcher := common.NewSearcher(cfg, logger)
	aggregator := common.NewAggregator(cfg, searcher, logger)
	renderer := common.NewRenderer(c, cfg, logger)
	runner := batch.NewRunner(aggregator, generator, renderer, common.NewChecker(logger), logger)

	artifacts := runner.Run(c.Context, rs, func(done, total int, keyword string) {
		fmt.Fprintf(os.Stderr, "처리 중 (%d/%d): %s\n", done, total, keyword)
	})

	data, err := archive.BuildZip(artifacts)
	if err != nil {
		return fmt.Errorf("failed to build archive: %w", err)
	}

	out := c.String("out")
	if out == "" {
		out = fmt.Sprintf("ghost_bulk_%s.zip", time.Now().Format("0102_1504"))
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Info("batch complete", "rows", len(rs), "archive", out)
	fmt.Fprintf(os.Stderr, "saved: %s\n", out)
	return nil
}
