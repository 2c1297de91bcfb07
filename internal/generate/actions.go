package generate

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"ghostwriter/internal/common"
	"ghostwriter/pkg/batch"
)

// GenerateAction produces a single article and writes it to --out or stdout.
func GenerateAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	mode := c.String("mode")
	keyword := c.String("keyword")
	if keyword == "" {
		return fmt.Errorf("--keyword is required")
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

	article, err := runner.Generate(c.Context, mode, keyword, c.String("product"), c.String("link"))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("article generated", "mode", mode, "keyword", keyword, "title", article.Title)

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, []byte(article.HTML), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "saved: %s\n", out)
		return nil
	}

	fmt.Println(article.HTML)
	return nil
}
