package collect

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"ghostwriter/internal/common"
	"ghostwriter/pkg/collector"
	"ghostwriter/pkg/fetch"
	"ghostwriter/pkg/keystore"
	"ghostwriter/pkg/rows"
)

// CollectAction harvests keyword candidates into the local store, then
// optionally exports the store as a spreadsheet ready for the batch command.
func CollectAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	store, err := keystore.Open(cfg.Collector.DBPath)
	if err != nil {
		logger.Error("failed to open keyword store", "error", err, "path", cfg.Collector.DBPath)
		os.Exit(2)
	}
	defer store.Close()

	if c.Bool("clear") {
		n, err := store.Clear()
		if err != nil {
			return fmt.Errorf("failed to clear store: %w", err)
		}
		fmt.Fprintf(os.Stderr, "cleared %d entries\n", n)
	}

	searcher := common.NewSearcher(cfg, logger)
	col := collector.New(fetch.NewClient(cfg.Search.Timeout), searcher, store, logger)

	ran := false
	if c.IsSet("category") || (!c.IsSet("keyword") && !c.Bool("clear") && c.String("export") == "") {
		n, err := col.CollectNaverBest(c.Context, c.String("category"))
		if err != nil {
			return fmt.Errorf("best collection failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "collected %d new best keywords\n", n)
		ran = true
	}
	if kw := c.String("keyword"); kw != "" {
		n, err := col.CollectPicks(c.Context, kw)
		if err != nil {
			return fmt.Errorf("pick collection failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "collected %d new pick keywords\n", n)
		ran = true
	}

	if out := c.String("export"); out != "" {
		entries, err := store.List()
		if err != nil {
			return fmt.Errorf("failed to list store: %w", err)
		}

		mode := c.String("mode")
		rs := make([]rows.Row, 0, len(entries))
		for _, e := range entries {
			rs = append(rs, rows.Row{
				Mode:    mode,
				Keyword: e.Keyword,
				Product: e.Product,
				Link:    e.Link,
			})
		}
		if err := rows.Export(out, rs); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		fmt.Fprintf(os.Stderr, "exported %d rows: %s\n", len(rs), out)
		return nil
	}

	if !ran && !c.Bool("clear") {
		return fmt.Errorf("nothing to do: pass --category, --keyword, --export, or --clear")
	}
	return nil
}
