package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"ghostwriter/internal/bulk"
	"ghostwriter/internal/collect"
	"ghostwriter/internal/generate"
	"ghostwriter/pkg/batch"
)

func main() {
	// Keys come from the environment; a local .env is a convenience, not a
	// requirement.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "ghostwriter",
		Usage: "AI 블로그 원고 생성기: 실시간 검색 기반 네이버/티스토리 원고 작성",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "YAML config file path",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate one article for a keyword",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Value: batch.ModeNaverInfo,
						Usage: "네이버수익 | 네이버정보 | 티스토리정보 | 티스토리수익",
					},
					&cli.StringFlag{
						Name:     "keyword",
						Required: true,
						Usage:    "topic keyword",
					},
					&cli.StringFlag{
						Name:  "product",
						Usage: "product name (monetized modes)",
					},
					&cli.StringFlag{
						Name:  "link",
						Usage: "affiliate link (monetized modes)",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output HTML file (default: stdout)",
					},
					&cli.BoolFlag{
						Name:  "mock",
						Usage: "use the offline mock model",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "fix the style random seed (0 = time-based)",
					},
				},
				Action: generate.GenerateAction,
			},
			{
				Name:  "batch",
				Usage: "generate articles for every spreadsheet row and package them as a ZIP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "rows",
						Required: true,
						Usage:    "input spreadsheet (.xlsx or .csv): 모드, 키워드, 상품명, 링크",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output ZIP path (default: ghost_bulk_<timestamp>.zip)",
					},
					&cli.BoolFlag{
						Name:  "mock",
						Usage: "use the offline mock model",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "fix the style random seed (0 = time-based)",
					},
				},
				Action: bulk.BatchAction,
			},
			{
				Name:  "collect",
				Usage: "harvest keyword candidates into the local store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Naver best category ID (default category when no flags given)",
					},
					&cli.StringFlag{
						Name:  "keyword",
						Usage: "also search '<keyword> 추천' for candidates",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "export the store to an .xlsx ready for the batch command",
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: batch.ModeNaverSales,
						Usage: "mode label stamped on exported rows",
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "empty the store first",
					},
				},
				Action: collect.CollectAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
