package cli

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/mrlokans/vyakarana/internal/catalog"
	"github.com/mrlokans/vyakarana/internal/config"
	"github.com/mrlokans/vyakarana/internal/database"
	"github.com/mrlokans/vyakarana/internal/entrypoint"
)

func vocabularyCommand() *cli.Command {
	return &cli.Command{
		Name:  "vocabulary",
		Usage: "Print the glossary in varṇamālā order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "only entries matching `TERM`",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "print at most `N` entries (0 prints all)",
			},
			&cli.BoolFlag{
				Name:  "offline",
				Usage: "read the local snapshot without contacting the CMS",
			},
		},
		Action: runVocabulary,
	}
}

func runVocabulary(c *cli.Context) error {
	if c.Int("limit") < 0 {
		return usageError("limit must not be negative")
	}

	cfg := config.NewConfig()

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer db.Close()

	svc := entrypoint.NewCatalogService(cfg, db, c.Bool("offline"))

	limit := c.Int("limit")
	if limit == 0 {
		limit = int(^uint(0) >> 1)
	}

	page, err := svc.Vocabulary(c.Context, catalog.VocabularyQuery{
		Search: c.String("search"),
		Limit:  limit,
	})
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	tbl := table.New("Word", "IAST", "Grammar", "Translation").WithWriter(c.App.Writer)
	for _, e := range page.Entries {
		tbl.AddRow(e.Headword(), e.IAST, e.GrammarLabel(), catalog.PlainText(e.Translation()))
	}
	tbl.Print()

	fmt.Fprintf(c.App.Writer, "\n%d of %d entries", page.Shown, page.Total)
	if page.Stale {
		fmt.Fprint(c.App.Writer, " (from local snapshot)")
	}
	fmt.Fprintln(c.App.Writer)
	return nil
}
