package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/mrlokans/vyakarana/internal/config"
	"github.com/mrlokans/vyakarana/internal/database"
	"github.com/mrlokans/vyakarana/internal/entrypoint"
)

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Refresh the local snapshot from the CMS once",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "give up after `DURATION`",
				Value: defaultSyncTimeout,
			},
		},
		Action: runSync,
	}
}

const defaultSyncTimeout = 10 * time.Minute

func runSync(c *cli.Context) error {
	cfg := config.NewConfig()

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	run, err := entrypoint.NewCatalogService(cfg, db, false).Sync(ctx, "cli")
	if err != nil {
		return fmt.Errorf("sync from %s: %w", cfg.CMS.URL, err)
	}

	tbl := table.New("Collection", "Entries").WithWriter(c.App.Writer)
	tbl.AddRow("vocabulary", run.VocabularyCount)
	tbl.AddRow("sutras", run.SutraCount)
	tbl.AddRow("pratisakhya", run.PratisakhyaCount)
	tbl.AddRow("shabdas", run.ShabdaCount)
	tbl.Print()

	fmt.Fprintf(c.App.Writer, "\nSnapshot %s refreshed in %s\n", cfg.Database.Path, run.Duration())
	return nil
}
