package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/mrlokans/vyakarana/internal/config"
	"github.com/mrlokans/vyakarana/internal/entrypoint"
)

func serveCommand(build BuildInfo) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server (default)",
		Action: func(c *cli.Context) error {
			return runServe(c, build)
		},
	}
}

func runServe(_ *cli.Context, build BuildInfo) error {
	entrypoint.Run(config.NewConfig(), build.Version)
	return nil
}
