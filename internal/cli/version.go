package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

func versionCommand(build BuildInfo) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			info := version.GetVersionInfo()
			fmt.Fprintf(c.App.Writer, "Version:   %s\n", build.Version)
			fmt.Fprintf(c.App.Writer, "Commit:    %s\n", build.Commit)
			fmt.Fprintf(c.App.Writer, "GoVersion: %s\n", info.GoVersion)
			fmt.Fprintf(c.App.Writer, "Compiler:  %s\n", info.Compiler)
			fmt.Fprintf(c.App.Writer, "Platform:  %s\n", info.Platform)
			return nil
		},
	}
}
