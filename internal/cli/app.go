// Package cli is the command-line front end: the server plus a few
// maintenance and inspection commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

// ErrUsage is returned for bad arguments.
var ErrUsage = errors.New("usage")

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewApp builds the command tree. Running without a command serves HTTP.
func NewApp(build BuildInfo) *cli.App {
	return &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "Sanskrit grammar curriculum server",
		Version: build.Version,
		Action: func(c *cli.Context) error {
			return runServe(c, build)
		},
		Commands: []*cli.Command{
			serveCommand(build),
			syncCommand(),
			sortCommand(),
			vocabularyCommand(),
			versionCommand(build),
		},
		HideHelpCommand: true,
	}
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
