package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mrlokans/vyakarana/internal/sanskrit"
)

func sortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Print lines in varṇamālā order",
		ArgsUsage: "[FILE]",
		Description: "Reads one word per line from FILE, or standard input when FILE is\n" +
			"omitted or '-', and prints them in Sanskrit alphabetical order.\n" +
			"Blank lines are dropped.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "print in descending order",
			},
			&cli.BoolFlag{
				Name:    "unique",
				Aliases: []string{"u"},
				Usage:   "drop repeated lines",
			},
		},
		Action: runSort,
	}
}

func runSort(c *cli.Context) error {
	if c.NArg() > 1 {
		return usageError("sort takes at most one file")
	}

	in := c.App.Reader
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	words, err := readLines(in, c.Bool("unique"))
	if err != nil {
		return err
	}

	sorted := sanskrit.SortStrings(words)
	if c.Bool("reverse") {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	w := bufio.NewWriter(c.App.Writer)
	for _, word := range sorted {
		fmt.Fprintln(w, word)
	}
	return w.Flush()
}

func readLines(r io.Reader, unique bool) ([]string, error) {
	var lines []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if unique {
			if seen[line] {
				continue
			}
			seen[line] = true
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
