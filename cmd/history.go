package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/prysm"
	"github.com/etnz/prysm/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	from string
	to   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the daily portfolio value" }
func (*historyCmd) Usage() string {
	return `prysm history [-from <date>] [-to <date>]

  Displays the portfolio value reconstructed day by day from the first trade
  until the import day. Consecutive days with the same value are grouped.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day to display")
	f.StringVar(&c.to, "to", "", "Last day to display")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, data, status := load(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer a.Close()

	filter := prysm.Filter{Range: period}
	printMarkdown(renderer.HistoryMarkdown(filter.History(data.History), a.options()))
	return subcommands.ExitSuccess
}
