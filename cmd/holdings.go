package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/prysm"
	"github.com/etnz/prysm/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	sector string
	search string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the current holdings" }
func (*holdingsCmd) Usage() string {
	return `prysm holdings [-sector <sector>] [-search <text>]

  Displays the holdings of the imported portfolio, largest value first.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sector, "sector", prysm.AllSectors, "Only display holdings of this sector")
	f.StringVar(&c.search, "search", "", "Only display holdings whose symbol contains this text")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, data, status := load(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer a.Close()

	sectors := prysm.Sectors(data.Holdings)
	if c.sector != prysm.AllSectors && !slices.Contains(sectors, c.sector) {
		fmt.Fprintf(os.Stderr, "Error: unknown sector %q, want one of %s\n", c.sector, strings.Join(sectors, ", "))
		return subcommands.ExitUsageError
	}

	filter := prysm.Filter{Sector: c.sector, Search: c.search}
	printMarkdown(renderer.HoldingsMarkdown(filter.Holdings(data.Holdings), a.options()))
	return subcommands.ExitSuccess
}
