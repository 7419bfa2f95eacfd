package cmd

import (
	"context"
	"flag"

	"github.com/etnz/prysm"
	"github.com/etnz/prysm/renderer"
	"github.com/google/subcommands"
)

// sectorsCmd holds the flags for the 'sectors' subcommand.
type sectorsCmd struct{}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "display the allocation by sector" }
func (*sectorsCmd) Usage() string {
	return `prysm sectors

  Displays the share of the portfolio value invested in each sector.
`
}

func (c *sectorsCmd) SetFlags(f *flag.FlagSet) {}

func (c *sectorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, data, status := load(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer a.Close()

	printMarkdown(renderer.SectorsMarkdown(prysm.SectorAllocation(data.Holdings), a.options()))
	return subcommands.ExitSuccess
}
