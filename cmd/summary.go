package cmd

import (
	"context"
	"flag"

	"github.com/etnz/prysm/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio metrics and risk scores" }
func (*summaryCmd) Usage() string {
	return `prysm summary

  Displays the total value, gain and loss, best and worst performers, and the
  risk scores of the imported portfolio.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, data, status := load(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer a.Close()

	printMarkdown(renderer.SummaryMarkdown(data, a.options()))
	return subcommands.ExitSuccess
}
