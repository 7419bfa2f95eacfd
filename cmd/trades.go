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

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	from string
	to   string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list the imported trades" }
func (*tradesCmd) Usage() string {
	return `prysm trades [-from <date>] [-to <date>]

  Lists the imported trades in file order. Dates are YYYY-MM-DD or relative
  to today like -30d, -2w, -1m or -1y.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First trade date to display")
	f.StringVar(&c.to, "to", "", "Last trade date to display")
}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.TradesMarkdown(filter.Trades(data.Trades), a.options()))
	return subcommands.ExitSuccess
}

// parseRange parses optional command line bounds, an empty bound is open.
func parseRange(from, to string) (prysm.Range, error) {
	var r prysm.Range
	for _, bound := range []struct {
		str string
		dst *prysm.Date
	}{{from, &r.From}, {to, &r.To}} {
		if bound.str == "" {
			continue
		}
		d, err := prysm.ParseRelativeDate(bound.str)
		if err != nil {
			return prysm.Range{}, err
		}
		*bound.dst = d
	}
	return prysm.NewRange(r.From, r.To), nil
}
