package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/prysm"
	"github.com/etnz/prysm/renderer"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file   string
	header bool
	asOf   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV file of trades and replace the portfolio" }
func (*importCmd) Usage() string {
	return `prysm import -f <trades.csv> [-header] [-as-of <date>]

  Parses the trades file, computes holdings, metrics, risk scores and value
  history, and saves the result, replacing any previously imported portfolio.

  The file must start with a header naming the columns symbol, shares, price
  and date. Negative shares are sales.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the trades CSV file")
	f.BoolVar(&c.header, "header", false, "Map fields using the header column positions, overrides the configuration")
	f.StringVar(&c.asOf, "as-of", "0d", "Last day of the value history, and reference day for future dates")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: a trades file is required (-f)")
		return subcommands.ExitUsageError
	}
	asOf, err := prysm.ParseRelativeDate(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	content, err := prysm.ReadUpload(c.file, a.uploadLimits())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := []prysm.ParseOption{prysm.WithToday(asOf)}
	if c.header || a.config.CSV.HeaderColumns {
		opts = append(opts, prysm.WithHeaderColumns())
	}
	trades, err := prysm.ParseCSV(content, opts...)
	if err != nil {
		var perr *prysm.ParseError
		if errors.As(err, &perr) {
			a.log.Debug().Int("row", perr.Row).Str("column", perr.Column).Msg("invalid trades file")
		}
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	data, err := prysm.Process(trades, a.lookup, prysm.AsOf(asOf))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing trades: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := a.repo.Save(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.log.Info().Str("file", c.file).Int("trades", len(data.Trades)).Int("holdings", len(data.Holdings)).Msg("portfolio imported")

	printMarkdown(renderer.SummaryMarkdown(data, a.options()))
	return subcommands.ExitSuccess
}
