package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/prysm"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	output string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "write the price and sector table in use" }
func (*pricesCmd) Usage() string {
	return `prysm prices [-o <file>]

  Writes the price and sector of every known symbol as JSON lines. The output
  can be edited and used as the prices_file of the configuration.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout if empty")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := prysm.EncodeLookup(w, a.lookup); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
