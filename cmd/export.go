package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/prysm"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
	query  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio snapshot as JSON" }
func (*exportCmd) Usage() string {
	return `prysm export [-o <file>] [-q <jsonpath>]

  Writes the saved portfolio snapshot as JSON. With -q only the values
  selected by the JSONPath expression are written, for instance:

    prysm export -q '$.metrics.totalValue'
    prysm export -q '$.holdings[?(@.sector == "Technology")].symbol'
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout if empty")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting the values to export")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, data, status := load(ctx)
	if status != subcommands.ExitSuccess {
		return status
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

	if err := export(w, data, c.query); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// export writes data, or the part selected by the JSONPath 'path', as indented JSON.
func export(w io.Writer, data *prysm.PortfolioData, path string) error {
	var v any = data
	if path != "" {
		selected, err := query(data, path)
		if err != nil {
			return err
		}
		v = selected
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// query evaluates the JSONPath 'path' on the JSON form of data.
func query(data *prysm.PortfolioData, path string) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize portfolio data: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("cannot serialize portfolio data: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return jval, nil
}
