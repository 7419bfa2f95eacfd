// Package renderer renders portfolio snapshots as markdown documents.
//
// Renderers return plain markdown strings, the CLI decides how to display them.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/prysm"
)

// Options holds the rendering settings shared by all renderers.
type Options struct {
	Currency string // ISO code used to format money, USD if empty
}

func (o Options) currency() string {
	if o.Currency == "" {
		return "USD"
	}
	return o.Currency
}

func (o Options) money(m prysm.Money) string  { return m.Format(o.currency()) }
func (o Options) signed(m prysm.Money) string { return m.SignedFormat(o.currency()) }

// table writes a markdown table. 'align' holds one of "l", "r" or "c" per column.
func table(w io.Writer, align string, header []string, rows [][]string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
	seps := make([]string, len(header))
	for i := range seps {
		switch {
		case i < len(align) && align[i] == 'r':
			seps[i] = "---:"
		case i < len(align) && align[i] == 'c':
			seps[i] = ":---:"
		default:
			seps[i] = ":---"
		}
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(seps, "|"))
	for _, row := range rows {
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
}
