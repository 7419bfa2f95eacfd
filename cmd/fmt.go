package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/prysm/renderer"
)

var raw = flag.Bool("raw", false, "Print reports as plain markdown, without terminal rendering")

// printMarkdown prints md to stdout, rendered for the terminal unless raw output is requested.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// options returns the renderer options of the application.
func (a *app) options() renderer.Options {
	return renderer.Options{Currency: a.config.Market.Currency}
}
