package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/prysm"
)

// SectorsMarkdown renders the sector allocation.
func SectorsMarkdown(sectors []prysm.SectorWeight, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sector Allocation\n\n")
	if len(sectors) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}
	rows := make([][]string, 0, len(sectors))
	for _, s := range sectors {
		rows = append(rows, []string{s.Sector, opts.money(s.Value), s.Percentage.String()})
	}
	table(&b, "lrr", []string{"Sector", "Value", "Weight"}, rows)
	return b.String()
}
