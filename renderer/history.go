package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/prysm"
)

// HistoryMarkdown renders the portfolio value series. Consecutive days with
// the same value are collapsed into a single row spanning the period.
func HistoryMarkdown(points []prysm.HistoryPoint, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio History\n\n")
	if len(points) == 0 {
		fmt.Fprintln(&b, "No history.")
		return b.String()
	}

	var rows [][]string
	start := 0
	for i := 1; i <= len(points); i++ {
		if i < len(points) && points[i].Value.Equal(points[start].Value) && points[i].Date == points[i-1].Date.Add(1) {
			continue
		}
		from, to := points[start].Date, points[i-1].Date
		period := from.String()
		if from != to {
			period = fmt.Sprintf("%s to %s", from, to)
		}
		rows = append(rows, []string{period, opts.money(points[start].Value)})
		start = i
	}
	table(&b, "lr", []string{"Date", "Value"}, rows)
	return b.String()
}
