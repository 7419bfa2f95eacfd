package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/prysm"
)

// SummaryMarkdown renders the portfolio metrics and risk scores.
func SummaryMarkdown(data *prysm.PortfolioData, opts Options) string {
	var b strings.Builder
	m := data.Metrics

	fmt.Fprintf(&b, "# Portfolio Summary\n\n")
	table(&b, "lr", []string{"Metric", "Value"}, [][]string{
		{"Total Value", opts.money(m.TotalValue)},
		{"Total Gain/Loss", opts.signed(m.TotalGainLoss)},
		{"Total Return", m.TotalGainLossPercent.SignedString()},
		{"Holdings", fmt.Sprint(m.UniqueSymbols)},
		{"Trades", fmt.Sprint(len(data.Trades))},
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if m.TopPerformer == nil {
			return false
		}
		fmt.Fprintf(w, "\n## Performers\n\n")
		table(w, "llrr", []string{"", "Symbol", "Gain/Loss", "Return"}, [][]string{
			performerRow("Best", m.TopPerformer, opts),
			performerRow("Worst", m.WorstPerformer, opts),
		})
		return true
	})

	fmt.Fprintf(&b, "\n## Risk\n\n")
	table(&b, "lr", []string{"Score", "Value"}, [][]string{
		{"Concentration", fmt.Sprintf("%.1f", data.Risk.Concentration)},
		{"Diversification", fmt.Sprintf("%.1f", data.Risk.DiversificationScore)},
		{"Volatility", fmt.Sprintf("%.1f", data.Risk.VolatilityScore)},
	})
	return b.String()
}

func performerRow(label string, h *prysm.Holding, opts Options) []string {
	return []string{label, h.Symbol, opts.signed(h.UnrealizedGainLoss), h.UnrealizedGainLossPercent.SignedString()}
}
