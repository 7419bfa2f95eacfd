package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/prysm"
)

// HoldingsMarkdown renders the holdings table.
func HoldingsMarkdown(holdings []prysm.Holding, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}
	rows := make([][]string, 0, len(holdings)+1)
	var total prysm.Money
	for _, h := range holdings {
		total = total.Add(h.CurrentValue)
		rows = append(rows, []string{
			h.Symbol,
			h.Sector,
			h.SharesHeld.String(),
			opts.money(h.AvgCostBasis),
			opts.money(h.CurrentPrice),
			opts.money(h.CurrentValue),
			opts.signed(h.UnrealizedGainLoss),
			h.UnrealizedGainLossPercent.SignedString(),
		})
	}
	rows = append(rows, []string{"**Total**", "", "", "", "", "**" + opts.money(total) + "**", "", ""})
	table(&b, "llrrrrrr", []string{"Symbol", "Sector", "Shares", "Avg Cost", "Price", "Value", "Gain/Loss", "Return"}, rows)
	return b.String()
}
