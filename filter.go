package prysm

import (
	"slices"
	"strings"
)

// AllSectors is the Filter sector that matches every holding.
const AllSectors = "all"

// Filter selects a view of a snapshot without modifying it.
type Filter struct {
	Sector string // "" or AllSectors for any sector
	Range  Range  // trade dates, zero bounds are open
	Search string // case-insensitive part of the symbol
}

// Holdings returns the holdings matching the sector and the search term, in order.
func (f Filter) Holdings(holdings []Holding) []Holding {
	search := strings.ToLower(f.Search)
	res := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		if f.Sector != "" && f.Sector != AllSectors && h.Sector != f.Sector {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(h.Symbol), search) {
			continue
		}
		res = append(res, h)
	}
	return res
}

// Trades returns the trades within the date range, in order.
func (f Filter) Trades(trades []Trade) []Trade {
	res := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if f.Range.Contains(t.Date) {
			res = append(res, t)
		}
	}
	return res
}

// History returns the history points within the date range, in order.
func (f Filter) History(points []HistoryPoint) []HistoryPoint {
	res := make([]HistoryPoint, 0, len(points))
	for _, p := range points {
		if f.Range.Contains(p.Date) {
			res = append(res, p)
		}
	}
	return res
}

// Metrics returns the metrics of the filtered holdings.
func (f Filter) Metrics(holdings []Holding) PortfolioMetrics {
	return CalculateMetrics(f.Holdings(holdings))
}

// SectorWeight is the share of the portfolio value invested in one sector.
type SectorWeight struct {
	Sector     string  `json:"sector"`
	Value      Money   `json:"value"`
	Percentage Percent `json:"percentage"`
}

// SectorAllocation groups holdings by sector, largest value first.
func SectorAllocation(holdings []Holding) []SectorWeight {
	var total Money
	var sectors []SectorWeight
	for _, h := range holdings {
		total = total.Add(h.CurrentValue)
		i := slices.IndexFunc(sectors, func(s SectorWeight) bool { return s.Sector == h.Sector })
		if i < 0 {
			sectors = append(sectors, SectorWeight{Sector: h.Sector})
			i = len(sectors) - 1
		}
		sectors[i].Value = sectors[i].Value.Add(h.CurrentValue)
	}
	for i := range sectors {
		if total.IsPositive() {
			sectors[i].Percentage = percentOf(sectors[i].Value, total)
		}
	}
	slices.SortStableFunc(sectors, func(a, b SectorWeight) int {
		return b.Value.Cmp(a.Value)
	})
	return sectors
}

// Sectors returns the distinct sectors of holdings, sorted.
func Sectors(holdings []Holding) []string {
	var res []string
	for _, h := range holdings {
		if !slices.Contains(res, h.Sector) {
			res = append(res, h.Sector)
		}
	}
	slices.Sort(res)
	return res
}
