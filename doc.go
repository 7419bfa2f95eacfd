// Package prysm turns a CSV file of stock trades into a portfolio snapshot.
//
// The pipeline is a sequence of pure functions:
//   - ParseCSV reads and validates the trades of a CSV file.
//   - CalculateHoldings aggregates trades into positions valued with a price Lookup.
//   - CalculateMetrics and CalculateRisk summarize the holdings.
//   - ReconstructHistory replays the trades day by day into a value series.
//
// Process runs them all and returns a PortfolioData, the unit saved and
// loaded by a Repository on top of a [store.Store].
//
// Amounts are exact decimals (Money, Quantity). Percentages (Percent) are
// floating point numbers used only for display and scores.
package prysm
