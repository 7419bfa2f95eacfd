package cmd

import (
	"slices"

	"github.com/etnz/prysm"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the prysm commands.
//
// The main package calls its Complete method before parsing the flags, it only
// acts when the program is invoked by the shell for completion.
// Install it with "COMP_INSTALL=1 prysm".
func Completion() *complete.Command {
	dates := predict.Set{"0d", "-7d", "-1m", "-1y"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"env":       predict.Files("*"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"import": {Flags: map[string]complete.Predictor{
				"f":      predict.Files("*.csv"),
				"header": predict.Nothing,
				"as-of":  dates,
			}},
			"summary": {},
			"holdings": {Flags: map[string]complete.Predictor{
				"sector": predict.Set(demoSectors()),
				"search": predict.Something,
			}},
			"trades": {Flags: map[string]complete.Predictor{
				"from": dates,
				"to":   dates,
			}},
			"history": {Flags: map[string]complete.Predictor{
				"from": dates,
				"to":   dates,
			}},
			"sectors": {},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.json"),
				"q": predict.Set{"$.metrics", "$.risk", "$.holdings[*].symbol"},
			}},
			"prices": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.jsonl"),
			}},
			"clear": {},
			"help":  {},
			"topic": {Args: predict.Set{"*", "csv-format", "metrics", "configuration", "storage"}},
		},
	}
}

// demoSectors returns the sectors of the demo table.
func demoSectors() []string {
	res := []string{prysm.AllSectors, prysm.UnknownSector}
	for _, q := range prysm.DemoLookup() {
		if !slices.Contains(res, q.Sector) {
			res = append(res, q.Sector)
		}
	}
	slices.Sort(res)
	return res
}
