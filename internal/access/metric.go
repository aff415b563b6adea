// Package access derives food access statistics from the joined tract
// dataset: the join match rate, the low access classification, and county
// level aggregates.
package access

import "github.com/cascadia-research/foodaccess/internal/tract"

// MatchRate returns the percentage of tract boundaries that joined to a
// food access row. An empty dataset reports 0 rather than NaN.
func MatchRate(d *tract.Dataset) float64 {
	if len(d.Tracts) == 0 {
		return 0
	}
	return float64(d.Matched()) / float64(len(d.Tracts)) * 100
}
