// Package report renders accumulated faction statistics as tables:
// absolute VP breakdown, percentage VP breakdown, and resource totals.
package report

import (
	"fmt"
	"strconv"

	"github.com/jdgunter/gaia-project-scraper/internal/stats"
)

// Table is a finished report as rows of scalars, ready for any
// presentation layer (aligned text, TSV, ...).
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// DegenerateTotalError reports a faction whose total VP is zero when a
// percentage breakdown is requested; there is nothing meaningful to
// divide by.
type DegenerateTotalError struct {
	Faction string
}

func (e *DegenerateTotalError) Error() string {
	return fmt.Sprintf("faction %s has zero total VP, cannot compute percentages", e.Faction)
}

var vpCategories = []string{
	"Round", "Boosters", "Endgame", "Techs", "Adv. Techs", "Feds",
	"QIC Actions", "Tracks", "Resources", "Leech",
}

// vpCategoryValues returns the bucket counters in header order.
func vpCategoryValues(fs *stats.FactionStats) []int {
	return []int{
		fs.VP.FromRoundScoring,
		fs.VP.FromBoosters,
		fs.VP.FromEndgame,
		fs.VP.FromTechs,
		fs.VP.FromAdvTechs,
		fs.VP.FromFeds,
		fs.VP.FromQICActions,
		fs.VP.FromTracks,
		fs.VP.FromResources,
		fs.VP.LostFromLeech,
	}
}

// VPBreakdown builds the absolute VP table: total plus each source bucket
// per faction, in the accumulator's faction order.
func VPBreakdown(all []*stats.FactionStats) Table {
	t := Table{
		Title:   "VP breakdown",
		Headers: append([]string{"Faction", "Total VP"}, vpCategories...),
	}
	for _, fs := range all {
		row := []string{fs.Faction, strconv.Itoa(fs.VP.Total)}
		for _, v := range vpCategoryValues(fs) {
			row = append(row, strconv.Itoa(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// VPPercentages builds the percentage VP table: each source bucket as a
// share of the faction's total, two decimal places. A zero total is a
// DegenerateTotalError; a negative total divides through unchecked and
// simply flips the signs.
func VPPercentages(all []*stats.FactionStats) (Table, error) {
	t := Table{
		Title:   "VP percentages",
		Headers: append([]string{"Faction"}, vpCategories...),
	}
	for _, fs := range all {
		if fs.VP.Total == 0 {
			return Table{}, &DegenerateTotalError{Faction: fs.Faction}
		}
		row := []string{fs.Faction}
		for _, v := range vpCategoryValues(fs) {
			row = append(row, fmt.Sprintf("%.2f", float64(v)/float64(fs.VP.Total)*100))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ResourceBreakdown builds the cumulative resource-gain table.
func ResourceBreakdown(all []*stats.FactionStats) Table {
	t := Table{
		Title: "Resources breakdown",
		Headers: []string{
			"Faction", "Power", "Leech", "Coins", "Ore", "Knowledge",
			"QIC", "Power Tokens",
		},
	}
	for _, fs := range all {
		t.Rows = append(t.Rows, []string{
			fs.Faction,
			strconv.Itoa(fs.Resources.Power),
			strconv.Itoa(fs.Resources.Leech),
			strconv.Itoa(fs.Resources.Coins),
			strconv.Itoa(fs.Resources.Ore),
			strconv.Itoa(fs.Resources.Knowledge),
			strconv.Itoa(fs.Resources.QIC),
			strconv.Itoa(fs.Resources.PowerTokens),
		})
	}
	return t
}
