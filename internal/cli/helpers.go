package cli

import (
	"fmt"
	"io"

	"github.com/jdgunter/gaia-project-scraper/internal/parser"
	"github.com/jdgunter/gaia-project-scraper/internal/report"
	"github.com/jdgunter/gaia-project-scraper/internal/scrape"
	"github.com/jdgunter/gaia-project-scraper/internal/stats"
	"github.com/jdgunter/gaia-project-scraper/internal/store"
	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

// runPipeline runs the full analysis over rendered page HTML and writes
// the three report tables to out, aligned or as TSV. Any failure aborts
// before anything is written.
func runPipeline(pageHTML string, tsv bool, out io.Writer) error {
	rows, err := scrape.ExtractRows(pageHTML)
	if err != nil {
		return err
	}

	vocab := model.DefaultVocabulary()
	gameLog, err := parser.New(vocab).BuildLog(rows)
	if err != nil {
		return err
	}

	all, err := stats.NewAccumulator(vocab).Compute(gameLog)
	if err != nil {
		return err
	}

	percentages, err := report.VPPercentages(all)
	if err != nil {
		return err
	}
	tables := []report.Table{
		report.VPBreakdown(all),
		percentages,
		report.ResourceBreakdown(all),
	}

	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if tsv {
			if err := store.WriteTable(out, t); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(out, report.Render(t)); err != nil {
			return err
		}
	}
	return nil
}
