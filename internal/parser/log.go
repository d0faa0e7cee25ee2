package parser

import (
	"strings"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

// BuildLog classifies raw rows into a GameLog. The page presents rows
// latest action first, so they are reversed before classification; the
// accumulator's action-context rules only make sense over true play
// order. Faction names are trimmed and deduplicated in order of first
// appearance. The first malformed row or token aborts the whole build.
func (p *Parser) BuildLog(rows []model.RawRow) (*model.GameLog, error) {
	entries := make([]model.LogEntry, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		entry, err := p.ClassifyRow(rows[i])
		if err != nil {
			if rowErr, ok := err.(*MalformedRowError); ok {
				rowErr.Index = i
			}
			return nil, err
		}
		entries = append(entries, entry)
	}

	var factions []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.Faction == "" {
			continue
		}
		f := strings.TrimSpace(entry.Faction)
		if !seen[f] {
			seen[f] = true
			factions = append(factions, f)
		}
	}

	return &model.GameLog{Factions: factions, Entries: entries}, nil
}
