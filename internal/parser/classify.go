package parser

import (
	"strings"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

// factionOf returns the first vocabulary faction whose name occurs as a
// substring of text, or "" when none does. Matching follows declaration
// order, so a description mentioning several factions resolves to the one
// listed first.
func (p *Parser) factionOf(text string) string {
	for _, f := range p.vocab.Factions {
		if strings.Contains(text, f) {
			return f
		}
	}
	return ""
}

// ClassifyRow turns one raw row into a LogEntry. The faction is detected
// from the description cell regardless of the row's shape. Events are
// computed only when the row carries exactly two side cells (an action
// list and a parallel change list); any other cell count leaves Events
// nil. A row with no cells at all is a MalformedRowError.
func (p *Parser) ClassifyRow(row model.RawRow) (model.LogEntry, error) {
	if len(row.Cells) == 0 {
		return model.LogEntry{}, &MalformedRowError{}
	}

	desc := strings.TrimSpace(row.Cells[0].Text)
	entry := model.LogEntry{
		Description: desc,
		Faction:     p.factionOf(desc),
	}

	if len(row.Cells) == 3 {
		events, err := p.computeEvents(row.Cells[1], row.Cells[2])
		if err != nil {
			return model.LogEntry{}, err
		}
		entry.Events = events
	}

	return entry, nil
}

// computeEvents pairs each action sub-item with its change-token group.
// The change group is split on single spaces after removing commas, so an
// empty position stays an empty position: it becomes a nil delta rather
// than being collapsed away, keeping the deltas aligned with the source.
func (p *Parser) computeEvents(actions, changes model.RawCell) ([]model.Event, error) {
	n := len(actions.Items)
	if len(changes.Items) < n {
		n = len(changes.Items)
	}

	events := make([]model.Event, 0, n)
	for i := 0; i < n; i++ {
		action := strings.TrimSpace(actions.Items[i])
		group := strings.ReplaceAll(strings.TrimSpace(changes.Items[i]), ",", "")

		var deltas []*model.ResourceDelta
		for _, tok := range strings.Split(group, " ") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				deltas = append(deltas, nil)
				continue
			}
			d, err := p.ParseDelta(tok)
			if err != nil {
				return nil, err
			}
			deltas = append(deltas, &d)
		}

		events = append(events, model.Event{Action: action, Deltas: deltas})
	}

	return events, nil
}
