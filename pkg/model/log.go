package model

// RawCell is one cell of a raw log row as extracted from the page. A cell
// is either plain text or a nested list of sub-items (one per inner div);
// Items is nil for plain-text cells.
type RawCell struct {
	Text  string
	Items []string
}

// RawRow is one row of the raw game-log table, latest action first as the
// page presents it.
type RawRow struct {
	Cells []RawCell
}

// Event is one state-modifying action and the resource deltas it caused.
// A nil delta marks a token position that held no recognizable change;
// positions are preserved rather than collapsed.
type Event struct {
	Action string
	Deltas []*ResourceDelta
}

// LogEntry is one classified row of the game log.
type LogEntry struct {
	Description string
	// Faction is the acting faction, or "" when the row had none.
	Faction string
	// Events is nil when the row recorded no state-changing action.
	Events []Event
}

// GameLog is the full log of a game, in true chronological order.
// Built once, read-only afterward.
type GameLog struct {
	// Factions holds the distinct acting factions in order of first
	// appearance.
	Factions []string
	Entries  []LogEntry
}
