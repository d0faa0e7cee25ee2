package model

// SuffixMapping binds one short token suffix to a resource kind.
type SuffixMapping struct {
	Suffix string
	Kind   ResourceKind
}

// Vocabulary holds the fixed word lists the parser and classifier match
// against. Treat a Vocabulary as read-only once constructed; components
// receive it at construction time instead of reaching for package state.
type Vocabulary struct {
	// Suffixes is matched in declaration order; the first entry whose
	// suffix ends the token wins.
	Suffixes []SuffixMapping
	// Factions is matched in declaration order; the first name found as a
	// substring of a row description wins.
	Factions []string
	// TechTracks are the action labels that signal a track-completion
	// victory-point award when they are the entire label.
	TechTracks []string
}

// DefaultVocabulary returns the standard Gaia Project vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Suffixes: []SuffixMapping{
			{"c", Coin},
			{"o", Ore},
			{"k", Knowledge},
			{"q", Qic},
			{"pw", Power},
			{"t", PowerToken},
			{"vp", VictoryPoint},
		},
		Factions: []string{
			"ambas", "baltaks", "bescods", "firaks", "geodens", "gleens",
			"hadsch-hallas", "itars", "ivits", "lantids", "nevlas",
			"taklons", "terrans", "xenos",
		},
		TechTracks: []string{"terra", "nav", "int", "gaia", "eco", "sci"},
	}
}

// suffixFor returns the token suffix for a kind, using the default
// vocabulary. Unknown kinds render with no suffix.
func suffixFor(k ResourceKind) string {
	for _, m := range DefaultVocabulary().Suffixes {
		if m.Kind == k {
			return m.Suffix
		}
	}
	return ""
}
