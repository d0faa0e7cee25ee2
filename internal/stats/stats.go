// Package stats folds a GameLog into per-faction statistics: victory
// points bucketed by source, and cumulative resource gains.
package stats

import (
	"fmt"
	"strings"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

// startingVP is every faction's score before the first action.
const startingVP = 10

// UnrecognizedResourceError reports a gain delta whose token matched no
// resource suffix. Losses of unknown resources are ignored (losses never
// reach resource bookkeeping), but a gain has nowhere to go.
type UnrecognizedResourceError struct {
	Faction string
	Action  string
}

func (e *UnrecognizedResourceError) Error() string {
	return fmt.Sprintf("unrecognized resource gained by %s during %q", e.Faction, e.Action)
}

// VPStats tracks a faction's victory points by source bucket.
type VPStats struct {
	// Total starts at 10 and follows every signed VP delta, whatever
	// bucket it lands in.
	Total int
	// LostFromLeech runs opposite to the raw sign: VP gained from a
	// charge action count as points "won back", so a gain decreases it.
	LostFromLeech    int
	FromRoundScoring int
	FromBoosters     int
	FromEndgame      int
	FromTechs        int
	FromAdvTechs     int
	FromFeds         int
	FromQICActions   int
	FromTracks       int
	FromResources    int
}

// ResourceStats tracks a faction's cumulative resource gains. Losses are
// not tracked.
type ResourceStats struct {
	// Leech counts power gained through charge actions, independently of
	// and in addition to the Power total.
	Leech       int
	Power       int
	Coins       int
	Ore         int
	Knowledge   int
	QIC         int
	PowerTokens int
}

// FactionStats is one faction's full aggregate. Mutated only during
// Compute; read-only afterward.
type FactionStats struct {
	Faction   string
	VP        VPStats
	Resources ResourceStats
}

// Accumulator folds log events into per-faction stats.
type Accumulator struct {
	tracks []string
}

// NewAccumulator returns an Accumulator using the given vocabulary's
// tech-track names for bucket classification.
func NewAccumulator(vocab model.Vocabulary) *Accumulator {
	return &Accumulator{tracks: vocab.TechTracks}
}

// Compute runs a single forward pass over the log and returns one
// FactionStats per faction, in the log's faction order.
func (a *Accumulator) Compute(log *model.GameLog) ([]*FactionStats, error) {
	ordered := make([]*FactionStats, 0, len(log.Factions))
	byFaction := make(map[string]*FactionStats, len(log.Factions))
	for _, f := range log.Factions {
		fs := &FactionStats{Faction: f, VP: VPStats{Total: startingVP}}
		ordered = append(ordered, fs)
		byFaction[f] = fs
	}

	for _, entry := range log.Entries {
		if entry.Faction == "" || entry.Events == nil {
			continue
		}
		fs, ok := byFaction[entry.Faction]
		if !ok {
			continue
		}
		for _, event := range entry.Events {
			if err := fs.augment(event, a.tracks); err != nil {
				return nil, err
			}
		}
	}

	return ordered, nil
}

// augment folds one event into the stats, routing VP deltas to VP
// bookkeeping and everything else to resource bookkeeping. Nil deltas are
// skipped.
func (fs *FactionStats) augment(event model.Event, tracks []string) error {
	for _, d := range event.Deltas {
		if d == nil {
			continue
		}
		if d.Resource == model.VictoryPoint {
			fs.updateVP(event.Action, *d, tracks)
		} else if err := fs.updateResources(event.Action, *d); err != nil {
			return err
		}
	}
	return nil
}

// updateVP classifies a VP delta into a source bucket and adjusts the
// total. The bucket tests run in a fixed priority order and the first
// match wins; reordering them changes where labels with several matching
// substrings land, so the order is load-bearing. Buckets accumulate the
// raw magnitude (leech inverted); the total follows the signed delta no
// matter which bucket matched, or if none did.
func (fs *FactionStats) updateVP(action string, d model.ResourceDelta, tracks []string) {
	q := d.Quantity
	switch {
	case strings.Contains(action, "round"):
		fs.VP.FromRoundScoring += q
	case strings.Contains(action, "booster"):
		fs.VP.FromBoosters += q
	case strings.Contains(action, "final"):
		fs.VP.FromEndgame += q
	case strings.Contains(action, "tech"):
		fs.VP.FromTechs += q
	case strings.Contains(action, "adv"):
		fs.VP.FromAdvTechs += q
	case action == "federation":
		fs.VP.FromFeds += q
	case strings.Contains(action, "qic"):
		fs.VP.FromQICActions += q
	case isTrack(action, tracks):
		fs.VP.FromTracks += q
	case action == "spend":
		fs.VP.FromResources += q
	case action == "charge":
		fs.VP.LostFromLeech -= q
	}

	if d.Direction == model.Gain {
		fs.VP.Total += q
	} else {
		fs.VP.Total -= q
	}
}

// updateResources folds a non-VP delta into the resource totals. Only
// gains are tracked. Power charged through leech is counted twice on
// purpose: once in Leech, once in the Power total.
func (fs *FactionStats) updateResources(action string, d model.ResourceDelta) error {
	if d.Direction == model.Loss {
		return nil
	}

	if action == "charge" {
		fs.Resources.Leech += d.Quantity
	}

	switch d.Resource {
	case model.Power:
		fs.Resources.Power += d.Quantity
	case model.Coin:
		fs.Resources.Coins += d.Quantity
	case model.Ore:
		fs.Resources.Ore += d.Quantity
	case model.Knowledge:
		fs.Resources.Knowledge += d.Quantity
	case model.Qic:
		fs.Resources.QIC += d.Quantity
	case model.PowerToken:
		fs.Resources.PowerTokens += d.Quantity
	default:
		return &UnrecognizedResourceError{Faction: fs.Faction, Action: action}
	}
	return nil
}

func isTrack(action string, tracks []string) bool {
	for _, t := range tracks {
		if action == t {
			return true
		}
	}
	return false
}
