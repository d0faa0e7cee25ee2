package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

func gain(kind model.ResourceKind, q int) *model.ResourceDelta {
	return &model.ResourceDelta{Direction: model.Gain, Resource: kind, Quantity: q}
}

func loss(kind model.ResourceKind, q int) *model.ResourceDelta {
	return &model.ResourceDelta{Direction: model.Loss, Resource: kind, Quantity: q}
}

func entry(faction string, events ...model.Event) model.LogEntry {
	return model.LogEntry{Description: faction + " acts", Faction: faction, Events: events}
}

func compute(t *testing.T, entries ...model.LogEntry) []*FactionStats {
	t.Helper()

	var factions []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Faction != "" && !seen[e.Faction] {
			seen[e.Faction] = true
			factions = append(factions, e.Faction)
		}
	}

	all, err := NewAccumulator(model.DefaultVocabulary()).Compute(&model.GameLog{
		Factions: factions,
		Entries:  entries,
	})
	require.NoError(t, err)
	return all
}

func TestComputeFederationScenario(t *testing.T) {
	t.Parallel()

	all := compute(t, entry("terrans", model.Event{
		Action: "federation",
		Deltas: []*model.ResourceDelta{gain(model.VictoryPoint, 4)},
	}))

	require.Len(t, all, 1)
	assert.Equal(t, 14, all[0].VP.Total, "10 base + 4 federation")
	assert.Equal(t, 4, all[0].VP.FromFeds)
}

func TestComputeLeechThenRoundScenario(t *testing.T) {
	t.Parallel()

	all := compute(t,
		entry("terrans", model.Event{
			Action: "charge",
			Deltas: []*model.ResourceDelta{gain(model.VictoryPoint, 3)},
		}),
		entry("terrans", model.Event{
			Action: "round",
			Deltas: []*model.ResourceDelta{gain(model.VictoryPoint, 2)},
		}),
	)

	require.Len(t, all, 1)
	assert.Equal(t, 15, all[0].VP.Total)
	assert.Equal(t, -3, all[0].VP.LostFromLeech, "leech counter runs opposite to the raw sign")
	assert.Equal(t, 2, all[0].VP.FromRoundScoring)
}

func TestComputeVPTotalFollowsSignedDeltas(t *testing.T) {
	t.Parallel()

	all := compute(t, entry("terrans",
		model.Event{Action: "spend", Deltas: []*model.ResourceDelta{loss(model.VictoryPoint, 2)}},
		model.Event{Action: "unclassified action", Deltas: []*model.ResourceDelta{gain(model.VictoryPoint, 5)}},
	))

	require.Len(t, all, 1)
	// 10 - 2 + 5, independent of bucket classification; the spend bucket
	// still accumulates the magnitude.
	assert.Equal(t, 13, all[0].VP.Total)
	assert.Equal(t, 2, all[0].VP.FromResources)
}

func TestComputeBucketPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action string
		check  func(t *testing.T, vp VPStats)
	}{
		{
			name:   "adv tech hits tech bucket first",
			action: "adv tech",
			check: func(t *testing.T, vp VPStats) {
				assert.Equal(t, 3, vp.FromTechs)
				assert.Zero(t, vp.FromAdvTechs)
			},
		},
		{
			name:   "adv alone hits the advanced bucket",
			action: "adv",
			check: func(t *testing.T, vp VPStats) {
				assert.Equal(t, 3, vp.FromAdvTechs)
			},
		},
		{
			name:   "track name as the whole label",
			action: "nav",
			check: func(t *testing.T, vp VPStats) {
				assert.Equal(t, 3, vp.FromTracks)
			},
		},
		{
			name:   "federation only matches exactly",
			action: "federation bonus",
			check: func(t *testing.T, vp VPStats) {
				assert.Zero(t, vp.FromFeds)
				assert.Equal(t, 13, vp.Total, "total still moves without a bucket")
			},
		},
		{
			name:   "qic substring",
			action: "qic action",
			check: func(t *testing.T, vp VPStats) {
				assert.Equal(t, 3, vp.FromQICActions)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			all := compute(t, entry("terrans", model.Event{
				Action: tt.action,
				Deltas: []*model.ResourceDelta{gain(model.VictoryPoint, 3)},
			}))
			require.Len(t, all, 1)
			tt.check(t, all[0].VP)
		})
	}
}

func TestComputeResourceGains(t *testing.T) {
	t.Parallel()

	all := compute(t, entry("terrans",
		model.Event{Action: "income", Deltas: []*model.ResourceDelta{
			gain(model.Coin, 4),
			gain(model.Ore, 2),
			gain(model.Knowledge, 1),
			gain(model.Qic, 1),
			gain(model.PowerToken, 2),
		}},
		model.Event{Action: "charge", Deltas: []*model.ResourceDelta{gain(model.Power, 2)}},
	))

	require.Len(t, all, 1)
	res := all[0].Resources
	assert.Equal(t, 4, res.Coins)
	assert.Equal(t, 2, res.Ore)
	assert.Equal(t, 1, res.Knowledge)
	assert.Equal(t, 1, res.QIC)
	assert.Equal(t, 2, res.PowerTokens)
	assert.Equal(t, 2, res.Power, "charged power counts toward the power total")
	assert.Equal(t, 2, res.Leech, "and toward the leech counter")
}

func TestComputeResourceLossesIgnored(t *testing.T) {
	t.Parallel()

	all := compute(t, entry("terrans", model.Event{
		Action: "convert",
		Deltas: []*model.ResourceDelta{loss(model.Ore, 3)},
	}))

	require.Len(t, all, 1)
	assert.Zero(t, all[0].Resources.Ore)
	assert.Equal(t, 10, all[0].VP.Total)
}

func TestComputeUnrecognizedResource(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(model.DefaultVocabulary())

	gameLog := &model.GameLog{
		Factions: []string{"terrans"},
		Entries: []model.LogEntry{entry("terrans", model.Event{
			Action: "income",
			Deltas: []*model.ResourceDelta{gain(model.ResourceUnknown, 3)},
		})},
	}

	_, err := acc.Compute(gameLog)
	var unrecognized *UnrecognizedResourceError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "terrans", unrecognized.Faction)
}

func TestComputeUnrecognizedResourceLossIgnored(t *testing.T) {
	t.Parallel()

	// Losses never reach resource bookkeeping, so an unresolved resource
	// on a loss stays harmless.
	all := compute(t, entry("terrans", model.Event{
		Action: "convert",
		Deltas: []*model.ResourceDelta{loss(model.ResourceUnknown, 3)},
	}))
	require.Len(t, all, 1)
}

func TestComputeSkipsNilDeltasAndFactionlessEntries(t *testing.T) {
	t.Parallel()

	all := compute(t,
		model.LogEntry{Description: "round 1 begins"},
		entry("terrans", model.Event{
			Action: "income",
			Deltas: []*model.ResourceDelta{nil, gain(model.Coin, 1)},
		}),
	)

	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].Resources.Coins)
}
