package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

func TestClassifyRow(t *testing.T) {
	t.Parallel()

	p := New(model.DefaultVocabulary())

	tests := []struct {
		name    string
		row     model.RawRow
		check   func(t *testing.T, entry model.LogEntry)
		wantErr bool
	}{
		{
			name: "description-only row",
			row:  model.RawRow{Cells: []model.RawCell{{Text: "  round 2 begins  "}}},
			check: func(t *testing.T, entry model.LogEntry) {
				assert.Equal(t, "round 2 begins", entry.Description)
				assert.Empty(t, entry.Faction)
				assert.Nil(t, entry.Events)
			},
		},
		{
			name: "faction detected from description",
			row:  model.RawRow{Cells: []model.RawCell{{Text: "terrans build a mine"}}},
			check: func(t *testing.T, entry model.LogEntry) {
				assert.Equal(t, "terrans", entry.Faction)
			},
		},
		{
			name: "faction tie-break uses declaration order",
			row:  model.RawRow{Cells: []model.RawCell{{Text: "xenos leech from ambas"}}},
			check: func(t *testing.T, entry model.LogEntry) {
				// ambas precedes xenos in the faction list even though
				// xenos appears first in the text.
				assert.Equal(t, "ambas", entry.Faction)
			},
		},
		{
			name: "three-cell row yields aligned events",
			row: model.RawRow{Cells: []model.RawCell{
				{Text: "terrans build a mine"},
				{Items: []string{" build ", "income"}},
				{Items: []string{"-2o, -1c", "2pw"}},
			}},
			check: func(t *testing.T, entry model.LogEntry) {
				require.Len(t, entry.Events, 2)

				build := entry.Events[0]
				assert.Equal(t, "build", build.Action)
				require.Len(t, build.Deltas, 2)
				assert.Equal(t, model.ResourceDelta{Direction: model.Loss, Resource: model.Ore, Quantity: 2}, *build.Deltas[0])
				assert.Equal(t, model.ResourceDelta{Direction: model.Loss, Resource: model.Coin, Quantity: 1}, *build.Deltas[1])

				income := entry.Events[1]
				assert.Equal(t, "income", income.Action)
				require.Len(t, income.Deltas, 1)
				assert.Equal(t, model.ResourceDelta{Direction: model.Gain, Resource: model.Power, Quantity: 2}, *income.Deltas[0])
			},
		},
		{
			name: "empty token positions stay as nil deltas",
			row: model.RawRow{Cells: []model.RawCell{
				{Text: "itars income"},
				{Items: []string{"income"}},
				{Items: []string{"4c  2o"}},
			}},
			check: func(t *testing.T, entry model.LogEntry) {
				require.Len(t, entry.Events, 1)
				deltas := entry.Events[0].Deltas
				require.Len(t, deltas, 3)
				assert.NotNil(t, deltas[0])
				assert.Nil(t, deltas[1], "gap between tokens is kept, not collapsed")
				assert.NotNil(t, deltas[2])
			},
		},
		{
			name: "two-cell row has no events",
			row: model.RawRow{Cells: []model.RawCell{
				{Text: "terrans pass"},
				{Items: []string{"pass"}},
			}},
			check: func(t *testing.T, entry model.LogEntry) {
				assert.Nil(t, entry.Events)
			},
		},
		{
			name:    "row with no cells is malformed",
			row:     model.RawRow{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry, err := p.ClassifyRow(tt.row)
			if tt.wantErr {
				var malformed *MalformedRowError
				require.ErrorAs(t, err, &malformed)
				return
			}
			require.NoError(t, err)
			tt.check(t, entry)
		})
	}
}

func TestClassifyRowMalformedTokenAborts(t *testing.T) {
	t.Parallel()

	p := New(model.DefaultVocabulary())

	_, err := p.ClassifyRow(model.RawRow{Cells: []model.RawCell{
		{Text: "terrans act"},
		{Items: []string{"act"}},
		{Items: []string{"abc"}},
	}})

	var malformed *MalformedTokenError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "abc", malformed.Token)
}
