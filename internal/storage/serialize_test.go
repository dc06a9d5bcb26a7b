package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/uno-engine/internal/game/card"
	"github.com/cardtable/uno-engine/internal/testutil"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	state := testutil.NewGameState("g-roundtrip",
		[]card.Card{{Color: card.Red, Value: "1"}, {Color: card.Wild, Value: card.ValueWild4}},
		[]card.Card{{Color: card.Green, Value: card.ValueSkip}},
	)
	state.Direction = -1
	state.CurrentPlayerIndex = 1
	state.LastAction = "Player 1 played red 1"

	data, err := EncodeGameState(state)
	require.NoError(t, err)

	decoded, err := DecodeGameState(data)
	require.NoError(t, err)
	assert.Equal(t, state, decoded, "persisted representation must round-trip losslessly")
}

func TestEncodeDecode_RecoloredWildInDiscard(t *testing.T) {
	t.Parallel()

	// 重新着色后的 wild4 带普通颜色入弃牌堆，必须能通过边界校验
	state := testutil.NewGameState("g-recolor",
		[]card.Card{{Color: card.Red, Value: "1"}, {Color: card.Red, Value: "2"}},
		[]card.Card{{Color: card.Green, Value: "3"}},
	)
	recolored := card.Card{Color: card.Blue, Value: card.ValueWild4}
	state.DiscardPile = append(state.DiscardPile, recolored)
	state.TopCard = recolored

	data, err := EncodeGameState(state)
	require.NoError(t, err)

	decoded, err := DecodeGameState(data)
	require.NoError(t, err)
	assert.Equal(t, recolored, decoded.TopCard)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	state := testutil.NewGameState("g-extra",
		[]card.Card{{Color: card.Red, Value: "1"}},
		[]card.Card{{Color: card.Green, Value: "3"}},
	)
	data, err := EncodeGameState(state)
	require.NoError(t, err)

	var blob map[string]any
	require.NoError(t, json.Unmarshal(data, &blob))
	blob["legacy_field"] = true
	tampered, err := json.Marshal(blob)
	require.NoError(t, err)

	_, err = DecodeGameState(tampered)
	assert.Error(t, err, "unknown fields must not pass through silently")
}

func TestGameData_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *GameData {
		return ToGameData(testutil.NewGameState("g-validate",
			[]card.Card{{Color: card.Red, Value: "1"}, {Color: card.Blue, Value: "2"}},
			[]card.Card{{Color: card.Green, Value: "3"}},
		))
	}

	tests := []struct {
		name    string
		mutate  func(*GameData)
		wantErr string
	}{
		{
			name:   "Valid state passes",
			mutate: func(d *GameData) {},
		},
		{
			name:    "Missing game id",
			mutate:  func(d *GameData) { d.GameID = "" },
			wantErr: "game_id",
		},
		{
			name:    "Too few players",
			mutate:  func(d *GameData) { d.Players = d.Players[:1] },
			wantErr: "2-4 players",
		},
		{
			name:    "Index out of range",
			mutate:  func(d *GameData) { d.CurrentPlayerIndex = 2 },
			wantErr: "out of range",
		},
		{
			name:    "Negative index",
			mutate:  func(d *GameData) { d.CurrentPlayerIndex = -1 },
			wantErr: "out of range",
		},
		{
			name:    "Zero direction",
			mutate:  func(d *GameData) { d.Direction = 0 },
			wantErr: "direction",
		},
		{
			name:    "Negative draw pile count",
			mutate:  func(d *GameData) { d.DrawPileCount = -3 },
			wantErr: "draw_pile_count",
		},
		{
			name:    "Card count out of sync",
			mutate:  func(d *GameData) { d.Players[0].CardCount = 5 },
			wantErr: "card_count",
		},
		{
			name:    "Unknown color literal in hand",
			mutate:  func(d *GameData) { d.Players[0].Hand[0].Color = "purple" },
			wantErr: "unknown card color",
		},
		{
			name:    "Wild color paired with number value",
			mutate:  func(d *GameData) { d.Players[0].Hand[0] = CardData{Color: "wild", Value: "5"} },
			wantErr: "wild",
		},
		{
			name:    "Empty discard pile",
			mutate:  func(d *GameData) { d.DiscardPile = nil },
			wantErr: "discard pile",
		},
		{
			name:    "Top card does not match last discard",
			mutate:  func(d *GameData) { d.TopCard = CardData{Color: "blue", Value: "9"} },
			wantErr: "top_card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := valid()
			tt.mutate(data)
			err := data.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
