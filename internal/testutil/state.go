//go:build !production

package testutil

import (
	"fmt"

	"github.com/cardtable/uno-engine/internal/game"
	"github.com/cardtable/uno-engine/internal/game/card"
)

// NewGameState 构造一个可控的测试对局：牌顶为 red "5"，
// 每位玩家按给定手牌入座，id 为 p1, p2, ...
func NewGameState(gameID string, hands ...[]card.Card) *game.GameState {
	top := card.Card{Color: card.Red, Value: "5"}

	players := make([]game.Player, 0, len(hands))
	for i, hand := range hands {
		players = append(players, game.Player{
			ID:        fmt.Sprintf("p%d", i+1),
			Name:      fmt.Sprintf("Player %d", i+1),
			Hand:      hand,
			CardCount: len(hand),
		})
	}

	return &game.GameState{
		GameID:             gameID,
		Players:            players,
		CurrentPlayerIndex: 0,
		Direction:          1,
		DiscardPile:        []card.Card{top},
		TopCard:            top,
		DrawPileCount:      50,
		LastAction:         "Game started",
	}
}
