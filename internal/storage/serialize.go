package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cardtable/uno-engine/internal/game"
	"github.com/cardtable/uno-engine/internal/game/card"
)

// CardData 牌数据
type CardData struct {
	Color string `json:"color"`
	Value string `json:"value"`
}

// PlayerData 玩家数据
type PlayerData struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Hand      []CardData `json:"hand"`
	CardCount int        `json:"card_count"`
}

// GameData 游戏状态数据（用于持久化序列化）。
// 字段集合与引擎输出一一对应：编码再解码必须无损往返
type GameData struct {
	GameID             string       `json:"game_id"`
	Players            []PlayerData `json:"players"`
	CurrentPlayerIndex int          `json:"current_player_index"`
	Direction          int          `json:"direction"`
	DiscardPile        []CardData   `json:"discard_pile"`
	TopCard            CardData     `json:"top_card"`
	DrawPileCount      int          `json:"draw_pile_count"`
	Winner             string       `json:"winner,omitempty"`
	GameOver           bool         `json:"game_over"`
	LastAction         string       `json:"last_action,omitempty"`
}

func toCardData(c card.Card) CardData {
	return CardData{Color: string(c.Color), Value: string(c.Value)}
}

func (d CardData) toCard() card.Card {
	return card.Card{Color: card.Color(d.Color), Value: card.Value(d.Value)}
}

// ToGameData 将 GameState 转换为可序列化的 GameData
func ToGameData(s *game.GameState) *GameData {
	data := &GameData{
		GameID:             s.GameID,
		Players:            make([]PlayerData, 0, len(s.Players)),
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		Direction:          s.Direction,
		DiscardPile:        make([]CardData, 0, len(s.DiscardPile)),
		TopCard:            toCardData(s.TopCard),
		DrawPileCount:      s.DrawPileCount,
		Winner:             s.Winner,
		GameOver:           s.GameOver,
		LastAction:         s.LastAction,
	}

	for _, p := range s.Players {
		hand := make([]CardData, 0, len(p.Hand))
		for _, c := range p.Hand {
			hand = append(hand, toCardData(c))
		}
		data.Players = append(data.Players, PlayerData{
			ID:        p.ID,
			Name:      p.Name,
			Hand:      hand,
			CardCount: p.CardCount,
		})
	}

	return data
}

// ToGameState 将 GameData 还原为引擎状态，调用前必须先通过 Validate
func (d *GameData) ToGameState() *game.GameState {
	s := &game.GameState{
		GameID:             d.GameID,
		Players:            make([]game.Player, 0, len(d.Players)),
		CurrentPlayerIndex: d.CurrentPlayerIndex,
		Direction:          d.Direction,
		DiscardPile:        make([]card.Card, 0, len(d.DiscardPile)),
		TopCard:            d.TopCard.toCard(),
		DrawPileCount:      d.DrawPileCount,
		Winner:             d.Winner,
		GameOver:           d.GameOver,
		LastAction:         d.LastAction,
	}

	for _, p := range d.Players {
		hand := make([]card.Card, 0, len(p.Hand))
		for _, c := range p.Hand {
			hand = append(hand, c.toCard())
		}
		s.Players = append(s.Players, game.Player{
			ID:        p.ID,
			Name:      p.Name,
			Hand:      hand,
			CardCount: p.CardCount,
		})
	}

	return s
}

// Validate 在边界处做显式校验：字面量、下标范围与各冗余字段的一致性。
// 非法状态一律在这里被拦下，引擎内部不再做结构性检查
func (d *GameData) Validate() error {
	if d.GameID == "" {
		return fmt.Errorf("missing game_id")
	}
	if len(d.Players) < game.MinPlayers || len(d.Players) > game.MaxPlayers {
		return fmt.Errorf("game %s: expected 2-4 players, got %d", d.GameID, len(d.Players))
	}
	if d.CurrentPlayerIndex < 0 || d.CurrentPlayerIndex >= len(d.Players) {
		return fmt.Errorf("game %s: current_player_index %d out of range", d.GameID, d.CurrentPlayerIndex)
	}
	if d.Direction != 1 && d.Direction != -1 {
		return fmt.Errorf("game %s: direction must be 1 or -1, got %d", d.GameID, d.Direction)
	}
	if d.DrawPileCount < 0 {
		return fmt.Errorf("game %s: negative draw_pile_count %d", d.GameID, d.DrawPileCount)
	}

	for i, p := range d.Players {
		if p.ID == "" {
			return fmt.Errorf("game %s: player %d has no id", d.GameID, i)
		}
		if p.CardCount != len(p.Hand) {
			return fmt.Errorf("game %s: player %s card_count %d != hand size %d", d.GameID, p.ID, p.CardCount, len(p.Hand))
		}
		for _, c := range p.Hand {
			if err := c.toCard().Validate(); err != nil {
				return fmt.Errorf("game %s: player %s: %w", d.GameID, p.ID, err)
			}
		}
	}

	if len(d.DiscardPile) == 0 {
		return fmt.Errorf("game %s: empty discard pile", d.GameID)
	}
	for _, c := range d.DiscardPile {
		// 弃牌堆中的万能牌可能已被重新着色，只校验字面量本身
		if err := validateDiscard(c.toCard()); err != nil {
			return fmt.Errorf("game %s: %w", d.GameID, err)
		}
	}
	if d.DiscardPile[len(d.DiscardPile)-1] != d.TopCard {
		return fmt.Errorf("game %s: top_card does not match last discard", d.GameID)
	}

	return nil
}

// validateDiscard 校验弃牌堆中的牌：重新着色后的 wild/wild4 带普通颜色，
// 不受 "颜色 wild 当且仅当牌面值 wild" 约束
func validateDiscard(c card.Card) error {
	if c.Value == card.ValueWild || c.Value == card.ValueWild4 {
		valid := c.Color == card.Wild
		for _, color := range card.Colors {
			if c.Color == color {
				valid = true
			}
		}
		if !valid {
			return fmt.Errorf("unknown card color %q", c.Color)
		}
		return nil
	}
	return c.Validate()
}

// EncodeGameState 将状态编码为持久化的 JSON
func EncodeGameState(s *game.GameState) ([]byte, error) {
	data, err := json.Marshal(ToGameData(s))
	if err != nil {
		return nil, fmt.Errorf("encode game %s: %w", s.GameID, err)
	}
	return data, nil
}

// DecodeGameState 严格解析持久化的 JSON 状态：未知字段一律拒绝，
// 解析成功后再做一轮语义校验
func DecodeGameState(data []byte) (*game.GameState, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var gd GameData
	if err := dec.Decode(&gd); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	if err := gd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game state: %w", err)
	}
	return gd.ToGameState(), nil
}
