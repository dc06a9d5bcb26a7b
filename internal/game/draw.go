package game

import (
	"fmt"

	"github.com/cardtable/uno-engine/internal/apperrors"
	"github.com/cardtable/uno-engine/internal/game/card"
)

// wildDrawChance 摸牌合成出万能牌的概率
const wildDrawChance = 0.1

// drawValues 合成普通牌时可能出现的牌面值（不含 wild/wild4）
var drawValues = []card.Value{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	card.ValueSkip, card.ValueReverse, card.ValueDraw2,
}

// DrawCard 处理摸牌。发牌后摸牌堆不再逐张跟踪，这里按固定分布
// 合成一张随机牌：10% 出万能牌（wild 与 wild4 各半），
// 其余在四种颜色与 13 种牌面值上均匀取样（与真实牌堆的张数权重无关）。
// 合成的牌加入手牌后，若压不上牌顶则回合顺方向前进一位；
// 压得上则不轮转，玩家可紧接着调用 PlayCard 打出。
// 返回新状态、摸到的牌以及该牌是否可出
func (e *Engine) DrawCard(s *GameState, playerID string) (*GameState, card.Card, bool, error) {
	if s.GameOver {
		return nil, card.Card{}, false, apperrors.ErrGameOver.Withf("game %s", s.GameID)
	}

	if s.Players[s.CurrentPlayerIndex].ID != playerID {
		return nil, card.Card{}, false, apperrors.ErrNotYourTurn.Withf("player %s in game %s", playerID, s.GameID)
	}

	ns := s.Clone()
	player := &ns.Players[ns.CurrentPlayerIndex]

	var drawn card.Card
	if e.rng.Float64() < wildDrawChance {
		value := card.ValueWild
		if e.rng.Float64() >= 0.5 {
			value = card.ValueWild4
		}
		drawn = card.Card{Color: card.Wild, Value: value}
	} else {
		drawn = card.Card{
			Color: card.Colors[e.rng.IntN(len(card.Colors))],
			Value: drawValues[e.rng.IntN(len(drawValues))],
		}
	}

	player.Hand = append(player.Hand, drawn)
	player.CardCount = len(player.Hand)
	// 计数器只减不追踪，到 0 为止
	if ns.DrawPileCount > 0 {
		ns.DrawPileCount--
	}
	ns.LastAction = fmt.Sprintf("%s drew a card", player.Name)

	playable := card.CanPlay(drawn, ns.TopCard)
	if !playable {
		ns.CurrentPlayerIndex = nextIndex(ns.CurrentPlayerIndex, ns.Direction, len(ns.Players))
	}

	return ns, drawn, playable, nil
}
