package game

import (
	"fmt"
	"slices"

	"github.com/cardtable/uno-engine/internal/apperrors"
	"github.com/cardtable/uno-engine/internal/game/card"
)

// PlayCard 处理出牌。前置校验按顺序进行：对局未结束、轮到该玩家、
// 牌在手中、牌能压上牌顶；任一失败即拒绝，输入状态不受任何影响。
// 万能牌若附带 chosenColor 则以该颜色入弃牌堆（牌面值不变），
// 未附带颜色的万能牌按原样（颜色 wild）入堆。
// 打出最后一张牌立即判胜并返回，功能牌效果与轮转都不再发生
func (e *Engine) PlayCard(s *GameState, playerID string, c card.Card, chosenColor card.Color) (*GameState, Action, error) {
	if s.GameOver {
		return nil, ActionNone, apperrors.ErrGameOver.Withf("game %s", s.GameID)
	}

	current := &s.Players[s.CurrentPlayerIndex]
	if current.ID != playerID {
		return nil, ActionNone, apperrors.ErrNotYourTurn.Withf("player %s in game %s", playerID, s.GameID)
	}

	// 按 (颜色, 牌面值) 精确匹配，重复牌移除最靠前的一张
	idx := slices.Index(current.Hand, c)
	if idx < 0 {
		return nil, ActionNone, apperrors.ErrCardNotInHand.Withf("%s", c)
	}

	if !card.CanPlay(c, s.TopCard) {
		return nil, ActionNone, apperrors.ErrIllegalPlay.Withf("%s on %s", c, s.TopCard)
	}

	ns := s.Clone()
	player := &ns.Players[ns.CurrentPlayerIndex]

	played := player.Hand[idx]
	player.Hand = slices.Delete(player.Hand, idx, idx+1)
	player.CardCount = len(player.Hand)

	if played.Color == card.Wild && chosenColor != "" {
		played.Color = chosenColor
	}

	ns.DiscardPile = append(ns.DiscardPile, played)
	ns.TopCard = played

	if len(player.Hand) == 0 {
		ns.Winner = player.Name
		ns.GameOver = true
		ns.LastAction = fmt.Sprintf("%s wins!", player.Name)
		return ns, ActionWin, nil
	}

	// skip/draw2/wild4 前进两位：被罚摸的玩家同时被跳过，
	// 罚摸本身不在此处落到手牌（摸牌堆在发牌后即被抽象掉）
	action := ActionNone
	change := 1

	switch played.Value {
	case card.ValueSkip:
		action = ActionSkip
		change = 2
		ns.LastAction = fmt.Sprintf("%s played Skip", player.Name)
	case card.ValueReverse:
		action = ActionReverse
		ns.Direction *= -1
		ns.LastAction = fmt.Sprintf("%s reversed direction", player.Name)
	case card.ValueDraw2:
		action = ActionDraw2
		change = 2
		ns.LastAction = fmt.Sprintf("%s played Draw Two", player.Name)
	case card.ValueWild4:
		action = ActionWild4
		change = 2
		ns.LastAction = fmt.Sprintf("%s played Wild Draw Four", player.Name)
	case card.ValueWild:
		action = ActionWild
		ns.LastAction = fmt.Sprintf("%s played Wild", player.Name)
	default:
		ns.LastAction = fmt.Sprintf("%s played %s %s", player.Name, played.Color, played.Value)
	}

	ns.CurrentPlayerIndex = nextIndex(ns.CurrentPlayerIndex, change*ns.Direction, len(ns.Players))

	return ns, action, nil
}
