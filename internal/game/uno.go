package game

import (
	"fmt"

	"github.com/cardtable/uno-engine/internal/apperrors"
)

// CallUno 处理玩家喊 UNO。只是一次声明：手牌恰好剩一张时记入
// LastAction，否则拒绝；除此之外不改变任何状态，也没有漏喊惩罚
func (e *Engine) CallUno(s *GameState, playerID string) (*GameState, error) {
	idx := s.FindPlayer(playerID)
	if idx < 0 {
		return nil, apperrors.ErrPlayerNotFound.Withf("player %s in game %s", playerID, s.GameID)
	}

	player := s.Players[idx]
	if len(player.Hand) != 1 {
		return nil, apperrors.ErrInvalidUnoCall.Withf("player %s holds %d cards", player.Name, len(player.Hand))
	}

	ns := s.Clone()
	ns.LastAction = fmt.Sprintf("%s called UNO!", player.Name)
	return ns, nil
}
