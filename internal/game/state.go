package game

import (
	"slices"

	"github.com/cardtable/uno-engine/internal/game/card"
)

// Player 定义玩家。Hand 的顺序即插入顺序，决定重复牌被移除时的取舍
type Player struct {
	ID        string
	Name      string
	Hand      []card.Card
	CardCount int // 冗余字段，始终与 len(Hand) 同步
}

// GameState 定义一局游戏的完整状态（聚合根）。
// 引擎的每次操作都以它为输入并返回一个全新的副本，调用方持有的状态不会被修改。
// 发牌之后不再逐张跟踪摸牌堆，DrawPileCount 只是一个展示用的递减计数器
type GameState struct {
	GameID             string
	Players            []Player // 顺序在建局时固定，定义轮转顺序
	CurrentPlayerIndex int
	Direction          int // +1 顺时针，-1 逆时针
	DiscardPile        []card.Card
	TopCard            card.Card // 冗余字段，等于 DiscardPile 的末尾元素
	DrawPileCount      int
	Winner             string // 空串表示尚无胜者
	GameOver           bool
	LastAction         string // 仅用于展示，不参与规则判断
}

// Action 描述一次出牌产生的动作标签，数字牌为空
type Action string

const (
	ActionNone    Action = ""
	ActionSkip    Action = "skip"
	ActionReverse Action = "reverse"
	ActionDraw2   Action = "draw2"
	ActionWild4   Action = "wild4"
	ActionWild    Action = "wild"
	ActionWin     Action = "win"
)

// Clone 深拷贝整个状态，包括每个玩家的手牌和弃牌堆
func (s *GameState) Clone() *GameState {
	clone := *s
	clone.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		clone.Players[i] = p
		clone.Players[i].Hand = slices.Clone(p.Hand)
	}
	clone.DiscardPile = slices.Clone(s.DiscardPile)
	return &clone
}

// FindPlayer 按 ID 查找玩家，未找到返回 -1
func (s *GameState) FindPlayer(playerID string) int {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// nextIndex 按数学取模计算轮转后的玩家下标，负增量也能得到非负结果
func nextIndex(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
