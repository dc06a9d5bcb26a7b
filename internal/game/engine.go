package game

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/cardtable/uno-engine/internal/apperrors"
	"github.com/cardtable/uno-engine/internal/game/card"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
	handSize   = 7
)

// Rand 引擎使用的随机源
type Rand = card.Rand

// globalRand 委托给 math/rand/v2 的顶层函数，其内部自带锁，
// 可以被多个 goroutine 共享
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Engine UNO 规则引擎。无内部共享状态，所有操作都是
// (当前状态, 动作) -> 新状态 的纯转换，可安全并发使用；
// 按 game_id 串行化读改写由持久化协作方负责
type Engine struct {
	rng Rand
}

// New 创建使用进程级随机源的引擎
func New() *Engine {
	return NewWithRand(globalRand{})
}

// NewWithRand 创建使用注入随机源的引擎，测试中注入确定性实现。
// 注入的随机源是否支持并发由调用方保证
func NewWithRand(rng Rand) *Engine {
	return &Engine{rng: rng}
}

// NewGame 建局：洗一副新牌，给每位玩家发 7 张，再翻出一张数字牌作为牌顶。
// 翻出的若是功能牌则塞回牌底重新洗牌再翻，直到翻出数字牌为止
func (e *Engine) NewGame(playerNames []string) (*GameState, error) {
	if len(playerNames) < MinPlayers || len(playerNames) > MaxPlayers {
		return nil, apperrors.ErrInvalidPlayerCount.Withf("got %d", len(playerNames))
	}

	deck := card.NewDeck()
	deck.Shuffle(e.rng)

	players := make([]Player, 0, len(playerNames))
	for _, name := range playerNames {
		hand := make([]card.Card, 0, handSize)
		for range handSize {
			hand = append(hand, deck.Pop())
		}
		players = append(players, Player{
			ID:        uuid.NewString(),
			Name:      name,
			Hand:      hand,
			CardCount: len(hand),
		})
	}

	top := deck.Pop()
	for top.IsAction() {
		deck.PushBottom(top)
		deck.Shuffle(e.rng)
		top = deck.Pop()
	}

	return &GameState{
		GameID:             uuid.NewString(),
		Players:            players,
		CurrentPlayerIndex: 0,
		Direction:          1,
		DiscardPile:        []card.Card{top},
		TopCard:            top,
		DrawPileCount:      len(deck),
		LastAction:         "Game started",
	}, nil
}
