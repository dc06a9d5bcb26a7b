package apperrors

import "fmt"

// 错误码
const (
	ErrCodeInvalidPlayerCount = 1001
	ErrCodeGameNotFound       = 1002
	ErrCodeGameOver           = 1003
	ErrCodeNotYourTurn        = 1004
	ErrCodeCardNotInHand      = 1005
	ErrCodeIllegalPlay        = 1006
	ErrCodePlayerNotFound     = 1007
	ErrCodeInvalidUnoCall     = 1008
)

// GameError 游戏错误：对一次非法状态转换的拒绝，原状态不受影响
type GameError struct {
	Code    int
	Message string
	Detail  string
}

func (e *GameError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Is 按错误码比较，让 Withf 生成的副本仍能与预定义错误匹配
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	return ok && t.Code == e.Code
}

// Withf 返回携带上下文信息（对局、玩家、牌面等）的错误副本
func (e *GameError) Withf(format string, args ...any) *GameError {
	return &GameError{Code: e.Code, Message: e.Message, Detail: fmt.Sprintf(format, args...)}
}

// 预定义错误
var (
	ErrInvalidPlayerCount = &GameError{Code: ErrCodeInvalidPlayerCount, Message: "game requires 2-4 players"}
	ErrGameNotFound       = &GameError{Code: ErrCodeGameNotFound, Message: "game not found"}
	ErrGameOver           = &GameError{Code: ErrCodeGameOver, Message: "game is over"}
	ErrNotYourTurn        = &GameError{Code: ErrCodeNotYourTurn, Message: "not your turn"}
	ErrCardNotInHand      = &GameError{Code: ErrCodeCardNotInHand, Message: "card not in hand"}
	ErrIllegalPlay        = &GameError{Code: ErrCodeIllegalPlay, Message: "invalid card play"}
	ErrPlayerNotFound     = &GameError{Code: ErrCodePlayerNotFound, Message: "player not found"}
	ErrInvalidUnoCall     = &GameError{Code: ErrCodeInvalidUnoCall, Message: "you don't have exactly one card"}
)
