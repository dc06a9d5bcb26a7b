package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameError_WithfKeepsIdentity(t *testing.T) {
	t.Parallel()

	err := ErrNotYourTurn.Withf("player %s in game %s", "p2", "g1")

	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.Equal(t, "not your turn: player p2 in game g1", err.Error())

	// 原始预定义错误不被修改
	assert.Empty(t, ErrNotYourTurn.Detail)
	assert.Equal(t, "not your turn", ErrNotYourTurn.Error())
}

func TestGameError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("handling request: %w", ErrCardNotInHand.Withf("red 5"))
	assert.ErrorIs(t, err, ErrCardNotInHand)
	assert.False(t, errors.Is(err, ErrIllegalPlay))
}

func TestGameError_DistinctCodes(t *testing.T) {
	t.Parallel()

	sentinels := []*GameError{
		ErrInvalidPlayerCount, ErrGameNotFound, ErrGameOver, ErrNotYourTurn,
		ErrCardNotInHand, ErrIllegalPlay, ErrPlayerNotFound, ErrInvalidUnoCall,
	}

	seen := make(map[int]bool)
	for _, s := range sentinels {
		assert.False(t, seen[s.Code], "duplicate error code %d", s.Code)
		seen[s.Code] = true
	}
}
