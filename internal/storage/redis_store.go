package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cardtable/uno-engine/internal/apperrors"
	"github.com/cardtable/uno-engine/internal/config"
	"github.com/cardtable/uno-engine/internal/game"
	"github.com/cardtable/uno-engine/internal/logger"
)

const (
	// Redis key 前缀
	gameKeyPrefix = "game:"

	// 对局数据过期时间
	defaultGameExpiration = 2 * time.Hour

	// 乐观并发冲突的最大重试次数
	defaultUpdateRetries = 5
)

// Store 游戏状态存储接口。引擎自身无任何存储，由该协作方
// 负责持久化，并保证同一 game_id 的读改写串行进行
type Store interface {
	SaveGame(ctx context.Context, s *game.GameState) error
	LoadGame(ctx context.Context, gameID string) (*game.GameState, error)
	UpdateGame(ctx context.Context, gameID string, fn func(*game.GameState) (*game.GameState, error)) (*game.GameState, error)
	DeleteGame(ctx context.Context, gameID string) error
	SetGameExpiration(ctx context.Context, gameID string, expiration time.Duration) error
}

// GameStore Redis 游戏状态存储
type GameStore struct {
	client     *redis.Client
	expiration time.Duration
	retries    int
}

var _ Store = (*GameStore)(nil)

// Option 配置 GameStore
type Option func(*GameStore)

// WithExpiration 设置对局数据的过期时间
func WithExpiration(d time.Duration) Option {
	return func(gs *GameStore) { gs.expiration = d }
}

// WithUpdateRetries 设置 UpdateGame 的冲突重试次数
func WithUpdateRetries(n int) Option {
	return func(gs *GameStore) { gs.retries = n }
}

// NewGameStore 创建 Redis 存储
func NewGameStore(client *redis.Client, opts ...Option) *GameStore {
	gs := &GameStore{
		client:     client,
		expiration: defaultGameExpiration,
		retries:    defaultUpdateRetries,
	}
	for _, opt := range opts {
		opt(gs)
	}
	// 至少尝试一次，否则 UpdateGame 必然失败
	if gs.retries < 1 {
		gs.retries = 1
	}
	return gs
}

// NewGameStoreFromConfig 按配置创建 Redis 存储
func NewGameStoreFromConfig(client *redis.Client, cfg *config.StoreConfig) *GameStore {
	return NewGameStore(client,
		WithExpiration(cfg.GameExpirationDuration()),
		WithUpdateRetries(cfg.UpdateRetries),
	)
}

// SaveGame 保存对局到 Redis，用于建局后的首次写入
func (gs *GameStore) SaveGame(ctx context.Context, s *game.GameState) error {
	data, err := EncodeGameState(s)
	if err != nil {
		return err
	}

	key := gameKeyPrefix + s.GameID
	if err := gs.client.Set(ctx, key, data, gs.expiration).Err(); err != nil {
		return fmt.Errorf("save game %s: %w", s.GameID, err)
	}

	logger.LogInfo("saved game %s (%d players)", s.GameID, len(s.Players))
	return nil
}

// LoadGame 从 Redis 加载对局，不存在时返回 apperrors.ErrGameNotFound
func (gs *GameStore) LoadGame(ctx context.Context, gameID string) (*game.GameState, error) {
	key := gameKeyPrefix + gameID
	data, err := gs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrGameNotFound.Withf("game %s", gameID)
		}
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}

	return DecodeGameState(data)
}

// UpdateGame 对一局游戏做一次串行化的读改写：WATCH 对局 key，
// 加载状态，执行转换函数，事务性写回。写入前 key 被并发修改时
// 事务失败并重试，因此 fn 必须是纯转换（引擎的操作天然满足）。
// fn 返回的错误原样透出且不重试，存储中的状态保持不变
func (gs *GameStore) UpdateGame(ctx context.Context, gameID string, fn func(*game.GameState) (*game.GameState, error)) (*game.GameState, error) {
	key := gameKeyPrefix + gameID

	var updated *game.GameState
	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return apperrors.ErrGameNotFound.Withf("game %s", gameID)
			}
			return err
		}

		state, err := DecodeGameState(data)
		if err != nil {
			return err
		}

		next, err := fn(state)
		if err != nil {
			return err
		}

		encoded, err := EncodeGameState(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, gs.expiration)
			return nil
		})
		if err == nil {
			updated = next
		}
		return err
	}

	for range gs.retries {
		err := gs.client.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			logger.LogInfo("update game %s: write conflict, retrying", gameID)
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, fmt.Errorf("update game %s: too many write conflicts", gameID)
}

// DeleteGame 从 Redis 删除对局
func (gs *GameStore) DeleteGame(ctx context.Context, gameID string) error {
	key := gameKeyPrefix + gameID
	return gs.client.Del(ctx, key).Err()
}

// SetGameExpiration 重设一局游戏的过期时间
func (gs *GameStore) SetGameExpiration(ctx context.Context, gameID string, expiration time.Duration) error {
	key := gameKeyPrefix + gameID
	return gs.client.Expire(ctx, key, expiration).Err()
}
