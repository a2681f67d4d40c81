package fitness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// RedisStorage keeps the state document under a single redis key
type RedisStorage struct {
	redisClient *redis.Client
}

func NewRedisStorage(redisClient *redis.Client) *RedisStorage {
	return &RedisStorage{
		redisClient: redisClient,
	}
}

func (rs *RedisStorage) Load(ctx context.Context) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateJson, err := rs.redisClient.Get(ctx, StateDocumentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("get state from redis: %w", err)
	}

	var state State
	if err := json.Unmarshal(stateJson, &state); err != nil {
		log.Warnf("state document [%s] corrupt, falling back to defaults: %s", StateDocumentKey, err)
		return nil, ErrStateNotFound
	}

	return &state, nil
}

func (rs *RedisStorage) Save(ctx context.Context, state *State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateJson, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := rs.redisClient.Set(ctx, StateDocumentKey, stateJson, 0).Err(); err != nil {
		return fmt.Errorf("set state in redis: %w", err)
	}

	return nil
}
