package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"market-master/domain"
)

// SessionRepositoryRedis stores each session as a JSON value with a TTL
// that is refreshed on every save.
type SessionRepositoryRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionRepositoryRedis(client *redis.Client, prefix string, ttl time.Duration) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{
		client: client,
		prefix: prefix + "session:",
		ttl:    ttl,
	}
}

func (r *SessionRepositoryRedis) Load(ctx context.Context, id string) (domain.SessionState, error) {
	raw, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.SessionState{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("load session %s: %w", id, err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.SessionState{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return state, nil
}

func (r *SessionRepositoryRedis) Save(ctx context.Context, state domain.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.ID, err)
	}
	if err := r.client.Set(ctx, r.prefix+state.ID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", state.ID, err)
	}
	return nil
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.prefix+id).Err()
}
