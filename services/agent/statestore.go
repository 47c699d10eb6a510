package agent

import (
	"context"
	"encoding/json"
	"time"

	"bookwise/models"

	"github.com/go-redis/redis/v8"
)

const statePrefix = "conv:state:"

// StateStore loads and saves per-conversation state. A read for an unknown
// conversation yields the all-default state, never an error.
type StateStore interface {
	Get(ctx context.Context, conversationID string) (*models.ConversationState, error)
	Set(ctx context.Context, conversationID string, state *models.ConversationState) error
	Clear(ctx context.Context, conversationID string) error
}

// RedisStateStore keeps conversation state as JSON values with a TTL.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

func (s *RedisStateStore) Get(ctx context.Context, conversationID string) (*models.ConversationState, error) {
	key := statePrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewConversationState(), nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStateStore) Set(ctx context.Context, conversationID string, state *models.ConversationState) error {
	key := statePrefix + conversationID
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, conversationID string) error {
	key := statePrefix + conversationID
	return s.client.Del(ctx, key).Err()
}
