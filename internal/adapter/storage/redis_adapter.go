package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/seckill/internal/core/domain"
)

const (
	// Cached item metadata: item:{item_id} -> JSON snapshot
	itemKeyPrefix = "item:"

	itemKeyTTL = 5 * time.Minute
)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	data, err := r.client.Get(ctx, itemKeyPrefix+itemID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached item: %w", err)
	}

	var item domain.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("decode cached item: %w", err)
	}

	return &item, nil
}

func (r *RedisAdapter) SetItem(ctx context.Context, item *domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	return r.client.Set(ctx, itemKeyPrefix+item.ID, data, itemKeyTTL).Err()
}
