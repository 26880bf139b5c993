package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-event-scheduler/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventListCache profile 的活動列表快取 (read-through)
type EventListCache interface {
	// 取得：快取不存在時 ok = false
	Get(ctx context.Context, profileID uuid.UUID) (events []*model.Event, ok bool, err error)
	// 寫入：整份列表覆蓋
	Set(ctx context.Context, profileID uuid.UUID, events []*model.Event) error
	// 失效：活動有任何異動時清掉所有相關 profile 的列表
	Invalidate(ctx context.Context, profileIDs ...uuid.UUID) error
}

type RedisEventListCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventListCache(client *redis.Client, ttl time.Duration) EventListCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisEventListCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

// 列表 key
func (c *RedisEventListCacheImpl) getListKey(profileID uuid.UUID) string {
	return fmt.Sprintf("profile:%s:events", profileID)
}

func (c *RedisEventListCacheImpl) Get(ctx context.Context, profileID uuid.UUID) ([]*model.Event, bool, error) {
	data, err := c.client.Get(ctx, c.getListKey(profileID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var events []*model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, fmt.Errorf("invalid cached events: %w", err)
	}
	return events, true, nil
}

func (c *RedisEventListCacheImpl) Set(ctx context.Context, profileID uuid.UUID, events []*model.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	return c.client.Set(ctx, c.getListKey(profileID), data, c.ttl).Err()
}

func (c *RedisEventListCacheImpl) Invalidate(ctx context.Context, profileIDs ...uuid.UUID) error {
	if len(profileIDs) == 0 {
		return nil
	}
	keys := make([]string, len(profileIDs))
	for i, id := range profileIDs {
		keys[i] = c.getListKey(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

// NoopEventListCache REDIS_ENABLED=false 時使用，永遠 miss
type NoopEventListCache struct{}

func NewNoopEventListCache() EventListCache {
	return NoopEventListCache{}
}

func (NoopEventListCache) Get(ctx context.Context, profileID uuid.UUID) ([]*model.Event, bool, error) {
	return nil, false, nil
}

func (NoopEventListCache) Set(ctx context.Context, profileID uuid.UUID, events []*model.Event) error {
	return nil
}

func (NoopEventListCache) Invalidate(ctx context.Context, profileIDs ...uuid.UUID) error {
	return nil
}
