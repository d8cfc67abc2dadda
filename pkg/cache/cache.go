package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Nil возвращается из Get при отсутствии ключа
const Nil = redis.Nil

// Cache интерфейс кеша для read-heavy выборок (список автопарка).
// Кеш используется только для отображения: устаревшие данные допустимы,
// решение о бронировании всегда принимается по базе.
type Cache interface {
	Save(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type redisCache struct {
	client *redis.Client
}

// NewRedisCache создает кеш поверх go-redis клиента
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

// Save сериализует значение в JSON и сохраняет с TTL
func (c *redisCache) Save(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal value for key %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set key %q: %w", key, err)
	}

	return nil
}

// Get читает значение по ключу и десериализует его из JSON.
// Возвращает Nil (redis.Nil), когда ключа нет.
func (c *redisCache) Get(ctx context.Context, key string, value any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("cache: unmarshal value for key %q: %w", key, err)
	}

	return nil
}

// Delete удаляет ключ (инвалидация после изменения автопарка админом)
func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache: delete key %q: %w", key, err)
	}
	return nil
}
