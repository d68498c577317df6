package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pushQueueKey = "push_events"
)

// PushEvent - структура события push-уведомления в очереди
type PushEvent struct {
	UserIDs   []uuid.UUID       `json:"user_ids"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Publisher - интерфейс для публикации push-событий
type Publisher interface {
	Publish(ctx context.Context, event PushEvent) error
}

// RedisPushPublisher - реализация Publisher, использующая Redis
type RedisPushPublisher struct {
	redisClient *redis.Client
}

// NewRedisPushPublisher создает новый RedisPushPublisher
func NewRedisPushPublisher(client *redis.Client) *RedisPushPublisher {
	return &RedisPushPublisher{
		redisClient: client,
	}
}

// Publish публикует push-событие в очередь Redis
func (p *RedisPushPublisher) Publish(ctx context.Context, event PushEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal push event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push event to Redis: %w", err)
	}
	return nil
}
