package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// PushWorker - структура для обработки очереди и доставки push-уведомлений
// во внешний шлюз
type PushWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewPushWorker создает новый PushWorker
func NewPushWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *PushWorker {
	return &PushWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди push-событий
func (w *PushWorker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop push event from Redis")
					time.Sleep(w.cfg.PushTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event PushEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push event from Redis")
					continue
				}

				w.processPushEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *PushWorker) processPushEvent(ctx context.Context, event PushEvent, rawPayload string) {
	log := w.logger.WithField("event_title", event.Title).WithField("event_users", len(event.UserIDs))
	log.Debug("Processing push event...")

	if w.cfg.PushGatewayURL == "" {
		log.Warn("Push gateway URL is not configured. Skipping push delivery.")
		return
	}

	maxRetries := w.cfg.PushMaxRetries
	baseDelay := w.cfg.PushBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.PushGatewayURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create push request for event. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если PUSH_SECRET задан
		if w.cfg.PushSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.PushSecret)
			req.Header.Set("X-Push-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send push for event. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Push delivered successfully.")
			return
		} else {
			log.Warnf("Push delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver push for event after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
