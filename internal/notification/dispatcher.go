package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Store определяет контракт для сохранения уведомлений в бд
type Store interface {
	InsertNotifications(ctx context.Context, notifications []*models.Notification) error
}

// Dispatcher рассылает уведомления: сохраняет записи в бд и публикует
// push-событие в очередь доставки
type Dispatcher struct {
	store     Store
	publisher Publisher
	logger    *logrus.Logger
}

func NewDispatcher(store Store, publisher Publisher, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// NotifyUsers сохраняет уведомления для каждого пользователя и ставит
// push-событие в очередь. Сбой записи в бд не отменяет попытку доставки.
func (d *Dispatcher) NotifyUsers(ctx context.Context, userIDs []uuid.UUID, payload models.PushPayload) error {
	if len(userIDs) == 0 {
		return nil
	}

	notifications := make([]*models.Notification, len(userIDs))
	for i, userID := range userIDs {
		notifications[i] = &models.Notification{
			ID:     uuid.New(),
			UserID: userID,
			Title:  payload.Title,
			Body:   payload.Body,
			Data:   payload.Data,
		}
	}

	if err := d.store.InsertNotifications(ctx, notifications); err != nil {
		d.logger.WithError(err).Error("Failed to store notifications")
	}

	event := PushEvent{
		UserIDs:   userIDs,
		Title:     payload.Title,
		Body:      payload.Body,
		Data:      payload.Data,
		Timestamp: time.Now(),
	}
	if err := d.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish push event: %w", err)
	}
	return nil
}
