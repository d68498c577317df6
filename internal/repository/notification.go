package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// NotificationRepository хранит уведомления, исходящие SMS и справочник
// пользователей для рассылки по ролям
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// InsertNotifications сохраняет пачку уведомлений одним батчем
func (r *NotificationRepository) InsertNotifications(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO notifications (id, user_id, title, body, data)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, n := range notifications {
		data, err := json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		batch.Queue(query, n.ID, n.UserID, n.Title, n.Body, data)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}
	return nil
}

// ListUserIDsByRole возвращает идентификаторы пользователей с указанной ролью
func (r *NotificationRepository) ListUserIDsByRole(ctx context.Context, role string) ([]uuid.UUID, error) {
	query := `SELECT id FROM users WHERE role = $1;`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListUserIDsByRole: %w", err)
	}
	return ids, nil
}

// LogPendingSms ставит SMS в исходящую очередь со статусом 'pending'.
// Фактическая отправка оператору здесь не выполняется.
func (r *NotificationRepository) LogPendingSms(ctx context.Context, incidentID uuid.UUID, message string) error {
	query := `
		INSERT INTO sms_outbox (incident_id, message, status)
		VALUES ($1, $2, 'pending');
	`
	if _, err := r.db.Exec(ctx, query, incidentID, message); err != nil {
		return fmt.Errorf("failed to log pending sms: %w", err)
	}
	return nil
}
