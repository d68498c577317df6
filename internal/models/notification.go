package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей для рассылки уведомлений
const (
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"
)

// PushPayload — содержимое push-уведомления
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notification представляет запись уведомления в бд
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// SmsOutboxEntry — отложенное SMS-сообщение. Запись только логируется,
// отправка оператору в этом сервисе не выполняется.
type SmsOutboxEntry struct {
	ID         int64     `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
