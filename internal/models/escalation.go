package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы действий эскалации
const (
	ActionNotifyAdmin      = "NOTIFY_ADMIN"
	ActionNotifyVolunteers = "NOTIFY_VOLUNTEERS"
	ActionAutoAssign       = "AUTO_ASSIGN"
	ActionSmsAlert         = "SMS_ALERT"
	ActionEmailAlert       = "EMAIL_ALERT"
)

// Статусы события эскалации
const (
	EscalationStatusPending    = "PENDING"
	EscalationStatusInProgress = "IN_PROGRESS"
	EscalationStatusCompleted  = "COMPLETED"
	EscalationStatusFailed     = "FAILED"
)

// EscalationAction — одно действие правила эскалации.
// DelayMinutes задаёт отложенный запуск (используется для AUTO_ASSIGN).
type EscalationAction struct {
	Type         string `json:"type"`
	DelayMinutes int    `json:"delay_minutes,omitempty"`
}

// EscalationRule — статическое правило эскалации: для каких уровней
// серьёзности и по истечении какого порога запускается набор действий
type EscalationRule struct {
	ID               string             `json:"id"`
	Severities       []int              `json:"severities"`
	ThresholdMinutes int                `json:"threshold_minutes"`
	Actions          []EscalationAction `json:"actions"`
}

// Matches проверяет, подпадает ли уровень серьёзности под правило
func (r EscalationRule) Matches(severity int) bool {
	for _, s := range r.Severities {
		if s == severity {
			return true
		}
	}
	return false
}

// EscalationEvent — факт срабатывания правила для инцидента.
// Создаётся не более одного раза на пару (инцидент, правило).
type EscalationEvent struct {
	ID               uuid.UUID `json:"id"`
	IncidentID       uuid.UUID `json:"incident_id"`
	RuleID           string    `json:"rule_id"`
	TriggeredAt      time.Time `json:"triggered_at"`
	Status           string    `json:"status"`
	Actions          []string  `json:"actions"`
	CompletedActions []string  `json:"completed_actions"`
	FailedActions    []string  `json:"failed_actions"`
}
