package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type EscalationRepository struct {
	db *pgxpool.Pool
}

func NewEscalationRepository(db *pgxpool.Pool) service.EscalationRepository {
	return &EscalationRepository{db: db}
}

// EventExists проверяет, создавалось ли событие эскалации для пары
// (инцидент, правило). Проверка не транзакционная: уникального ограничения
// на пару нет, при параллельных проходах монитора возможен дубль.
func (r *EscalationRepository) EventExists(ctx context.Context, incidentID uuid.UUID, ruleID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM escalation_events
			WHERE incident_id = $1 AND rule_id = $2
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, incidentID, ruleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check escalation event existence: %w", err)
	}
	return exists, nil
}

// InsertEvent создает новое событие эскалации
func (r *EscalationRepository) InsertEvent(ctx context.Context, event *models.EscalationEvent) error {
	query := `
		INSERT INTO escalation_events (id, incident_id, rule_id, triggered_at, status, actions, completed_actions, failed_actions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.IncidentID,
		event.RuleID,
		event.TriggeredAt,
		event.Status,
		event.Actions,
		event.CompletedActions,
		event.FailedActions,
	)
	if err != nil {
		return fmt.Errorf("failed to insert escalation event: %w", err)
	}
	return nil
}

// UpdateEvent обновляет статус и списки выполненных/сбойных действий события
func (r *EscalationRepository) UpdateEvent(ctx context.Context, event *models.EscalationEvent) error {
	query := `
		UPDATE escalation_events SET
			status = $1,
			completed_actions = $2,
			failed_actions = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		event.Status,
		event.CompletedActions,
		event.FailedActions,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update escalation event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("escalation event with id %s not found for update", event.ID)
	}
	return nil
}

// ListEvents возвращает события эскалации с пагинацией, от новых к старым
func (r *EscalationRepository) ListEvents(ctx context.Context, page, pageSize int) ([]*models.EscalationEvent, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, incident_id, rule_id, triggered_at, status, actions, completed_actions, failed_actions
		FROM escalation_events
		ORDER BY triggered_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list escalation events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.EscalationEvent, 0)
	for rows.Next() {
		event := &models.EscalationEvent{}
		err := rows.Scan(
			&event.ID,
			&event.IncidentID,
			&event.RuleID,
			&event.TriggeredAt,
			&event.Status,
			&event.Actions,
			&event.CompletedActions,
			&event.FailedActions,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan escalation event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListEvents: %w", err)
	}
	return events, nil
}
