package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const incidentColumns = `
	id,
	type,
	severity,
	description,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	barangay,
	status,
	reporter_id,
	assigned_volunteer_id,
	created_at,
	assigned_at,
	resolved_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.Severity,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Barangay,
		&incident.Status,
		&incident.ReporterID,
		&incident.AssignedVolunteerID,
		&incident.CreatedAt,
		&incident.AssignedAt,
		&incident.ResolvedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (type, severity, description, location, barangay, status, reporter_id)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), UPPER($6), $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Severity,
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		incident.Barangay,
		incident.Status,
		incident.ReporterID,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListByStatus возвращает инциденты с указанным статусом в порядке создания,
// от старых к новым. Используется монитором эскалации.
func (r *IncidentRepository) ListByStatus(ctx context.Context, status string) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = $1 ORDER BY created_at ASC;`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by status: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListByStatus: %w", err)
	}
	return incidents, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// AssignVolunteer переводит инцидент из PENDING в ASSIGNED условным
// обновлением. Возвращает false, если инцидент уже покинул статус PENDING:
// это единственная защита от двойного назначения.
func (r *IncidentRepository) AssignVolunteer(ctx context.Context, incidentID, volunteerID uuid.UUID) (bool, error) {
	query := `
		UPDATE incidents SET
			status = $1,
			assigned_volunteer_id = $2,
			assigned_at = NOW(),
			updated_at = NOW()
		WHERE id = $3 AND status = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		models.IncidentStatusAssigned,
		volunteerID,
		incidentID,
		models.IncidentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to assign volunteer to incident: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpdateStatusIf обновляет статус инцидента, только если текущий статус
// совпадает с ожидаемым
func (r *IncidentRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, expectedStatus, newStatus string) (bool, error) {
	query := `
		UPDATE incidents SET
			status = $1,
			resolved_at = CASE WHEN $1 = 'RESOLVED' THEN NOW() ELSE resolved_at END,
			updated_at = NOW()
		WHERE id = $2 AND status = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, newStatus, id, expectedStatus)
	if err != nil {
		return false, fmt.Errorf("failed to update incident status: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// AppendTimeline добавляет запись в журнал событий инцидента
func (r *IncidentRepository) AppendTimeline(ctx context.Context, entry *models.TimelineEntry) error {
	query := `
		INSERT INTO incident_timeline (incident_id, previous_status, new_status, note)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.IncidentID,
		entry.PreviousStatus,
		entry.NewStatus,
		entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append timeline entry: %w", err)
	}
	return nil
}

// Timeline возвращает журнал событий инцидента в порядке создания
func (r *IncidentRepository) Timeline(ctx context.Context, incidentID uuid.UUID) ([]*models.TimelineEntry, error) {
	query := `
		SELECT id, incident_id, previous_status, new_status, note, created_at
		FROM incident_timeline
		WHERE incident_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident timeline: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.TimelineEntry, 0)
	for rows.Next() {
		entry := &models.TimelineEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.IncidentID,
			&entry.PreviousStatus,
			&entry.NewStatus,
			&entry.Note,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in Timeline: %w", err)
	}
	return entries, nil
}

// CountByStatus возвращает количество инцидентов по каждому статусу
func (r *IncidentRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM incidents GROUP BY status;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by status: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in CountByStatus: %w", err)
	}
	return stats, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Срок жизни кэша - 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
