package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type VolunteerRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(db *pgxpool.Pool) service.VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create создает нового волонтёра в бд
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (name, phone, skills, barangays, is_available)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		volunteer.Name,
		volunteer.Phone,
		volunteer.Skills,
		volunteer.Barangays,
		volunteer.IsAvailable,
	).Scan(&volunteer.ID, &volunteer.CreatedAt, &volunteer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

// GetByID возвращает волонтёра по его UUID
func (r *VolunteerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Volunteer, error) {
	query := `
		SELECT id, name, phone, skills, barangays, is_available, created_at, updated_at
		FROM volunteers
		WHERE id = $1;
	`
	volunteer := &models.Volunteer{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&volunteer.ID,
		&volunteer.Name,
		&volunteer.Phone,
		&volunteer.Skills,
		&volunteer.Barangays,
		&volunteer.IsAvailable,
		&volunteer.CreatedAt,
		&volunteer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("volunteer with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get volunteer by id: %w", err)
	}
	return volunteer, nil
}

// ListAvailable возвращает волонтёров с флагом доступности
func (r *VolunteerRepository) ListAvailable(ctx context.Context) ([]*models.Volunteer, error) {
	query := `
		SELECT id, name, phone, skills, barangays, is_available, created_at, updated_at
		FROM volunteers
		WHERE is_available = true
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		volunteer := &models.Volunteer{}
		err := rows.Scan(
			&volunteer.ID,
			&volunteer.Name,
			&volunteer.Phone,
			&volunteer.Skills,
			&volunteer.Barangays,
			&volunteer.IsAvailable,
			&volunteer.CreatedAt,
			&volunteer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, volunteer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAvailable: %w", err)
	}
	return volunteers, nil
}

// FindAvailableWithinRadius находит доступных волонтёров с известной
// геопозицией в радиусе от точки инцидента, с расстоянием в километрах.
// Волонтёры без записей о геопозиции в выборку не попадают.
func (r *VolunteerRepository) FindAvailableWithinRadius(ctx context.Context, lat, lon, radiusKm float64) ([]*models.VolunteerMatch, error) {
	query := `
		SELECT
			v.id, v.name, v.phone, v.skills, v.barangays, v.is_available, v.created_at, v.updated_at,
			ST_Distance(l.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) / 1000.0 AS distance_km
		FROM volunteers v
		JOIN LATERAL (
			SELECT location
			FROM volunteer_locations vl
			WHERE vl.volunteer_id = v.id
			ORDER BY vl.recorded_at DESC
			LIMIT 1
		) l ON true
		WHERE
			v.is_available = true
			AND ST_DWithin(
				l.location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY distance_km ASC;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusKm*1000)
	if err != nil {
		return nil, fmt.Errorf("failed to find volunteers within radius: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.VolunteerMatch, 0)
	for rows.Next() {
		volunteer := &models.Volunteer{}
		match := &models.VolunteerMatch{Volunteer: volunteer}
		err := rows.Scan(
			&volunteer.ID,
			&volunteer.Name,
			&volunteer.Phone,
			&volunteer.Skills,
			&volunteer.Barangays,
			&volunteer.IsAvailable,
			&volunteer.CreatedAt,
			&volunteer.UpdatedAt,
			&match.DistanceKm,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer match row: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindAvailableWithinRadius: %w", err)
	}
	return matches, nil
}

// LastLocation возвращает последнюю известную геопозицию волонтёра.
// Если записей нет, возвращается nil без ошибки.
func (r *VolunteerRepository) LastLocation(ctx context.Context, volunteerID uuid.UUID) (*models.VolunteerLocation, error) {
	query := `
		SELECT
			id,
			volunteer_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			recorded_at
		FROM volunteer_locations
		WHERE volunteer_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;
	`
	location := &models.VolunteerLocation{}
	err := r.db.QueryRow(ctx, query, volunteerID).Scan(
		&location.ID,
		&location.VolunteerID,
		&location.Latitude,
		&location.Longitude,
		&location.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last volunteer location: %w", err)
	}
	return location, nil
}

// CountOpenAssignments возвращает количество незавершённых назначений
// волонтёра (инциденты в статусах ASSIGNED и RESPONDING)
func (r *VolunteerRepository) CountOpenAssignments(ctx context.Context, volunteerID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM incidents
		WHERE assigned_volunteer_id = $1 AND status IN ($2, $3);
	`
	var count int
	err := r.db.QueryRow(ctx, query, volunteerID, models.IncidentStatusAssigned, models.IncidentStatusResponding).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open assignments: %w", err)
	}
	return count, nil
}

// SaveLocation сохраняет геопозицию волонтёра в бд
func (r *VolunteerRepository) SaveLocation(ctx context.Context, location *models.VolunteerLocation) error {
	query := `
		INSERT INTO volunteer_locations (volunteer_id, location)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)) RETURNING id, recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		location.VolunteerID,
		location.Longitude,
		location.Latitude,
	).Scan(&location.ID, &location.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save volunteer location: %w", err)
	}
	return nil
}

// SetAvailability обновляет флаг доступности волонтёра
func (r *VolunteerRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `
		UPDATE volunteers SET
			is_available = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer availability: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer with id %s not found for availability update", id)
	}
	return nil
}
