package models

import (
	"time"

	"github.com/google/uuid"
)

type Volunteer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Skills      []string  `json:"skills"`
	Barangays   []string  `json:"barangays"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VolunteerLocation представляет последнюю известную геопозицию волонтёра
type VolunteerLocation struct {
	ID          int64     `json:"id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// VolunteerMatch — кандидат на назначение, рассчитывается на каждую попытку
// назначения и не сохраняется в бд
type VolunteerMatch struct {
	Volunteer               *Volunteer `json:"volunteer"`
	DistanceKm              float64    `json:"distance_km"`
	EstimatedArrivalMinutes float64    `json:"estimated_arrival_minutes"`
	CurrentAssignments      int        `json:"current_assignments"`
	MatchScore              int        `json:"match_score"`
}
