package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type ReportIncidentRequest struct {
	Type        string  `json:"type" validate:"required,min=2,max=64"`
	Severity    int     `json:"severity" validate:"required,min=1,max=5"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Barangay    string  `json:"barangay" validate:"required,min=2,max=128"`
	ReporterID  string  `json:"reporter_id" validate:"required"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=RESPONDING RESOLVED CANCELLED"`
	Note   string `json:"note,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Type                string     `json:"type"`
	Severity            int        `json:"severity"`
	Description         string     `json:"description,omitempty"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Barangay            string     `json:"barangay"`
	Status              string     `json:"status"`
	ReporterID          string     `json:"reporter_id"`
	AssignedVolunteerID *uuid.UUID `json:"assigned_volunteer_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	AssignedAt          *time.Time `json:"assigned_at,omitempty"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TimelineEntryResponse DTO записи журнала событий инцидента
// @Description DTO записи журнала событий инцидента
type TimelineEntryResponse struct {
	ID             int64     `json:"id"`
	IncidentID     uuid.UUID `json:"incident_id"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RegisterVolunteerRequest DTO для регистрации волонтёра
// @Description DTO для регистрации волонтёра
type RegisterVolunteerRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Phone     string   `json:"phone" validate:"required,min=7,max=32"`
	Skills    []string `json:"skills,omitempty"`
	Barangays []string `json:"barangays,omitempty"`
}

// VolunteerResponse DTO для ответа с информацией о волонтёре
// @Description DTO для ответа с информацией о волонтёре
type VolunteerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Skills      []string  `json:"skills"`
	Barangays   []string  `json:"barangays"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationPingRequest DTO для сохранения геопозиции волонтёра
// @Description DTO для сохранения геопозиции волонтёра
type LocationPingRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// SetAvailabilityRequest DTO для смены флага доступности волонтёра
// @Description DTO для смены флага доступности волонтёра
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// VolunteerMatchResponse DTO кандидата на назначение
// @Description DTO кандидата на назначение
type VolunteerMatchResponse struct {
	Volunteer               VolunteerResponse `json:"volunteer"`
	DistanceKm              float64           `json:"distance_km"`
	EstimatedArrivalMinutes float64           `json:"estimated_arrival_minutes"`
	CurrentAssignments      int               `json:"current_assignments"`
	MatchScore              int               `json:"match_score"`
}

// AssignmentResponse DTO результата попытки назначения
// @Description DTO результата попытки назначения
type AssignmentResponse struct {
	Success           bool                      `json:"success"`
	AssignedVolunteer *VolunteerMatchResponse   `json:"assigned_volunteer,omitempty"`
	Message           string                    `json:"message"`
	Alternatives      []*VolunteerMatchResponse `json:"alternatives,omitempty"`
}

// EscalationEventResponse DTO события эскалации
// @Description DTO события эскалации
type EscalationEventResponse struct {
	ID               uuid.UUID `json:"id"`
	IncidentID       uuid.UUID `json:"incident_id"`
	RuleID           string    `json:"rule_id"`
	TriggeredAt      time.Time `json:"triggered_at"`
	Status           string    `json:"status"`
	Actions          []string  `json:"actions"`
	CompletedActions []string  `json:"completed_actions"`
	FailedActions    []string  `json:"failed_actions"`
}

// StatsResponse DTO для ответа со статистикой по инцидентам
// @Description DTO для ответа со статистикой по инцидентам
type StatsResponse struct {
	Counts map[string]int `json:"counts"`
}
