package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы жизненного цикла инцидента
const (
	IncidentStatusPending    = "PENDING"
	IncidentStatusAssigned   = "ASSIGNED"
	IncidentStatusResponding = "RESPONDING"
	IncidentStatusResolved   = "RESOLVED"
	IncidentStatusCancelled  = "CANCELLED"
)

type Incident struct {
	ID                  uuid.UUID  `json:"id"`
	Type                string     `json:"type"`
	Severity            int        `json:"severity"`
	Description         string     `json:"description"`
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

// IsTerminal сообщает, находится ли инцидент в конечном статусе
func (i *Incident) IsTerminal() bool {
	return i.Status == IncidentStatusResolved || i.Status == IncidentStatusCancelled
}

// TimelineEntry представляет запись в журнале событий инцидента
type TimelineEntry struct {
	ID             int64     `json:"id"`
	IncidentID     uuid.UUID `json:"incident_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
}
