package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/metrics"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	AssignVolunteer(ctx context.Context, incidentID, volunteerID uuid.UUID) (bool, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, expectedStatus, newStatus string) (bool, error)
	AppendTimeline(ctx context.Context, entry *models.TimelineEntry) error
	Timeline(ctx context.Context, incidentID uuid.UUID) ([]*models.TimelineEntry, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, newStatus, note string) error
	GetTimeline(ctx context.Context, id uuid.UUID) ([]*models.TimelineEntry, error)
	GetStats(ctx context.Context) (map[string]int, error)
}

// Допустимые ручные переходы статусов. Переход PENDING -> ASSIGNED
// выполняется только через AssignmentService.
var allowedStatusTransitions = map[string][]string{
	models.IncidentStatusPending:    {models.IncidentStatusCancelled},
	models.IncidentStatusAssigned:   {models.IncidentStatusResponding, models.IncidentStatusCancelled},
	models.IncidentStatusResponding: {models.IncidentStatusResolved, models.IncidentStatusCancelled},
}

type incidentService struct {
	repo      IncidentRepository
	assigner  AssignmentService
	logger    *logrus.Logger
	cfg       *config.Config
	collector *metrics.Collector
}

func NewIncidentService(repo IncidentRepository, assigner AssignmentService, logger *logrus.Logger, cfg *config.Config, collector *metrics.Collector) IncidentService {
	return &incidentService{
		repo:      repo,
		assigner:  assigner,
		logger:    logger,
		cfg:       cfg,
		collector: collector,
	}
}

// ReportIncident регистрирует новый инцидент и запускает фоновую попытку
// автоназначения. Неудача назначения не считается ошибкой регистрации:
// инцидент остаётся в статусе PENDING и будет подхвачен монитором эскалации.
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ReportIncident",
		"type":     incident.Type,
		"severity": incident.Severity,
		"barangay": incident.Barangay,
	})
	log.Info("Attempting to report a new incident")

	incident.Status = models.IncidentStatusPending
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.repo.AppendTimeline(ctx, &models.TimelineEntry{
		IncidentID:     incident.ID,
		PreviousStatus: "",
		NewStatus:      models.IncidentStatusPending,
		Note:           "Incident reported",
	}); err != nil {
		log.WithError(err).Error("Failed to append timeline entry")
	}

	s.collector.IncIncidentReported()
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")

	// Первая попытка назначения выполняется в фоне, чтобы не задерживать
	// ответ заявителю
	incidentID := incident.ID
	go func() {
		assignCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := s.assigner.AssignByIncidentID(assignCtx, incidentID)
		if !result.Success {
			s.logger.WithFields(logrus.Fields{
				"service":     "incident",
				"incident_id": incidentID,
				"message":     result.Message,
			}).Warn("Initial auto-assignment attempt did not succeed")
		}
	}()

	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша, затем из бд
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncidentStatus выполняет ручной переход статуса инцидента.
// Переход защищён условным обновлением по текущему статусу.
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, newStatus, note string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"new_status":  newStatus,
	})
	log.Info("Attempting to update incident status")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found: %w", id, err)
	}

	if !transitionAllowed(incident.Status, newStatus) {
		log.WithField("current_status", incident.Status).Warn("Status transition is not allowed")
		return fmt.Errorf("service: transition from %s to %s is not allowed", incident.Status, newStatus)
	}

	updated, err := s.repo.UpdateStatusIf(ctx, id, incident.Status, newStatus)
	if err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return fmt.Errorf("service: could not update incident status: %w", err)
	}
	if !updated {
		log.Warn("Incident status changed concurrently")
		return fmt.Errorf("service: incident %s status changed concurrently", id)
	}

	if err := s.repo.AppendTimeline(ctx, &models.TimelineEntry{
		IncidentID:     id,
		PreviousStatus: incident.Status,
		NewStatus:      newStatus,
		Note:           note,
	}); err != nil {
		log.WithError(err).Error("Failed to append timeline entry")
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident status updated successfully")
	return nil
}

// GetTimeline возвращает журнал событий инцидента
func (s *incidentService) GetTimeline(ctx context.Context, id uuid.UUID) ([]*models.TimelineEntry, error) {
	entries, err := s.repo.Timeline(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("incident_id", id).Error("Failed to get incident timeline")
		return nil, fmt.Errorf("service: could not get incident timeline: %w", err)
	}
	return entries, nil
}

// GetStats возвращает количество инцидентов по статусам
func (s *incidentService) GetStats(ctx context.Context) (map[string]int, error) {
	stats, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get incident stats")
		return nil, fmt.Errorf("service: could not get incident stats: %w", err)
	}
	return stats, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
