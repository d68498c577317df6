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

// Notifier определяет контракт доставки push-уведомлений пользователям.
// Доставка выполняется по принципу "best effort": ошибки логируются
// вызывающей стороной и не прерывают основную операцию.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []uuid.UUID, payload models.PushPayload) error
}

// SmsDispatcher определяет контракт постановки SMS в исходящую очередь.
// Фактическая отправка оператору в этом сервисе не выполняется.
type SmsDispatcher interface {
	LogPendingSms(ctx context.Context, incidentID uuid.UUID, message string) error
}

// UserDirectory возвращает пользователей по роли для рассылки уведомлений
type UserDirectory interface {
	ListUserIDsByRole(ctx context.Context, role string) ([]uuid.UUID, error)
}

// VolunteerRepository определяет контракт для работы с бд волонтёров
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Volunteer, error)
	ListAvailable(ctx context.Context) ([]*models.Volunteer, error)
	FindAvailableWithinRadius(ctx context.Context, lat, lon, radiusKm float64) ([]*models.VolunteerMatch, error)
	LastLocation(ctx context.Context, volunteerID uuid.UUID) (*models.VolunteerLocation, error)
	CountOpenAssignments(ctx context.Context, volunteerID uuid.UUID) (int, error)
	SaveLocation(ctx context.Context, location *models.VolunteerLocation) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

// AssignmentCriteria — входные данные одной попытки назначения
type AssignmentCriteria struct {
	IncidentID     uuid.UUID
	Latitude       float64
	Longitude      float64
	Barangay       string
	Severity       int
	RequiredSkills []string
}

// AssignmentResult — структурированный результат попытки назначения.
// Ошибки не пробрасываются выше: неуспех кодируется в Success и Message.
type AssignmentResult struct {
	Success           bool                     `json:"success"`
	AssignedVolunteer *models.VolunteerMatch   `json:"assigned_volunteer,omitempty"`
	Message           string                   `json:"message"`
	Alternatives      []*models.VolunteerMatch `json:"alternatives,omitempty"`
}

// AssignmentService определяет контракт автоназначения волонтёров
type AssignmentService interface {
	AssignIncident(ctx context.Context, criteria AssignmentCriteria) *AssignmentResult
	AssignByIncidentID(ctx context.Context, incidentID uuid.UUID) *AssignmentResult
}

type assignmentService struct {
	incidents  IncidentRepository
	volunteers VolunteerRepository
	notifier   Notifier
	sms        SmsDispatcher
	logger     *logrus.Logger
	cfg        *config.Config
	collector  *metrics.Collector
}

func NewAssignmentService(
	incidents IncidentRepository,
	volunteers VolunteerRepository,
	notifier Notifier,
	sms SmsDispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
	collector *metrics.Collector,
) AssignmentService {
	return &assignmentService{
		incidents:  incidents,
		volunteers: volunteers,
		notifier:   notifier,
		sms:        sms,
		logger:     logger,
		cfg:        cfg,
		collector:  collector,
	}
}

// AssignIncident находит кандидатов, ранжирует их и назначает лучшего.
// Переход PENDING -> ASSIGNED защищён условным обновлением: если инцидент
// уже назначен другим процессом, обновление не затронет ни одной строки.
func (s *assignmentService) AssignIncident(ctx context.Context, criteria AssignmentCriteria) *AssignmentResult {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "AssignIncident",
		"incident_id": criteria.IncidentID,
		"severity":    criteria.Severity,
	})
	log.Info("Attempting to auto-assign incident")

	candidates := s.findCandidates(ctx, criteria)
	if len(candidates) == 0 {
		log.Warn("No available volunteers found in the area")
		s.collector.IncAssignment("no_candidates")
		return &AssignmentResult{
			Success: false,
			Message: "No available volunteers found in the area",
		}
	}

	RankMatches(candidates, criteria.Barangay, criteria.RequiredSkills)
	best := candidates[0]

	assigned, err := s.incidents.AssignVolunteer(ctx, criteria.IncidentID, best.Volunteer.ID)
	if err != nil {
		log.WithError(err).Error("Failed to assign volunteer to incident")
		s.collector.IncAssignment("error")
		return &AssignmentResult{
			Success: false,
			Message: "Failed to assign incident",
		}
	}
	if !assigned {
		// Инцидент уже покинул статус PENDING: его назначил другой
		// процесс либо статус сменился вручную
		log.Warn("Incident is no longer pending, skipping assignment")
		s.collector.IncAssignment("conflict")
		return &AssignmentResult{
			Success: false,
			Message: "Incident is no longer pending",
		}
	}

	// Побочные эффекты после успешного перехода выполняются по принципу
	// "best effort": сбой не отменяет состоявшееся назначение
	if err := s.incidents.AppendTimeline(ctx, &models.TimelineEntry{
		IncidentID:     criteria.IncidentID,
		PreviousStatus: models.IncidentStatusPending,
		NewStatus:      models.IncidentStatusAssigned,
		Note:           "Automatically assigned by system",
	}); err != nil {
		log.WithError(err).Error("Failed to append timeline entry")
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, criteria.IncidentID); err != nil {
		log.WithError(err).Error("Failed to invalidate incident cache")
	}

	// В notifications.user_id попадает volunteers.id, а не users.id
	if err := s.notifier.NotifyUsers(ctx, []uuid.UUID{best.Volunteer.ID}, models.PushPayload{
		Title: "New assignment",
		Body:  fmt.Sprintf("You have been assigned to incident %s", criteria.IncidentID),
		Data: map[string]string{
			"incident_id": criteria.IncidentID.String(),
			"type":        "assignment",
		},
	}); err != nil {
		log.WithError(err).Error("Failed to send assignment notification")
	}

	s.startSmsBackupWatch(criteria.IncidentID, best.Volunteer)

	alternatives := candidates[1:]
	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}

	log.WithFields(logrus.Fields{
		"volunteer_id": best.Volunteer.ID,
		"match_score":  best.MatchScore,
		"distance_km":  best.DistanceKm,
	}).Info("Incident assigned successfully")
	s.collector.IncAssignment("assigned")

	return &AssignmentResult{
		Success:           true,
		AssignedVolunteer: best,
		Message:           fmt.Sprintf("Assigned to %s", best.Volunteer.Name),
		Alternatives:      alternatives,
	}
}

// AssignByIncidentID загружает инцидент и запускает назначение с навыками,
// выведенными из типа инцидента. Используется монитором эскалации и
// обработчиком ручного запуска.
func (s *assignmentService) AssignByIncidentID(ctx context.Context, incidentID uuid.UUID) *AssignmentResult {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "AssignByIncidentID",
		"incident_id": incidentID,
	})

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to load incident for assignment")
		return &AssignmentResult{
			Success: false,
			Message: "Incident not found",
		}
	}

	if incident.Status != models.IncidentStatusPending {
		log.WithField("status", incident.Status).Warn("Incident is not pending")
		return &AssignmentResult{
			Success: false,
			Message: "Incident is no longer pending",
		}
	}

	return s.AssignIncident(ctx, AssignmentCriteria{
		IncidentID:     incident.ID,
		Latitude:       incident.Latitude,
		Longitude:      incident.Longitude,
		Barangay:       incident.Barangay,
		Severity:       incident.Severity,
		RequiredSkills: SkillsForIncidentType(incident.Type),
	})
}

// startSmsBackupWatch запускает отложенную проверку: если волонтёр так и не
// приступил к работе по инциденту, в исходящую очередь ставится SMS
func (s *assignmentService) startSmsBackupWatch(incidentID uuid.UUID, volunteer *models.Volunteer) {
	delay := s.cfg.SmsBackupDelay
	if delay <= 0 {
		return
	}

	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log := s.logger.WithFields(logrus.Fields{
			"service":     "assignment",
			"method":      "smsBackupWatch",
			"incident_id": incidentID,
		})

		incident, err := s.incidents.GetByID(ctx, incidentID)
		if err != nil {
			log.WithError(err).Error("Failed to load incident for SMS backup check")
			return
		}
		if incident.Status != models.IncidentStatusAssigned {
			return
		}

		message := fmt.Sprintf("Reminder for %s: incident %s is still awaiting your response", volunteer.Name, incidentID)
		if err := s.sms.LogPendingSms(ctx, incidentID, message); err != nil {
			log.WithError(err).Error("Failed to log SMS backup message")
			return
		}
		log.Info("SMS backup message queued")
	})
}
