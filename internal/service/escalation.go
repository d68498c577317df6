package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/metrics"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// EscalationRepository определяет контракт для работы с бд событий эскалации
type EscalationRepository interface {
	EventExists(ctx context.Context, incidentID uuid.UUID, ruleID string) (bool, error)
	InsertEvent(ctx context.Context, event *models.EscalationEvent) error
	UpdateEvent(ctx context.Context, event *models.EscalationEvent) error
	ListEvents(ctx context.Context, page, pageSize int) ([]*models.EscalationEvent, error)
}

// Фиксированный набор правил эскалации. Правила проверяются в порядке
// объявления; для каждой пары (инцидент, правило) событие создаётся
// не более одного раза.
var escalationRules = []models.EscalationRule{
	{
		ID:               "critical-5min",
		Severities:       []int{1, 2},
		ThresholdMinutes: 5,
		Actions: []models.EscalationAction{
			{Type: models.ActionNotifyAdmin},
			{Type: models.ActionSmsAlert},
			{Type: models.ActionAutoAssign, DelayMinutes: 1},
		},
	},
	{
		ID:               "high-30min",
		Severities:       []int{3},
		ThresholdMinutes: 30,
		Actions: []models.EscalationAction{
			{Type: models.ActionNotifyAdmin},
			{Type: models.ActionAutoAssign, DelayMinutes: 5},
		},
	},
	{
		ID:               "medium-60min",
		Severities:       []int{4},
		ThresholdMinutes: 60,
		Actions: []models.EscalationAction{
			{Type: models.ActionNotifyAdmin},
		},
	},
}

// EscalationRules возвращает копию набора правил эскалации
func EscalationRules() []models.EscalationRule {
	rules := make([]models.EscalationRule, len(escalationRules))
	copy(rules, escalationRules)
	return rules
}

// EscalationService следит за инцидентами, остающимися в статусе PENDING
// дольше порога своего уровня серьёзности, и выполняет действия эскалации
type EscalationService struct {
	incidents IncidentRepository
	events    EscalationRepository
	users     UserDirectory
	assigner  AssignmentService
	notifier  Notifier
	sms       SmsDispatcher
	logger    *logrus.Logger
	cfg       *config.Config
	collector *metrics.Collector
	cron      *cron.Cron

	// now подменяется в тестах
	now func() time.Time
}

func NewEscalationService(
	incidents IncidentRepository,
	events EscalationRepository,
	users UserDirectory,
	assigner AssignmentService,
	notifier Notifier,
	sms SmsDispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
	collector *metrics.Collector,
) *EscalationService {
	return &EscalationService{
		incidents: incidents,
		events:    events,
		users:     users,
		assigner:  assigner,
		notifier:  notifier,
		sms:       sms,
		logger:    logger,
		cfg:       cfg,
		collector: collector,
		now:       time.Now,
	}
}

// Start запускает периодическую проверку эскалации по расписанию
func (s *EscalationService) Start() error {
	if s.cron != nil {
		return nil
	}

	s.cron = cron.New()
	schedule := fmt.Sprintf("@every %s", s.cfg.EscalationCheckInterval)
	if _, err := s.cron.AddFunc(schedule, func() {
		s.RunCheck(context.Background())
	}); err != nil {
		s.cron = nil
		return fmt.Errorf("failed to schedule escalation check: %w", err)
	}

	s.cron.Start()
	s.logger.WithField("interval", s.cfg.EscalationCheckInterval.String()).Info("Escalation monitor started")
	return nil
}

// Stop останавливает расписание. Начатый проход выполняется до конца:
// отмены середины прохода нет.
func (s *EscalationService) Stop(ctx context.Context) error {
	if s.cron == nil {
		return nil
	}

	stopCtx := s.cron.Stop()
	s.cron = nil

	select {
	case <-stopCtx.Done():
		s.logger.Info("Escalation monitor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListEvents возвращает события эскалации для операторского интерфейса
func (s *EscalationService) ListEvents(ctx context.Context, page, pageSize int) ([]*models.EscalationEvent, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	events, err := s.events.ListEvents(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list escalation events")
		return nil, fmt.Errorf("service: could not list escalation events: %w", err)
	}
	return events, nil
}

// RunCheck выполняет один проход монитора: загружает инциденты в статусе
// PENDING в порядке создания и проверяет каждый по всем правилам.
// Ошибки запросов логируются и не прерывают обработку остальных инцидентов.
func (s *EscalationService) RunCheck(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "escalation",
		"method":  "RunCheck",
	})
	s.collector.IncEscalationTick()

	pending, err := s.incidents.ListByStatus(ctx, models.IncidentStatusPending)
	if err != nil {
		log.WithError(err).Error("Failed to load pending incidents")
		return
	}

	for _, incident := range pending {
		elapsed := s.now().Sub(incident.CreatedAt)
		for _, rule := range escalationRules {
			if !rule.Matches(incident.Severity) {
				continue
			}
			if elapsed < time.Duration(rule.ThresholdMinutes)*time.Minute {
				continue
			}

			// Проверка существования отдельным запросом: при параллельных
			// проходах монитора возможно двойное срабатывание, уникального
			// ограничения на пару (инцидент, правило) нет
			exists, err := s.events.EventExists(ctx, incident.ID, rule.ID)
			if err != nil {
				log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to check escalation event existence")
				continue
			}
			if exists {
				continue
			}

			s.triggerEscalation(ctx, incident, rule)
		}
	}
}

// triggerEscalation создает событие эскалации и последовательно выполняет
// действия правила. Статус COMPLETED присваивается только если все действия
// завершились успешно.
func (s *EscalationService) triggerEscalation(ctx context.Context, incident *models.Incident, rule models.EscalationRule) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "escalation",
		"method":      "triggerEscalation",
		"incident_id": incident.ID,
		"rule_id":     rule.ID,
	})
	log.Info("Escalation rule triggered")
	s.collector.IncEscalation(rule.ID)

	actionTypes := make([]string, len(rule.Actions))
	for i, a := range rule.Actions {
		actionTypes[i] = a.Type
	}

	event := &models.EscalationEvent{
		ID:          uuid.New(),
		IncidentID:  incident.ID,
		RuleID:      rule.ID,
		TriggeredAt: s.now(),
		Status:      models.EscalationStatusPending,
		Actions:     actionTypes,
	}
	if err := s.events.InsertEvent(ctx, event); err != nil {
		log.WithError(err).Error("Failed to insert escalation event")
		return
	}

	event.Status = models.EscalationStatusInProgress
	if err := s.events.UpdateEvent(ctx, event); err != nil {
		log.WithError(err).Error("Failed to mark escalation event in progress")
	}

	for _, action := range rule.Actions {
		if err := s.executeAction(ctx, incident, action); err != nil {
			log.WithError(err).WithField("action", action.Type).Error("Escalation action failed")
			event.FailedActions = append(event.FailedActions, action.Type)
			continue
		}
		event.CompletedActions = append(event.CompletedActions, action.Type)
	}

	if len(event.FailedActions) == 0 {
		event.Status = models.EscalationStatusCompleted
	} else {
		event.Status = models.EscalationStatusFailed
	}
	if err := s.events.UpdateEvent(ctx, event); err != nil {
		log.WithError(err).Error("Failed to finalize escalation event")
	}

	log.WithFields(logrus.Fields{
		"status":    event.Status,
		"completed": len(event.CompletedActions),
		"failed":    len(event.FailedActions),
	}).Info("Escalation event processed")
}

// executeAction выполняет одно действие эскалации
func (s *EscalationService) executeAction(ctx context.Context, incident *models.Incident, action models.EscalationAction) error {
	switch action.Type {
	case models.ActionNotifyAdmin:
		return s.notifyRole(ctx, incident, models.RoleAdmin)

	case models.ActionNotifyVolunteers:
		return s.notifyRole(ctx, incident, models.RoleVolunteer)

	case models.ActionAutoAssign:
		// Повторное назначение откладывается на заданную задержку и
		// выполняется в фоне; результат фиксируется в логе
		s.scheduleAutoAssign(incident.ID, time.Duration(action.DelayMinutes)*time.Minute)
		return nil

	case models.ActionSmsAlert:
		message := fmt.Sprintf("ALERT: incident %s (severity %d, %s) is still unassigned", incident.ID, incident.Severity, incident.Barangay)
		return s.sms.LogPendingSms(ctx, incident.ID, message)

	case models.ActionEmailAlert:
		// Отправка почты не реализована: сообщение лишь ставится в
		// исходящую очередь
		message := fmt.Sprintf("EMAIL: incident %s (severity %d) requires attention", incident.ID, incident.Severity)
		return s.sms.LogPendingSms(ctx, incident.ID, message)

	default:
		return fmt.Errorf("unknown escalation action type: %s", action.Type)
	}
}

// notifyRole отправляет уведомление всем пользователям с указанной ролью
func (s *EscalationService) notifyRole(ctx context.Context, incident *models.Incident, role string) error {
	userIDs, err := s.users.ListUserIDsByRole(ctx, role)
	if err != nil {
		return fmt.Errorf("failed to list users by role %s: %w", role, err)
	}
	if len(userIDs) == 0 {
		return nil
	}

	return s.notifier.NotifyUsers(ctx, userIDs, models.PushPayload{
		Title: "Incident escalation",
		Body:  fmt.Sprintf("Incident %s (severity %d, %s) is still unassigned", incident.ID, incident.Severity, incident.Barangay),
		Data: map[string]string{
			"incident_id": incident.ID.String(),
			"type":        "escalation",
		},
	})
}

// scheduleAutoAssign запускает отложенную попытку автоназначения
func (s *EscalationService) scheduleAutoAssign(incidentID uuid.UUID, delay time.Duration) {
	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := s.assigner.AssignByIncidentID(ctx, incidentID)
		s.logger.WithFields(logrus.Fields{
			"service":     "escalation",
			"incident_id": incidentID,
			"success":     result.Success,
			"message":     result.Message,
		}).Info("Escalation auto-assign attempt finished")
	}

	if delay <= 0 {
		go run()
		return
	}
	time.AfterFunc(delay, run)
}
