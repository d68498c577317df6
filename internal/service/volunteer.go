package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// VolunteerService определяет контракт для бизнес-логики управления волонтёрами
type VolunteerService interface {
	RegisterVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	GetVolunteer(ctx context.Context, id uuid.UUID) (*models.Volunteer, error)
	ListAvailable(ctx context.Context) ([]*models.Volunteer, error)
	RecordLocation(ctx context.Context, location *models.VolunteerLocation) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

type volunteerService struct {
	repo   VolunteerRepository
	logger *logrus.Logger
}

func NewVolunteerService(repo VolunteerRepository, logger *logrus.Logger) VolunteerService {
	return &volunteerService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterVolunteer регистрирует нового волонтёра
func (s *volunteerService) RegisterVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "RegisterVolunteer",
		"name":    volunteer.Name,
	})
	log.Info("Attempting to register a new volunteer")

	volunteer.IsAvailable = true
	if err := s.repo.Create(ctx, volunteer); err != nil {
		log.WithError(err).Error("Failed to create volunteer in repository")
		return fmt.Errorf("service: could not register volunteer: %w", err)
	}

	log.WithField("volunteer_id", volunteer.ID).Info("Volunteer registered successfully")
	return nil
}

// GetVolunteer получает волонтёра по ID
func (s *volunteerService) GetVolunteer(ctx context.Context, id uuid.UUID) (*models.Volunteer, error) {
	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("volunteer_id", id).Error("Failed to get volunteer")
		return nil, fmt.Errorf("service: could not get volunteer: %w", err)
	}
	return volunteer, nil
}

// ListAvailable возвращает список доступных волонтёров
func (s *volunteerService) ListAvailable(ctx context.Context) ([]*models.Volunteer, error) {
	volunteers, err := s.repo.ListAvailable(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list available volunteers")
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}
	return volunteers, nil
}

// RecordLocation сохраняет геопозицию волонтёра
func (s *volunteerService) RecordLocation(ctx context.Context, location *models.VolunteerLocation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "RecordLocation",
		"volunteer_id": location.VolunteerID,
	})

	if err := s.repo.SaveLocation(ctx, location); err != nil {
		log.WithError(err).Error("Failed to save volunteer location")
		return fmt.Errorf("service: could not save volunteer location: %w", err)
	}

	log.Debug("Volunteer location recorded")
	return nil
}

// SetAvailability обновляет флаг доступности волонтёра
func (s *volunteerService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "SetAvailability",
		"volunteer_id": id,
		"available":    available,
	})

	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		log.WithError(err).Error("Failed to update volunteer availability")
		return fmt.Errorf("service: could not update volunteer availability: %w", err)
	}

	log.Info("Volunteer availability updated")
	return nil
}
