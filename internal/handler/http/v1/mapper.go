package v1

import (
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// ReportRequestToIncidentModel преобразует DTO регистрации в доменную модель
func ReportRequestToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:        dto.Type,
		Severity:    dto.Severity,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Barangay:    dto.Barangay,
		ReporterID:  dto.ReporterID,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                  model.ID,
		Type:                model.Type,
		Severity:            model.Severity,
		Description:         model.Description,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Barangay:            model.Barangay,
		Status:              model.Status,
		ReporterID:          model.ReporterID,
		AssignedVolunteerID: model.AssignedVolunteerID,
		CreatedAt:           model.CreatedAt,
		AssignedAt:          model.AssignedAt,
		ResolvedAt:          model.ResolvedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToTimelineResponse преобразует запись журнала в DTO
func ModelToTimelineResponse(entry *models.TimelineEntry) *TimelineEntryResponse {
	return &TimelineEntryResponse{
		ID:             entry.ID,
		IncidentID:     entry.IncidentID,
		PreviousStatus: entry.PreviousStatus,
		NewStatus:      entry.NewStatus,
		Note:           entry.Note,
		CreatedAt:      entry.CreatedAt,
	}
}

// ModelsToTimelineResponses преобразует слайс записей журнала в слайс DTO
func ModelsToTimelineResponses(entries []*models.TimelineEntry) []*TimelineEntryResponse {
	responses := make([]*TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToTimelineResponse(entry)
	}
	return responses
}

// RegisterRequestToVolunteerModel преобразует DTO регистрации волонтёра в модель
func RegisterRequestToVolunteerModel(dto RegisterVolunteerRequest) *models.Volunteer {
	return &models.Volunteer{
		Name:      dto.Name,
		Phone:     dto.Phone,
		Skills:    dto.Skills,
		Barangays: dto.Barangays,
	}
}

// ModelToVolunteerResponse преобразует модель волонтёра в DTO
func ModelToVolunteerResponse(model *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:          model.ID,
		Name:        model.Name,
		Phone:       model.Phone,
		Skills:      model.Skills,
		Barangays:   model.Barangays,
		IsAvailable: model.IsAvailable,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToVolunteerResponses преобразует слайс моделей волонтёров в слайс DTO
func ModelsToVolunteerResponses(models []*models.Volunteer) []*VolunteerResponse {
	responses := make([]*VolunteerResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToVolunteerResponse(model)
	}
	return responses
}

// ModelToMatchResponse преобразует кандидата в DTO
func ModelToMatchResponse(match *models.VolunteerMatch) *VolunteerMatchResponse {
	if match == nil {
		return nil
	}
	return &VolunteerMatchResponse{
		Volunteer:               *ModelToVolunteerResponse(match.Volunteer),
		DistanceKm:              match.DistanceKm,
		EstimatedArrivalMinutes: match.EstimatedArrivalMinutes,
		CurrentAssignments:      match.CurrentAssignments,
		MatchScore:              match.MatchScore,
	}
}

// ResultToAssignmentResponse преобразует результат назначения в DTO
func ResultToAssignmentResponse(result *service.AssignmentResult) *AssignmentResponse {
	resp := &AssignmentResponse{
		Success:           result.Success,
		Message:           result.Message,
		AssignedVolunteer: ModelToMatchResponse(result.AssignedVolunteer),
	}
	for _, alt := range result.Alternatives {
		resp.Alternatives = append(resp.Alternatives, ModelToMatchResponse(alt))
	}
	return resp
}

// ModelToEscalationResponse преобразует событие эскалации в DTO
func ModelToEscalationResponse(event *models.EscalationEvent) *EscalationEventResponse {
	return &EscalationEventResponse{
		ID:               event.ID,
		IncidentID:       event.IncidentID,
		RuleID:           event.RuleID,
		TriggeredAt:      event.TriggeredAt,
		Status:           event.Status,
		Actions:          event.Actions,
		CompletedActions: event.CompletedActions,
		FailedActions:    event.FailedActions,
	}
}

// ModelsToEscalationResponses преобразует слайс событий эскалации в слайс DTO
func ModelsToEscalationResponses(events []*models.EscalationEvent) []*EscalationEventResponse {
	responses := make([]*EscalationEventResponse, len(events))
	for i, event := range events {
		responses[i] = ModelToEscalationResponse(event)
	}
	return responses
}
