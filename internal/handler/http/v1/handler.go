package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService   service.IncidentService
	volunteerService  service.VolunteerService
	assignmentService service.AssignmentService
	escalationService *service.EscalationService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	volunteerService service.VolunteerService,
	assignmentService service.AssignmentService,
	escalationService *service.EscalationService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:   incidentService,
		volunteerService:  volunteerService,
		assignmentService: assignmentService,
		escalationService: escalationService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Report a new incident
// @Description Report a new emergency incident. The system attempts auto-assignment in the background. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := ReportRequestToIncidentModel(input)
	if err := h.incidentService.ReportIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of all incidents. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Perform a manual status transition (RESPONDING, RESOLVED, CANCELLED). Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateIncidentStatusRequest true "Status update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.UpdateIncidentStatus(c.Request.Context(), id, input.Status, input.Note); err != nil {
		log.WithError(err).Warn("Failed to update incident status in service")
		c.JSON(http.StatusConflict, gin.H{"error": "status transition failed"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get incident timeline
// @Description Get the audit timeline of an incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} TimelineEntryResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/timeline [get]
func (h *Handler) getIncidentTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncidentTimeline").WithField("id", id)

	entries, err := h.incidentService.GetTimeline(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident timeline from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToTimelineResponses(entries))
}

// @Summary Trigger incident auto-assignment
// @Description Run the volunteer auto-assignment for a pending incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}

	result := h.assignmentService.AssignByIncidentID(c.Request.Context(), id)
	c.JSON(http.StatusOK, ResultToAssignmentResponse(result))
}

// @Summary Register a new volunteer
// @Description Register a new volunteer with skills and covered barangays. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param volunteer body RegisterVolunteerRequest true "Volunteer registration request"
// @Success 201 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers [post]
func (h *Handler) registerVolunteer(c *gin.Context) {
	var input RegisterVolunteerRequest
	log := h.logger.WithField("method", "registerVolunteer")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := RegisterRequestToVolunteerModel(input)
	if err := h.volunteerService.RegisterVolunteer(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to register volunteer in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToVolunteerResponse(model))
}

// @Summary List available volunteers
// @Description Get the list of volunteers currently flagged as available. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} VolunteerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers [get]
func (h *Handler) listAvailableVolunteers(c *gin.Context) {
	log := h.logger.WithField("method", "listAvailableVolunteers")

	volunteers, err := h.volunteerService.ListAvailable(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list volunteers from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToVolunteerResponses(volunteers))
}

// @Summary Record volunteer location
// @Description Save a volunteer location ping. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Param location body LocationPingRequest true "Location ping request"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid volunteer ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/{id}/location [post]
func (h *Handler) recordVolunteerLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}
	log := h.logger.WithField("method", "recordVolunteerLocation").WithField("id", id)

	var input LocationPingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := &models.VolunteerLocation{
		VolunteerID: id,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}
	if err := h.volunteerService.RecordLocation(c.Request.Context(), location); err != nil {
		log.WithError(err).Error("Failed to record volunteer location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Update volunteer availability
// @Description Set the availability flag of a volunteer. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Param availability body SetAvailabilityRequest true "Availability update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid volunteer ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/{id}/availability [patch]
func (h *Handler) setVolunteerAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}
	log := h.logger.WithField("method", "setVolunteerAvailability").WithField("id", id)

	var input SetAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.volunteerService.SetAvailability(c.Request.Context(), id, *input.IsAvailable); err != nil {
		log.WithError(err).Error("Failed to set volunteer availability in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary List escalation events
// @Description Get a paginated list of escalation events for operator visibility. Requires API key.
// @Tags Escalations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} EscalationEventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /escalations [get]
func (h *Handler) listEscalations(c *gin.Context) {
	log := h.logger.WithField("method", "listEscalations")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	events, err := h.escalationService.ListEvents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list escalation events from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEscalationResponses(events))
}

// @Summary Get incident statistics
// @Description Get incident counts grouped by status. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	counts, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Counts: counts})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
