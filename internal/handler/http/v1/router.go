package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления инцидентами
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
		incidents.GET("/:id/timeline", h.getIncidentTimeline)
		incidents.POST("/:id/assign", h.assignIncident)
	}

	// Маршруты для управления волонтёрами
	volunteers := api.Group("/volunteers")
	{
		volunteers.POST("", h.registerVolunteer)
		volunteers.GET("", h.listAvailableVolunteers)
		volunteers.POST("/:id/location", h.recordVolunteerLocation)
		volunteers.PATCH("/:id/availability", h.setVolunteerAvailability)
	}

	// Маршрут для просмотра событий эскалации
	api.GET("/escalations", h.listEscalations)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
