package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAssignmentService — фейковый AssignmentService с заранее заданным
// результатом назначения.
type fakeAssignmentService struct {
	result *service.AssignmentResult
	lastID uuid.UUID
}

func (f *fakeAssignmentService) AssignIncident(_ context.Context, criteria service.AssignmentCriteria) *service.AssignmentResult {
	f.lastID = criteria.IncidentID
	return f.result
}

func (f *fakeAssignmentService) AssignByIncidentID(_ context.Context, incidentID uuid.UUID) *service.AssignmentResult {
	f.lastID = incidentID
	return f.result
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockVolunteerService, *fakeAssignmentService, *mocks.MockEscalationRepository, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentMock := mocks.NewMockIncidentService(ctrl)
	volunteerMock := mocks.NewMockVolunteerService(ctrl)
	eventsMock := mocks.NewMockEscalationRepository(ctrl)
	assigner := &fakeAssignmentService{}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	escalationService := service.NewEscalationService(nil, eventsMock, nil, assigner, nil, nil, logger, cfg, nil)
	handler := NewHandler(incidentMock, volunteerMock, assigner, escalationService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(APIKeyAuthMiddleware(cfg, logger))
	handler.RegisterRoutes(api)

	return handler, incidentMock, volunteerMock, assigner, eventsMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", "test-api-key")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportIncident_Endpoint_Success(t *testing.T) {
	_, incidentMock, _, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := ReportIncidentRequest{
		Type:       "FIRE",
		Severity:   1,
		Latitude:   14.5995,
		Longitude:  120.9842,
		Barangay:   "POBLACION",
		ReporterID: "resident-42",
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			inc.Status = models.IncidentStatusPending
			inc.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, models.IncidentStatusPending, resp.Status)
	assert.Equal(t, "FIRE", resp.Type)
}

func TestReportIncident_Endpoint_ValidationError(t *testing.T) {
	_, _, _, _, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		Type:       "FIRE",
		Severity:   9, // вне диапазона 1-5
		Latitude:   14.5995,
		Longitude:  120.9842,
		Barangay:   "POBLACION",
		ReporterID: "resident-42",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportIncident_Endpoint_Unauthorized(t *testing.T) {
	_, _, _, _, _, router := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/v1/incidents", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetIncident_Endpoint_NotFound(t *testing.T) {
	_, incidentMock, _, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, errors.New("not found")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncident_Endpoint_InvalidID(t *testing.T) {
	_, _, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignIncident_Endpoint_Success(t *testing.T) {
	_, _, _, assigner, _, router := newTestHandler(t)
	incidentID := uuid.New()
	assigner.result = &service.AssignmentResult{
		Success: true,
		Message: "Assigned to Juan Dela Cruz",
		AssignedVolunteer: &models.VolunteerMatch{
			Volunteer:  &models.Volunteer{ID: uuid.New(), Name: "Juan Dela Cruz"},
			DistanceKm: 2,
			MatchScore: 92,
		},
	}

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/assign", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, incidentID, assigner.lastID)

	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Assigned to Juan Dela Cruz", resp.Message)
	require.NotNil(t, resp.AssignedVolunteer)
	assert.Equal(t, 92, resp.AssignedVolunteer.MatchScore)
}

func TestAssignIncident_Endpoint_NoVolunteers(t *testing.T) {
	_, _, _, assigner, _, router := newTestHandler(t)
	incidentID := uuid.New()
	assigner.result = &service.AssignmentResult{
		Success: false,
		Message: "No available volunteers found in the area",
	}

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/assign", nil)

	// Неуспех назначения — это не ошибка HTTP, результат структурированный
	assert.Equal(t, http.StatusOK, w.Code)

	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No available volunteers found in the area", resp.Message)
	assert.Nil(t, resp.AssignedVolunteer)
}

func TestUpdateIncidentStatus_Endpoint_Conflict(t *testing.T) {
	_, incidentMock, _, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := UpdateIncidentStatusRequest{Status: models.IncidentStatusResolved}

	incidentMock.EXPECT().
		UpdateIncidentStatus(gomock.Any(), incidentID, models.IncidentStatusResolved, "").
		Return(errors.New("transition not allowed")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+incidentID.String()+"/status", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateIncidentStatus_Endpoint_RejectsUnknownStatus(t *testing.T) {
	_, _, _, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	bodyBytes, _ := json.Marshal(UpdateIncidentStatusRequest{Status: "ARCHIVED"})
	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+incidentID.String()+"/status", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterVolunteer_Endpoint_Success(t *testing.T) {
	_, _, volunteerMock, _, _, router := newTestHandler(t)
	volunteerID := uuid.New()
	reqBody := RegisterVolunteerRequest{
		Name:      "Juan Dela Cruz",
		Phone:     "+639171234567",
		Skills:    []string{"FIRST AID"},
		Barangays: []string{"POBLACION"},
	}

	volunteerMock.EXPECT().
		RegisterVolunteer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Volunteer) error {
			v.ID = volunteerID
			v.IsAvailable = true
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/volunteers", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp VolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, volunteerID, resp.ID)
	assert.True(t, resp.IsAvailable)
}

func TestRecordVolunteerLocation_Endpoint_Success(t *testing.T) {
	_, _, volunteerMock, _, _, router := newTestHandler(t)
	volunteerID := uuid.New()
	reqBody := LocationPingRequest{Latitude: 14.5995, Longitude: 120.9842}

	volunteerMock.EXPECT().
		RecordLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, location *models.VolunteerLocation) error {
			assert.Equal(t, volunteerID, location.VolunteerID)
			assert.Equal(t, reqBody.Latitude, location.Latitude)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/volunteers/"+volunteerID.String()+"/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSetVolunteerAvailability_Endpoint_Success(t *testing.T) {
	_, _, volunteerMock, _, _, router := newTestHandler(t)
	volunteerID := uuid.New()
	available := false

	volunteerMock.EXPECT().
		SetAvailability(gomock.Any(), volunteerID, false).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(SetAvailabilityRequest{IsAvailable: &available})
	w := makeRequest(router, "PATCH", "/api/v1/volunteers/"+volunteerID.String()+"/availability", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetVolunteerAvailability_Endpoint_MissingFlag(t *testing.T) {
	_, _, _, _, _, router := newTestHandler(t)
	volunteerID := uuid.New()

	w := makeRequest(router, "PATCH", "/api/v1/volunteers/"+volunteerID.String()+"/availability", bytes.NewBufferString("{}"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEscalations_Endpoint_Success(t *testing.T) {
	_, _, _, _, eventsMock, router := newTestHandler(t)
	event := &models.EscalationEvent{
		ID:               uuid.New(),
		IncidentID:       uuid.New(),
		RuleID:           "critical-5min",
		TriggeredAt:      time.Now(),
		Status:           models.EscalationStatusCompleted,
		Actions:          []string{models.ActionNotifyAdmin},
		CompletedActions: []string{models.ActionNotifyAdmin},
	}

	eventsMock.EXPECT().
		ListEvents(gomock.Any(), 1, 10).
		Return([]*models.EscalationEvent{event}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/escalations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []EscalationEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "critical-5min", resp[0].RuleID)
	assert.Equal(t, models.EscalationStatusCompleted, resp[0].Status)
}

func TestGetStats_Endpoint_Success(t *testing.T) {
	_, incidentMock, _, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().
		GetStats(gomock.Any()).
		Return(map[string]int{models.IncidentStatusPending: 3}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Counts[models.IncidentStatusPending])
}

func TestHealthCheck_Endpoint(t *testing.T) {
	_, _, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
