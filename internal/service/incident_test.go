package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *stubAssigner) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	assigner := &stubAssigner{}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}

	service := NewIncidentService(repoMock, assigner, logger, cfg, nil)
	return service.(*incidentService), repoMock, assigner
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, assigner := newTestIncidentService(t)
	assigner.done = make(chan uuid.UUID, 1)
	ctx := context.Background()

	incident := &models.Incident{
		Type:     "FIRE",
		Severity: 1,
		Barangay: "POBLACION",
	}
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		AppendTimeline(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.TimelineEntry) error {
			assert.Equal(t, incidentID, entry.IncidentID)
			assert.Equal(t, models.IncidentStatusPending, entry.NewStatus)
			return nil
		}).
		Times(1)

	// Действие
	err := service.ReportIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusPending, incident.Status)

	// Фоновая попытка автоназначения запускается сразу после регистрации
	select {
	case id := <-assigner.done:
		assert.Equal(t, incidentID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("initial auto-assignment was not triggered")
	}
}

func TestReportIncident_CreateFails(t *testing.T) {
	// Подготовка
	service, repoMock, assigner := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{Type: "FLOOD", Severity: 3}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, incident).
		Return(errors.New("db down")).
		Times(1)

	// Действие
	err := service.ReportIncident(ctx, incident)

	// Проверки: назначение не запускается
	require.Error(t, err)
	assert.Empty(t, assigner.calls)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Type: "MEDICAL"}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expected, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Type: "MEDICAL"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expected, nil).
		Times(1)
	// 3. Результат сохраняется в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expected).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, errors.New("not found")).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
}

func TestUpdateIncidentStatus_AllowedTransition(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.IncidentStatusAssigned}, nil).
		Times(1)
	repoMock.EXPECT().
		UpdateStatusIf(ctx, incidentID, models.IncidentStatusAssigned, models.IncidentStatusResponding).
		Return(true, nil).
		Times(1)
	repoMock.EXPECT().
		AppendTimeline(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	repoMock.EXPECT().
		InvalidateIncidentCache(ctx, incidentID).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateIncidentStatus(ctx, incidentID, models.IncidentStatusResponding, "Volunteer is on the way")

	// Проверки
	require.NoError(t, err)
}

func TestUpdateIncidentStatus_ForbiddenTransition(t *testing.T) {
	// Подготовка: из PENDING нельзя перейти сразу в RESOLVED
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания: условное обновление не вызывается
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.IncidentStatusPending}, nil).
		Times(1)

	// Действие
	err := service.UpdateIncidentStatus(ctx, incidentID, models.IncidentStatusResolved, "")

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestUpdateIncidentStatus_ConcurrentChange(t *testing.T) {
	// Подготовка: статус успел измениться между чтением и обновлением
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.IncidentStatusResponding}, nil).
		Times(1)
	repoMock.EXPECT().
		UpdateStatusIf(ctx, incidentID, models.IncidentStatusResponding, models.IncidentStatusResolved).
		Return(false, nil).
		Times(1)

	// Действие
	err := service.UpdateIncidentStatus(ctx, incidentID, models.IncidentStatusResolved, "")

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrently")
}

func TestListIncidents_ClampsPagination(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания: некорректные значения приводятся к значениям по умолчанию
	repoMock.EXPECT().
		ListIncidents(ctx, 1, 20).
		Return([]*models.Incident{}, nil).
		Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx, 0, 1000)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := map[string]int{
		models.IncidentStatusPending:  2,
		models.IncidentStatusResolved: 5,
	}

	// Ожидания
	repoMock.EXPECT().
		CountByStatus(ctx).
		Return(expected, nil).
		Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
