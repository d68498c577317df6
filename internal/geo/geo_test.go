package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	// Действие
	distance := HaversineKm(14.5995, 120.9842, 14.5995, 120.9842)

	// Проверки
	assert.Zero(t, distance)
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Подготовка: Манила -> Кесон-Сити, около 11 км
	distance := HaversineKm(14.5995, 120.9842, 14.6760, 121.0437)

	// Проверки
	assert.InDelta(t, 11.0, distance, 1.0)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	// Действие
	forward := HaversineKm(14.5995, 120.9842, 14.6760, 121.0437)
	backward := HaversineKm(14.6760, 121.0437, 14.5995, 120.9842)

	// Проверки
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestHaversineKm_OneDegreeLatitude(t *testing.T) {
	// Подготовка: один градус широты — примерно 111 км
	distance := HaversineKm(0, 0, 1, 0)

	// Проверки
	assert.InDelta(t, 111.19, distance, 0.5)
}
