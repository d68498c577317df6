package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Весовые коэффициенты итоговой оценки кандидата
const (
	weightDistance     = 40.0
	weightAvailability = 30.0
	weightSkills       = 20.0
	weightBarangay     = 10.0
)

// Таблица навыков по типу инцидента. Используется при повторном
// автоназначении из монитора эскалации.
var incidentTypeSkills = map[string][]string{
	"FIRE":       {"FIREFIGHTING"},
	"MEDICAL":    {"FIRST AID", "EMERGENCY RESPONSE"},
	"FLOOD":      {"SWIFT WATER RESCUE", "RESCUE"},
	"EARTHQUAKE": {"SEARCH AND RESCUE", "FIRST AID"},
	"TYPHOON":    {"RESCUE", "RELIEF OPERATIONS"},
	"ACCIDENT":   {"FIRST AID", "EMERGENCY RESPONSE"},
	"CRIME":      {"SECURITY"},
}

// SkillsForIncidentType возвращает требуемые навыки для типа инцидента.
// Для неизвестного типа навыки не требуются.
func SkillsForIncidentType(incidentType string) []string {
	return incidentTypeSkills[strings.ToUpper(strings.TrimSpace(incidentType))]
}

// SearchRadiusKm возвращает радиус поиска волонтёров в километрах.
// Чем критичнее инцидент, тем шире радиус поиска.
func SearchRadiusKm(severity int) float64 {
	switch severity {
	case 1:
		return 15
	case 2:
		return 12
	case 3:
		return 8
	case 4:
		return 5
	case 5:
		return 3
	default:
		return 8
	}
}

// SkillsMatch возвращает долю требуемых навыков, покрытых навыками волонтёра.
// Сравнение регистронезависимое, по вхождению подстроки в обе стороны.
// Если навыки не требуются, совпадение считается полным.
func SkillsMatch(volunteerSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 1
	}

	matched := 0
	for _, required := range requiredSkills {
		req := strings.ToLower(strings.TrimSpace(required))
		for _, skill := range volunteerSkills {
			s := strings.ToLower(strings.TrimSpace(skill))
			if strings.Contains(s, req) || strings.Contains(req, s) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// MatchScore вычисляет итоговую оценку кандидата 0-100:
// расстояние 40%, текущая загрузка 30%, навыки 20%, закреплённый барангай 10%
func MatchScore(match *models.VolunteerMatch, barangay string, requiredSkills []string) int {
	distanceScore := math.Max(0, (10-match.DistanceKm)/10)
	availabilityScore := math.Max(0, float64(3-match.CurrentAssignments)/3)
	skillsScore := SkillsMatch(match.Volunteer.Skills, requiredSkills)

	barangayScore := 0.0
	target := strings.ToUpper(strings.TrimSpace(barangay))
	for _, b := range match.Volunteer.Barangays {
		if strings.ToUpper(strings.TrimSpace(b)) == target {
			barangayScore = 1
			break
		}
	}

	total := distanceScore*weightDistance +
		availabilityScore*weightAvailability +
		skillsScore*weightSkills +
		barangayScore*weightBarangay

	return int(math.Round(total))
}

// RankMatches проставляет оценки кандидатам и сортирует их по убыванию.
// Сортировка стабильная: при равных оценках исходный порядок сохраняется.
func RankMatches(matches []*models.VolunteerMatch, barangay string, requiredSkills []string) {
	for _, m := range matches {
		m.MatchScore = MatchScore(m, barangay, requiredSkills)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
}

// findCandidates ищет доступных волонтёров в радиусе поиска и дополняет их
// текущей загрузкой. Любая ошибка запроса прерывает поиск: возвращается
// пустой список, вызывающая сторона трактует это как "волонтёры не найдены".
func (s *assignmentService) findCandidates(ctx context.Context, criteria AssignmentCriteria) []*models.VolunteerMatch {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "findCandidates",
		"incident_id": criteria.IncidentID,
	})

	radiusKm := SearchRadiusKm(criteria.Severity)

	// Основной путь: один агрегирующий запрос с расчётом расстояния в бд
	matches, err := s.volunteers.FindAvailableWithinRadius(ctx, criteria.Latitude, criteria.Longitude, radiusKm)
	if err != nil {
		log.WithError(err).Warn("Distance query failed, falling back to client-side matching")
		matches = s.findCandidatesFallback(ctx, criteria, radiusKm)
		if matches == nil {
			return nil
		}
	}

	for _, m := range matches {
		count, err := s.volunteers.CountOpenAssignments(ctx, m.Volunteer.ID)
		if err != nil {
			log.WithError(err).Error("Failed to count open assignments")
			return nil
		}
		m.CurrentAssignments = count
		m.EstimatedArrivalMinutes = m.DistanceKm * 2
	}

	log.WithField("candidates", len(matches)).Info("Candidate search completed")
	return matches
}

// findCandidatesFallback перебирает доступных волонтёров и считает расстояние
// на стороне приложения. Волонтёры без известной геопозиции исключаются.
func (s *assignmentService) findCandidatesFallback(ctx context.Context, criteria AssignmentCriteria, radiusKm float64) []*models.VolunteerMatch {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "findCandidatesFallback",
		"incident_id": criteria.IncidentID,
	})

	available, err := s.volunteers.ListAvailable(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list available volunteers")
		return nil
	}

	matches := make([]*models.VolunteerMatch, 0, len(available))
	for _, v := range available {
		location, err := s.volunteers.LastLocation(ctx, v.ID)
		if err != nil {
			log.WithError(err).Error("Failed to get volunteer location")
			return nil
		}
		if location == nil {
			continue
		}

		distance := geo.HaversineKm(criteria.Latitude, criteria.Longitude, location.Latitude, location.Longitude)
		if distance > radiusKm {
			continue
		}

		matches = append(matches, &models.VolunteerMatch{
			Volunteer:  v,
			DistanceKm: distance,
		})
	}
	return matches
}
