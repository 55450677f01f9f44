package v1

import (
	"github.com/shenikar/traffiscan/internal/impact"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/quiz"
)

// DTOToIncidentModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToIncidentModel(dto any) *models.Incident {
	switch v := dto.(type) {
	case CreateIncidentRequest:
		return &models.Incident{
			Category:    v.Category,
			Severity:    models.Level(v.Severity),
			Description: v.Description,
			Latitude:    deref(v.Latitude),
			Longitude:   deref(v.Longitude),
		}
	case UpdateIncidentRequest:
		return &models.Incident{
			Category:    v.Category,
			Severity:    models.Level(v.Severity),
			Description: v.Description,
			Latitude:    deref(v.Latitude),
			Longitude:   deref(v.Longitude),
			Status:      v.Status,
		}
	}
	return nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Category:    model.Category,
		Severity:    string(model.Severity),
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      model.Status,
		Source:      model.Source,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
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

// RankedToNearbyResponses сохраняет порядок ранжирования
func RankedToNearbyResponses(ranked []models.RankedIncident) []NearbyIncidentResponse {
	responses := make([]NearbyIncidentResponse, len(ranked))
	for i, r := range ranked {
		responses[i] = NearbyIncidentResponse{
			IncidentResponse: *ModelToIncidentResponse(r.Item),
			DistanceKm:       r.Distance,
			Probability:      impact.SeverityProbability(r.Item.Severity),
		}
	}
	return responses
}

func SnapshotToWeatherResponse(s *models.WeatherSnapshot) WeatherResponse {
	alerts := s.Alerts
	if alerts == nil {
		alerts = []string{}
	}
	return WeatherResponse{
		Latitude:    s.Location.Lat,
		Longitude:   s.Location.Lng,
		Temperature: s.Temperature,
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
		Code:        s.Code,
		Condition:   s.Condition,
		Impact:      string(s.Impact),
		Alerts:      alerts,
		FetchedAt:   s.FetchedAt,
	}
}

func AssessmentToImpactResponse(a impact.Assessment) ImpactResponse {
	return ImpactResponse{
		Level:       string(a.Level),
		Condition:   a.Condition,
		Alerts:      a.Advisories,
		Probability: impact.SeverityProbability(a.Level),
	}
}

func AlertsToResponses(alerts []models.PredictiveAlert) []PredictiveAlertResponse {
	responses := make([]PredictiveAlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = PredictiveAlertResponse(a)
	}
	return responses
}

func ReportToTrafficResponse(r *models.TrafficReport) TrafficReportResponse {
	return TrafficReportResponse{
		Success:      true,
		Location:     LocationResponse{Lat: r.Location.Lat, Lng: r.Location.Lng},
		RadiusMeters: r.RadiusMeters,
		Incidents:    RankedToNearbyResponses(r.Incidents),
		TrafficLevel: r.TrafficLevel,
		Timestamp:    r.Timestamp,
	}
}

func DTOToQuizAnswers(answers []AnswerRequest) []quiz.Answer {
	out := make([]quiz.Answer, len(answers))
	for i, a := range answers {
		out[i] = quiz.Answer(a)
	}
	return out
}

func QuestionsToQuizResponse(questions []quiz.Question) QuizResponse {
	items := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		items[i] = QuestionResponse{Question: i, Text: q.Text, Options: q.Options}
	}
	return QuizResponse{TimeLimitSeconds: quiz.QuestionTimeLimit, Questions: items}
}

func statsToResponse(s *models.UserStats) UserStatsResponse {
	return UserStatsResponse{GamesPlayed: s.GamesPlayed, GameScore: s.GameScore}
}

func badgesToResponses(badges []*models.UserBadge) []BadgeResponse {
	responses := make([]BadgeResponse, len(badges))
	for i, b := range badges {
		responses[i] = BadgeResponse{Type: b.BadgeType, Name: b.BadgeName, EarnedAt: b.EarnedAt}
	}
	return responses
}

func ResultToGameResponse(r *models.GameResult) GameResultResponse {
	return GameResultResponse{
		Score:     r.Score,
		Correct:   r.Correct,
		Stats:     statsToResponse(r.Stats),
		NewBadges: badgesToResponses(r.NewBadges),
	}
}

func AchievementsToResponse(a *models.Achievements) AchievementsResponse {
	return AchievementsResponse{
		UserID: a.Stats.UserID,
		Stats:  statsToResponse(a.Stats),
		Badges: badgesToResponses(a.Badges),
	}
}
