package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Category    string   `json:"category" validate:"required,oneof=accident congestion road_closure construction weather traffic"`
	Severity    string   `json:"severity" validate:"required,oneof=low medium high"`
	Description string   `json:"description,omitempty" validate:"max=1000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateIncidentRequest DTO для обновления инцидента
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	Category    string   `json:"category" validate:"required,oneof=accident congestion road_closure construction weather traffic"`
	Severity    string   `json:"severity" validate:"required,oneof=low medium high"`
	Description string   `json:"description,omitempty" validate:"max=1000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NearbyIncidentResponse DTO инцидента с расстоянием до пользователя
// @Description DTO инцидента с расстоянием до пользователя
type NearbyIncidentResponse struct {
	IncidentResponse
	DistanceKm  float64 `json:"distance_km"`
	Probability int     `json:"probability"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	UserID    string   `json:"user_id" validate:"required,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationCheckResponse DTO результата проверки координат
// @Description DTO результата проверки координат
type LocationCheckResponse struct {
	IsDangerous bool                     `json:"is_dangerous"`
	Incidents   []NearbyIncidentResponse `json:"incidents"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}

// WeatherResponse DTO текущей погоды
// @Description DTO текущей погоды с оценкой влияния на трафик
type WeatherResponse struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Code        int       `json:"code"`
	Condition   string    `json:"condition"`
	Impact      string    `json:"impact"`
	Alerts      []string  `json:"alerts"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// ImpactResponse DTO оценки влияния погоды
// @Description DTO оценки влияния погоды
type ImpactResponse struct {
	Level       string   `json:"level"`
	Condition   string   `json:"condition"`
	Alerts      []string `json:"alerts"`
	Probability int      `json:"probability"`
}

// PredictiveAlertResponse DTO предиктивного оповещения
// @Description DTO предиктивного оповещения
type PredictiveAlertResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Location    string  `json:"location"`
	Probability int     `json:"probability"`
	Timeframe   string  `json:"timeframe"`
	DistanceKm  float64 `json:"distance_km,omitempty"`
}

// TrafficScanRequest DTO для сканирования дорожной обстановки
// @Description DTO для сканирования дорожной обстановки, radius в метрах
type TrafficScanRequest struct {
	Lat    *float64 `json:"lat" validate:"required,latitude"`
	Lng    *float64 `json:"lng" validate:"required,longitude"`
	Radius int      `json:"radius" validate:"omitempty,gt=0,lte=50000"`
}

// LocationResponse DTO координаты
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrafficReportResponse DTO результата сканирования
// @Description DTO результата сканирования
type TrafficReportResponse struct {
	Success      bool                     `json:"success"`
	Location     LocationResponse         `json:"location"`
	RadiusMeters int                      `json:"radius_meters"`
	Incidents    []NearbyIncidentResponse `json:"incidents"`
	TrafficLevel string                   `json:"traffic_level"`
	Timestamp    time.Time                `json:"timestamp"`
}

// AnswerRequest DTO ответа на вопрос викторины
// @Description choice = -1, если время вышло; time_left - остаток таймера в секундах
type AnswerRequest struct {
	Question int `json:"question" validate:"gte=0"`
	Choice   int `json:"choice" validate:"gte=-1"`
	TimeLeft int `json:"time_left" validate:"gte=0,lte=30"`
}

// SubmitScoreRequest DTO законченной игры
// @Description DTO законченной игры: по одному ответу на каждый вопрос
type SubmitScoreRequest struct {
	UserID  string          `json:"user_id" validate:"required,max=255"`
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type QuestionResponse struct {
	Question int      `json:"question"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
}

// QuizResponse DTO вопросов викторины
type QuizResponse struct {
	TimeLimitSeconds int                `json:"time_limit_seconds"`
	Questions        []QuestionResponse `json:"questions"`
}

// UserStatsResponse DTO статистики викторины
type UserStatsResponse struct {
	GamesPlayed int `json:"games_played"`
	GameScore   int `json:"game_score"`
}

// BadgeResponse DTO значка
type BadgeResponse struct {
	Type     string    `json:"badge_type"`
	Name     string    `json:"badge_name"`
	EarnedAt time.Time `json:"earned_at"`
}

// GameResultResponse DTO результата игры
// @Description DTO результата игры; new_badges - значки, полученные впервые
type GameResultResponse struct {
	Score     int               `json:"score"`
	Correct   int               `json:"correct"`
	Stats     UserStatsResponse `json:"stats"`
	NewBadges []BadgeResponse   `json:"new_badges"`
}

// AchievementsResponse DTO достижений пользователя
type AchievementsResponse struct {
	UserID string            `json:"user_id"`
	Stats  UserStatsResponse `json:"stats"`
	Badges []BadgeResponse   `json:"badges"`
}
