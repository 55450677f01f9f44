package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/pkg/geo"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// Типы событий вебхука
const (
	EventLocationDanger = "location_danger"
	EventWeatherAlert   = "weather_alert"
)

// IncidentAlert - инцидент рядом с пользователем и расстояние до него
type IncidentAlert struct {
	Incident   *models.Incident `json:"incident"`
	DistanceKm float64          `json:"distance_km"`
}

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type        string                  `json:"type"`
	UserID      string                  `json:"user_id,omitempty"`
	Latitude    float64                 `json:"latitude"`
	Longitude   float64                 `json:"longitude"`
	IsDangerous bool                    `json:"is_dangerous"`
	Timestamp   time.Time               `json:"timestamp"`
	Incidents   []IncidentAlert         `json:"incidents,omitempty"` // инциденты, если пользователь в опасной зоне
	Weather     *models.WeatherSnapshot `json:"weather,omitempty"`
}

// NewDangerEvent собирает событие об опасной зоне вокруг пользователя
func NewDangerEvent(userID string, location geo.Coordinate, nearby []models.RankedIncident, now time.Time) WebhookEvent {
	alerts := make([]IncidentAlert, 0, len(nearby))
	for _, r := range nearby {
		alerts = append(alerts, IncidentAlert{Incident: r.Item, DistanceKm: r.Distance})
	}
	return WebhookEvent{
		Type:        EventLocationDanger,
		UserID:      userID,
		Latitude:    location.Lat,
		Longitude:   location.Lng,
		IsDangerous: len(alerts) > 0,
		Timestamp:   now,
		Incidents:   alerts,
	}
}

// NewWeatherEvent собирает событие о неблагоприятной погоде
func NewWeatherEvent(snapshot *models.WeatherSnapshot, now time.Time) WebhookEvent {
	return WebhookEvent{
		Type:        EventWeatherAlert,
		Latitude:    snapshot.Location.Lat,
		Longitude:   snapshot.Location.Lng,
		IsDangerous: snapshot.Impact == models.LevelHigh,
		Timestamp:   now,
		Weather:     snapshot,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// Queue - источник сырых событий для воркера.
// Pop блокируется до появления события; ok=false означает, что ожидание истекло.
type Queue interface {
	Pop(ctx context.Context) (payload string, ok bool, err error)
}

// RedisQueue - очередь вебхуков поверх списка Redis: LPUSH на публикацию, BRPOP на чтение
type RedisQueue struct {
	redisClient *redis.Client
	popTimeout  time.Duration
}

// NewRedisQueue создает новый RedisQueue
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{
		redisClient: client,
		popTimeout:  5 * time.Second,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (q *RedisQueue) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := q.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// Pop извлекает самое старое событие из очереди
func (q *RedisQueue) Pop(ctx context.Context) (string, bool, error) {
	result, err := q.redisClient.BRPop(ctx, q.popTimeout, webhookQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to pop webhook event from Redis: %w", err)
	}
	// result[0] - ключ, result[1] - значение
	return result[1], true, nil
}
