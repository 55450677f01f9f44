package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/impact"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=weather.go -destination=mocks/mock_weather.go -package=mocks

// ErrWeatherUnavailable - погодный провайдер не ответил или ответил ошибкой
var ErrWeatherUnavailable = errors.New("weather provider unavailable")

// WeatherProvider - источник текущей погоды
type WeatherProvider interface {
	Current(ctx context.Context, location geo.Coordinate) (*models.WeatherReading, error)
}

// WeatherCache - кеш снимков погоды. Промах возвращает (nil, nil).
type WeatherCache interface {
	Get(ctx context.Context, location geo.Coordinate) (*models.WeatherSnapshot, error)
	Set(ctx context.Context, snapshot *models.WeatherSnapshot) error
}

// WeatherService отдает текущую погоду вместе с оценкой влияния на трафик
type WeatherService interface {
	Current(ctx context.Context, location geo.Coordinate) (*models.WeatherSnapshot, error)
}

type weatherService struct {
	provider WeatherProvider
	cache    WeatherCache
	logger   *logrus.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock
}

func NewWeatherService(provider WeatherProvider, cache WeatherCache, logger *logrus.Logger, metrics *observability.Metrics) WeatherService {
	return &weatherService{
		provider: provider,
		cache:    cache,
		logger:   logger,
		metrics:  metrics,
		clock:    clockwork.NewRealClock(),
	}
}

func (s *weatherService) Current(ctx context.Context, location geo.Coordinate) (*models.WeatherSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "weather",
		"method":   "Current",
		"location": location.String(),
	})

	cached, err := s.cache.Get(ctx, location)
	if err != nil {
		log.WithError(err).Warn("Failed to read weather from cache")
	}
	if cached != nil {
		s.metrics.WeatherCache.WithLabelValues("hit").Inc()
		// ключ кеша округлен, поэтому координату берем из запроса
		snapshot := *cached
		snapshot.Location = location
		return &snapshot, nil
	}
	s.metrics.WeatherCache.WithLabelValues("miss").Inc()

	reading, err := s.provider.Current(ctx, location)
	if err != nil {
		log.WithError(err).Error("Failed to fetch current weather")
		return nil, fmt.Errorf("service: %w: %w", ErrWeatherUnavailable, err)
	}

	snapshot := newSnapshot(location, reading, s.clock)
	if err := s.cache.Set(ctx, snapshot); err != nil {
		log.WithError(err).Warn("Failed to cache weather snapshot")
	}

	log.WithFields(logrus.Fields{
		"code":   snapshot.Code,
		"impact": snapshot.Impact,
	}).Debug("Weather snapshot refreshed")
	return snapshot, nil
}

func newSnapshot(location geo.Coordinate, reading *models.WeatherReading, clock clockwork.Clock) *models.WeatherSnapshot {
	assessment := impact.ClassifyWeather(reading.Code, reading.WindSpeed)
	return &models.WeatherSnapshot{
		Location:    location,
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		WindSpeed:   reading.WindSpeed,
		Code:        reading.Code,
		Condition:   assessment.Condition,
		Impact:      assessment.Level,
		Alerts:      assessment.Advisories,
		FetchedAt:   clock.Now().UTC(),
	}
}
