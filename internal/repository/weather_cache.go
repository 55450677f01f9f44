package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/service"
	"github.com/shenikar/traffiscan/pkg/geo"
)

type WeatherCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewWeatherCache(redisClient *redis.Client, ttl time.Duration) service.WeatherCache {
	return &WeatherCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// weatherCacheKey округляет координату до 3 знаков (~100 м), чтобы соседние запросы попадали в один ключ
func weatherCacheKey(c geo.Coordinate) string {
	return fmt.Sprintf("weather:%.3f:%.3f", c.Lat, c.Lng)
}

// Get возвращает снимок погоды из Redis, промах - (nil, nil)
func (c *WeatherCache) Get(ctx context.Context, location geo.Coordinate) (*models.WeatherSnapshot, error) {
	val, err := c.redisClient.Get(ctx, weatherCacheKey(location)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weather from cache: %w", err)
	}

	snapshot := &models.WeatherSnapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weather from cache: %w", err)
	}
	return snapshot, nil
}

func (c *WeatherCache) Set(ctx context.Context, snapshot *models.WeatherSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal weather for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, weatherCacheKey(snapshot.Location), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set weather in cache: %w", err)
	}
	return nil
}
