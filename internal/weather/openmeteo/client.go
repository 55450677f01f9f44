// Package openmeteo получает текущую погоду из Open-Meteo Forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

const (
	forecastPath  = "/v1/forecast"
	currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"
	// формат поля current.time при timezone=GMT
	timeLayout = "2006-01-02T15:04"
	// ограничение на тело ответа с ошибкой, попадающее в текст ошибки
	maxErrorBody = 512
)

// Client реализует service.WeatherProvider
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

type forecastResponse struct {
	Current struct {
		Time        string  `json:"time"`
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// Current запрашивает текущие условия для точки. Скорость ветра в милях в час, температура в °F.
func (c *Client) Current(ctx context.Context, location geo.Coordinate) (*models.WeatherReading, error) {
	params := url.Values{
		"latitude":         {strconv.FormatFloat(location.Lat, 'f', 4, 64)},
		"longitude":        {strconv.FormatFloat(location.Lng, 'f', 4, 64)},
		"current":          {currentFields},
		"wind_speed_unit":  {"mph"},
		"temperature_unit": {"fahrenheit"},
		"timezone":         {"GMT"},
	}
	fullURL := c.baseURL + forecastPath + "?" + params.Encode()

	start := time.Now()
	reading, err := c.doRequest(ctx, fullURL)
	c.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		c.logger.WithFields(logrus.Fields{
			"provider": "open-meteo",
			"location": location.String(),
		}).WithError(err).Warn("Weather request failed")
		return nil, err
	}
	c.metrics.WeatherRequests.WithLabelValues("success").Inc()
	return reading, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*models.WeatherReading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("openmeteo: API error: status %d: %s", resp.StatusCode, body)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("openmeteo: decode response: %w", err)
	}

	observedAt, err := time.Parse(timeLayout, forecast.Current.Time)
	if err != nil {
		observedAt = time.Now().UTC()
	}

	return &models.WeatherReading{
		Temperature: forecast.Current.Temperature,
		Humidity:    forecast.Current.Humidity,
		WindSpeed:   forecast.Current.WindSpeed,
		Code:        forecast.Current.WeatherCode,
		ObservedAt:  observedAt,
	}, nil
}
