package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/quiz"
	"github.com/shenikar/traffiscan/internal/service"
	"github.com/shenikar/traffiscan/internal/service/mocks"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/shenikar/traffiscan/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

type testMocks struct {
	incidents *mocks.MockIncidentService
	weather   *mocks.MockWeatherService
	alerts    *mocks.MockAlertService
	traffic   *mocks.MockTrafficService
	game      *mocks.MockGameService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		weather:   mocks.NewMockWeatherService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		traffic:   mocks.NewMockTrafficService(ctrl),
		game:      mocks.NewMockGameService(ctrl),
	}

	cfg := &config.Config{
		APIKeys:                []string{testAPIKey},
		StatsTimeWindowMinutes: 60,
		DefaultLatitude:        25.2048,
		DefaultLongitude:       55.2708,
	}

	handler := NewHandler(m.incidents, m.weather, m.alerts, m.traffic, m.game, logger.Discard(), cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func withKey() map[string]string {
	return map[string]string{"X-API-Key": testAPIKey}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func ptr(f float64) *float64 { return &f }

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Category:    models.CategoryAccident,
		Severity:    "high",
		Description: "Multi-vehicle collision",
		Latitude:    ptr(25.2),
		Longitude:   ptr(55.27),
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.LevelHigh, inc.Severity)
			assert.Equal(t, 25.2, inc.Latitude)
			inc.ID = incidentID
			inc.Status = models.StatusActive
			inc.Source = models.SourceReported
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), withKey())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "high", resp.Severity)
	assert.Equal(t, models.SourceReported, resp.Source)
}

func TestCreateIncident_ZeroCoordinatesAccepted(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil)

	reqBody := CreateIncidentRequest{
		Category:  models.CategoryCongestion,
		Severity:  "low",
		Latitude:  ptr(0),
		Longitude: ptr(0),
	}
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), withKey())

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"category": "accident"`), withKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		body    CreateIncidentRequest
		wantTag string
	}{
		{
			name:    "missing latitude",
			body:    CreateIncidentRequest{Category: "accident", Severity: "low", Longitude: ptr(10)},
			wantTag: "'Latitude' failed on the 'required' tag",
		},
		{
			name:    "latitude out of range",
			body:    CreateIncidentRequest{Category: "accident", Severity: "low", Latitude: ptr(91), Longitude: ptr(10)},
			wantTag: "'Latitude' failed on the 'latitude' tag",
		},
		{
			name:    "unknown severity",
			body:    CreateIncidentRequest{Category: "accident", Severity: "extreme", Latitude: ptr(1), Longitude: ptr(10)},
			wantTag: "'Severity' failed on the 'oneof' tag",
		},
		{
			name:    "unknown category",
			body:    CreateIncidentRequest{Category: "meteor", Severity: "low", Latitude: ptr(1), Longitude: ptr(10)},
			wantTag: "'Category' failed on the 'oneof' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, tt.body), withKey())

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantTag)
		})
	}
}

func TestCreateIncident_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("bad severity: %w", models.ErrInvalidInput), http.StatusBadRequest},
		{"internal", errors.New("db is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(tt.err)

			reqBody := CreateIncidentRequest{Category: "accident", Severity: "low", Latitude: ptr(1), Longitude: ptr(2)}
			w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), withKey())

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestIncidentRoutes_RequireAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		wantMsg string
	}{
		{"missing key", nil, "API key required"},
		{"invalid key", map[string]string{"X-API-Key": "wrong"}, "Invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestHandler(t)

			var headers []map[string]string
			if tt.headers != nil {
				headers = append(headers, tt.headers)
			}
			w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, headers...)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestIncidentRoutes_BearerToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().ListIncidents(gomock.Any(), 1, 10).Return([]*models.Incident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_Pagination(t *testing.T) {
	m, router := newTestHandler(t)
	incidents := []*models.Incident{
		{ID: uuid.New(), Category: "accident", Severity: models.LevelHigh},
		{ID: uuid.New(), Category: "construction", Severity: models.LevelLow},
	}

	m.incidents.EXPECT().ListIncidents(gomock.Any(), 2, 5).Return(incidents, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?page=2&pageSize=5", nil, withKey())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, incidents[0].ID, resp[0].ID)
}

func TestGetIncident(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		incident   *models.Incident
		err        error
		wantStatus int
	}{
		{"found", &models.Incident{ID: id, Category: "accident", Severity: models.LevelMedium}, nil, http.StatusOK},
		{"not found", nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound), http.StatusNotFound},
		{"internal", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(tt.incident, tt.err)

			w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+id.String(), nil, withKey())

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetIncident_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/not-a-uuid", nil, withKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestUpdateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, id, inc.ID)
			assert.Equal(t, models.StatusInactive, inc.Status)
			return nil
		})

	reqBody := UpdateIncidentRequest{
		Category:  "road_closure",
		Severity:  "medium",
		Latitude:  ptr(25.1),
		Longitude: ptr(55.1),
		Status:    models.StatusInactive,
	}
	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/"+id.String(), jsonBody(t, reqBody), withKey())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().UpdateIncident(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("incident not found for update: %w", models.ErrNotFound))

	reqBody := UpdateIncidentRequest{Category: "accident", Severity: "low", Latitude: ptr(1), Longitude: ptr(1)}
	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/"+id.String(), jsonBody(t, reqBody), withKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteIncident(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deactivated", nil, http.StatusNoContent},
		{"not found", fmt.Errorf("incident not found for deactivate: %w", models.ErrNotFound), http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.incidents.EXPECT().DeactivateIncident(gomock.Any(), id).Return(tt.err)

			w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/"+id.String(), nil, withKey())

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetStats(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().GetStats(gomock.Any()).Return(42, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/stats", nil, withKey())

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.UserCount)
}

func TestNearbyIncidents_RankedOrderAndNoAuth(t *testing.T) {
	m, router := newTestHandler(t)
	near := &models.Incident{ID: uuid.New(), Category: "accident", Severity: models.LevelHigh}
	far := &models.Incident{ID: uuid.New(), Category: "congestion", Severity: models.LevelLow}

	m.incidents.EXPECT().
		NearbyIncidents(gomock.Any(), geo.Coordinate{Lat: 25.2, Lng: 55.3}, 3.5, 2).
		Return([]models.RankedIncident{
			{Item: near, Distance: 0.4},
			{Item: far, Distance: 2.9},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=25.2&lng=55.3&radius_km=3.5&limit=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []NearbyIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, near.ID, resp[0].ID)
	assert.Equal(t, 0.4, resp[0].DistanceKm)
	assert.Equal(t, 90, resp[0].Probability)
	assert.Equal(t, 50, resp[1].Probability)
}

func TestNearbyIncidents_DefaultLocation(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		NearbyIncidents(gomock.Any(), geo.Coordinate{Lat: 25.2048, Lng: 55.2708}, 0.0, 0).
		Return([]models.RankedIncident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNearbyIncidents_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"only lat", "?lat=25.2"},
		{"lat not a number", "?lat=abc&lng=55"},
		{"lat out of range", "?lat=95&lng=55"},
		{"lng NaN", "?lat=25&lng=NaN"},
		{"negative radius", "?lat=25&lng=55&radius_km=-1"},
		{"radius NaN", "?lat=25&lng=55&radius_km=NaN"},
		{"radius infinite", "?lat=25&lng=55&radius_km=+Inf"},
		{"radius above cap", "?lat=25&lng=55&radius_km=50.5"},
		{"bad limit", "?lat=25&lng=55&limit=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.incidents.EXPECT().NearbyIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCheckLocation_Dangerous(t *testing.T) {
	m, router := newTestHandler(t)
	inc := &models.Incident{ID: uuid.New(), Category: "accident", Severity: models.LevelMedium}

	m.incidents.EXPECT().
		CheckLocation(gomock.Any(), "user-1", geo.Coordinate{Lat: 10, Lng: 20}).
		Return([]models.RankedIncident{{Item: inc, Distance: 1.2}}, nil)

	reqBody := LocationCheckRequest{UserID: "user-1", Latitude: ptr(10), Longitude: ptr(20)}
	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LocationCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsDangerous)
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, inc.ID, resp.Incidents[0].ID)
}

func TestCheckLocation_Safe(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CheckLocation(gomock.Any(), "user-2", gomock.Any()).Return(nil, nil)

	reqBody := LocationCheckRequest{UserID: "user-2", Latitude: ptr(10), Longitude: ptr(20)}
	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LocationCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsDangerous)
	assert.Empty(t, resp.Incidents)
}

func TestCheckLocation_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().CheckLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := LocationCheckRequest{Latitude: ptr(10), Longitude: ptr(20)}
	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'UserID' failed on the 'required' tag")
}

func TestGetWeather(t *testing.T) {
	m, router := newTestHandler(t)
	fetched := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	m.weather.EXPECT().
		Current(gomock.Any(), geo.Coordinate{Lat: 40.7, Lng: -74}).
		Return(&models.WeatherSnapshot{
			Location:    geo.Coordinate{Lat: 40.7, Lng: -74},
			Temperature: 33,
			WindSpeed:   12,
			Code:        73,
			Condition:   "Snow",
			Impact:      models.LevelHigh,
			FetchedAt:   fetched,
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/weather?lat=40.7&lng=-74", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "high", resp.Impact)
	assert.Equal(t, 73, resp.Code)
	assert.NotNil(t, resp.Alerts)
}

func TestGetWeather_ProviderUnavailable(t *testing.T) {
	m, router := newTestHandler(t)

	m.weather.EXPECT().Current(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrWeatherUnavailable, errors.New("timeout")))

	w := makeRequest(router, http.MethodGet, "/api/v1/weather", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWeatherImpact(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantLevel string
	}{
		{"clear", "?code=0", http.StatusOK, "low"},
		{"drizzle with strong wind", "?code=51&wind_mph=30", http.StatusOK, "high"},
		{"thunderstorm", "?code=95", http.StatusOK, "high"},
		{"missing code", "", http.StatusBadRequest, ""},
		{"bad wind", "?code=0&wind_mph=fast", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestHandler(t)

			w := makeRequest(router, http.MethodGet, "/api/v1/weather/impact"+tt.query, nil)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantLevel != "" {
				var resp ImpactResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantLevel, resp.Level)
			}
		})
	}
}

func TestPredictiveAlerts(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().
		Predictive(gomock.Any(), geo.Coordinate{Lat: 25.2048, Lng: 55.2708}).
		Return([]models.PredictiveAlert{
			{ID: "rush-hour-morning", Type: models.AlertTypeTraffic, Probability: 85, Timeframe: "07:00-09:00"},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/predictive", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []PredictiveAlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 85, resp[0].Probability)
}

func TestScanTraffic(t *testing.T) {
	m, router := newTestHandler(t)
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	inc := &models.Incident{ID: uuid.New(), Category: "accident", Severity: models.LevelHigh}

	m.traffic.EXPECT().
		Scan(gomock.Any(), geo.Coordinate{Lat: 25.2, Lng: 55.3}, 3000).
		Return(&models.TrafficReport{
			Location:     geo.Coordinate{Lat: 25.2, Lng: 55.3},
			RadiusMeters: 3000,
			Incidents:    []models.RankedIncident{{Item: inc, Distance: 0.8}},
			TrafficLevel: "moderate",
			Timestamp:    now,
		}, nil)

	reqBody := TrafficScanRequest{Lat: ptr(25.2), Lng: ptr(55.3), Radius: 3000}
	w := makeRequest(router, http.MethodPost, "/api/v1/traffic/scan", jsonBody(t, reqBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TrafficReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "moderate", resp.TrafficLevel)
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, 0.8, resp.Incidents[0].DistanceKm)
}

func TestScanTraffic_RadiusTooLarge(t *testing.T) {
	m, router := newTestHandler(t)
	m.traffic.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := TrafficScanRequest{Lat: ptr(25.2), Lng: ptr(55.3), Radius: 100000}
	w := makeRequest(router, http.MethodPost, "/api/v1/traffic/scan", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizQuestions_HideCorrectAnswers(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/game/questions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "correct")
	var resp QuizResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.TimeLimitSeconds)
	require.Len(t, resp.Questions, 5)
	assert.Equal(t, []string{"Speed up", "Prepare to stop", "Stop immediately", "Honk"}, resp.Questions[0].Options)
}

func TestSubmitScore_Success(t *testing.T) {
	m, router := newTestHandler(t)
	earned := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	reqBody := SubmitScoreRequest{
		UserID: "driver-1",
		Answers: []AnswerRequest{
			{Question: 0, Choice: 1, TimeLeft: 25},
			{Question: 1, Choice: -1, TimeLeft: 0},
		},
	}

	m.game.EXPECT().
		SubmitScore(gomock.Any(), "driver-1", []quiz.Answer{
			{Question: 0, Choice: 1, TimeLeft: 25},
			{Question: 1, Choice: -1, TimeLeft: 0},
		}).
		Return(&models.GameResult{
			Score:   120,
			Correct: 3,
			Stats:   &models.UserStats{UserID: "driver-1", GamesPlayed: 2, GameScore: 180},
			NewBadges: []*models.UserBadge{
				{UserID: "driver-1", BadgeType: "safe_driver", BadgeName: "Safe Driver", EarnedAt: earned},
			},
		}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/game/score", jsonBody(t, reqBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp GameResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 120, resp.Score)
	assert.Equal(t, UserStatsResponse{GamesPlayed: 2, GameScore: 180}, resp.Stats)
	require.Len(t, resp.NewBadges, 1)
	assert.Equal(t, "safe_driver", resp.NewBadges[0].Type)
	assert.Equal(t, "Safe Driver", resp.NewBadges[0].Name)
}

func TestSubmitScore_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"user_id":`},
		{"missing user", `{"answers":[{"question":0,"choice":1,"time_left":10}]}`},
		{"no answers", `{"user_id":"u1","answers":[]}`},
		{"time left above limit", `{"user_id":"u1","answers":[{"question":0,"choice":1,"time_left":31}]}`},
		{"choice below timeout marker", `{"user_id":"u1","answers":[{"question":0,"choice":-2,"time_left":10}]}`},
		{"negative question", `{"user_id":"u1","answers":[{"question":-1,"choice":1,"time_left":10}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.game.EXPECT().SubmitScore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/v1/game/score", bytes.NewBufferString(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitScore_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"incomplete game", fmt.Errorf("service: %w: expected 5 answers", models.ErrInvalidInput), http.StatusBadRequest},
		{"database failure", errors.New("db is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.game.EXPECT().SubmitScore(gomock.Any(), "u1", gomock.Any()).Return(nil, tt.err)

			body := `{"user_id":"u1","answers":[{"question":0,"choice":1,"time_left":10}]}`
			w := makeRequest(router, http.MethodPost, "/api/v1/game/score", bytes.NewBufferString(body))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetAchievements_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.game.EXPECT().
		GetAchievements(gomock.Any(), "driver-1").
		Return(&models.Achievements{
			Stats: &models.UserStats{UserID: "driver-1", GamesPlayed: 4, GameScore: 210},
			Badges: []*models.UserBadge{
				{BadgeType: "safe_driver", BadgeName: "Safe Driver"},
				{BadgeType: "road_hero", BadgeName: "Road Hero"},
			},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/achievements/driver-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AchievementsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "driver-1", resp.UserID)
	assert.Equal(t, 210, resp.Stats.GameScore)
	require.Len(t, resp.Badges, 2)
	assert.Equal(t, "road_hero", resp.Badges[1].Type)
}

func TestGetAchievements_InternalError(t *testing.T) {
	m, router := newTestHandler(t)
	m.game.EXPECT().GetAchievements(gomock.Any(), "driver-1").Return(nil, errors.New("db is down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/achievements/driver-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(1))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := makeRequest(router, http.MethodGet, "/ping", nil)
	second := makeRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
