package v1

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/impact"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/quiz"
	"github.com/shenikar/traffiscan/internal/service"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

// maxNearbyRadiusKm - верхняя граница radius_km, как и у radius в TrafficScanRequest (50 км)
const maxNearbyRadiusKm = 50

type Handler struct {
	incidentService service.IncidentService
	weatherService  service.WeatherService
	alertService    service.AlertService
	trafficService  service.TrafficService
	gameService     service.GameService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	weatherService service.WeatherService,
	alertService service.AlertService,
	trafficService service.TrafficService,
	gameService service.GameService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		weatherService:  weatherService,
		alertService:    alertService,
		trafficService:  trafficService,
		gameService:     gameService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// viewerFromQuery читает lat/lng из query. Если обоих нет, используется координата по умолчанию
// (геолокация недоступна); если передан только один параметр или значение вне диапазона - ошибка.
func (h *Handler) viewerFromQuery(c *gin.Context) (geo.Coordinate, error) {
	latStr, hasLat := c.GetQuery("lat")
	lngStr, hasLng := c.GetQuery("lng")

	if !hasLat && !hasLng {
		return h.cfg.DefaultLocation(), nil
	}
	if !hasLat || !hasLng {
		return geo.Coordinate{}, fmt.Errorf("both lat and lng are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid lat")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid lng")
	}

	viewer := geo.Coordinate{Lat: lat, Lng: lng}
	if err := viewer.Validate(); err != nil {
		return geo.Coordinate{}, err
	}
	return viewer, nil
}

// validRadiusKm: 0 означает радиус по умолчанию, NaN и бесконечность отклоняются
func validRadiusKm(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0) && r >= 0 && r <= maxNearbyRadiusKm
}

func (h *Handler) incidentErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "incident not found"
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// @Summary Create a new incident
// @Description Create a new incident in the system. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		status, msg := h.incidentErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of all incidents, newest first. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		status, msg := h.incidentErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Update an existing incident by ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	model.ID = id

	if err := h.incidentService.UpdateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update incident in service")
		status, msg := h.incidentErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(model))
}

// @Summary Deactivate an incident
// @Description Deactivate an incident by its ID. This marks the incident as inactive. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeactivateIncident(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to deactivate incident in service")
		status, msg := h.incidentErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Nearby incidents
// @Description Active incidents within a radius of the viewer, nearest first. Without lat/lng the default location is used.
// @Tags Incidents
// @Produce json
// @Param lat query number false "Viewer latitude"
// @Param lng query number false "Viewer longitude"
// @Param radius_km query number false "Search radius in km, at most 50"
// @Param limit query int false "Maximum number of incidents"
// @Success 200 {array} NearbyIncidentResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	viewer, err := h.viewerFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)
	if err != nil || !validRadiusKm(radiusKm) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	nearby, err := h.incidentService.NearbyIncidents(c.Request.Context(), viewer, radiusKm, limit)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, RankedToNearbyResponses(nearby))
}

// @Summary Check location for incidents
// @Description Check if there are any active incidents near a given location for a user.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} LocationCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := geo.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude}
	nearby, err := h.incidentService.CheckLocation(c.Request.Context(), input.UserID, viewer)
	if err != nil {
		log.WithError(err).Error("Failed to check location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LocationCheckResponse{
		IsDangerous: len(nearby) > 0,
		Incidents:   RankedToNearbyResponses(nearby),
	})
}

// @Summary Get user statistics
// @Description Get the number of distinct users that checked their location in the stats window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Current weather
// @Description Current weather with its traffic impact. Without lat/lng the default location is used.
// @Tags Weather
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	log := h.logger.WithField("method", "getWeather")

	location, err := h.viewerFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.weatherService.Current(c.Request.Context(), location)
	if err != nil {
		log.WithError(err).Error("Failed to get weather from service")
		if errors.Is(err, service.ErrWeatherUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "weather provider unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SnapshotToWeatherResponse(snapshot))
}

// @Summary Classify weather impact
// @Description Traffic impact of a WMO weather code and wind speed, without calling the provider.
// @Tags Weather
// @Produce json
// @Param code query int true "WMO weather code"
// @Param wind_mph query number false "Wind speed in mph"
// @Success 200 {object} ImpactResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /weather/impact [get]
func (h *Handler) weatherImpact(c *gin.Context) {
	code, err := strconv.Atoi(c.Query("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid code"})
		return
	}
	wind, err := strconv.ParseFloat(c.DefaultQuery("wind_mph", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wind_mph"})
		return
	}

	c.JSON(http.StatusOK, AssessmentToImpactResponse(impact.ClassifyWeather(code, wind)))
}

// @Summary Predictive alerts
// @Description Alerts built from time of day, current weather and nearby incidents.
// @Tags Alerts
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {array} PredictiveAlertResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/predictive [get]
func (h *Handler) predictiveAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "predictiveAlerts")

	viewer, err := h.viewerFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alerts, err := h.alertService.Predictive(c.Request.Context(), viewer)
	if err != nil {
		log.WithError(err).Error("Failed to build predictive alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AlertsToResponses(alerts))
}

// @Summary Scan traffic around a point
// @Description Ranked incidents within the radius and the overall traffic level.
// @Tags Traffic
// @Accept json
// @Produce json
// @Param scan body TrafficScanRequest true "Scan request"
// @Success 200 {object} TrafficReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /traffic/scan [post]
func (h *Handler) scanTraffic(c *gin.Context) {
	var input TrafficScanRequest
	log := h.logger.WithField("method", "scanTraffic")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := geo.Coordinate{Lat: *input.Lat, Lng: *input.Lng}
	report, err := h.trafficService.Scan(c.Request.Context(), viewer, input.Radius)
	if err != nil {
		log.WithError(err).Error("Failed to scan traffic")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ReportToTrafficResponse(report))
}

// @Summary Safety quiz questions
// @Description Quiz questions with answer options, without the correct answers.
// @Tags Game
// @Produce json
// @Success 200 {object} QuizResponse
// @Router /game/questions [get]
func (h *Handler) quizQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, QuestionsToQuizResponse(quiz.Questions))
}

// @Summary Submit a safety quiz game
// @Description Scores a finished game (max(10, 2*time_left) per correct answer), updates games played and the best score, awards badges.
// @Tags Game
// @Accept json
// @Produce json
// @Param game body SubmitScoreRequest true "Answers of a finished game"
// @Success 200 {object} GameResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /game/score [post]
func (h *Handler) submitScore(c *gin.Context) {
	var input SubmitScoreRequest
	log := h.logger.WithField("method", "submitScore")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gameService.SubmitScore(c.Request.Context(), input.UserID, DTOToQuizAnswers(input.Answers))
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to submit game score")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ResultToGameResponse(result))
}

// @Summary Get user achievements
// @Description Quiz statistics and earned badges of a user. A user who never played gets zero stats.
// @Tags Game
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} AchievementsResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /achievements/{user_id} [get]
func (h *Handler) getAchievements(c *gin.Context) {
	userID := c.Param("user_id")
	log := h.logger.WithFields(logrus.Fields{"method": "getAchievements", "user_id": userID})

	achievements, err := h.gameService.GetAchievements(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		log.WithError(err).Error("Failed to get achievements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AchievementsToResponse(achievements))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
