package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.GET("/incidents/nearby", h.nearbyIncidents)
	api.POST("/location/check", h.checkLocation)
	api.GET("/weather", h.getWeather)
	api.GET("/weather/impact", h.weatherImpact)
	api.GET("/alerts/predictive", h.predictiveAlerts)
	api.POST("/traffic/scan", h.scanTraffic)
	api.GET("/game/questions", h.quizQuestions)
	api.POST("/game/score", h.submitScore)
	api.GET("/achievements/:user_id", h.getAchievements)
	api.GET("/system/health", h.healthCheck)

	// Управление инцидентами (CRUD), только с API-ключом
	incidents := api.Group("/incidents", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}
}
