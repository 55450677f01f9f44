package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/impact"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

// AlertService строит предиктивные оповещения по времени суток, погоде и инцидентам рядом
type AlertService interface {
	Predictive(ctx context.Context, viewer geo.Coordinate) ([]models.PredictiveAlert, error)
}

type alertService struct {
	incidents IncidentService
	weather   WeatherService
	logger    *logrus.Logger
	cfg       *config.Config
	clock     clockwork.Clock
	loc       *time.Location
}

func NewAlertService(
	incidents IncidentService,
	weather WeatherService,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
) (AlertService, error) {
	loc, err := time.LoadLocation(cfg.AlertTimezone)
	if err != nil {
		return nil, fmt.Errorf("service: invalid alert timezone %q: %w", cfg.AlertTimezone, err)
	}
	return &alertService{
		incidents: incidents,
		weather:   weather,
		logger:    logger,
		cfg:       cfg,
		clock:     clock,
		loc:       loc,
	}, nil
}

// Predictive возвращает оповещения в порядке: время суток, погода, инциденты (ближайшие первыми).
// Сбой погоды или поиска инцидентов пропускает соответствующие оповещения.
func (s *alertService) Predictive(ctx context.Context, viewer geo.Coordinate) ([]models.PredictiveAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "Predictive",
		"viewer":  viewer.String(),
	})

	alerts := hourAlerts(s.clock.Now().In(s.loc).Hour())

	snapshot, err := s.weather.Current(ctx, viewer)
	if err != nil {
		log.WithError(err).Warn("Skipping weather alert")
	} else if alert, ok := weatherAlert(snapshot); ok {
		alerts = append(alerts, alert)
	}

	nearby, err := s.incidents.NearbyIncidents(ctx, viewer, s.cfg.AlertRadiusKm, s.cfg.AlertMaxIncidents)
	if err != nil {
		log.WithError(err).Warn("Skipping incident alerts")
	} else {
		for _, r := range nearby {
			alerts = append(alerts, incidentAlert(r))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.WithField("count", len(alerts)).Debug("Predictive alerts built")
	return alerts, nil
}

func hourAlerts(hour int) []models.PredictiveAlert {
	alerts := make([]models.PredictiveAlert, 0, 4)

	if hour >= 7 && hour <= 9 {
		alerts = append(alerts, models.PredictiveAlert{
			ID:          "traffic-morning",
			Type:        models.AlertTypeTraffic,
			Message:     "Traffic likely to increase on major routes in 15 min due to morning rush",
			Location:    "Major routes",
			Probability: 85,
			Timeframe:   "Next 15 min",
		})
	}
	if hour >= 17 && hour <= 19 {
		alerts = append(alerts, models.PredictiveAlert{
			ID:          "traffic-evening",
			Type:        models.AlertTypeTraffic,
			Message:     "Heavy congestion expected on main corridors based on historical patterns",
			Location:    "Main corridors",
			Probability: 90,
			Timeframe:   "Next 30 min",
		})
	}
	if hour >= 22 || hour <= 5 {
		alerts = append(alerts, models.PredictiveAlert{
			ID:          "accident-night",
			Type:        models.AlertTypeAccident,
			Message:     "Accident probability rising based on historical trends and low visibility",
			Location:    "Unlit roads",
			Probability: 65,
			Timeframe:   "Next hour",
		})
	}
	return alerts
}

func weatherAlert(snapshot *models.WeatherSnapshot) (models.PredictiveAlert, bool) {
	if !snapshot.Impact.AtLeast(models.LevelMedium) {
		return models.PredictiveAlert{}, false
	}

	message := snapshot.Condition
	if len(snapshot.Alerts) > 0 {
		message = strings.Join(snapshot.Alerts, "; ")
	}
	return models.PredictiveAlert{
		ID:          "weather-impact",
		Type:        models.AlertTypeWeather,
		Message:     message,
		Location:    "Major highways",
		Probability: impact.SeverityProbability(snapshot.Impact),
		Timeframe:   "Next 2 hours",
	}, true
}

func incidentAlert(r models.RankedIncident) models.PredictiveAlert {
	alertType := models.AlertTypeIncident
	if r.Item.Category == models.CategoryAccident {
		alertType = models.AlertTypeAccident
	}

	message := fmt.Sprintf("%s reported %.1f km away", categoryLabel(r.Item.Category), r.Distance)
	if r.Item.Description != "" {
		message += ": " + r.Item.Description
	}

	return models.PredictiveAlert{
		ID:          "incident-" + r.Item.ID.String(),
		Type:        alertType,
		Message:     message,
		Location:    r.Item.Location().String(),
		Probability: impact.SeverityProbability(r.Item.Severity),
		Timeframe:   "Now",
		DistanceKm:  r.Distance,
	}
}

func categoryLabel(category string) string {
	label := strings.ReplaceAll(category, "_", " ")
	if label == "" {
		return "Incident"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
