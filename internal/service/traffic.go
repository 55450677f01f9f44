package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/impact"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=traffic.go -destination=mocks/mock_traffic.go -package=mocks

const (
	// DefaultScanRadiusMeters - радиус сканирования, если клиент его не передал
	DefaultScanRadiusMeters = 5000
	// верхняя граница числа сохраненных инцидентов в одном отчете
	maxScanIncidents = 50
)

// IncidentSimulator генерирует демо-инциденты вокруг точки
type IncidentSimulator interface {
	Generate(center geo.Coordinate) []*models.Incident
}

// TrafficService оценивает дорожную обстановку вокруг точки
type TrafficService interface {
	Scan(ctx context.Context, viewer geo.Coordinate, radiusMeters int) (*models.TrafficReport, error)
}

type trafficService struct {
	incidents IncidentService
	simulator IncidentSimulator
	logger    *logrus.Logger
	clock     clockwork.Clock
}

// NewTrafficService создает сервис сканирования; simulator может быть nil, тогда используются только сохраненные инциденты
func NewTrafficService(incidents IncidentService, simulator IncidentSimulator, logger *logrus.Logger, clock clockwork.Clock) TrafficService {
	return &trafficService{
		incidents: incidents,
		simulator: simulator,
		logger:    logger,
		clock:     clock,
	}
}

func (s *trafficService) Scan(ctx context.Context, viewer geo.Coordinate, radiusMeters int) (*models.TrafficReport, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultScanRadiusMeters
	}
	radiusKm := float64(radiusMeters) / 1000

	log := s.logger.WithFields(logrus.Fields{
		"service":       "traffic",
		"method":        "Scan",
		"viewer":        viewer.String(),
		"radius_meters": radiusMeters,
	})

	stored, err := s.incidents.NearbyIncidents(ctx, viewer, radiusKm, maxScanIncidents)
	if err != nil {
		log.WithError(err).Error("Failed to load nearby incidents")
		return nil, fmt.Errorf("service: traffic scan failed: %w", err)
	}

	items := make([]*models.Incident, 0, len(stored))
	for _, r := range stored {
		items = append(items, r.Item)
	}
	if s.simulator != nil {
		items = append(items, s.simulator.Generate(viewer)...)
	}

	ranked := geo.FilterNearby(geo.Rank(viewer, items), radiusKm)

	severities := make([]models.Level, 0, len(ranked))
	for _, r := range ranked {
		severities = append(severities, r.Item.Severity)
	}

	report := &models.TrafficReport{
		Location:     viewer,
		RadiusMeters: radiusMeters,
		Incidents:    ranked,
		TrafficLevel: impact.TrafficLevel(severities),
		Timestamp:    s.clock.Now().UTC(),
	}

	log.WithFields(logrus.Fields{
		"incidents":     len(ranked),
		"traffic_level": report.TrafficLevel,
	}).Info("Traffic scan completed")
	return report, nil
}
