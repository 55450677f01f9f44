package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/internal/webhook"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	FindActiveInBounds(ctx context.Context, box geo.BoundingBox) ([]*models.Incident, error)
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentFeed - лента изменений инцидентов для внешних потребителей
type IncidentFeed interface {
	Publish(ctx context.Context, event models.IncidentEvent) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	DeactivateIncident(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	NearbyIncidents(ctx context.Context, viewer geo.Coordinate, radiusKm float64, limit int) ([]models.RankedIncident, error)
	CheckLocation(ctx context.Context, userID string, viewer geo.Coordinate) ([]models.RankedIncident, error)
	GetStats(ctx context.Context) (int, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	feed      IncidentFeed
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

func NewIncidentService(
	repo IncidentRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	feed IncidentFeed,
	metrics *observability.Metrics,
) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		feed:      feed,
		metrics:   metrics,
		clock:     clockwork.NewRealClock(),
	}
}

// CreateIncident создает инцидент
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"category": incident.Category,
	})
	log.Info("Attempting to create a new incident")

	if !incident.Severity.Valid() {
		return fmt.Errorf("service: unknown severity %q: %w", incident.Severity, models.ErrInvalidInput)
	}
	if err := incident.Location().Validate(); err != nil {
		return fmt.Errorf("service: %v: %w", err, models.ErrInvalidInput)
	}

	incident.Status = models.StatusActive
	if incident.Source == "" {
		incident.Source = models.SourceReported
	}
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	s.publishChange(ctx, models.EventIncidentCreated, incident)
	return nil
}

// GetIncident получает инцидент по ID: сначала из кеша, затем из бд
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// UpdateIncident обновляет существующий инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	if !incident.Severity.Valid() {
		return fmt.Errorf("service: unknown severity %q: %w", incident.Severity, models.ErrInvalidInput)
	}

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for update: %w", incident.ID, err)
	}

	existing.Category = incident.Category
	existing.Severity = incident.Severity
	existing.Description = incident.Description
	existing.Latitude = incident.Latitude
	existing.Longitude = incident.Longitude
	if incident.Status != "" {
		existing.Status = incident.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident: %w", err)
	}
	s.invalidateCache(ctx, log, existing.ID)

	*incident = *existing
	log.Info("Incident updated successfully")
	s.publishChange(ctx, models.EventIncidentUpdated, existing)
	return nil
}

// DeactivateIncident деактивирует инцидент
func (s *incidentService) DeactivateIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeactivateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to deactivate incident")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate incident in repository")
		return fmt.Errorf("service: could not deactivate incident: %w", err)
	}
	s.invalidateCache(ctx, log, id)

	existing.Status = models.StatusInactive
	log.Info("Incident deactivated successfully")
	s.publishChange(ctx, models.EventIncidentDeactivated, existing)
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// NearbyIncidents возвращает активные инциденты в радиусе от наблюдателя, ближайшие первыми.
// Неположительные и нечисловые radiusKm, а также limit <= 0 заменяются значениями из конфигурации.
func (s *incidentService) NearbyIncidents(ctx context.Context, viewer geo.Coordinate, radiusKm float64, limit int) ([]models.RankedIncident, error) {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		radiusKm = s.cfg.NearbyRadiusKm
	}
	if limit <= 0 {
		limit = s.cfg.NearbyMaxResults
	}

	candidates, err := s.repo.FindActiveInBounds(ctx, geo.BoundingBoxAround(viewer, radiusKm))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "NearbyIncidents",
			"viewer":  viewer.String(),
		}).WithError(err).Error("Failed to find active incidents in bounds")
		return nil, fmt.Errorf("service: failed to find nearby incidents: %w", err)
	}

	nearby := geo.Nearby(viewer, candidates, geo.NearbyOptions{RadiusKm: radiusKm, MaxCount: limit})
	s.metrics.NearbyResults.Observe(float64(len(nearby)))
	return nearby, nil
}

// CheckLocation находит активные инциденты в радиусе оповещения, сохраняет факт проверки
// и публикует вебхук, если пользователь в опасной зоне
func (s *incidentService) CheckLocation(ctx context.Context, userID string, viewer geo.Coordinate) ([]models.RankedIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CheckLocation",
		"user_id": userID,
	})
	log.Info("Checking user location")

	nearby, err := s.NearbyIncidents(ctx, viewer, s.cfg.AlertRadiusKm, s.cfg.NearbyMaxResults)
	if err != nil {
		return nil, err
	}
	isDanger := len(nearby) > 0

	check := &models.LocationCheck{
		UserID:      userID,
		Latitude:    viewer.Lat,
		Longitude:   viewer.Lng,
		IsDangerous: isDanger,
		NearbyCount: len(nearby),
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save location check")
	}

	if isDanger {
		s.metrics.LocationChecks.WithLabelValues("danger").Inc()
		event := webhook.NewDangerEvent(userID, viewer, nearby, s.clock.Now().UTC())
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish webhook event")
		}
	} else {
		s.metrics.LocationChecks.WithLabelValues("safe").Inc()
	}

	log.WithFields(logrus.Fields{
		"is_danger":    isDanger,
		"nearby_count": len(nearby),
	}).Info("Location check completed")
	return nearby, nil
}

// GetStats возвращает количество уникальных пользователей за окно статистики
func (s *incidentService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "GetStats",
		}).WithError(err).Error("Failed to get location check stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

func (s *incidentService) invalidateCache(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}

func (s *incidentService) publishChange(ctx context.Context, eventType string, incident *models.Incident) {
	event := models.IncidentEvent{
		Type:       eventType,
		Incident:   incident,
		OccurredAt: s.clock.Now().UTC(),
	}
	if err := s.feed.Publish(ctx, event); err != nil {
		s.logger.WithFields(logrus.Fields{
			"event_type":  eventType,
			"incident_id": incident.ID,
		}).WithError(err).Warn("Failed to publish incident change")
	}
}
