package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/service"
	"github.com/shenikar/traffiscan/pkg/geo"
)

const incidentCacheTTL = 5 * time.Minute

const incidentColumns = `
	id,
	category,
	severity,
	description,
	latitude,
	longitude,
	status,
	source,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Category,
		&incident.Severity,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Status,
		&incident.Source,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (category, severity, description, latitude, longitude, status, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Category,
		incident.Severity,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.Status,
		incident.Source,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			category = $1,
			severity = $2,
			description = $3,
			latitude = $4,
			longitude = $5,
			status = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Category,
		incident.Severity,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.Status,
		incident.ID,
	).Scan(&incident.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("incident with id %s: %w", incident.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update incident: %w", err)
	}
	return nil
}

// Delete(деактивация) устанавливает статус 'inactive' для инцидента
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE incidents SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// FindActiveInBounds возвращает активные инциденты внутри прямоугольника.
// Точное расстояние считает вызывающий код.
func (r *IncidentRepository) FindActiveInBounds(ctx context.Context, box geo.BoundingBox) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE
			status = 'active'
			AND latitude BETWEEN $1 AND $2
			AND longitude BETWEEN $3 AND $4
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to find active incidents in bounds: %w", err)
	}
	return collectIncidents(rows)
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *IncidentRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *IncidentRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, latitude, longitude, is_dangerous, nearby_count)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Latitude,
		check.Longitude,
		check.IsDangerous,
		check.NearbyCount,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis, промах - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
