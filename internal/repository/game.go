package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/service"
)

type GameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) service.GameRepository {
	return &GameRepository{db: db}
}

// GetUserStats возвращает статистику викторины пользователя или nil, если записи нет
func (r *GameRepository) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	query := `SELECT user_id, games_played, game_score, updated_at FROM user_stats WHERE user_id = $1;`

	stats := &models.UserStats{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.GamesPlayed,
		&stats.GameScore,
		&stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}

// SaveUserStats вставляет или обновляет статистику; лучший результат в бд не уменьшается
func (r *GameRepository) SaveUserStats(ctx context.Context, stats *models.UserStats) error {
	query := `
		INSERT INTO user_stats (user_id, games_played, game_score, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			game_score = GREATEST(user_stats.game_score, EXCLUDED.game_score),
			updated_at = EXCLUDED.updated_at
		RETURNING game_score;
	`
	err := r.db.QueryRow(ctx, query,
		stats.UserID,
		stats.GamesPlayed,
		stats.GameScore,
		stats.UpdatedAt,
	).Scan(&stats.GameScore)
	if err != nil {
		return fmt.Errorf("failed to save user stats: %w", err)
	}
	return nil
}

// AwardBadge выдает значок один раз на пару (user_id, badge_type)
func (r *GameRepository) AwardBadge(ctx context.Context, badge *models.UserBadge) (bool, error) {
	query := `
		INSERT INTO user_badges (user_id, badge_type, badge_name, earned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, badge_type) DO NOTHING
		RETURNING id, earned_at;
	`
	err := r.db.QueryRow(ctx, query,
		badge.UserID,
		badge.BadgeType,
		badge.BadgeName,
		badge.EarnedAt,
	).Scan(&badge.ID, &badge.EarnedAt)
	if err != nil {
		// при конфликте RETURNING не возвращает строк
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to award badge: %w", err)
	}
	return true, nil
}

// ListBadges возвращает значки пользователя в порядке получения
func (r *GameRepository) ListBadges(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	query := `
		SELECT id, user_id, badge_type, badge_name, earned_at
		FROM user_badges
		WHERE user_id = $1
		ORDER BY earned_at, id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	badges := make([]*models.UserBadge, 0)
	for rows.Next() {
		badge := &models.UserBadge{}
		if err := rows.Scan(&badge.ID, &badge.UserID, &badge.BadgeType, &badge.BadgeName, &badge.EarnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge row: %w", err)
		}
		badges = append(badges, badge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return badges, nil
}
