package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/internal/quiz"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=game.go -destination=mocks/mock_game.go -package=mocks

// GameRepository хранит статистику викторины и выданные значки
type GameRepository interface {
	// GetUserStats возвращает nil без ошибки, если пользователь еще не играл
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
	SaveUserStats(ctx context.Context, stats *models.UserStats) error
	// AwardBadge выдает значок; awarded=false, если он у пользователя уже был
	AwardBadge(ctx context.Context, badge *models.UserBadge) (awarded bool, err error)
	ListBadges(ctx context.Context, userID string) ([]*models.UserBadge, error)
}

// GameService подсчитывает очки викторины, ведет статистику и выдает значки
type GameService interface {
	SubmitScore(ctx context.Context, userID string, answers []quiz.Answer) (*models.GameResult, error)
	GetAchievements(ctx context.Context, userID string) (*models.Achievements, error)
}

type gameService struct {
	repo    GameRepository
	logger  *logrus.Logger
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewGameService(repo GameRepository, logger *logrus.Logger, clock clockwork.Clock, metrics *observability.Metrics) GameService {
	return &gameService{
		repo:    repo,
		logger:  logger,
		clock:   clock,
		metrics: metrics,
	}
}

// SubmitScore считает результат законченной игры, увеличивает games_played,
// сохраняет лучший результат и выдает значки по порогам очков
func (s *gameService) SubmitScore(ctx context.Context, userID string, answers []quiz.Answer) (*models.GameResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "game",
		"method":  "SubmitScore",
		"user_id": userID,
	})

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("service: user id is required: %w", models.ErrInvalidInput)
	}

	score, correct, err := quiz.Score(answers)
	if err != nil {
		log.WithError(err).Warn("Rejected quiz answers")
		if errors.Is(err, quiz.ErrInvalidAnswers) {
			return nil, fmt.Errorf("service: %w: %w", models.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("service: failed to score game: %w", err)
	}

	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user stats")
		return nil, fmt.Errorf("service: failed to load user stats: %w", err)
	}
	if stats == nil {
		stats = &models.UserStats{UserID: userID}
	}
	stats.GamesPlayed++
	stats.GameScore = max(stats.GameScore, score)
	stats.UpdatedAt = s.clock.Now()

	if err := s.repo.SaveUserStats(ctx, stats); err != nil {
		log.WithError(err).Error("Failed to save user stats")
		return nil, fmt.Errorf("service: failed to save user stats: %w", err)
	}
	s.metrics.GamesPlayed.Inc()

	result := &models.GameResult{
		Score:     score,
		Correct:   correct,
		Stats:     stats,
		NewBadges: make([]*models.UserBadge, 0),
	}

	for _, b := range quiz.EarnedBadges(score) {
		badge := &models.UserBadge{
			UserID:    userID,
			BadgeType: b.Type,
			BadgeName: b.Name,
			EarnedAt:  stats.UpdatedAt,
		}
		awarded, err := s.repo.AwardBadge(ctx, badge)
		if err != nil {
			log.WithError(err).WithField("badge", b.Type).Error("Failed to award badge")
			return nil, fmt.Errorf("service: failed to award badge %s: %w", b.Type, err)
		}
		if awarded {
			s.metrics.BadgesAwarded.WithLabelValues(b.Type).Inc()
			result.NewBadges = append(result.NewBadges, badge)
		}
	}

	log.WithFields(logrus.Fields{
		"score":      score,
		"best_score": stats.GameScore,
		"new_badges": len(result.NewBadges),
	}).Info("Game score submitted")
	return result, nil
}

// GetAchievements возвращает статистику и значки; для нового пользователя статистика нулевая
func (s *gameService) GetAchievements(ctx context.Context, userID string) (*models.Achievements, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("service: user id is required: %w", models.ErrInvalidInput)
	}

	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load user stats: %w", err)
	}
	if stats == nil {
		stats = &models.UserStats{UserID: userID}
	}

	badges, err := s.repo.ListBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list badges: %w", err)
	}
	return &models.Achievements{Stats: stats, Badges: badges}, nil
}
