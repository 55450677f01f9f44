package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/internal/quiz"
	"github.com/shenikar/traffiscan/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "driver-42"

func newTestGameService(t *testing.T) (*gameService, *mocks.MockGameRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGameRepository(ctrl)
	service := NewGameService(repo, testLogger(), clockwork.NewFakeClockAt(testNow), observability.NewMetricsForTesting())
	return service.(*gameService), repo
}

// quizAnswers отвечает верно на первые correct вопросов, на остальные - неверно
func quizAnswers(correct, timeLeft int) []quiz.Answer {
	answers := make([]quiz.Answer, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		choice := q.Correct
		if i >= correct {
			choice = (q.Correct + 1) % len(q.Options)
		}
		answers = append(answers, quiz.Answer{Question: i, Choice: choice, TimeLeft: timeLeft})
	}
	return answers
}

func badgeTypes(badges []*models.UserBadge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.BadgeType)
	}
	return out
}

func TestSubmitScore_FirstGameCreatesStats(t *testing.T) {
	service, repo := newTestGameService(t)
	ctx := context.Background()

	// 3 верных ответа за 5 секунд до конца: 3 * max(10, 10) = 30 очков
	repo.EXPECT().GetUserStats(ctx, testUserID).Return(nil, nil).Times(1)
	repo.EXPECT().
		SaveUserStats(ctx, &models.UserStats{UserID: testUserID, GamesPlayed: 1, GameScore: 30, UpdatedAt: testNow}).
		Return(nil).
		Times(1)
	repo.EXPECT().AwardBadge(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.SubmitScore(ctx, testUserID, quizAnswers(3, 5))

	require.NoError(t, err)
	assert.Equal(t, 30, result.Score)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 1, result.Stats.GamesPlayed)
	assert.Empty(t, result.NewBadges)
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.GamesPlayed), 0.0001)
}

func TestSubmitScore_ScoreUsesTimeLeft(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		timeLeft int
		want     int
	}{
		{name: "all correct instantly", correct: 5, timeLeft: 30, want: 300},
		{name: "all correct at 20s", correct: 5, timeLeft: 20, want: 200},
		{name: "floor of ten points", correct: 4, timeLeft: 2, want: 40},
		{name: "all wrong", correct: 0, timeLeft: 30, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestGameService(t)
			ctx := context.Background()

			repo.EXPECT().GetUserStats(ctx, testUserID).Return(nil, nil)
			repo.EXPECT().SaveUserStats(ctx, gomock.Any()).Return(nil)
			repo.EXPECT().AwardBadge(ctx, gomock.Any()).Return(true, nil).AnyTimes()

			result, err := service.SubmitScore(ctx, testUserID, quizAnswers(tt.correct, tt.timeLeft))

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Score)
		})
	}
}

func TestSubmitScore_BadgeThresholds(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		timeLeft int
		want     []string
	}{
		{name: "below safe driver", correct: 4, timeLeft: 12, want: []string{}},                                        // 96
		{name: "safe driver at 100", correct: 5, timeLeft: 10, want: []string{quiz.BadgeSafeDriver}},                   // 100
		{name: "safe driver below road hero", correct: 5, timeLeft: 19, want: []string{quiz.BadgeSafeDriver}},          // 190
		{name: "road hero at 200", correct: 5, timeLeft: 20, want: []string{quiz.BadgeRoadHero, quiz.BadgeSafeDriver}}, // 200
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestGameService(t)
			ctx := context.Background()

			repo.EXPECT().GetUserStats(ctx, testUserID).Return(nil, nil)
			repo.EXPECT().SaveUserStats(ctx, gomock.Any()).Return(nil)
			repo.EXPECT().
				AwardBadge(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, badge *models.UserBadge) (bool, error) {
					assert.Equal(t, testUserID, badge.UserID)
					assert.Equal(t, testNow, badge.EarnedAt)
					return true, nil
				}).
				Times(len(tt.want))

			result, err := service.SubmitScore(ctx, testUserID, quizAnswers(tt.correct, tt.timeLeft))

			require.NoError(t, err)
			assert.Equal(t, tt.want, badgeTypes(result.NewBadges))
		})
	}
}

func TestSubmitScore_BadgeNames(t *testing.T) {
	service, repo := newTestGameService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserStats(ctx, testUserID).Return(nil, nil)
	repo.EXPECT().SaveUserStats(ctx, gomock.Any()).Return(nil)
	repo.EXPECT().AwardBadge(ctx, &models.UserBadge{
		UserID: testUserID, BadgeType: "road_hero", BadgeName: "Road Hero", EarnedAt: testNow,
	}).Return(true, nil)
	repo.EXPECT().AwardBadge(ctx, &models.UserBadge{
		UserID: testUserID, BadgeType: "safe_driver", BadgeName: "Safe Driver", EarnedAt: testNow,
	}).Return(true, nil)

	_, err := service.SubmitScore(ctx, testUserID, quizAnswers(5, 30))

	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.BadgesAwarded.WithLabelValues("road_hero")), 0.0001)
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.BadgesAwarded.WithLabelValues("safe_driver")), 0.0001)
}

func TestSubmitScore_AlreadyOwnedBadgeNotReported(t *testing.T) {
	service, repo := newTestGameService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserStats(ctx, testUserID).Return(&models.UserStats{UserID: testUserID, GamesPlayed: 2, GameScore: 150}, nil)
	repo.EXPECT().SaveUserStats(ctx, gomock.Any()).Return(nil)
	repo.EXPECT().AwardBadge(ctx, gomock.Any()).Return(false, nil).Times(1)

	result, err := service.SubmitScore(ctx, testUserID, quizAnswers(5, 12)) // 120

	require.NoError(t, err)
	assert.Empty(t, result.NewBadges)
	assert.InDelta(t, 0, testutil.ToFloat64(service.metrics.BadgesAwarded.WithLabelValues("safe_driver")), 0.0001)
}

func TestSubmitScore_KeepsBestScore(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		correct  int
		timeLeft int
		wantBest int
	}{
		{name: "worse game keeps previous best", previous: 250, correct: 2, timeLeft: 30, wantBest: 250}, // 120
		{name: "better game replaces best", previous: 80, correct: 5, timeLeft: 15, wantBest: 150},       // 150
		{name: "equal game keeps best", previous: 100, correct: 5, timeLeft: 10, wantBest: 100},          // 100
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestGameService(t)
			ctx := context.Background()

			repo.EXPECT().
				GetUserStats(ctx, testUserID).
				Return(&models.UserStats{UserID: testUserID, GamesPlayed: 3, GameScore: tt.previous}, nil)
			repo.EXPECT().
				SaveUserStats(ctx, &models.UserStats{UserID: testUserID, GamesPlayed: 4, GameScore: tt.wantBest, UpdatedAt: testNow}).
				Return(nil)
			repo.EXPECT().AwardBadge(ctx, gomock.Any()).Return(false, nil).AnyTimes()

			result, err := service.SubmitScore(ctx, testUserID, quizAnswers(tt.correct, tt.timeLeft))

			require.NoError(t, err)
			assert.Equal(t, tt.wantBest, result.Stats.GameScore)
			assert.Equal(t, 4, result.Stats.GamesPlayed)
		})
	}
}

func TestSubmitScore_BadgesFollowGameNotBestScore(t *testing.T) {
	service, repo := newTestGameService(t)
	ctx := context.Background()

	// лучший результат 250, но эта игра набрала 40 очков
	repo.EXPECT().GetUserStats(ctx, testUserID).Return(&models.UserStats{UserID: testUserID, GamesPlayed: 1, GameScore: 250}, nil)
	repo.EXPECT().SaveUserStats(ctx, gomock.Any()).Return(nil)
	repo.EXPECT().AwardBadge(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.SubmitScore(ctx, testUserID, quizAnswers(2, 10))

	require.NoError(t, err)
	assert.Equal(t, 40, result.Score)
	assert.Empty(t, result.NewBadges)
}

func TestSubmitScore_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		answers []quiz.Answer
	}{
		{name: "empty user", userID: " ", answers: quizAnswers(5, 30)},
		{name: "missing answers", userID: testUserID, answers: quizAnswers(5, 30)[:3]},
		{name: "time above limit", userID: testUserID, answers: quizAnswers(5, quiz.QuestionTimeLimit+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestGameService(t)
			repo.EXPECT().GetUserStats(gomock.Any(), gomock.Any()).Times(0)
			repo.EXPECT().SaveUserStats(gomock.Any(), gomock.Any()).Times(0)

			result, err := service.SubmitScore(context.Background(), tt.userID, tt.answers)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestSubmitScore_RepositoryErrors(t *testing.T) {
	dbErr := errors.New("db is down")

	t.Run("load stats", func(t *testing.T) {
		service, repo := newTestGameService(t)
		repo.EXPECT().GetUserStats(gomock.Any(), testUserID).Return(nil, dbErr)
		repo.EXPECT().SaveUserStats(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.SubmitScore(context.Background(), testUserID, quizAnswers(5, 30))
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("save stats", func(t *testing.T) {
		service, repo := newTestGameService(t)
		repo.EXPECT().GetUserStats(gomock.Any(), testUserID).Return(nil, nil)
		repo.EXPECT().SaveUserStats(gomock.Any(), gomock.Any()).Return(dbErr)
		repo.EXPECT().AwardBadge(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.SubmitScore(context.Background(), testUserID, quizAnswers(5, 30))
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("award badge", func(t *testing.T) {
		service, repo := newTestGameService(t)
		repo.EXPECT().GetUserStats(gomock.Any(), testUserID).Return(nil, nil)
		repo.EXPECT().SaveUserStats(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().AwardBadge(gomock.Any(), gomock.Any()).Return(false, dbErr)

		_, err := service.SubmitScore(context.Background(), testUserID, quizAnswers(5, 30))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestGetAchievements(t *testing.T) {
	service, repo := newTestGameService(t)
	ctx := context.Background()

	stats := &models.UserStats{UserID: testUserID, GamesPlayed: 7, GameScore: 220}
	badges := []*models.UserBadge{
		{ID: 1, UserID: testUserID, BadgeType: "safe_driver", BadgeName: "Safe Driver"},
		{ID: 2, UserID: testUserID, BadgeType: "road_hero", BadgeName: "Road Hero"},
	}
	repo.EXPECT().GetUserStats(ctx, testUserID).Return(stats, nil)
	repo.EXPECT().ListBadges(ctx, testUserID).Return(badges, nil)

	achievements, err := service.GetAchievements(ctx, testUserID)

	require.NoError(t, err)
	assert.Same(t, stats, achievements.Stats)
	assert.Equal(t, badges, achievements.Badges)
}

func TestGetAchievements_NewUser(t *testing.T) {
	service, repo := newTestGameService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserStats(ctx, "newcomer").Return(nil, nil)
	repo.EXPECT().ListBadges(ctx, "newcomer").Return([]*models.UserBadge{}, nil)

	achievements, err := service.GetAchievements(ctx, "newcomer")

	require.NoError(t, err)
	assert.Equal(t, &models.UserStats{UserID: "newcomer"}, achievements.Stats)
	assert.Empty(t, achievements.Badges)
}

func TestGetAchievements_EmptyUser(t *testing.T) {
	service, _ := newTestGameService(t)

	_, err := service.GetAchievements(context.Background(), "")

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
