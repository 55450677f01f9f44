package models

import "time"

// UserStats - итоги викторины пользователя, GameScore хранит лучший результат
type UserStats struct {
	UserID      string    `json:"user_id"`
	GamesPlayed int       `json:"games_played"`
	GameScore   int       `json:"game_score"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserBadge - значок, выданный пользователю; на пару (UserID, BadgeType) только одна запись
type UserBadge struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	BadgeType string    `json:"badge_type"`
	BadgeName string    `json:"badge_name"`
	EarnedAt  time.Time `json:"earned_at"`
}

// GameResult - итог одной сыгранной игры
type GameResult struct {
	Score     int
	Correct   int
	Stats     *UserStats
	NewBadges []*UserBadge
}

type Achievements struct {
	Stats  *UserStats
	Badges []*UserBadge
}
