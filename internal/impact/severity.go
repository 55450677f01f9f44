package impact

import "github.com/shenikar/traffiscan/internal/models"

// Уровни загруженности дорог
const (
	TrafficLight    = "light"
	TrafficModerate = "moderate"
	TrafficHeavy    = "heavy"
	TrafficCritical = "critical"
)

// SeverityProbability переводит метку серьёзности в процент для отображения
func SeverityProbability(level models.Level) int {
	switch level {
	case models.LevelHigh:
		return 90
	case models.LevelMedium:
		return 70
	default:
		return 50
	}
}

// TrafficLevel оценивает общую загруженность по серьёзности инцидентов вокруг
func TrafficLevel(severities []models.Level) string {
	var high, medium int
	for _, s := range severities {
		switch s {
		case models.LevelHigh:
			high++
		case models.LevelMedium:
			medium++
		}
	}

	switch {
	case high >= 2:
		return TrafficCritical
	case high >= 1 || medium >= 3:
		return TrafficHeavy
	case medium >= 1:
		return TrafficModerate
	default:
		return TrafficLight
	}
}
