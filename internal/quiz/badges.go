package quiz

// Типы значков
const (
	BadgeSafeDriver = "safe_driver"
	BadgeRoadHero   = "road_hero"
)

type Badge struct {
	Type     string
	Name     string
	MinScore int
}

// Badges - значки, которые выдаются за результат одной игры
var Badges = []Badge{
	{Type: BadgeRoadHero, Name: "Road Hero", MinScore: 200},
	{Type: BadgeSafeDriver, Name: "Safe Driver", MinScore: 100},
}

// EarnedBadges возвращает значки, заработанные игрой с результатом score
func EarnedBadges(score int) []Badge {
	earned := make([]Badge, 0, len(Badges))
	for _, b := range Badges {
		if score >= b.MinScore {
			earned = append(earned, b)
		}
	}
	return earned
}
