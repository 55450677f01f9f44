package models

// Level - порядковая шкала серьёзности: low < medium < high
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) rank() int {
	switch l {
	case LevelHigh:
		return 2
	case LevelMedium:
		return 1
	default:
		return 0
	}
}

// Valid сообщает, является ли значение одним из известных уровней
func (l Level) Valid() bool {
	return l == LevelLow || l == LevelMedium || l == LevelHigh
}

// Escalate поднимает уровень на одну ступень, high остаётся high
func (l Level) Escalate() Level {
	switch l.rank() {
	case 0:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// AtLeast сообщает, что уровень не ниже other
func (l Level) AtLeast(other Level) bool {
	return l.rank() >= other.rank()
}

// MaxLevel возвращает более серьёзный из двух уровней
func MaxLevel(a, b Level) Level {
	if b.rank() > a.rank() {
		return b
	}
	return a
}
