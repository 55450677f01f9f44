package impact

import (
	"testing"

	"github.com/shenikar/traffiscan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSeverityProbability(t *testing.T) {
	assert.Equal(t, 90, SeverityProbability(models.LevelHigh))
	assert.Equal(t, 70, SeverityProbability(models.LevelMedium))
	assert.Equal(t, 50, SeverityProbability(models.LevelLow))
	assert.Equal(t, 50, SeverityProbability(models.Level("extreme")))
}

func TestTrafficLevel(t *testing.T) {
	low, medium, high := models.LevelLow, models.LevelMedium, models.LevelHigh

	tests := []struct {
		name       string
		severities []models.Level
		want       string
	}{
		{name: "empty", severities: nil, want: TrafficLight},
		{name: "only low", severities: []models.Level{low, low}, want: TrafficLight},
		{name: "one medium", severities: []models.Level{low, medium}, want: TrafficModerate},
		{name: "three medium", severities: []models.Level{medium, medium, medium}, want: TrafficHeavy},
		{name: "one high", severities: []models.Level{high, low}, want: TrafficHeavy},
		{name: "two high", severities: []models.Level{high, medium, high}, want: TrafficCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrafficLevel(tt.severities))
		})
	}
}

func TestLevelEscalate(t *testing.T) {
	assert.Equal(t, models.LevelMedium, models.LevelLow.Escalate())
	assert.Equal(t, models.LevelHigh, models.LevelMedium.Escalate())
	assert.Equal(t, models.LevelHigh, models.LevelHigh.Escalate())
	assert.Equal(t, models.LevelHigh, models.MaxLevel(models.LevelMedium, models.LevelHigh))
	assert.True(t, models.LevelHigh.AtLeast(models.LevelMedium))
	assert.False(t, models.LevelLow.AtLeast(models.LevelMedium))
}
