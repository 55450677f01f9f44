// Package simulator генерирует правдоподобные инциденты вокруг точки,
// когда реальных сообщений мало (демо-режим сканирования трафика).
package simulator

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/pkg/geo"
)

const (
	minIncidents = 2
	maxIncidents = 5
	// максимальное смещение от центра по каждой оси в градусах (~1.1 км)
	maxOffsetDeg = 0.01
)

var categories = []string{
	models.CategoryAccident,
	models.CategoryCongestion,
	models.CategoryRoadClosure,
	models.CategoryConstruction,
}

var severities = []models.Level{models.LevelLow, models.LevelMedium, models.LevelHigh}

var descriptions = map[string][]string{
	models.CategoryAccident:     {"Multi-vehicle collision", "Minor fender bender", "Vehicle rollover"},
	models.CategoryCongestion:   {"Heavy traffic ahead", "Slow moving traffic", "Traffic jam"},
	models.CategoryRoadClosure:  {"Road maintenance", "Emergency closure", "Construction work"},
	models.CategoryConstruction: {"Lane closure ahead", "Road work in progress", "Utility maintenance"},
}

// Generator безопасен для конкурентного использования
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	clock clockwork.Clock
}

func NewGenerator(rnd *rand.Rand, clock clockwork.Clock) *Generator {
	return &Generator{
		rnd:   rnd,
		clock: clock,
	}
}

// Generate возвращает от 2 до 5 активных инцидентов в квадрате ±0.01° вокруг center
func (g *Generator) Generate(center geo.Coordinate) []*models.Incident {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now().UTC()
	count := minIncidents + g.rnd.IntN(maxIncidents-minIncidents+1)

	incidents := make([]*models.Incident, 0, count)
	for i := 0; i < count; i++ {
		category := categories[g.rnd.IntN(len(categories))]
		options := descriptions[category]

		incidents = append(incidents, &models.Incident{
			ID:          uuid.New(),
			Category:    category,
			Severity:    severities[g.rnd.IntN(len(severities))],
			Description: options[g.rnd.IntN(len(options))],
			Latitude:    clamp(center.Lat+g.offset(), -90, 90),
			Longitude:   clamp(center.Lng+g.offset(), -180, 180),
			Status:      models.StatusActive,
			Source:      models.SourceSimulated,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return incidents
}

func (g *Generator) offset() float64 {
	return (g.rnd.Float64()*2 - 1) * maxOffsetDeg
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
