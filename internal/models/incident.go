package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/traffiscan/pkg/geo"
)

// Категории инцидентов
const (
	CategoryAccident     = "accident"
	CategoryCongestion   = "congestion"
	CategoryRoadClosure  = "road_closure"
	CategoryConstruction = "construction"
	CategoryWeather      = "weather"
	CategoryTraffic      = "traffic"
)

// Статусы инцидентов
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Источники инцидентов
const (
	SourceReported  = "reported"
	SourceSimulated = "simulated"
)

type Incident struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Severity    Level     `json:"severity"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Location реализует geo.Locatable
func (i *Incident) Location() geo.Coordinate {
	return geo.Coordinate{Lat: i.Latitude, Lng: i.Longitude}
}

// RankedIncident - инцидент с расстоянием до наблюдателя в км
type RankedIncident = geo.Ranked[*Incident]
