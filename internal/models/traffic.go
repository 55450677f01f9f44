package models

import (
	"time"

	"github.com/shenikar/traffiscan/pkg/geo"
)

// TrafficReport - результат сканирования дорожной обстановки вокруг точки
type TrafficReport struct {
	Location     geo.Coordinate
	RadiusMeters int
	Incidents    []RankedIncident
	TrafficLevel string
	Timestamp    time.Time
}
