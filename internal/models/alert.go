package models

// Типы предиктивных оповещений
const (
	AlertTypeTraffic  = "traffic"
	AlertTypeAccident = "accident"
	AlertTypeWeather  = "weather"
	AlertTypeIncident = "incident"
)

type PredictiveAlert struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Location    string  `json:"location"`
	Probability int     `json:"probability"`
	Timeframe   string  `json:"timeframe"`
	DistanceKm  float64 `json:"distance_km,omitempty"`
}
