package models

import (
	"time"

	"github.com/shenikar/traffiscan/pkg/geo"
)

// WeatherReading - сырые данные погодного провайдера
type WeatherReading struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Code        int       `json:"code"`
	ObservedAt  time.Time `json:"observed_at"`
}

// WeatherSnapshot - текущая погода с оценкой влияния на трафик.
// Пересчитывается при каждом запросе к провайдеру, история не хранится.
type WeatherSnapshot struct {
	Location    geo.Coordinate `json:"location"`
	Temperature float64        `json:"temperature"`
	Humidity    float64        `json:"humidity"`
	WindSpeed   float64        `json:"wind_speed"`
	Code        int            `json:"code"`
	Condition   string         `json:"condition"`
	Impact      Level          `json:"impact"`
	Alerts      []string       `json:"alerts"`
	FetchedAt   time.Time      `json:"fetched_at"`
}
