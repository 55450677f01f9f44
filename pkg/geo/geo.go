package geo

import (
	"fmt"
	"math"
	"sort"
)

// EarthRadiusKm - средний радиус Земли, используемый формулой гаверсинусов
const EarthRadiusKm = 6371.0

// Coordinate - точка в градусах (WGS-84)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate проверяет, что координата находится в допустимом диапазоне
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return fmt.Errorf("coordinate is not a number")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lng)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// Locatable - всё, у чего есть координата
type Locatable interface {
	Location() Coordinate
}

// Ranked - элемент, дополненный расстоянием до наблюдателя в километрах.
// Расстояние не хранится и пересчитывается при каждом вызове Rank.
type Ranked[T any] struct {
	Item     T
	Distance float64
}

// NearbyOptions - параметры выборки ближайших записей
type NearbyOptions struct {
	RadiusKm float64
	MaxCount int
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance возвращает расстояние по большому кругу между двумя точками в километрах.
// Для некорректного ввода (NaN) результат тоже NaN.
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	// погрешность округления может дать h чуть больше 1 у антиподов
	h = math.Min(h, 1)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Rank возвращает новый срез с расстояниями, отсортированный по возрастанию.
// Порядок равных расстояний сохраняется. Записи с неизвестным расстоянием (NaN)
// идут в конце. Входной срез не изменяется.
func Rank[T Locatable](viewer Coordinate, items []T) []Ranked[T] {
	ranked := make([]Ranked[T], len(items))
	for i, item := range items {
		ranked[i] = Ranked[T]{
			Item:     item,
			Distance: Distance(viewer, item.Location()),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].Distance, ranked[j].Distance
		if math.IsNaN(di) {
			return false
		}
		if math.IsNaN(dj) {
			return true
		}
		return di < dj
	})
	return ranked
}

// FilterNearby оставляет записи в пределах радиуса, сохраняя порядок.
// Записи с неизвестным расстоянием всегда отбрасываются.
func FilterNearby[T any](ranked []Ranked[T], radiusKm float64) []Ranked[T] {
	nearby := make([]Ranked[T], 0, len(ranked))
	for _, r := range ranked {
		if math.IsNaN(r.Distance) {
			continue
		}
		if r.Distance <= radiusKm {
			nearby = append(nearby, r)
		}
	}
	return nearby
}

// Known отбрасывает записи, расстояние до которых не удалось вычислить
func Known[T any](ranked []Ranked[T]) []Ranked[T] {
	known := make([]Ranked[T], 0, len(ranked))
	for _, r := range ranked {
		if !math.IsNaN(r.Distance) {
			known = append(known, r)
		}
	}
	return known
}

// Limit обрезает срез до max элементов. max <= 0 означает без ограничения.
func Limit[T any](ranked []Ranked[T], max int) []Ranked[T] {
	if max <= 0 || len(ranked) <= max {
		return ranked
	}
	return ranked[:max]
}

// Nearby ранжирует записи, оставляет попавшие в радиус и ограничивает их количество
func Nearby[T Locatable](viewer Coordinate, items []T, opts NearbyOptions) []Ranked[T] {
	return Limit(FilterNearby(Rank(viewer, items), opts.RadiusKm), opts.MaxCount)
}
