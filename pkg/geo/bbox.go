package geo

import "math"

// kmPerDegreeLat - длина одного градуса широты
const kmPerDegreeLat = math.Pi * EarthRadiusKm / 180

// BoundingBox - прямоугольник в градусах, используется как грубый фильтр перед ранжированием
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoundingBoxAround строит прямоугольник, гарантированно содержащий круг радиуса radiusKm.
// Если круг касается полюса или пересекает антимеридиан, долгота не ограничивается.
func BoundingBoxAround(center Coordinate, radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegreeLat
	box := BoundingBox{
		MinLat: math.Max(center.Lat-dLat, -90),
		MaxLat: math.Min(center.Lat+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		return box
	}

	// на краю прямоугольника, ближайшем к полюсу, градус долготы короче всего
	edgeLat := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	dLng := radiusKm / (kmPerDegreeLat * math.Cos(toRadians(edgeLat)))
	if center.Lng-dLng < -180 || center.Lng+dLng > 180 {
		return box
	}
	box.MinLng = center.Lng - dLng
	box.MaxLng = center.Lng + dLng
	return box
}

// Contains проверяет, попадает ли точка в прямоугольник
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat && c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}
