package geo

import "math"

// Радиус Земли в километрах
const earthRadiusKm = 6371.0

// HaversineKm вычисляет расстояние между двумя точками в километрах
// по формуле гаверсинусов
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// toRadians переводит градусы в радианы
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
