package geo

import (
	"math"

	"lintang/roadgraph/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
	earthRadiusM  = 6371007
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}

// CalculateHaversineDistance returns the great-circle distance in km.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// HaversineDistance is CalculateHaversineDistance over coordinates, in km.
// Road maps loaded by osmparser measure segment lengths with it, which makes
// it a consistent A* heuristic for those graphs.
func HaversineDistance(from, to datastructure.Coordinate) float64 {
	return CalculateHaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
}

// GetDestinationPoint returns the point dist km away from (lat, lon) along bearing (degrees).
func GetDestinationPoint(lat, lon, bearing, dist float64) (float64, float64) {
	angular := dist / earthRadiusKM
	bearingRad := degreeToRadians(bearing)
	latRad := degreeToRadians(lat)
	lonRad := degreeToRadians(lon)

	destLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))
	destLon := lonRad + math.Atan2(math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(destLat))

	return radiansToDegree(destLat), radiansToDegree(destLon)
}

// BearingTo returns the initial bearing in degrees, in (-180, 180], from
// (lat1, lon1) to (lat2, lon2). 0 is north, 90 east.
func BearingTo(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = degreeToRadians(lat1)
	lat2 = degreeToRadians(lat2)
	deltaLon := degreeToRadians(lon2 - lon1)

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)
	return radiansToDegree(math.Atan2(y, x))
}
