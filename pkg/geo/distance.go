package geo

import (
	"math"

	"github.com/fleetyard/wastenav/pkg/util"
	"github.com/golang/geo/s2"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

// CalculateHaversineDistance returns the great-circle distance in km.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	p1 := s2.LatLngFromDegrees(latOne, longOne)
	p2 := s2.LatLngFromDegrees(latTwo, longTwo)
	return p1.Distance(p2).Radians() * earthRadiusKM
}

// GetDestinationPoint returns the destination point given the starting
// point, bearing (degrees) and distance (km).
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {
	latRad := util.DegreeToRadians(lat1)
	lonRad := util.DegreeToRadians(lon1)
	bearingRad := util.DegreeToRadians(bearing)
	angular := dist / earthRadiusKM

	destLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))
	destLon := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(destLat))

	return util.RadiansToDegree(destLat), util.RadiansToDegree(destLon)
}
