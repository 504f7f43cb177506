package geo

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371e3

type Point struct {
	Lat float64
	Lng float64
}

// PointOf returns nil unless both coordinates are present.
func PointOf(lat, lng *float64) *Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &Point{Lat: *lat, Lng: *lng}
}

// Distance returns the great-circle distance between two points in meters using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

func (p Point) DistanceTo(other Point) float64 {
	return Distance(p.Lat, p.Lng, other.Lat, other.Lng)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
