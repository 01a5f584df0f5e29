// Package geo holds pure geographic computations.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// HaversineDistanceKm returns the great-circle distance in kilometres between
// two points given in decimal degrees. Inputs are not validated.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Pow(math.Sin(dLon/2), 2)
	// rounding can push a a hair above 1 for antipodal points
	centralAngle := 2 * math.Asin(math.Sqrt(math.Min(a, 1)))

	return centralAngle * EarthRadiusKm
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
