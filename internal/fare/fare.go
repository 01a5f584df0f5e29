// Package fare estimates Tokyo-style taxi fares from a trip distance and the
// hour of day the trip starts.
package fare

import (
	"errors"
	"math"

	"taxi-fare-api/internal/models"
)

const (
	// BaseFare covers the first BaseDistanceKm of the trip.
	BaseFare       = 500
	BaseDistanceKm = 1.096

	// DistanceRate is charged per DistanceUnitKm travelled beyond the base distance.
	DistanceRate   = 100
	DistanceUnitKm = 0.255

	// TimeRate is charged per TimeUnitMinutes of estimated travel time.
	TimeRate        = 40
	TimeUnitMinutes = 1.5

	// MinutesPerKm assumes an urban average speed of 20 km/h.
	MinutesPerKm = 3.0

	NightSurchargeRate = 0.2
	NightStartHour     = 22
	NightEndHour       = 5
)

var (
	ErrInvalidDistance = errors.New("fare: distance must be a finite, non-negative number")
	ErrInvalidHour     = errors.New("fare: hour must be between 0 and 23")
)

// Estimate computes the fare breakdown for a trip of distanceKm starting at
// the given hour (0-23).
func Estimate(distanceKm float64, hour int) (models.FareBreakdown, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return models.FareBreakdown{}, ErrInvalidDistance
	}
	if hour < 0 || hour > 23 {
		return models.FareBreakdown{}, ErrInvalidHour
	}

	breakdown := models.FareBreakdown{
		BaseFare:     BaseFare,
		DistanceFare: distanceFare(distanceKm),
		TimeFare:     timeFare(distanceKm),
	}

	total := breakdown.BaseFare + breakdown.DistanceFare + breakdown.TimeFare
	if IsNight(hour) {
		breakdown.NightSurcharge = int(float64(total) * NightSurchargeRate)
		total += breakdown.NightSurcharge
	}
	total += breakdown.WeatherSurcharge

	breakdown.TotalFare = roundToTen(total)
	return breakdown, nil
}

// IsNight reports whether the night surcharge applies at hour.
func IsNight(hour int) bool {
	return hour >= NightStartHour || hour < NightEndHour
}

func distanceFare(distanceKm float64) int {
	if distanceKm <= BaseDistanceKm {
		return 0
	}
	units := int((distanceKm - BaseDistanceKm) / DistanceUnitKm)
	return units * DistanceRate
}

func timeFare(distanceKm float64) int {
	minutes := distanceKm * MinutesPerKm
	units := int(minutes / TimeUnitMinutes)
	return units * TimeRate
}

func roundToTen(yen int) int {
	return int(math.Round(float64(yen)/10)) * 10
}
