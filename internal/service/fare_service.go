package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"taxi-fare-api/internal/fare"
	"taxi-fare-api/internal/geo"
	"taxi-fare-api/internal/models"
)

var (
	ErrMissingFareInput    = errors.New("service: station and destination are required")
	ErrStationNotFound     = errors.New("service: station not found")
	ErrDistanceUnavailable = errors.New("service: could not calculate distance")
)

// StationFinder looks up a station by its exact name. It returns nil when no
// station has that name.
type StationFinder interface {
	FindStationByName(ctx context.Context, name string) (*models.Station, error)
}

// AddressResolver resolves a destination address to coordinates.
type AddressResolver interface {
	Geocode(ctx context.Context, address string) (models.GeocodeResult, error)
}

// FareService estimates taxi fares from a station to a destination address.
type FareService struct {
	stations StationFinder
	resolver AddressResolver
	now      func() time.Time
	location *time.Location
}

// NewFareService creates a new fare service. now is the clock used for the
// night surcharge, read in location.
func NewFareService(stations StationFinder, resolver AddressResolver, now func() time.Time, location *time.Location) *FareService {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &FareService{
		stations: stations,
		resolver: resolver,
		now:      now,
		location: location,
	}
}

// CalculateFare resolves destination and estimates the fare from stationName.
// An unknown station is reported before any geocoding happens.
func (s *FareService) CalculateFare(ctx context.Context, stationName, destination string) (*models.FareQuote, error) {
	stationName = strings.TrimSpace(stationName)
	if stationName == "" || strings.TrimSpace(destination) == "" {
		return nil, ErrMissingFareInput
	}

	station, err := s.stations.FindStationByName(ctx, stationName)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up station: %w", err)
	}
	if station == nil {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, stationName)
	}

	dest, err := s.resolver.Geocode(ctx, destination)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) || errors.Is(err, ErrEmptyAddress) {
			return nil, fmt.Errorf("%w: %w", ErrDistanceUnavailable, err)
		}
		return nil, fmt.Errorf("service: failed to resolve destination: %w", err)
	}

	distanceKm := geo.HaversineDistanceKm(station.Latitude, station.Longitude, dest.Latitude, dest.Longitude)

	breakdown, err := fare.Estimate(distanceKm, s.now().In(s.location).Hour())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDistanceUnavailable, err)
	}

	return &models.FareQuote{
		Station:     *station,
		Destination: dest,
		DistanceKm:  math.Round(distanceKm*10) / 10,
		Fare:        breakdown,
	}, nil
}
