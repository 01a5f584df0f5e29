package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxi-fare-api/internal/models"

	"github.com/rs/zerolog/log"
)

// DefaultReverseRadiusMeters is the search radius used when none is given.
const DefaultReverseRadiusMeters = 100

var ErrInvalidCoordinates = errors.New("service: invalid coordinates")

// ReverseGeoCodeService contains the core business logic for reverse geocoding operations
type ReverseGeoCodeService struct {
	geocoder      Geocoder
	defaultRadius int
	timeout       time.Duration
}

// NewReverseGeoCodeService creates a new reverse geo code service. A nil
// geocoder means reverse lookups always find nothing.
func NewReverseGeoCodeService(geocoder Geocoder, defaultRadius int, timeout time.Duration) *ReverseGeoCodeService {
	if defaultRadius <= 0 {
		defaultRadius = DefaultReverseRadiusMeters
	}
	if timeout <= 0 {
		timeout = DefaultGeocoderTimeout
	}
	return &ReverseGeoCodeService{geocoder: geocoder, defaultRadius: defaultRadius, timeout: timeout}
}

// ReverseGeocode finds the nearest address within radiusMeters of the given
// coordinates. It returns nil when nothing is found or the geocoder fails.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64, radiusMeters int) (*models.Address, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %f out of range", ErrInvalidCoordinates, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude %f out of range", ErrInvalidCoordinates, lon)
	}
	if radiusMeters <= 0 {
		radiusMeters = s.defaultRadius
	}

	if s.geocoder == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates, err := s.geocoder.Reverse(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("service: geocoder reverse search failed")
		return nil, nil
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	best := candidates[0]
	return &models.Address{
		Address:   best.FullName,
		Latitude:  lat,
		Longitude: lon,
		Distance:  best.DistanceMeters,
		Level:     best.Level,
	}, nil
}
