package service

import (
	"context"
	"errors"
	"time"

	"taxi-fare-api/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultGeocoderTimeout bounds a single call to the external geocoder.
	DefaultGeocoderTimeout = 3 * time.Second

	// unscoredConfidence is used when the geocoder does not score its hits.
	unscoredConfidence = 0.8
)

var (
	ErrEmptyAddress    = errors.New("service: address cannot be empty")
	ErrAddressNotFound = errors.New("service: address not found")
)

// Geocoder is the external geocoding engine.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]models.Candidate, error)
	Reverse(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.ReverseCandidate, error)
}

// ResultCache stores precise results keyed by normalized address.
type ResultCache interface {
	Get(ctx context.Context, key string) (models.GeocodeResult, bool)
	Set(ctx context.Context, key string, result models.GeocodeResult)
}

// GeoCodeService resolves addresses to coordinates. Unless strict, it never
// fails on a non-empty address: when the geocoder is unavailable or finds
// nothing, it degrades to a city-centroid estimate.
type GeoCodeService struct {
	geocoder Geocoder
	cache    ResultCache
	timeout  time.Duration
	strict   bool
}

// Option configures a GeoCodeService.
type Option func(*GeoCodeService)

// WithTimeout bounds each geocoder call.
func WithTimeout(d time.Duration) Option {
	return func(s *GeoCodeService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithStrict disables the estimation fallback; unresolvable addresses yield ErrAddressNotFound.
func WithStrict(strict bool) Option {
	return func(s *GeoCodeService) {
		s.strict = strict
	}
}

// NewGeoCodeService creates a new geo code service. A nil geocoder means
// precise resolution is unavailable; a nil cache disables caching.
func NewGeoCodeService(geocoder Geocoder, cache ResultCache, opts ...Option) *GeoCodeService {
	s := &GeoCodeService{
		geocoder: geocoder,
		cache:    cache,
		timeout:  DefaultGeocoderTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether precise resolution is possible.
func (s *GeoCodeService) Available() bool {
	return s.geocoder != nil
}

// Geocode resolves address to coordinates.
func (s *GeoCodeService) Geocode(ctx context.Context, address string) (models.GeocodeResult, error) {
	normalized := NormalizeAddress(address)
	if normalized == "" {
		return models.GeocodeResult{}, ErrEmptyAddress
	}

	if s.cache != nil {
		if result, ok := s.cache.Get(ctx, normalized); ok {
			return result, nil
		}
	}

	if result, ok := s.search(ctx, normalized); ok {
		if s.cache != nil {
			s.cache.Set(ctx, normalized, result)
		}
		return result, nil
	}

	if s.strict {
		return models.GeocodeResult{}, ErrAddressNotFound
	}

	result := EstimateCoordinates(normalized)
	log.Debug().
		Str("address", normalized).
		Stringer("source", result.Source).
		Msg("service: using estimated coordinates")
	return result, nil
}

// search asks the geocoder for the best candidate. Failures are logged and
// reported as a miss.
func (s *GeoCodeService) search(ctx context.Context, address string) (models.GeocodeResult, bool) {
	if s.geocoder == nil {
		return models.GeocodeResult{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates, err := s.geocoder.Search(ctx, address)
	if err != nil {
		log.Warn().Err(err).Str("address", address).Msg("service: geocoder search failed")
		return models.GeocodeResult{}, false
	}
	if len(candidates) == 0 {
		return models.GeocodeResult{}, false
	}

	return preciseResult(candidates[0]), true
}

func preciseResult(c models.Candidate) models.GeocodeResult {
	confidence := unscoredConfidence
	if c.Score != nil {
		confidence = min(max(*c.Score, 0), 1)
	}
	level := c.Level

	return models.GeocodeResult{
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		FormattedAddress: c.FullName,
		Confidence:       confidence,
		Source:           models.SourcePrecise,
		Level:            &level,
	}
}
