// Package googlemaps implements the geocoder on the Google Geocoding API.
package googlemaps

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"taxi-fare-api/internal/geo"
	"taxi-fare-api/internal/models"

	"googlemaps.github.io/maps"
)

const (
	language = "ja"
	region   = "jp"

	statusZeroResults = "ZERO_RESULTS"
)

// Confidence per geometry location type.
var locationTypeConfidence = map[string]float64{
	string(maps.GeocodeAccuracyRooftop):           1.0,
	string(maps.GeocodeAccuracyRangeInterpolated): 0.9,
	string(maps.GeocodeAccuracyGeometricCenter):   0.7,
	string(maps.GeocodeAccuracyApproximate):       0.5,
}

// Address precision per result type.
var typeLevels = map[string]int{
	"administrative_area_level_1": models.LevelPrefecture,
	"locality":                    models.LevelMunicipality,
	"ward":                        models.LevelMunicipality,
	"sublocality":                 models.LevelAddress1,
	"sublocality_level_1":         models.LevelAddress1,
	"sublocality_level_2":         models.LevelAddress2,
	"sublocality_level_3":         models.LevelAddress2,
	"sublocality_level_4":         models.LevelBlockLot,
	"street_address":              models.LevelBlockLot,
	"premise":                     models.LevelBlockLot,
}

// Geocoder resolves Japanese addresses with the Google Geocoding API.
type Geocoder struct {
	client *maps.Client
}

// New creates a Geocoder with the given API key. Extra options are passed to
// the maps client.
func New(apiKey string, opts ...maps.ClientOption) (*Geocoder, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("googlemaps: failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// Search implements forward geocoding. No match yields an empty result.
func (g *Geocoder) Search(ctx context.Context, query string) ([]models.Candidate, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  query,
		Language: language,
		Region:   region,
	})
	if err != nil && !isZeroResults(err) {
		return nil, fmt.Errorf("googlemaps: geocode request failed: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(results))
	for _, r := range results {
		c := models.Candidate{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
			FullName:  r.FormattedAddress,
			Level:     level(r.Types),
		}
		if confidence, ok := locationTypeConfidence[r.Geometry.LocationType]; ok {
			c.Score = &confidence
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// Reverse implements reverse geocoding, keeping the results within
// radiusMeters of the point, nearest first.
func (g *Geocoder) Reverse(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.ReverseCandidate, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: lat, Lng: lon},
		Language: language,
	})
	if err != nil && !isZeroResults(err) {
		return nil, fmt.Errorf("googlemaps: reverse geocode request failed: %w", err)
	}

	candidates := make([]models.ReverseCandidate, 0, len(results))
	for _, r := range results {
		loc := r.Geometry.Location
		distance := geo.HaversineDistanceKm(lat, lon, loc.Lat, loc.Lng) * 1000
		if distance > float64(radiusMeters) {
			continue
		}
		candidates = append(candidates, models.ReverseCandidate{
			FullName:       r.FormattedAddress,
			Latitude:       loc.Lat,
			Longitude:      loc.Lng,
			DistanceMeters: distance,
			Level:          level(r.Types),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})
	return candidates, nil
}

// level returns the finest precision among types.
func level(types []string) int {
	best := models.LevelPrefecture
	for _, t := range types {
		if l, ok := typeLevels[t]; ok && l > best {
			best = l
		}
	}
	return best
}

// isZeroResults reports whether err is the API's "no match" status, which the
// client surfaces as an error.
func isZeroResults(err error) bool {
	return strings.Contains(err.Error(), statusZeroResults)
}
