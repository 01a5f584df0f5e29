package repository

import (
	"context"
	"errors"
	"fmt"

	"taxi-fare-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	searchLimit = 10

	// minMatchConfidence is the confidence of the weakest full-text match.
	minMatchConfidence = 0.6
)

// Repository implements the geocoder and station lookups on PostgreSQL/PostGIS
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: failed to ping database: %w", err)
	}
	return nil
}

// SearchLocationsByText performs a full-text search on the locations table.
// Each location is paired with its normalized rank in [0, 1).
func (r *Repository) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, []float64, error) {
	sql := `
		SELECT
			id,
			prefecture,
			municipality,
			address_1,
			address_2,
			block_lot,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude,
			ts_rank(full_address_tsvector, plainto_tsquery('japanese', $1), 32) as score
		FROM locations
		WHERE full_address_tsvector @@ plainto_tsquery('japanese', $1)
		ORDER BY score DESC, id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, query, searchLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	scores := []float64{}
	for rows.Next() {
		var loc models.Location
		var score float32
		err := rows.Scan(
			&loc.ID,
			&loc.Prefecture,
			&loc.Municipality,
			&loc.Address1,
			&loc.Address2,
			&loc.BlockLot,
			&loc.Latitude,
			&loc.Longitude,
			&score,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
		scores = append(scores, float64(score))
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, scores, nil
}

// Search implements forward geocoding: ranked candidates for an address.
// Scores are text ranks rescaled so that any match scores at least minMatchConfidence.
func (r *Repository) Search(ctx context.Context, query string) ([]models.Candidate, error) {
	locations, scores, err := r.SearchLocationsByText(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(locations))
	for i, loc := range locations {
		score := rankConfidence(scores[i])
		candidates = append(candidates, models.Candidate{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			FullName:  loc.FullName(),
			Score:     &score,
			Level:     loc.Level(),
		})
	}
	return candidates, nil
}

// rankConfidence maps a normalized text rank in [0, 1) to a match
// confidence in [minMatchConfidence, 1].
func rankConfidence(rank float64) float64 {
	rank = min(max(rank, 0), 1)
	return minMatchConfidence + (1-minMatchConfidence)*rank
}

// FindNearestLocations performs a spatial query for the locations within
// radiusMeters of the given coordinates, nearest first, with their distance in meters.
func (r *Repository) FindNearestLocations(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.Location, []float64, error) {
	sql := `
		SELECT
			id,
			prefecture,
			municipality,
			address_1,
			address_2,
			block_lot,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude,
			ST_Distance(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography) as distance
		FROM locations
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT $4
	`

	rows, err := r.db.Query(ctx, sql, lat, lon, float64(radiusMeters), searchLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	distances := []float64{}
	for rows.Next() {
		var loc models.Location
		var distance float64
		err := rows.Scan(
			&loc.ID,
			&loc.Prefecture,
			&loc.Municipality,
			&loc.Address1,
			&loc.Address2,
			&loc.BlockLot,
			&loc.Latitude,
			&loc.Longitude,
			&distance,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
		distances = append(distances, distance)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, distances, nil
}

// Reverse implements reverse geocoding: ranked candidates near a point.
func (r *Repository) Reverse(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.ReverseCandidate, error) {
	locations, distances, err := r.FindNearestLocations(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.ReverseCandidate, 0, len(locations))
	for i, loc := range locations {
		candidates = append(candidates, models.ReverseCandidate{
			FullName:       loc.FullName(),
			Latitude:       loc.Latitude,
			Longitude:      loc.Longitude,
			DistanceMeters: distances[i],
			Level:          loc.Level(),
		})
	}
	return candidates, nil
}

// FindStationByName looks up a station by exact name. It returns nil when
// there is no such station.
func (r *Repository) FindStationByName(ctx context.Context, name string) (*models.Station, error) {
	sql := `
		SELECT name, latitude, longitude
		FROM stations
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`

	var station models.Station
	err := r.db.QueryRow(ctx, sql, name).Scan(&station.Name, &station.Latitude, &station.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query station: %w", err)
	}

	return &station, nil
}

// CountStations returns the number of stations in the dataset.
func (r *Repository) CountStations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM stations").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count stations: %w", err)
	}
	return count, nil
}
