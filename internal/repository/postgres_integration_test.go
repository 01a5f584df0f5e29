//go:build integration

package repository

import (
	"context"
	"testing"

	"taxi-fare-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	// Connect to database
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	// The stock image has no 'japanese' text search configuration; alias it to 'simple'.
	_, err = pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;
		CREATE TEXT SEARCH CONFIGURATION japanese (COPY = simple);

		CREATE TABLE locations (
			id BIGSERIAL PRIMARY KEY,
			prefecture VARCHAR(255),
			municipality VARCHAR(255),
			address_1 VARCHAR(255),
			address_2 VARCHAR(255),
			block_lot VARCHAR(255),
			full_address_tsvector TSVECTOR GENERATED ALWAYS AS (
				to_tsvector('japanese', prefecture || ' ' || municipality || ' ' || address_1 || ' ' || address_2)
			) STORED,
			geom GEOGRAPHY(POINT, 4326)
		);

		CREATE INDEX locations_geom_idx ON locations USING GIST (geom);
		CREATE INDEX locations_full_address_tsvector_idx ON locations USING GIN (full_address_tsvector);

		CREATE TABLE stations (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		);

		-- Insert test data
		INSERT INTO locations (prefecture, municipality, address_1, address_2, block_lot, geom) VALUES
		('東京都', '千代田区', '丸の内', '', '', ST_SetSRID(ST_MakePoint(139.767125, 35.681236), 4326)),
		('東京都', '港区', '赤坂', '1丁目', '', ST_SetSRID(ST_MakePoint(139.732, 35.675), 4326));

		INSERT INTO stations (name, latitude, longitude) VALUES
		('東京', 35.681236, 139.767125),
		('東京', 1, 1),
		('新宿', 35.690921, 139.700258);
	`)
	require.NoError(t, err)

	return pool
}

func TestRepository_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		expected []models.Candidate
	}{
		{
			name:  "search by municipality",
			query: "千代田区",
			expected: []models.Candidate{
				{
					Latitude:  35.681236,
					Longitude: 139.767125,
					FullName:  "東京都千代田区丸の内",
					Level:     models.LevelAddress1,
				},
			},
		},
		{
			name:  "search by address",
			query: "赤坂",
			expected: []models.Candidate{
				{
					Latitude:  35.675,
					Longitude: 139.732,
					FullName:  "東京都港区赤坂1丁目",
					Level:     models.LevelAddress2,
				},
			},
		},
		{
			name:     "search with no results",
			query:    "nonexistent",
			expected: []models.Candidate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			require.Len(t, candidates, len(tt.expected))

			for i, want := range tt.expected {
				got := candidates[i]
				require.NotNil(t, got.Score)
				assert.Greater(t, *got.Score, 0.5, "a text match must outrank the city estimate")
				assert.LessOrEqual(t, *got.Score, 1.0)

				got.Score = nil
				assert.InDelta(t, want.Latitude, got.Latitude, 1e-6)
				assert.InDelta(t, want.Longitude, got.Longitude, 1e-6)
				assert.Equal(t, want.FullName, got.FullName)
				assert.Equal(t, want.Level, got.Level)
			}
		})
	}
}

func TestRepository_Reverse(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	candidates, err := repo.Reverse(ctx, 35.6813, 139.7670, 100)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "東京都千代田区丸の内", candidates[0].FullName)
	assert.Less(t, candidates[0].DistanceMeters, 100.0)

	candidates, err = repo.Reverse(ctx, 35.6813, 139.7670, 5000)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "東京都港区赤坂1丁目", candidates[1].FullName)
	assert.Greater(t, candidates[1].DistanceMeters, candidates[0].DistanceMeters)

	candidates, err = repo.Reverse(ctx, 43.0642, 141.3469, 100)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRepository_FindStationByName(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	station, err := repo.FindStationByName(ctx, "東京")
	require.NoError(t, err)
	assert.Equal(t, &models.Station{Name: "東京", Latitude: 35.681236, Longitude: 139.767125}, station)

	station, err = repo.FindStationByName(ctx, "大宮")
	require.NoError(t, err)
	assert.Nil(t, station)

	count, err := repo.CountStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
