package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taxi-fare-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStationFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStationFile(t *testing.T) {
	path := writeStationFile(t, `[
		{"name": "東京", "lat": 35.681236, "lng": 139.767125},
		{"name": "池袋", "latitude": 35.728926, "longitude": 139.71038},
		{"name": "上野", "lat": "35.713768", "lng": "139.777254"},
		{"name": "新宿"},
		{"name": "新宿", "lat": 35.690921, "lng": 139.700258},
		{"name": "新宿", "lat": 0.1, "lng": 0.1},
		{"lat": 35.0, "lng": 139.0}
	]`)

	stations, err := LoadStationFile(path)
	require.NoError(t, err)

	count, err := stations.CountStations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	tests := []struct {
		name     string
		expected *models.Station
	}{
		{name: "東京", expected: &models.Station{Name: "東京", Latitude: 35.681236, Longitude: 139.767125}},
		{name: "池袋", expected: &models.Station{Name: "池袋", Latitude: 35.728926, Longitude: 139.71038}},
		{name: "上野", expected: &models.Station{Name: "上野", Latitude: 35.713768, Longitude: 139.777254}},
		{name: "新宿", expected: &models.Station{Name: "新宿", Latitude: 35.690921, Longitude: 139.700258}},
		{name: "東京駅", expected: nil},
		{name: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			station, err := stations.FindStationByName(context.Background(), tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, station)
		})
	}
}

func TestLoadStationFile_Errors(t *testing.T) {
	_, err := LoadStationFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadStationFile(writeStationFile(t, `{"name": "東京"}`))
	assert.Error(t, err)

	_, err = LoadStationFile(writeStationFile(t, `[{"name": "東京", "lat": "north"}]`))
	assert.Error(t, err)
}

func TestLoadStationFile_Bundled(t *testing.T) {
	stations, err := LoadStationFile(filepath.Join("..", "..", "data", "stations.json"))
	require.NoError(t, err)

	station, err := stations.FindStationByName(context.Background(), "東京")
	require.NoError(t, err)
	require.NotNil(t, station)
	assert.InDelta(t, 35.68, station.Latitude, 0.01)
}
