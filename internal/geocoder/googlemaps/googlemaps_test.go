package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taxi-fare-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

const geocodeResponse = `{
	"status": "OK",
	"results": [
		{
			"formatted_address": "日本、〒100-0005 東京都千代田区丸の内１丁目９−１",
			"geometry": {"location": {"lat": 35.681236, "lng": 139.767125}, "location_type": "ROOFTOP"},
			"types": ["premise"]
		},
		{
			"formatted_address": "日本、東京都千代田区",
			"geometry": {"location": {"lat": 35.694003, "lng": 139.753594}, "location_type": "APPROXIMATE"},
			"types": ["locality", "political"]
		},
		{
			"formatted_address": "日本",
			"geometry": {"location": {"lat": 36.204824, "lng": 138.252924}, "location_type": "UNKNOWN"},
			"types": ["country", "political"]
		}
	]
}`

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *Geocoder {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g, err := New("AIza-test-key", maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return g
}

func TestGeocoder_Search(t *testing.T) {
	var query map[string]string
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query = map[string]string{"address": q.Get("address"), "language": q.Get("language"), "region": q.Get("region")}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, geocodeResponse)
	})

	candidates, err := g.Search(context.Background(), "東京都千代田区丸の内1-9-1")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"address": "東京都千代田区丸の内1-9-1", "language": "ja", "region": "jp"}, query)
	require.Len(t, candidates, 3)

	assert.InDelta(t, 35.681236, candidates[0].Latitude, 1e-9)
	assert.InDelta(t, 139.767125, candidates[0].Longitude, 1e-9)
	assert.Equal(t, models.LevelBlockLot, candidates[0].Level)
	require.NotNil(t, candidates[0].Score)
	assert.Equal(t, 1.0, *candidates[0].Score)

	assert.Equal(t, models.LevelMunicipality, candidates[1].Level)
	require.NotNil(t, candidates[1].Score)
	assert.Equal(t, 0.5, *candidates[1].Score)

	assert.Equal(t, models.LevelPrefecture, candidates[2].Level)
	assert.Nil(t, candidates[2].Score)
}

func TestGeocoder_SearchZeroResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
	})

	candidates, err := g.Search(context.Background(), "存在しない住所")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGeocoder_SearchError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`)
	})

	_, err := g.Search(context.Background(), "東京都")
	assert.ErrorContains(t, err, "googlemaps: geocode request failed")
}

func TestGeocoder_Reverse(t *testing.T) {
	var latlng string
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		latlng = r.URL.Query().Get("latlng")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, geocodeResponse)
	})

	tests := []struct {
		name     string
		radius   int
		expected []string
	}{
		{name: "only the premise is close", radius: 100, expected: []string{"日本、〒100-0005 東京都千代田区丸の内１丁目９−１"}},
		{name: "wider radius includes the ward", radius: 2000, expected: []string{"日本、〒100-0005 東京都千代田区丸の内１丁目９−１", "日本、東京都千代田区"}},
		{name: "zero radius", radius: 0, expected: []string{"日本、〒100-0005 東京都千代田区丸の内１丁目９−１"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := g.Reverse(context.Background(), 35.681236, 139.767125, tt.radius)
			require.NoError(t, err)
			assert.NotEmpty(t, latlng)

			names := make([]string, 0, len(candidates))
			for i, c := range candidates {
				names = append(names, c.FullName)
				if i > 0 {
					assert.GreaterOrEqual(t, c.DistanceMeters, candidates[i-1].DistanceMeters)
				}
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestGeocoder_ReverseZeroResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
	})

	candidates, err := g.Reverse(context.Background(), 0, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestNew_MissingAPIKey(t *testing.T) {
	g, err := New("")
	assert.ErrorContains(t, err, "googlemaps: failed to create maps client")
	assert.Nil(t, g)
}
