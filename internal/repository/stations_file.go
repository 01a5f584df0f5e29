package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"taxi-fare-api/internal/models"
)

// StationFile is a read-only station dataset loaded from a JSON file.
type StationFile struct {
	byName map[string]models.Station
}

// stationRecord accepts both the lat/lng and latitude/longitude spellings.
type stationRecord struct {
	Name      string     `json:"name"`
	Lat       coordinate `json:"lat"`
	Lng       coordinate `json:"lng"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

// coordinate decodes a JSON number or numeric string. Zero means absent.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", string(data), err)
	}
	*c = coordinate(f)
	return nil
}

func (r stationRecord) coordinates() (lat, lng float64, ok bool) {
	lat = float64(r.Lat)
	if lat == 0 {
		lat = float64(r.Latitude)
	}
	lng = float64(r.Lng)
	if lng == 0 {
		lng = float64(r.Longitude)
	}
	return lat, lng, lat != 0 && lng != 0
}

// LoadStationFile reads a JSON array of station records from path.
func LoadStationFile(path string) (*StationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read station file: %w", err)
	}

	var records []stationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("repository: failed to decode station file %q: %w", path, err)
	}

	return newStationFile(records), nil
}

// newStationFile indexes records by name. Records without coordinates are
// skipped; for duplicate names the first usable record wins.
func newStationFile(records []stationRecord) *StationFile {
	byName := make(map[string]models.Station, len(records))
	for _, rec := range records {
		lat, lng, ok := rec.coordinates()
		if !ok || rec.Name == "" {
			continue
		}
		if _, exists := byName[rec.Name]; exists {
			continue
		}
		byName[rec.Name] = models.Station{Name: rec.Name, Latitude: lat, Longitude: lng}
	}
	return &StationFile{byName: byName}
}

// FindStationByName looks up a station by exact name. It returns nil when
// there is no such station.
func (f *StationFile) FindStationByName(_ context.Context, name string) (*models.Station, error) {
	station, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	return &station, nil
}

// CountStations returns the number of usable stations.
func (f *StationFile) CountStations(context.Context) (int, error) {
	return len(f.byName), nil
}
