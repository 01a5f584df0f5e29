package models

import "fmt"

// Source tells how a GeocodeResult was obtained.
type Source int

const (
	// SourcePrecise means the external geocoder matched the address.
	SourcePrecise Source = iota
	// SourceEstimated means a city centroid was used.
	SourceEstimated
	// SourceDefault means nothing matched and the default centre was used.
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourcePrecise:
		return "precise"
	case SourceEstimated:
		return "estimated"
	case SourceDefault:
		return "default"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// MarshalText encodes the source as its lowercase name.
func (s Source) MarshalText() ([]byte, error) {
	switch s {
	case SourcePrecise, SourceEstimated, SourceDefault:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("models: unknown source %d", int(s))
	}
}

// UnmarshalText decodes a source name.
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "precise":
		*s = SourcePrecise
	case "estimated":
		*s = SourceEstimated
	case "default":
		*s = SourceDefault
	default:
		return fmt.Errorf("models: unknown source %q", string(text))
	}
	return nil
}

// GeocodeResult is the outcome of resolving an address to coordinates.
type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	Confidence       float64 `json:"confidence"`
	Source           Source  `json:"source"`
	Level            *int    `json:"level,omitempty"`
}

// Candidate is a single ranked hit returned by a forward search.
type Candidate struct {
	Latitude  float64
	Longitude float64
	FullName  string
	// Score is nil when the geocoder does not rank its hits.
	Score *float64
	Level int
}

// ReverseCandidate is a single ranked hit returned by a reverse search.
type ReverseCandidate struct {
	FullName       string
	Latitude       float64
	Longitude      float64
	DistanceMeters float64
	Level          int
}

// Address is the result of reverse geocoding a point.
type Address struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
	Level     int     `json:"level"`
}
