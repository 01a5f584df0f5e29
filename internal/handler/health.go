package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GeocoderStatus reports whether precise geocoding is available.
type GeocoderStatus interface {
	Available() bool
}

// StationCounter reports the size of the station dataset.
type StationCounter interface {
	CountStations(ctx context.Context) (int, error)
}

// HealthHandler reports the availability of the collaborators.
type HealthHandler struct {
	provider string
	geocoder GeocoderStatus
	stations StationCounter
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Geocoder string `json:"geocoder" example:"postgis"`
	Stations int    `json:"stations" example:"15"`
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider string, geocoder GeocoderStatus, stations StationCounter) *HealthHandler {
	return &HealthHandler{provider: provider, geocoder: geocoder, stations: stations}
}

// Health handles GET /health requests
//
//	@Summary	Service health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Geocoder: "unavailable"}
	if h.geocoder.Available() {
		resp.Geocoder = h.provider
	}

	count, err := h.stations.CountStations(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to count stations")
	}
	resp.Stations = count

	c.JSON(http.StatusOK, resp)
}
