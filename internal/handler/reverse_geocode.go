package handler

import (
	"context"
	"fmt"
	"net/http"

	"taxi-fare-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service   ReverseGeoCodeService
	maxRadius int
}

// ReverseGeoCodeService interface for dependency injection
type ReverseGeoCodeService interface {
	ReverseGeocode(ctx context.Context, lat, lon float64, radiusMeters int) (*models.Address, error)
}

// ReverseGeocodeRequest is the body of POST /api/reverse-geocode.
// Radius defaults to the configured radius when omitted or zero.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" example:"35.681236"`
	Longitude *float64 `json:"longitude" example:"139.767125"`
	Radius    int      `json:"radius" example:"100"`
}

// ReverseGeocodeResponse is the body of a successful POST /api/reverse-geocode.
type ReverseGeocodeResponse struct {
	Success bool           `json:"success" example:"true"`
	Result  models.Address `json:"result"`
}

// NewReverseGeocodeHandler creates a new reverse geocode handler. Requests
// with a radius above maxRadius meters are rejected.
func NewReverseGeocodeHandler(svc ReverseGeoCodeService, maxRadius int) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc, maxRadius: maxRadius}
}

// ReverseGeocode handles POST /api/reverse-geocode requests
//
//	@Summary	Find the nearest address to a coordinate
//	@Tags		geocoding
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ReverseGeocodeRequest	true	"Coordinate to look up"
//	@Success	200		{object}	ReverseGeocodeResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/api/reverse-geocode [post]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	var req ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		respondError(c, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	if req.Radius < 0 {
		respondError(c, http.StatusBadRequest, "radius must not be negative")
		return
	}

	if req.Radius > h.maxRadius {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("radius must not exceed %d meters", h.maxRadius))
		return
	}

	address, err := h.service.ReverseGeocode(c.Request.Context(), *req.Latitude, *req.Longitude, req.Radius)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if address == nil {
		respondError(c, http.StatusNotFound, "no address found near the specified coordinates")
		return
	}

	c.JSON(http.StatusOK, ReverseGeocodeResponse{Success: true, Result: *address})
}
