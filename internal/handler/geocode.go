package handler

import (
	"context"
	"net/http"

	"taxi-fare-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) (models.GeocodeResult, error)
}

// GeocodeRequest is the body of POST /api/geocode.
type GeocodeRequest struct {
	Address string `json:"address" example:"東京都千代田区丸の内1丁目"`
}

// GeocodeResponse is the body of a successful POST /api/geocode.
type GeocodeResponse struct {
	Success bool                 `json:"success" example:"true"`
	Result  models.GeocodeResult `json:"result"`
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles POST /api/geocode requests
//
//	@Summary		Resolve an address to coordinates
//	@Description	Falls back to a city estimate when the geocoder cannot match the address.
//	@Tags			geocoding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GeocodeRequest	true	"Address to resolve"
//	@Success		200		{object}	GeocodeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/geocode [post]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{Success: true, Result: result})
}
