package handler

import (
	"context"
	"net/http"

	"taxi-fare-api/internal/models"

	"github.com/gin-gonic/gin"
)

// FareHandler handles fare estimation requests
type FareHandler struct {
	service FareService
}

// FareService interface for dependency injection
type FareService interface {
	CalculateFare(ctx context.Context, station, destination string) (*models.FareQuote, error)
}

// FareRequest is the body of POST /api/calculate-fare.
type FareRequest struct {
	Station     string `json:"station" example:"東京"`
	Destination string `json:"destination" example:"東京都新宿区西新宿2丁目8-1"`
}

// FareResponse is the body of a successful POST /api/calculate-fare.
type FareResponse struct {
	Success     bool                 `json:"success" example:"true"`
	DistanceKm  float64              `json:"distance_km" example:"5.2"`
	BaseFare    int                  `json:"base_fare" example:"500"`
	TotalFare   int                  `json:"total_fare" example:"2460"`
	Breakdown   models.FareBreakdown `json:"breakdown"`
	Destination string               `json:"destination" example:"東京都新宿区西新宿二丁目"`
	Accuracy    models.Source        `json:"accuracy" swaggertype:"string" enums:"precise,estimated,default"`
	Confidence  float64              `json:"confidence" example:"0.9"`
}

// NewFareHandler creates a new fare handler
func NewFareHandler(svc FareService) *FareHandler {
	return &FareHandler{service: svc}
}

// CalculateFare handles POST /api/calculate-fare requests
//
//	@Summary		Estimate the taxi fare from a station
//	@Description	Distance is the great-circle distance from the station to the resolved destination.
//	@Tags			fare
//	@Accept			json
//	@Produce		json
//	@Param			request	body		FareRequest	true	"Station and destination"
//	@Success		200		{object}	FareResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/calculate-fare [post]
func (h *FareHandler) CalculateFare(c *gin.Context) {
	var req FareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.service.CalculateFare(c.Request.Context(), req.Station, req.Destination)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, FareResponse{
		Success:     true,
		DistanceKm:  quote.DistanceKm,
		BaseFare:    quote.Fare.BaseFare,
		TotalFare:   quote.Fare.TotalFare,
		Breakdown:   quote.Fare,
		Destination: quote.Destination.FormattedAddress,
		Accuracy:    quote.Destination.Source,
		Confidence:  quote.Destination.Confidence,
	})
}
