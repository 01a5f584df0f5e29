package handler

import (
	"errors"
	"net/http"

	"taxi-fare-api/internal/fare"
	"taxi-fare-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"address is required"`
}

// errorMapping translates a service error to a status code and a client message.
var errorMapping = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrEmptyAddress, http.StatusBadRequest, "address is required"},
	{service.ErrInvalidCoordinates, http.StatusBadRequest, "latitude must be within [-90, 90] and longitude within [-180, 180]"},
	{service.ErrMissingFareInput, http.StatusBadRequest, "station and destination are required"},
	{service.ErrDistanceUnavailable, http.StatusBadRequest, "could not calculate distance to the destination"},
	{fare.ErrInvalidDistance, http.StatusBadRequest, "could not calculate distance to the destination"},
	{service.ErrAddressNotFound, http.StatusNotFound, "address not found"},
	{service.ErrStationNotFound, http.StatusNotFound, "station not found"},
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// respondServiceError writes the response for err. Unknown errors are logged
// and reported as a 500 without details.
func respondServiceError(c *gin.Context, err error) {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			respondError(c, m.status, m.message)
			return
		}
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	respondError(c, http.StatusInternalServerError, "internal server error")
}
