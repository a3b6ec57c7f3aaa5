package utils

import (
	"errors"
	"net/http"

	"itinera/internal/itinerary"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service and planning errors onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	code, message := statusFor(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Int("status", code).Msg(message)
	}
	RespondError(c, code, message)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, itinerary.ErrInvalidTripParameters):
		return http.StatusBadRequest, "duration_days must be greater than 0"
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, itinerary.ErrNoCandidates):
		return http.StatusNotFound, "No places found for this profile"
	case errors.Is(err, itinerary.ErrNoStructuredBlock),
		errors.Is(err, itinerary.ErrUnbalancedBlock):
		return http.StatusBadGateway, "Could not extract a plan from the model answer"
	case errors.Is(err, itinerary.ErrSchema):
		return http.StatusBadGateway, "The model answer does not match the itinerary format"
	case errors.Is(err, itinerary.ErrGeneration), errors.Is(err, ErrUnexpectedBehaviorOfAI):
		return http.StatusBadGateway, "Text generation failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
