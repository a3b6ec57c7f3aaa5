package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"itinera/internal/itinerary"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	_, unbalanced := itinerary.ExtractBlock("{")
	_, noCandidates := itinerary.Schedule(nil, 1)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"trip parameters", fmt.Errorf("plan: %w", itinerary.ErrInvalidTripParameters), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: budget", ErrInvalidInput), http.StatusBadRequest},
		{"no candidates", noCandidates, http.StatusNotFound},
		{"unbalanced", unbalanced, http.StatusBadGateway},
		{"schema", itinerary.ErrSchema, http.StatusBadGateway},
		{"generation", itinerary.WrapGenerationError(errors.New("deadline exceeded")), http.StatusBadGateway},
		{"database", ErrDatabaseError, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := serveError(t, tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, "trace-1", body.TraceID)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, map[string]string{"city": "Fes"}, "ok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"message":"ok","data":{"city":"Fes"}}`, w.Body.String())
}
