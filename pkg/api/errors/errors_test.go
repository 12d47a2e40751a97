package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", domain.NewNotFoundError("lead"), http.StatusNotFound, "lead not found"},
		{"validation", domain.NewValidationError("stage is required"), http.StatusBadRequest, "stage is required"},
		{"transition", fmt.Errorf("patch: %w", domain.NewTransitionError("won", "new")), http.StatusUnprocessableEntity, "cannot move lead from won to new"},
		{"unauthorized", domain.NewUnauthorizedError(), http.StatusUnauthorized, "unauthorized"},
		{"external", domain.NewExternalError("evolution", fmt.Errorf("timeout")), http.StatusBadGateway, "evolution request failed"},
		{"bad request", domain.NewBadRequestError("Invalid request body"), http.StatusBadRequest, `"error":"invalid_request"`},
		{"internal", domain.NewInternalError(fmt.Errorf("pq: connection reset")), http.StatusInternalServerError, "internal_error"},
		{"plain", fmt.Errorf("pq: connection reset"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, Respond(c, logger.Nop(), tt.err))
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}
