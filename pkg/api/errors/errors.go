package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/labstack/echo/v4"
)

// ValidationError returns a bad request carrying the validation message.
func ValidationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

// InternalError logs err and returns a generic internal server error.
func InternalError(c echo.Context, log logger.Logger, err error) error {
	log.Error("❌ request failed", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "Invalid credentials",
	})
}

// NotFoundError returns a not found error for resource
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: resource + " not found",
	})
}

// Respond maps a domain error to its HTTP status. Internal errors and
// anything without a known code are logged and hidden behind a 500.
func Respond(c echo.Context, log logger.Logger, err error) error {
	var de *domain.DomainError
	msg := err.Error()
	if stderrors.As(err, &de) {
		msg = de.Message
	}

	switch {
	case domain.IsNotFound(err):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found", Message: msg})
	case domain.IsBadRequest(err):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_request", Message: msg})
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "validation_error", Message: msg})
	case domain.IsTransition(err):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid_transition", Message: msg})
	case domain.IsConflict(err):
		return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "conflict", Message: msg})
	case domain.IsUnauthorized(err):
		return UnauthorizedError(c)
	case domain.IsRateLimited(err):
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "rate_limit_exceeded", Message: msg})
	case domain.IsExternal(err):
		log.Error("❌ upstream failure", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "upstream_error", Message: msg})
	case domain.IsInternal(err) && de.Err != nil:
		// log the cause, not the generic wrapper text
		return InternalError(c, log, de.Err)
	default:
		return InternalError(c, log, err)
	}
}
