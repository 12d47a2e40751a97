package handlers

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/jordanlanch/salesagent/pkg/api/errors"
	"github.com/jordanlanch/salesagent/pkg/jobs"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/labstack/echo/v4"
)

// CronHandler lets an external scheduler trigger the batch jobs.
type CronHandler struct {
	runner *jobs.Runner
	log    logger.Logger
}

// NewCronHandler creates a cron handler
func NewCronHandler(runner *jobs.Runner, log logger.Logger) *CronHandler {
	return &CronHandler{runner: runner, log: log}
}

// Run godoc
// @Summary Run a batch job
// @Description Runs outbound, followup, nurture, cs, scraper, metrics or backup synchronously. The scraper accepts {"product","cities"}.
// @Tags Cron
// @Accept json
// @Produce json
// @Param job path string true "Job name"
// @Success 200 {object} jobs.Report
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cron/{job} [post]
func (h *CronHandler) Run(c echo.Context) error {
	var opts jobs.Options
	// an empty body is fine, the job runs with defaults
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&opts); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_request",
				Message: "Invalid job options",
			})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), jobs.DefaultTimeout)
	defer cancel()

	rep, err := h.runner.Run(ctx, c.Param("job"), opts)
	switch {
	case errors.Is(err, jobs.ErrUnknownJob):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "unknown_job",
			Message: err.Error(),
		})
	case errors.Is(err, jobs.ErrJobRunning):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "job_running",
			Message: err.Error(),
		})
	case err != nil:
		return apierrors.InternalError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// Info godoc
// @Summary Describe the batch jobs
// @Tags Cron
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/cron [get]
func (h *CronHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "online",
		"jobs":   jobs.Names(),
	})
}
