package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jordanlanch/salesagent/pkg/analytics"
	apierrors "github.com/jordanlanch/salesagent/pkg/api/errors"
	"github.com/jordanlanch/salesagent/pkg/auth"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/export"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/middleware"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard data API.
type DashboardHandler struct {
	auth      *auth.Service
	leads     *leads.Service
	analytics *analytics.Service
	export    *export.Service
	log       logger.Logger
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(a *auth.Service, l *leads.Service, an *analytics.Service, ex *export.Service, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{auth: a, leads: l, analytics: an, export: ex, log: log}
}

// Login godoc
// @Summary Dashboard login
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/dashboard/auth/login [post]
func (h *DashboardHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.Respond(c, h.log, domain.NewBadRequestError("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	resp, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		h.log.Warn("⚠️ Dashboard login failed", "email", req.Email, "ip", c.RealIP())
		return apierrors.Respond(c, h.log, err)
	}
	h.log.Info("🔑 Dashboard login", "email", resp.Email)
	return c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Dashboard logout
// @Description Revokes the current token.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/auth/logout [post]
func (h *DashboardHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.ContextToken).(string)
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Logged out"})
}

// ListLeads godoc
// @Summary List leads
// @Tags Dashboard
// @Produce json
// @Param product query string false "occhiale or ekkle"
// @Param stage query string false "Pipeline stage"
// @Param search query string false "Name, company or phone"
// @Param sort_by query string false "created_at, updated_at, score, last_contact_at"
// @Param order query string false "asc or desc"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.LeadListResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/leads [get]
func (h *DashboardHandler) ListLeads(c echo.Context) error {
	req, err := h.bindFilters(c)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.leads.List(ctx, req)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetLead godoc
// @Summary Get a lead with its recent conversation
// @Tags Dashboard
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.LeadDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/leads/{id} [get]
func (h *DashboardHandler) GetLead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.NotFoundError(c, "lead")
	}
	resp, err := h.leads.Detail(c.Request().Context(), id)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateLead godoc
// @Summary Create a lead manually
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body models.CreateLeadRequest true "Lead"
// @Success 201 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/leads [post]
func (h *DashboardHandler) CreateLead(c echo.Context) error {
	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.Respond(c, h.log, domain.NewBadRequestError("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	resp, err := h.leads.CreateManual(c.Request().Context(), req)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	h.invalidate(c.Request().Context())
	return c.JSON(http.StatusCreated, resp)
}

// UpdateLead godoc
// @Summary Update a lead
// @Description Stage changes must follow the pipeline.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body models.UpdateLeadRequest true "Fields to change"
// @Success 200 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/leads/{id} [patch]
func (h *DashboardHandler) UpdateLead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.NotFoundError(c, "lead")
	}
	var req models.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.Respond(c, h.log, domain.NewBadRequestError("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	resp, err := h.leads.Update(c.Request().Context(), id, req)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	h.invalidate(c.Request().Context())
	return c.JSON(http.StatusOK, resp)
}

// DeleteLead godoc
// @Summary Delete a lead and its conversation
// @Tags Dashboard
// @Param id path int true "Lead ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/leads/{id} [delete]
func (h *DashboardHandler) DeleteLead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.NotFoundError(c, "lead")
	}
	if err := h.leads.Delete(c.Request().Context(), id); err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	email, _ := c.Get(middleware.ContextEmail).(string)
	h.log.Info("🗑️ Lead deleted", "lead_id", id, "by", email)
	h.invalidate(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// ExportLeads godoc
// @Summary Export leads
// @Description Streams the filtered leads as CSV or XLSX. Accepts the token as a query parameter for download links.
// @Tags Dashboard
// @Produce octet-stream
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/leads/export [get]
func (h *DashboardHandler) ExportLeads(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}
	req, err := h.bindFilters(c)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, format.ContentType())
	resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+format.Filename(time.Now())+`"`)
	resp.WriteHeader(http.StatusOK)

	n, err := h.export.Write(ctx, resp, format, req)
	if err != nil {
		// headers are already sent, the client gets a truncated file
		h.log.Error("❌ Export failed", "format", format, "rows", n, "error", err)
		return nil
	}
	h.log.Info("📤 Leads exported", "format", format, "rows", n)
	return nil
}

// Funnel godoc
// @Summary Pipeline funnel
// @Tags Dashboard
// @Produce json
// @Param product query string false "occhiale or ekkle"
// @Success 200 {object} models.FunnelResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/funnel [get]
func (h *DashboardHandler) Funnel(c echo.Context) error {
	resp, err := h.analytics.Funnel(c.Request().Context(), c.QueryParam("product"))
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Metrics godoc
// @Summary Dashboard totals
// @Description Totals, conversion and churn rates, AI cost and escalations. Cached for 60 seconds.
// @Tags Dashboard
// @Produce json
// @Param product query string false "occhiale or ekkle"
// @Success 200 {object} models.DashboardMetrics
// @Security BearerAuth
// @Router /api/v1/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	resp, err := h.analytics.Dashboard(c.Request().Context(), c.QueryParam("product"))
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DailyMetrics godoc
// @Summary Daily sales metrics
// @Tags Dashboard
// @Produce json
// @Param product query string false "occhiale or ekkle"
// @Param days query int false "Number of days (default: 30, max: 365)"
// @Success 200 {array} models.DailyMetric
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/metrics/daily [get]
func (h *DashboardHandler) DailyMetrics(c echo.Context) error {
	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			return apierrors.Respond(c, h.log, domain.NewBadRequestError("days must be between 1 and 365"))
		}
		days = parsed
	}

	resp, err := h.analytics.Daily(c.Request().Context(), c.QueryParam("product"), days)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Conversations godoc
// @Summary Conversation rows
// @Tags Dashboard
// @Produce json
// @Param product query string false "occhiale or ekkle"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} models.ConversationListResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/conversations [get]
func (h *DashboardHandler) Conversations(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	resp, err := h.leads.Conversations(c.Request().Context(), c.QueryParam("product"), page, limit)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RecentConversations godoc
// @Summary Latest messages across leads
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Rows (default 20, max 100)"
// @Success 200 {array} models.ConversationResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/conversations/recent [get]
func (h *DashboardHandler) RecentConversations(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	resp, err := h.leads.Recent(c.Request().Context(), limit)
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ConversationStats godoc
// @Summary Conversation statistics
// @Tags Dashboard
// @Produce json
// @Param product query string false "occhiale or ekkle"
// @Success 200 {object} models.ConversationStats
// @Security BearerAuth
// @Router /api/v1/dashboard/conversations/stats [get]
func (h *DashboardHandler) ConversationStats(c echo.Context) error {
	resp, err := h.analytics.ConversationStats(c.Request().Context(), c.QueryParam("product"))
	if err != nil {
		return apierrors.Respond(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) bindFilters(c echo.Context) (models.LeadListRequest, error) {
	var req models.LeadListRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return req, err
	}
	return req, c.Validate(&req)
}

func (h *DashboardHandler) invalidate(ctx context.Context) {
	if err := h.analytics.InvalidateDashboard(ctx); err != nil {
		h.log.Warn("Failed to invalidate dashboard cache", "error", err)
	}
}
