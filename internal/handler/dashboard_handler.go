package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

type dashboardService interface {
	PlacementStats(ctx context.Context) (*models.PlacementStats, error)
	PlacementGraphs(ctx context.Context) (*models.PlacementGraphs, error)
	OwnerCounts(ctx context.Context) (*models.OwnerCounts, error)
	OwnerGraphs(ctx context.Context) (*models.OwnerGraphs, error)
	SmeDashboard(ctx context.Context, domain string) (*models.SmeDashboard, error)
	EpicStats(ctx context.Context, domain string) (map[string]map[string]int, error)
	DomainSummaries(ctx context.Context) (map[string]models.DomainSummary, error)
}

// DashboardHandler wires aggregation dashboards to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// PlacementStats godoc
// @Summary Batch and placement counts per domain
// @Tags Dashboards
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/stats [get]
func (h *DashboardHandler) PlacementStats(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	stats, err := h.service.PlacementStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// PlacementGraphs godoc
// @Summary Monthly placement series for the current and previous year
// @Tags Dashboards
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/graphs [get]
func (h *DashboardHandler) PlacementGraphs(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	graphs, err := h.service.PlacementGraphs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, graphs)
}

// OwnerCounts godoc
// @Summary Owner dashboard headline counts
// @Tags Dashboards
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /owner/dashboard/counts [get]
func (h *DashboardHandler) OwnerCounts(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	counts, err := h.service.OwnerCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, counts)
}

// OwnerGraphs godoc
// @Summary Owner dashboard per-domain graph points
// @Tags Dashboards
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /owner/dashboard/graphs [get]
func (h *DashboardHandler) OwnerGraphs(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	graphs, err := h.service.OwnerGraphs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, graphs)
}

// Sme godoc
// @Summary SME dashboard for one domain
// @Tags Dashboards
// @Produce json
// @Param domain path string true "Domain name or alias"
// @Success 200 {object} response.Envelope
// @Router /sme/dashboard/{domain} [get]
func (h *DashboardHandler) Sme(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	dashboard, err := h.service.SmeDashboard(c.Request.Context(), c.Param("domain"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}

// Epic godoc
// @Summary EPIC status counts per batch for one domain
// @Tags Dashboards
// @Produce json
// @Param domain path string true "Domain name or alias"
// @Success 200 {object} response.Envelope
// @Router /sme/epic/{domain} [get]
func (h *DashboardHandler) Epic(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	stats, err := h.service.EpicStats(c.Request.Context(), c.Param("domain"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// DomainSummaries godoc
// @Summary Batch and student totals per domain
// @Tags Dashboards
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /domain/summary [get]
func (h *DashboardHandler) DomainSummaries(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	summaries, err := h.service.DomainSummaries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries)
}
