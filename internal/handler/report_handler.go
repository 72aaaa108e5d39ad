package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

type reportService interface {
	DomainOptions() []models.DomainOption
	BatchesByDomain(ctx context.Context, domain string) ([]models.BatchByDomainRow, error)
	BatchReport(ctx context.Context, batchNo string) ([]models.BatchReportRow, error)
	PlacementReport(ctx context.Context, domain string) ([]models.PlacementReportRow, error)
	EpicReport(ctx context.Context, domain string) ([]models.EpicReportRow, error)
	YetToPlaceReport(ctx context.Context, domain string) ([]models.EpicReportRow, error)
	StudentReport(ctx context.Context, bookingID string) (*models.StudentReportDetail, error)
	ExportPlacements(ctx context.Context, domain, format string) (*service.ExportResult, error)
}

// ReportHandler wires owner reports to HTTP endpoints.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Domains godoc
// @Summary List selectable report domains
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /owner/reports/domains [get]
func (h *ReportHandler) Domains(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.service.DomainOptions())
}

// BatchesByDomain godoc
// @Summary List batches of a domain with student counts
// @Tags Reports
// @Produce json
// @Param domain path string true "Domain name or alias"
// @Success 200 {object} response.Envelope
// @Router /owner/reports/batchesByDomain/{domain} [get]
func (h *ReportHandler) BatchesByDomain(c *gin.Context) {
	rows, err := h.service.BatchesByDomain(c.Request.Context(), c.Param("domain"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// BatchReport godoc
// @Summary Per-student report for one batch
// @Tags Reports
// @Produce json
// @Param batchNo path string true "Batch number"
// @Success 200 {object} response.Envelope
// @Router /owner/reports/batches/{batchNo} [get]
func (h *ReportHandler) BatchReport(c *gin.Context) {
	rows, err := h.service.BatchReport(c.Request.Context(), c.Param("batchNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Placements godoc
// @Summary Placement report for a domain, optionally exported
// @Tags Reports
// @Produce json
// @Param domain path string true "Domain name or alias"
// @Param format query string false "Export format (csv or pdf); omit for JSON"
// @Success 200 {object} response.Envelope
// @Router /owner/reports/placements/{domain} [get]
func (h *ReportHandler) Placements(c *gin.Context) {
	domain := c.Param("domain")
	if format := strings.TrimSpace(c.Query("format")); format != "" {
		result, err := h.service.ExportPlacements(c.Request.Context(), domain, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		c.Data(http.StatusOK, result.ContentType, result.Content)
		return
	}
	rows, err := h.service.PlacementReport(c.Request.Context(), domain)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Epic godoc
// @Summary EPIC report for a domain
// @Tags Reports
// @Produce json
// @Param domain path string true "Domain name or alias"
// @Success 200 {object} response.Envelope
// @Router /owner/reports/epic/{domain} [get]
func (h *ReportHandler) Epic(c *gin.Context) {
	rows, err := h.service.EpicReport(c.Request.Context(), c.Param("domain"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// YetToPlace godoc
// @Summary Yet-to-place report for a domain
// @Tags Reports
// @Produce json
// @Param domain path string true "Domain name or alias"
// @Success 200 {object} response.Envelope
// @Router /owner/reports/yet-to-place/{domain} [get]
func (h *ReportHandler) YetToPlace(c *gin.Context) {
	rows, err := h.service.YetToPlaceReport(c.Request.Context(), c.Param("domain"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Student godoc
// @Summary Full report card for one student
// @Tags Reports
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Envelope
// @Router /owner/reports/students/{bookingId} [get]
func (h *ReportHandler) Student(c *gin.Context) {
	detail, err := h.service.StudentReport(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}
