package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/domainkey"
	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/export"
)

type reportRepository interface {
	BatchReport(ctx context.Context, batchNo string) ([]models.BatchReportRow, error)
	PlacementReport(ctx context.Context, prefix string) ([]models.PlacementReportRow, error)
	EpicReport(ctx context.Context, prefix string) ([]models.EpicReportRow, error)
	YetToPlaceReport(ctx context.Context, prefix string) ([]models.EpicReportRow, error)
	StudentReport(ctx context.Context, bookingID string) (*models.StudentReportDetail, error)
	BatchesByPrefix(ctx context.Context, prefix string) ([]models.BatchByDomainRow, error)
}

// ExportResult carries a rendered report file.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportService builds the owner report screens and their file exports.
type ReportService struct {
	repo   reportRepository
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(repo reportRepository, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ReportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, csv: csv, pdf: pdf, logger: logger}
}

// DomainOptions lists the six domains for the report screen dropdowns.
func (s *ReportService) DomainOptions() []models.DomainOption {
	options := make([]models.DomainOption, 0, len(domainkey.Keys()))
	for _, key := range domainkey.Keys() {
		options = append(options, models.DomainOption{Key: key, Label: domainkey.DisplayLabel(key)})
	}
	return options
}

// BatchesByDomain lists the batches of one domain for the dropdowns.
func (s *ReportService) BatchesByDomain(ctx context.Context, domain string) ([]models.BatchByDomainRow, error) {
	prefix, err := resolvePrefix(domain)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.BatchesByPrefix(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batches")
	}
	return rows, nil
}

// BatchReport lists the students of one batch.
func (s *ReportService) BatchReport(ctx context.Context, batchNo string) ([]models.BatchReportRow, error) {
	rows, err := s.repo.BatchReport(ctx, batchNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build batch report")
	}
	return rows, nil
}

// PlacementReport lists placed students of one domain.
func (s *ReportService) PlacementReport(ctx context.Context, domain string) ([]models.PlacementReportRow, error) {
	prefix, err := resolvePrefix(domain)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.PlacementReport(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build placement report")
	}
	return rows, nil
}

// EpicReport lists the EPIC statuses of one domain's students.
func (s *ReportService) EpicReport(ctx context.Context, domain string) ([]models.EpicReportRow, error) {
	prefix, err := resolvePrefix(domain)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.EpicReport(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build epic report")
	}
	return rows, nil
}

// YetToPlaceReport lists waiting students of one domain.
func (s *ReportService) YetToPlaceReport(ctx context.Context, domain string) ([]models.EpicReportRow, error) {
	prefix, err := resolvePrefix(domain)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.YetToPlaceReport(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build yet-to-place report")
	}
	return rows, nil
}

// StudentReport returns the full report card of one student.
func (s *ReportService) StudentReport(ctx context.Context, bookingID string) (*models.StudentReportDetail, error) {
	detail, err := s.repo.StudentReport(ctx, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build student report")
	}
	return detail, nil
}

// ExportPlacements renders the placement report of one domain as CSV or
// PDF.
func (s *ReportService) ExportPlacements(ctx context.Context, domain, format string) (*ExportResult, error) {
	rows, err := s.PlacementReport(ctx, domain)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Name", "Company", "Designation", "Salary", "Batch", "Booking ID"},
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":        row.Name,
			"Company":     strOrEmpty(row.Company),
			"Designation": strOrEmpty(row.Designation),
			"Salary":      floatOrEmpty(row.Salary),
			"Batch":       row.Batch,
			"Booking ID":  row.BookingID,
		})
	}

	key := domainkey.Canonical(domain)
	switch format {
	case "csv", "":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("placements_%s.csv", key),
		}, nil
	case "pdf":
		title := fmt.Sprintf("Placement Report: %s", domainkey.DisplayLabel(key))
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("placements_%s.pdf", key),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
