package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type fakeReportSrv struct {
	export     *service.ExportResult
	exportErr  error
	lastFormat string
	placements []models.PlacementReportRow
}

func (f *fakeReportSrv) DomainOptions() []models.DomainOption {
	return []models.DomainOption{{Key: "fullstack", Label: "Full Stack Development"}}
}

func (f *fakeReportSrv) BatchesByDomain(context.Context, string) ([]models.BatchByDomainRow, error) {
	return nil, nil
}

func (f *fakeReportSrv) BatchReport(context.Context, string) ([]models.BatchReportRow, error) {
	return nil, nil
}

func (f *fakeReportSrv) PlacementReport(context.Context, string) ([]models.PlacementReportRow, error) {
	return f.placements, nil
}

func (f *fakeReportSrv) EpicReport(context.Context, string) ([]models.EpicReportRow, error) {
	return nil, nil
}

func (f *fakeReportSrv) YetToPlaceReport(context.Context, string) ([]models.EpicReportRow, error) {
	return nil, nil
}

func (f *fakeReportSrv) StudentReport(context.Context, string) (*models.StudentReportDetail, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

func (f *fakeReportSrv) ExportPlacements(_ context.Context, _, format string) (*service.ExportResult, error) {
	f.lastFormat = format
	return f.export, f.exportErr
}

func TestReportHandlerDomains(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/owner/reports/domains", nil)

	handler.Domains(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Full Stack Development")
}

func TestReportHandlerPlacementsJSONWithoutFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{
		placements: []models.PlacementReportRow{{Name: "Asha"}},
	}
	handler := NewReportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/owner/reports/placements/fullstack", nil)
	c.Params = gin.Params{{Key: "domain", Value: "fullstack"}}

	handler.Placements(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, srv.lastFormat)
	assert.Contains(t, rec.Body.String(), "Asha")
}

func TestReportHandlerPlacementsCSVExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{
		export: &service.ExportResult{
			Content:     []byte("Name,Company\nAsha,Acme\n"),
			ContentType: "text/csv",
			Filename:    "placements_fullstack.csv",
		},
	}
	handler := NewReportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/owner/reports/placements/fullstack?format=csv", nil)
	c.Params = gin.Params{{Key: "domain", Value: "fullstack"}}

	handler.Placements(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", srv.lastFormat)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "placements_fullstack.csv")
	assert.Contains(t, rec.Body.String(), "Asha,Acme")
}

func TestReportHandlerPlacementsBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{
		exportErr: appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/owner/reports/placements/fullstack?format=xlsx", nil)
	c.Params = gin.Params{{Key: "domain", Value: "fullstack"}}

	handler.Placements(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandlerStudentNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/owner/reports/students/BK-404", nil)
	c.Params = gin.Params{{Key: "bookingId", Value: "BK-404"}}

	handler.Student(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
