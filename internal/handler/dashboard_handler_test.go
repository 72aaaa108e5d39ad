package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type fakeDashboardSrv struct {
	stats      *models.PlacementStats
	sme        *models.SmeDashboard
	smeErr     error
	lastDomain string
}

func (f *fakeDashboardSrv) PlacementStats(context.Context) (*models.PlacementStats, error) {
	return f.stats, nil
}

func (f *fakeDashboardSrv) PlacementGraphs(context.Context) (*models.PlacementGraphs, error) {
	return &models.PlacementGraphs{}, nil
}

func (f *fakeDashboardSrv) OwnerCounts(context.Context) (*models.OwnerCounts, error) {
	return &models.OwnerCounts{}, nil
}

func (f *fakeDashboardSrv) OwnerGraphs(context.Context) (*models.OwnerGraphs, error) {
	return &models.OwnerGraphs{}, nil
}

func (f *fakeDashboardSrv) SmeDashboard(_ context.Context, domain string) (*models.SmeDashboard, error) {
	f.lastDomain = domain
	return f.sme, f.smeErr
}

func (f *fakeDashboardSrv) EpicStats(context.Context, string) (map[string]map[string]int, error) {
	return map[string]map[string]int{}, nil
}

func (f *fakeDashboardSrv) DomainSummaries(context.Context) (map[string]models.DomainSummary, error) {
	return map[string]models.DomainSummary{}, nil
}

func TestDashboardHandlerPlacementStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{
		stats: &models.PlacementStats{
			TotalBatchesPerDomain: map[string]int{"fullstack": 4},
		},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/stats", nil)

	handler.PlacementStats(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotNil(t, envelope.Data)
}

func TestDashboardHandlerSmePassesDomainParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeDashboardSrv{sme: &models.SmeDashboard{}}
	handler := NewDashboardHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/sme/dashboard/fullstack", nil)
	c.Params = gin.Params{{Key: "domain", Value: "fullstack"}}

	handler.Sme(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fullstack", service.lastDomain)
}

func TestDashboardHandlerSmeUnknownDomain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{
		smeErr: appErrors.Clone(appErrors.ErrValidation, "unknown domain"),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/sme/dashboard/robotics", nil)
	c.Params = gin.Params{{Key: "domain", Value: "robotics"}}

	handler.Sme(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandlerNilService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/stats", nil)

	handler.PlacementStats(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type responseEnvelope struct {
	Data  interface{}            `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}
