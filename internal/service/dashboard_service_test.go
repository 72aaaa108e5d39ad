package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/repository"
	"github.com/placement-success/placement-api/pkg/config"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type stubStatsRepo struct {
	totalBatches []models.DomainCountRow
	upcoming     []models.DomainCountRow
	placed       []models.DomainCountRow
	yetToPlace   []models.DomainCountRow
	monthly      map[int][]models.MonthlyPlacementRow
	ongoing      []models.DomainCountRow
	live         []models.DomainCountRow
	trainers     []models.DomainCountRow
	placedPfx    []models.DomainCountRow
	waitingPfx   []models.DomainCountRow
	epicRows     []models.EpicBatchRow
	smeRows      []models.SmeDashboardRow
	smeBatches   []repository.BatchStatusCount
	summaries    []models.DomainSummaryRow
}

func (s *stubStatsRepo) TotalBatchesPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.totalBatches, nil
}
func (s *stubStatsRepo) UpcomingBatchesPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.upcoming, nil
}
func (s *stubStatsRepo) PlacedStudentsPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.placed, nil
}
func (s *stubStatsRepo) YetToPlaceStudentsPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.yetToPlace, nil
}
func (s *stubStatsRepo) MonthlyPlacements(_ context.Context, year int) ([]models.MonthlyPlacementRow, error) {
	return s.monthly[year], nil
}
func (s *stubStatsRepo) OngoingBatchesPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.ongoing, nil
}
func (s *stubStatsRepo) LiveStudentsPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.live, nil
}
func (s *stubStatsRepo) TrainerCountPerDomain(context.Context) ([]models.DomainCountRow, error) {
	return s.trainers, nil
}
func (s *stubStatsRepo) PlacedByPrefix(context.Context) ([]models.DomainCountRow, error) {
	return s.placedPfx, nil
}
func (s *stubStatsRepo) YetToPlaceByPrefix(context.Context) ([]models.DomainCountRow, error) {
	return s.waitingPfx, nil
}
func (s *stubStatsRepo) EpicStatsByPrefix(context.Context, string) ([]models.EpicBatchRow, error) {
	return s.epicRows, nil
}
func (s *stubStatsRepo) SmeStudentRows(context.Context, string) ([]models.SmeDashboardRow, error) {
	return s.smeRows, nil
}
func (s *stubStatsRepo) SmeBatchStatusCounts(context.Context, string) ([]repository.BatchStatusCount, error) {
	return s.smeBatches, nil
}
func (s *stubStatsRepo) DomainSummaries(context.Context) ([]models.DomainSummaryRow, error) {
	return s.summaries, nil
}

type stubCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func (c *stubCache) Get(_ context.Context, key string, dest interface{}) error {
	c.gets++
	return appErrors.ErrCacheMiss
}

func (c *stubCache) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	c.sets++
	return nil
}

func strPtr(v string) *string { return &v }

func TestPlacementStatsSeedsSixDomainsAndKeepsStray(t *testing.T) {
	stats := &stubStatsRepo{
		totalBatches: []models.DomainCountRow{
			{Domain: strPtr("Full Stack Development"), Count: 4},
			{Domain: strPtr("Robotics"), Count: 9},
			{Domain: nil, Count: 2},
		},
		placed: []models.DomainCountRow{{Domain: strPtr("Data Analytics"), Count: 3}},
	}
	svc := NewDashboardService(stats, nil, config.DashboardConfig{}, nil)

	result, err := svc.PlacementStats(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.TotalBatchesPerDomain, 7)
	assert.Equal(t, 4, result.TotalBatchesPerDomain["fullstack"])
	assert.Equal(t, 0, result.TotalBatchesPerDomain["sap"])
	assert.Equal(t, 3, result.PlacedStudentsPerDomain["data"])
	assert.Equal(t, 9, result.TotalBatchesPerDomain["robotics"])
}

func TestPlacementStatsKeepsAdHocDomains(t *testing.T) {
	stats := &stubStatsRepo{
		totalBatches: []models.DomainCountRow{
			{Domain: strPtr("Cyber Security"), Count: 2},
		},
	}
	svc := NewDashboardService(stats, nil, config.DashboardConfig{}, nil)

	result, err := svc.PlacementStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalBatchesPerDomain["cybersecurity"])
	assert.Equal(t, 0, result.TotalBatchesPerDomain["banking"])
}

func TestPlacementGraphsFillsTwelveMonths(t *testing.T) {
	year := time.Now().Year()
	stats := &stubStatsRepo{
		monthly: map[int][]models.MonthlyPlacementRow{
			year:     {{Month: 3, StudentCount: 7, AvgPackage: floatPtrTest(5.4)}},
			year - 1: {{Month: 12, StudentCount: 2}},
		},
	}
	svc := NewDashboardService(stats, nil, config.DashboardConfig{}, nil)

	graphs, err := svc.PlacementGraphs(context.Background())
	require.NoError(t, err)
	require.Len(t, graphs.CurrentData, 12)
	require.Len(t, graphs.PreviousData, 12)
	assert.Equal(t, "Jan", graphs.CurrentData[0].Name)
	assert.Equal(t, "Dec", graphs.CurrentData[11].Name)
	assert.Equal(t, 7, graphs.CurrentData[2].Value)
	assert.Equal(t, 0, graphs.CurrentData[0].Value)
	assert.Equal(t, 2, graphs.PreviousData[11].Value)
}

func TestOwnerGraphsUsesChartLabels(t *testing.T) {
	stats := &stubStatsRepo{
		placedPfx: []models.DomainCountRow{{Domain: strPtr("fullstack"), Count: 5}},
	}
	svc := NewDashboardService(stats, nil, config.DashboardConfig{}, nil)

	graphs, err := svc.OwnerGraphs(context.Background())
	require.NoError(t, err)
	require.Len(t, graphs.PlacedData, 6)
	assert.Equal(t, "FSD", graphs.PlacedData[0].Name)
	assert.Equal(t, 5, graphs.PlacedData[0].Students)
	assert.Equal(t, "DADS", graphs.PlacedData[1].Name)
	require.Len(t, graphs.YetToPlaceData, 6)
}

func TestSmeDashboardAggregates(t *testing.T) {
	stats := &stubStatsRepo{
		smeBatches: []repository.BatchStatusCount{
			{Status: "Ongoing", Count: 3},
			{Status: "Completed", Count: 2},
		},
		smeRows: []models.SmeDashboardRow{
			{BatchNo: "FS10", Placement: "Placed", EpicStatus: "Excellent"},
			{BatchNo: "FS10", Placement: "Yet to Place", EpicStatus: "Capable"},
			{BatchNo: "FS11", Placement: "Not Placed", EpicStatus: "Capable"},
		},
	}
	svc := NewDashboardService(stats, nil, config.DashboardConfig{}, nil)

	dashboard, err := svc.SmeDashboard(context.Background(), "fullstack")
	require.NoError(t, err)
	assert.Equal(t, 5, dashboard.TotalBatches)
	assert.Equal(t, 3, dashboard.OngoingCount)
	assert.Equal(t, 2, dashboard.CompletedCount)
	assert.Equal(t, 3, dashboard.TotalStudents)
	assert.Equal(t, 1, dashboard.Placed)
	assert.Equal(t, 1, dashboard.YetToPlace)
	assert.Equal(t, 1, dashboard.NotPlaced)
	assert.Equal(t, 2, dashboard.EpicCountMap["Capable"])
	assert.Equal(t, 0, dashboard.EpicCountMap["Ideal"])
}

func TestSmeDashboardRejectsUnknownDomain(t *testing.T) {
	svc := NewDashboardService(&stubStatsRepo{}, nil, config.DashboardConfig{}, nil)

	_, err := svc.SmeDashboard(context.Background(), "robotics")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestEpicStatsSeedsEveryBatch(t *testing.T) {
	stats := &stubStatsRepo{
		epicRows: []models.EpicBatchRow{
			{BatchNo: "FS10", EpicStatus: "Capable", Count: 12},
			{BatchNo: "FS10", EpicStatus: "Excellent", Count: 3},
		},
	}
	svc := NewDashboardService(stats, nil, config.DashboardConfig{}, nil)

	histogram, err := svc.EpicStats(context.Background(), "Full Stack Development")
	require.NoError(t, err)
	require.Contains(t, histogram, "FS10")
	assert.Equal(t, 12, histogram["FS10"]["Capable"])
	assert.Equal(t, 3, histogram["FS10"]["Excellent"])
	assert.Equal(t, 0, histogram["FS10"]["Proficient"])
	assert.Equal(t, 0, histogram["FS10"]["Ideal"])
}

func TestDashboardCacheUsedWhenEnabled(t *testing.T) {
	cache := &stubCache{}
	svc := NewDashboardService(&stubStatsRepo{}, cache, config.DashboardConfig{CacheEnabled: true, CacheTTL: time.Minute}, nil)

	_, err := svc.PlacementStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 1, cache.sets)
}

func TestDashboardCacheSkippedWhenDisabled(t *testing.T) {
	cache := &stubCache{}
	svc := NewDashboardService(&stubStatsRepo{}, cache, config.DashboardConfig{CacheEnabled: false}, nil)

	_, err := svc.PlacementStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cache.gets)
	assert.Zero(t, cache.sets)
}

func floatPtrTest(v float64) *float64 { return &v }
