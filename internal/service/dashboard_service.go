package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/domainkey"
	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/repository"
	"github.com/placement-success/placement-api/pkg/config"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type statsRepository interface {
	TotalBatchesPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	UpcomingBatchesPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	PlacedStudentsPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	YetToPlaceStudentsPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	MonthlyPlacements(ctx context.Context, year int) ([]models.MonthlyPlacementRow, error)
	OngoingBatchesPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	LiveStudentsPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	TrainerCountPerDomain(ctx context.Context) ([]models.DomainCountRow, error)
	PlacedByPrefix(ctx context.Context) ([]models.DomainCountRow, error)
	YetToPlaceByPrefix(ctx context.Context) ([]models.DomainCountRow, error)
	EpicStatsByPrefix(ctx context.Context, prefix string) ([]models.EpicBatchRow, error)
	SmeStudentRows(ctx context.Context, prefix string) ([]models.SmeDashboardRow, error)
	SmeBatchStatusCounts(ctx context.Context, prefix string) ([]repository.BatchStatusCount, error)
	DomainSummaries(ctx context.Context) ([]models.DomainSummaryRow, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardService aggregates counts for the placement, owner and SME
// dashboards. Counting happens in SQL; this layer canonicalises domain
// labels, seeds the fixed-key maps and fills calendar gaps.
type DashboardService struct {
	stats  statsRepository
	cache  dashboardCache
	cfg    config.DashboardConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(stats statsRepository, cache dashboardCache, cfg config.DashboardConfig, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{stats: stats, cache: cache, cfg: cfg, logger: logger, now: time.Now}
}

// PlacementStats returns the four per-domain count maps, each seeded with
// all six canonical keys so absent domains show zero. Labels outside the
// vocabulary keep their own keys.
func (s *DashboardService) PlacementStats(ctx context.Context) (*models.PlacementStats, error) {
	const cacheKey = "dashboard:placement:stats"
	var cached models.PlacementStats
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	stats := &models.PlacementStats{
		TotalBatchesPerDomain:       domainkey.SeededCounts(),
		UpcomingBatchesPerDomain:    domainkey.SeededCounts(),
		PlacedStudentsPerDomain:     domainkey.SeededCounts(),
		YetToPlaceStudentsPerDomain: domainkey.SeededCounts(),
	}

	loaders := []struct {
		load func(context.Context) ([]models.DomainCountRow, error)
		into map[string]int
	}{
		{s.stats.TotalBatchesPerDomain, stats.TotalBatchesPerDomain},
		{s.stats.UpcomingBatchesPerDomain, stats.UpcomingBatchesPerDomain},
		{s.stats.PlacedStudentsPerDomain, stats.PlacedStudentsPerDomain},
		{s.stats.YetToPlaceStudentsPerDomain, stats.YetToPlaceStudentsPerDomain},
	}
	for _, loader := range loaders {
		rows, err := loader.load(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load placement stats")
		}
		mergeDomainCounts(loader.into, rows)
	}

	s.toCache(ctx, cacheKey, stats)
	return stats, nil
}

// PlacementGraphs returns twelve months of placement outcomes for the
// previous and current calendar year. Months with no placements appear
// with zero counts.
func (s *DashboardService) PlacementGraphs(ctx context.Context) (*models.PlacementGraphs, error) {
	const cacheKey = "dashboard:placement:graphs"
	var cached models.PlacementGraphs
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	currentYear := s.now().Year()
	previous, err := s.monthlySeries(ctx, currentYear-1)
	if err != nil {
		return nil, err
	}
	current, err := s.monthlySeries(ctx, currentYear)
	if err != nil {
		return nil, err
	}

	graphs := &models.PlacementGraphs{PreviousData: previous, CurrentData: current}
	s.toCache(ctx, cacheKey, graphs)
	return graphs, nil
}

func (s *DashboardService) monthlySeries(ctx context.Context, year int) ([]models.GraphPoint, error) {
	rows, err := s.stats.MonthlyPlacements(ctx, year)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load monthly placements")
	}
	points := make([]models.GraphPoint, 12)
	for m := 1; m <= 12; m++ {
		points[m-1] = models.GraphPoint{Name: time.Month(m).String()[:3]}
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		points[row.Month-1].Value = row.StudentCount
		points[row.Month-1].AvgPackage = row.AvgPackage
	}
	return points, nil
}

// OwnerCounts returns the owner dashboard count maps, grouped by batch
// number prefix and seeded with all six canonical keys.
func (s *DashboardService) OwnerCounts(ctx context.Context) (*models.OwnerCounts, error) {
	const cacheKey = "dashboard:owner:counts"
	var cached models.OwnerCounts
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	counts := &models.OwnerCounts{
		OngoingBatchesPerDomain: domainkey.SeededCounts(),
		LiveStudentsPerDomain:   domainkey.SeededCounts(),
		TrainerCountPerDomain:   domainkey.SeededCounts(),
	}
	loaders := []struct {
		load func(context.Context) ([]models.DomainCountRow, error)
		into map[string]int
	}{
		{s.stats.OngoingBatchesPerDomain, counts.OngoingBatchesPerDomain},
		{s.stats.LiveStudentsPerDomain, counts.LiveStudentsPerDomain},
		{s.stats.TrainerCountPerDomain, counts.TrainerCountPerDomain},
	}
	for _, loader := range loaders {
		rows, err := loader.load(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load owner counts")
		}
		mergeDomainCounts(loader.into, rows)
	}

	s.toCache(ctx, cacheKey, counts)
	return counts, nil
}

// OwnerGraphs returns the owner dashboard bar charts with all six domains
// present in both series, labelled by their chart abbreviations.
func (s *DashboardService) OwnerGraphs(ctx context.Context) (*models.OwnerGraphs, error) {
	const cacheKey = "dashboard:owner:graphs"
	var cached models.OwnerGraphs
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	placedRows, err := s.stats.PlacedByPrefix(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load placed counts")
	}
	waitingRows, err := s.stats.YetToPlaceByPrefix(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load yet-to-place counts")
	}

	placed := domainkey.SeededCounts()
	waiting := domainkey.SeededCounts()
	mergeDomainCounts(placed, placedRows)
	mergeDomainCounts(waiting, waitingRows)

	graphs := &models.OwnerGraphs{}
	for _, key := range domainkey.Keys() {
		label := domainkey.GraphLabel(key)
		graphs.PlacedData = append(graphs.PlacedData, models.DomainGraphPoint{Name: label, Students: placed[key]})
		graphs.YetToPlaceData = append(graphs.YetToPlaceData, models.DomainGraphPoint{Name: label, Students: waiting[key]})
	}

	s.toCache(ctx, cacheKey, graphs)
	return graphs, nil
}

// SmeDashboard returns the per-domain SME overview. The domain may be a
// canonical key or any known label spelling.
func (s *DashboardService) SmeDashboard(ctx context.Context, domain string) (*models.SmeDashboard, error) {
	prefix, err := resolvePrefix(domain)
	if err != nil {
		return nil, err
	}
	cacheKey := "dashboard:sme:" + prefix
	var cached models.SmeDashboard
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	batchCounts, err := s.stats.SmeBatchStatusCounts(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch counts")
	}
	rows, err := s.stats.SmeStudentRows(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student rows")
	}

	dashboard := &models.SmeDashboard{EpicCountMap: seededEpicCounts()}
	for _, row := range batchCounts {
		dashboard.TotalBatches += row.Count
		switch row.Status {
		case "Ongoing":
			dashboard.OngoingCount += row.Count
		case "Completed":
			dashboard.CompletedCount += row.Count
		}
	}
	for _, row := range rows {
		dashboard.TotalStudents++
		switch row.Placement {
		case models.PlacementPlaced:
			dashboard.Placed++
		case models.PlacementYetToPlace:
			dashboard.YetToPlace++
		case models.PlacementNotPlaced:
			dashboard.NotPlaced++
		}
		dashboard.EpicCountMap[row.EpicStatus]++
	}

	s.toCache(ctx, cacheKey, dashboard)
	return dashboard, nil
}

// EpicStats returns the per-batch EPIC histogram for one domain. Every
// batch carries all four statuses, zero-filled.
func (s *DashboardService) EpicStats(ctx context.Context, domain string) (map[string]map[string]int, error) {
	prefix, err := resolvePrefix(domain)
	if err != nil {
		return nil, err
	}
	cacheKey := "dashboard:epic:" + prefix
	var cached map[string]map[string]int
	if s.fromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.stats.EpicStatsByPrefix(ctx, prefix)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load epic stats")
	}
	histogram := map[string]map[string]int{}
	for _, row := range rows {
		batch, ok := histogram[row.BatchNo]
		if !ok {
			batch = seededEpicCounts()
			histogram[row.BatchNo] = batch
		}
		batch[row.EpicStatus] += row.Count
	}

	s.toCache(ctx, cacheKey, histogram)
	return histogram, nil
}

// DomainSummaries pairs batch and student counts per canonical domain
// key, all six keys present.
func (s *DashboardService) DomainSummaries(ctx context.Context) (map[string]models.DomainSummary, error) {
	const cacheKey = "dashboard:domain:summaries"
	var cached map[string]models.DomainSummary
	if s.fromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.stats.DomainSummaries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load domain summaries")
	}
	summaries := map[string]models.DomainSummary{}
	for _, key := range domainkey.Keys() {
		summaries[key] = models.DomainSummary{}
	}
	for _, row := range rows {
		key := domainkey.Canonical(row.Domain)
		if !domainkey.Valid(key) {
			continue
		}
		summary := summaries[key]
		summary.BatchCount += row.BatchCount
		summary.StudentCount += row.StudentCount
		summaries[key] = summary
	}

	s.toCache(ctx, cacheKey, summaries)
	return summaries, nil
}

// mergeDomainCounts folds grouped rows into a seeded map. Labels outside
// the six canonical keys land under their slugified form, so a stray
// domain still shows up in the response instead of vanishing.
func mergeDomainCounts(into map[string]int, rows []models.DomainCountRow) {
	for _, row := range rows {
		if row.Domain == nil {
			continue
		}
		into[domainkey.Canonical(*row.Domain)] += row.Count
	}
}

func seededEpicCounts() map[string]int {
	counts := make(map[string]int, len(models.EpicStatuses))
	for _, status := range models.EpicStatuses {
		counts[status] = 0
	}
	return counts
}

func resolvePrefix(domain string) (string, error) {
	key := domainkey.Canonical(domain)
	prefix, ok := domainkey.BatchPrefix(key)
	if !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "unknown domain")
	}
	return prefix, nil
}

func (s *DashboardService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if !s.cfg.CacheEnabled || s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if err != appErrors.ErrCacheMiss {
		s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *DashboardService) toCache(ctx context.Context, key string, value interface{}) {
	if !s.cfg.CacheEnabled || s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
