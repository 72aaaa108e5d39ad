package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// batchPrefixCase resolves a batch number to its canonical domain key by
// prefix. Rows with an unknown prefix group under NULL and are dropped by
// the seeded-map merge upstream.
const batchPrefixCase = `CASE
		WHEN batch_no LIKE 'FS%' THEN 'fullstack'
		WHEN batch_no LIKE 'DA%' THEN 'data'
		WHEN batch_no LIKE 'MK%' THEN 'marketing'
		WHEN batch_no LIKE 'SA%' THEN 'sap'
		WHEN batch_no LIKE 'BK%' THEN 'banking'
		WHEN batch_no LIKE 'DV%' THEN 'devops'
	END`

// StatsRepository runs the grouped aggregation queries feeding the
// dashboards and owner reports. Counting happens in the database; the
// services only merge rows into seeded maps.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// TotalBatchesPerDomain counts batches grouped by their raw domain label.
func (r *StatsRepository) TotalBatchesPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	const query = "SELECT domain, COUNT(*) AS count FROM batches GROUP BY domain"
	return r.domainCounts(ctx, query)
}

// UpcomingBatchesPerDomain counts batches that have not started yet,
// grouped by raw domain label.
func (r *StatsRepository) UpcomingBatchesPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	const query = "SELECT domain, COUNT(*) AS count FROM batches WHERE start_date > NOW() GROUP BY domain"
	return r.domainCounts(ctx, query)
}

// PlacedStudentsPerDomain counts placed students grouped by raw domain
// label.
func (r *StatsRepository) PlacedStudentsPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	const query = "SELECT domain, COUNT(*) AS count FROM students WHERE placement = 'Placed' GROUP BY domain"
	return r.domainCounts(ctx, query)
}

// YetToPlaceStudentsPerDomain counts students still waiting on placement,
// grouped by raw domain label.
func (r *StatsRepository) YetToPlaceStudentsPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	const query = "SELECT domain, COUNT(*) AS count FROM students WHERE placement IN ('Yet to Place', 'Not Placed') GROUP BY domain"
	return r.domainCounts(ctx, query)
}

// MonthlyPlacements returns the placed-student count and average package
// per calendar month of one year. Months with no placements are absent.
func (r *StatsRepository) MonthlyPlacements(ctx context.Context, year int) ([]models.MonthlyPlacementRow, error) {
	const query = `SELECT EXTRACT(MONTH FROM placed_month)::int AS month,
			COUNT(*) AS student_count,
			AVG(salary) AS avg_package
		FROM students
		WHERE placement = 'Placed' AND EXTRACT(YEAR FROM placed_month) = $1
		GROUP BY month
		ORDER BY month`
	var rows []models.MonthlyPlacementRow
	if err := r.db.SelectContext(ctx, &rows, query, year); err != nil {
		return nil, fmt.Errorf("monthly placements: %w", err)
	}
	return rows, nil
}

// OngoingBatchesPerDomain counts ongoing batches grouped by batch number
// prefix.
func (r *StatsRepository) OngoingBatchesPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	query := "SELECT " + batchPrefixCase + " AS domain, COUNT(*) AS count FROM batches WHERE status = 'Ongoing' GROUP BY 1"
	return r.domainCounts(ctx, query)
}

// LiveStudentsPerDomain counts in-training students grouped by batch
// number prefix.
func (r *StatsRepository) LiveStudentsPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	query := "SELECT " + batchPrefixCase + " AS domain, COUNT(*) AS count FROM students WHERE status = 'on going' GROUP BY 1"
	return r.domainCounts(ctx, query)
}

// TrainerCountPerDomain counts distinct trainer names per batch number
// prefix.
func (r *StatsRepository) TrainerCountPerDomain(ctx context.Context) ([]models.DomainCountRow, error) {
	query := "SELECT " + batchPrefixCase + " AS domain, COUNT(DISTINCT trainer_name) AS count FROM batches WHERE trainer_name IS NOT NULL GROUP BY 1"
	return r.domainCounts(ctx, query)
}

// PlacedByPrefix counts placed students grouped by batch number prefix.
func (r *StatsRepository) PlacedByPrefix(ctx context.Context) ([]models.DomainCountRow, error) {
	query := "SELECT " + batchPrefixCase + " AS domain, COUNT(*) AS count FROM students WHERE placement = 'Placed' GROUP BY 1"
	return r.domainCounts(ctx, query)
}

// YetToPlaceByPrefix counts waiting students grouped by batch number
// prefix.
func (r *StatsRepository) YetToPlaceByPrefix(ctx context.Context) ([]models.DomainCountRow, error) {
	query := "SELECT " + batchPrefixCase + " AS domain, COUNT(*) AS count FROM students WHERE placement IN ('Yet to Place', 'Not Placed') GROUP BY 1"
	return r.domainCounts(ctx, query)
}

func (r *StatsRepository) domainCounts(ctx context.Context, query string, args ...interface{}) ([]models.DomainCountRow, error) {
	var rows []models.DomainCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("domain counts: %w", err)
	}
	return rows, nil
}

// EpicStatsByPrefix returns the per-batch EPIC histogram for one domain
// prefix, with the empty-string to Capable display default applied.
func (r *StatsRepository) EpicStatsByPrefix(ctx context.Context, prefix string) ([]models.EpicBatchRow, error) {
	const query = `SELECT batch_no,
			COALESCE(NULLIF(epic_status, ''), 'Capable') AS epic_status,
			COUNT(*) AS count
		FROM students
		WHERE batch_no LIKE $1
		GROUP BY batch_no, 2
		ORDER BY batch_no`
	var rows []models.EpicBatchRow
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("epic stats: %w", err)
	}
	return rows, nil
}

// SmeStudentRows returns the slim student projection the SME dashboard
// aggregates in process, for one domain prefix.
func (r *StatsRepository) SmeStudentRows(ctx context.Context, prefix string) ([]models.SmeDashboardRow, error) {
	const query = `SELECT batch_no, status, placement,
			COALESCE(NULLIF(epic_status, ''), 'Capable') AS epic_status
		FROM students
		WHERE batch_no LIKE $1`
	var rows []models.SmeDashboardRow
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("sme student rows: %w", err)
	}
	return rows, nil
}

// BatchStatusCount is one grouped row of batch lifecycle states.
type BatchStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// SmeBatchStatusCounts counts batches per status for one domain prefix.
func (r *StatsRepository) SmeBatchStatusCounts(ctx context.Context, prefix string) ([]BatchStatusCount, error) {
	const query = "SELECT status, COUNT(*) AS count FROM batches WHERE batch_no LIKE $1 GROUP BY status"
	var rows []BatchStatusCount
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("sme batch counts: %w", err)
	}
	return rows, nil
}

// DomainSummaries pairs batch and student counts per raw domain label.
func (r *StatsRepository) DomainSummaries(ctx context.Context) ([]models.DomainSummaryRow, error) {
	const query = `SELECT b.domain,
			COUNT(DISTINCT b.id) AS batch_count,
			COUNT(s.id) AS student_count
		FROM batches b
		LEFT JOIN students s ON s.batch_id = b.id
		GROUP BY b.domain`
	var rows []models.DomainSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("domain summaries: %w", err)
	}
	return rows, nil
}

// BatchReport lists the students of one batch for the owner batch report.
func (r *StatsRepository) BatchReport(ctx context.Context, batchNo string) ([]models.BatchReportRow, error) {
	const query = `SELECT name, email, phone, batch_no AS batch, placement, booking_id
		FROM students WHERE batch_no = $1 ORDER BY name`
	var rows []models.BatchReportRow
	if err := r.db.SelectContext(ctx, &rows, query, batchNo); err != nil {
		return nil, fmt.Errorf("batch report: %w", err)
	}
	return rows, nil
}

// PlacementReport lists placed students for one domain prefix.
func (r *StatsRepository) PlacementReport(ctx context.Context, prefix string) ([]models.PlacementReportRow, error) {
	const query = `SELECT name, company, designation, salary, batch_no AS batch, booking_id
		FROM students WHERE placement = 'Placed' AND batch_no LIKE $1 ORDER BY name`
	var rows []models.PlacementReportRow
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("placement report: %w", err)
	}
	return rows, nil
}

// EpicReport lists students with their display EPIC status for one domain
// prefix.
func (r *StatsRepository) EpicReport(ctx context.Context, prefix string) ([]models.EpicReportRow, error) {
	const query = `SELECT name, email, phone, batch_no AS batch, attendance,
			COALESCE(NULLIF(epic_status, ''), 'Capable') AS epic_status,
			booking_id
		FROM students WHERE batch_no LIKE $1 ORDER BY name`
	var rows []models.EpicReportRow
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("epic report: %w", err)
	}
	return rows, nil
}

// YetToPlaceReport lists waiting students for one domain prefix.
func (r *StatsRepository) YetToPlaceReport(ctx context.Context, prefix string) ([]models.EpicReportRow, error) {
	const query = `SELECT name, email, phone, batch_no AS batch, attendance,
			COALESCE(NULLIF(epic_status, ''), 'Capable') AS epic_status,
			booking_id
		FROM students WHERE placement = 'Yet to Place' AND batch_no LIKE $1 ORDER BY name`
	var rows []models.EpicReportRow
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("yet-to-place report: %w", err)
	}
	return rows, nil
}

// StudentReport returns the single-student owner report projection.
func (r *StatsRepository) StudentReport(ctx context.Context, bookingID string) (*models.StudentReportDetail, error) {
	const query = `SELECT name, email, phone, batch_no AS batch, placement,
			COALESCE(NULLIF(epic_status, ''), 'Capable') AS epic_status,
			attendance, company, designation, salary, mode, trainer_name,
			domain_score, aptitude_score, communication_score
		FROM students WHERE booking_id = $1`
	var detail models.StudentReportDetail
	if err := r.db.GetContext(ctx, &detail, query, bookingID); err != nil {
		return nil, err
	}
	return &detail, nil
}

// BatchesByPrefix lists the batches of one domain prefix for the owner
// report dropdowns.
func (r *StatsRepository) BatchesByPrefix(ctx context.Context, prefix string) ([]models.BatchByDomainRow, error) {
	const query = `SELECT batch_no, trainer_name, mode, status
		FROM batches WHERE batch_no LIKE $1 ORDER BY batch_no`
	var rows []models.BatchByDomainRow
	if err := r.db.SelectContext(ctx, &rows, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("batches by domain: %w", err)
	}
	return rows, nil
}
