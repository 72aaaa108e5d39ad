package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

const batchColumns = "id, batch_no, batch_name, status, mode, start_date, end_date, domain, sections, trainer_name, total_count, start_time, end_time"

// BatchRepository manages persistence for training batches and the
// batch-change audit trail.
type BatchRepository struct {
	db *sqlx.DB
}

// NewBatchRepository constructs a BatchRepository.
func NewBatchRepository(db *sqlx.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// List returns all batches, optionally narrowed by search filters.
func (r *BatchRepository) List(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error) {
	query := "SELECT " + batchColumns + " FROM batches WHERE 1=1"
	args := []interface{}{}

	if filter.BatchName != "" {
		args = append(args, "%"+filter.BatchName+"%")
		query += fmt.Sprintf(" AND batch_name LIKE $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND start_date = $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND end_date = $%d", len(args))
	}
	if filter.Mode != "" {
		args = append(args, filter.Mode)
		query += fmt.Sprintf(" AND mode = $%d", len(args))
	}

	var batches []models.Batch
	if err := r.db.SelectContext(ctx, &batches, query, args...); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return batches, nil
}

// FindByID fetches one batch by surrogate id.
func (r *BatchRepository) FindByID(ctx context.Context, id int64) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.GetContext(ctx, &batch, "SELECT "+batchColumns+" FROM batches WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &batch, nil
}

// FindByName fetches one batch by its display name.
func (r *BatchRepository) FindByName(ctx context.Context, batchName string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.GetContext(ctx, &batch, "SELECT "+batchColumns+" FROM batches WHERE batch_name = $1", batchName); err != nil {
		return nil, err
	}
	return &batch, nil
}

// Create inserts a batch and returns the generated id.
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) (int64, error) {
	const query = `INSERT INTO batches
		(batch_no, batch_name, status, mode, start_date, end_date, domain, sections, trainer_name, total_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query,
		batch.BatchNo, batch.BatchName, batch.Status, batch.Mode,
		batch.StartDate, batch.EndDate, batch.Domain, batch.Sections,
		batch.TrainerName, batch.TotalCount,
	); err != nil {
		return 0, fmt.Errorf("create batch: %w", err)
	}
	return id, nil
}

// UpdateBatchParams groups the mutable batch columns. Only non-nil fields
// end up in the SET clause.
type UpdateBatchParams struct {
	BatchName   *string
	Status      *string
	Mode        *string
	StartDate   *string
	EndDate     *string
	Domain      *string
	TrainerName *string
	StartTime   *string
	EndTime     *string
}

// Update applies a partial update to one batch. Returns sql.ErrNoRows when
// the id matches nothing.
func (r *BatchRepository) Update(ctx context.Context, id int64, params UpdateBatchParams) error {
	setParts := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.BatchName != nil {
		add("batch_name", *params.BatchName)
	}
	if params.Status != nil {
		add("status", *params.Status)
	}
	if params.Mode != nil {
		add("mode", *params.Mode)
	}
	if params.StartDate != nil {
		add("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		add("end_date", *params.EndDate)
	}
	if params.Domain != nil {
		add("domain", *params.Domain)
	}
	if params.TrainerName != nil {
		add("trainer_name", *params.TrainerName)
	}
	if params.StartTime != nil {
		add("start_time", *params.StartTime)
	}
	if params.EndTime != nil {
		add("end_time", *params.EndTime)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("update batch: no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE batches SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check batch update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one batch. Returns sql.ErrNoRows when nothing matched.
func (r *BatchRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM batches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check batch delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TransferParams describes a student moving to another batch.
type TransferParams struct {
	BookingID     string
	ToBatchName   string
	Domain        string
	Reason        string
	AttachmentURL string
	RequestedBy   string
}

// Transfer moves a student to the named batch and appends a batch_changes
// audit row, all inside one transaction. The audit "from" value is the
// student's batch name captured before the update.
func (r *BatchRepository) Transfer(ctx context.Context, params TransferParams) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transfer: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var toBatchID int64
	if err := tx.GetContext(ctx, &toBatchID, "SELECT id FROM batches WHERE batch_name = $1", params.ToBatchName); err != nil {
		return err
	}

	var fromBatch sql.NullString
	const fromQuery = `SELECT b.batch_name FROM batches b JOIN students s ON b.id = s.batch_id WHERE s.booking_id = $1`
	if err := tx.GetContext(ctx, &fromBatch, fromQuery, params.BookingID); err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("resolve source batch: %w", err)
	}

	result, err := tx.ExecContext(ctx, "UPDATE students SET batch_id = $1 WHERE booking_id = $2", toBatchID, params.BookingID)
	if err != nil {
		return fmt.Errorf("move student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check moved rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	const auditQuery = `INSERT INTO batch_changes
		(booking_id, from_batch, to_batch, domain, reason, attachment_url, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`
	if _, err := tx.ExecContext(ctx, auditQuery,
		params.BookingID, fromBatch.String, params.ToBatchName,
		params.Domain, params.Reason, params.AttachmentURL, params.RequestedBy,
	); err != nil {
		return fmt.Errorf("record batch change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transfer: %w", err)
	}
	return nil
}
