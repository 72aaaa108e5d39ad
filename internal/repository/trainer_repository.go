package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// TrainerRepository manages the trainer roster and the accumulating batch
// assignment history.
type TrainerRepository struct {
	db *sqlx.DB
}

// NewTrainerRepository constructs a TrainerRepository.
func NewTrainerRepository(db *sqlx.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

// ListActive returns all active trainers ordered by name.
func (r *TrainerRepository) ListActive(ctx context.Context) ([]models.Trainer, error) {
	const query = "SELECT id, name, is_active FROM trainers WHERE is_active = TRUE ORDER BY name"
	var trainers []models.Trainer
	if err := r.db.SelectContext(ctx, &trainers, query); err != nil {
		return nil, fmt.Errorf("list active trainers: %w", err)
	}
	return trainers, nil
}

// FindActiveByName fetches one active trainer by roster name.
func (r *TrainerRepository) FindActiveByName(ctx context.Context, name string) (*models.Trainer, error) {
	const query = "SELECT id, name, is_active FROM trainers WHERE name = $1 AND is_active = TRUE"
	var trainer models.Trainer
	if err := r.db.GetContext(ctx, &trainer, query, name); err != nil {
		return nil, err
	}
	return &trainer, nil
}

// ListAssignments returns the assignment history of one batch, oldest
// first.
func (r *TrainerRepository) ListAssignments(ctx context.Context, batchNo string) ([]models.TrainerAssignment, error) {
	const query = `SELECT id, batch_no, trainer_id, trainer_name, start_time, end_time, assigned_at
		FROM batch_trainers WHERE batch_no = $1 ORDER BY assigned_at`
	var assignments []models.TrainerAssignment
	if err := r.db.SelectContext(ctx, &assignments, query, batchNo); err != nil {
		return nil, fmt.Errorf("list trainer assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment appends one assignment row. Times are stored in 24h
// HH:MM form.
func (r *TrainerRepository) CreateAssignment(ctx context.Context, assignment *models.TrainerAssignment) (int64, error) {
	const query = `INSERT INTO batch_trainers (batch_no, trainer_id, trainer_name, start_time, end_time, assigned_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query,
		assignment.BatchNo, assignment.TrainerID, assignment.TrainerName,
		assignment.StartTime, assignment.EndTime,
	); err != nil {
		return 0, fmt.Errorf("create trainer assignment: %w", err)
	}
	return id, nil
}
