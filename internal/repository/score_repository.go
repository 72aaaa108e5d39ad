package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// ScoreRepository manages the per-student score sheet. Scores are keyed by
// booking_id with at most one row per student.
type ScoreRepository struct {
	db *sqlx.DB
}

// NewScoreRepository constructs a ScoreRepository.
func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// List returns all score rows.
func (r *ScoreRepository) List(ctx context.Context) ([]models.Score, error) {
	const query = `SELECT id, booking_id, mile1, mile2, mile3, irc, attendance, epic_status, updated_at
		FROM scores ORDER BY id`
	var scores []models.Score
	if err := r.db.SelectContext(ctx, &scores, query); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return scores, nil
}

// FindByBookingID fetches the score row of one student.
func (r *ScoreRepository) FindByBookingID(ctx context.Context, bookingID string) (*models.Score, error) {
	const query = `SELECT id, booking_id, mile1, mile2, mile3, irc, attendance, epic_status, updated_at
		FROM scores WHERE booking_id = $1`
	var score models.Score
	if err := r.db.GetContext(ctx, &score, query, bookingID); err != nil {
		return nil, err
	}
	return &score, nil
}

// ExistsByBookingID reports whether a score row exists for the booking id.
func (r *ScoreRepository) ExistsByBookingID(ctx context.Context, bookingID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM scores WHERE booking_id = $1)", bookingID); err != nil {
		return false, fmt.Errorf("check score exists: %w", err)
	}
	return exists, nil
}

// Upsert writes the score row for one student, replacing any existing row
// for the same booking id.
func (r *ScoreRepository) Upsert(ctx context.Context, score *models.Score) error {
	const query = `INSERT INTO scores (booking_id, mile1, mile2, mile3, irc, attendance, epic_status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (booking_id) DO UPDATE SET
			mile1 = EXCLUDED.mile1,
			mile2 = EXCLUDED.mile2,
			mile3 = EXCLUDED.mile3,
			irc = EXCLUDED.irc,
			attendance = EXCLUDED.attendance,
			epic_status = EXCLUDED.epic_status,
			updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query,
		score.BookingID, score.Mile1, score.Mile2, score.Mile3,
		score.IRC, score.Attendance, score.EpicStatus,
	); err != nil {
		return fmt.Errorf("upsert score: %w", err)
	}
	return nil
}

// Update rewrites an existing score row. Returns sql.ErrNoRows when no row
// exists for the booking id.
func (r *ScoreRepository) Update(ctx context.Context, score *models.Score) error {
	const query = `UPDATE scores SET
			mile1 = $1, mile2 = $2, mile3 = $3, irc = $4, attendance = $5, epic_status = $6, updated_at = NOW()
		WHERE booking_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		score.Mile1, score.Mile2, score.Mile3, score.IRC,
		score.Attendance, score.EpicStatus, score.BookingID,
	)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check score update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
