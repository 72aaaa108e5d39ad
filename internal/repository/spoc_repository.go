package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// SpocRepository manages company single points of contact.
type SpocRepository struct {
	db *sqlx.DB
}

// NewSpocRepository constructs a SpocRepository.
func NewSpocRepository(db *sqlx.DB) *SpocRepository {
	return &SpocRepository{db: db}
}

// List returns all SPOCs, newest first.
func (r *SpocRepository) List(ctx context.Context) ([]models.Spoc, error) {
	const query = "SELECT id, name, company, address, email, phone FROM spocs ORDER BY id DESC"
	var spocs []models.Spoc
	if err := r.db.SelectContext(ctx, &spocs, query); err != nil {
		return nil, fmt.Errorf("list spocs: %w", err)
	}
	return spocs, nil
}

// FindByID fetches one SPOC.
func (r *SpocRepository) FindByID(ctx context.Context, id int64) (*models.Spoc, error) {
	var spoc models.Spoc
	if err := r.db.GetContext(ctx, &spoc, "SELECT id, name, company, address, email, phone FROM spocs WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &spoc, nil
}

// Create inserts one SPOC and returns the generated id.
func (r *SpocRepository) Create(ctx context.Context, spoc *models.Spoc) (int64, error) {
	const query = `INSERT INTO spocs (name, company, address, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, spoc.Name, spoc.Company, spoc.Address, spoc.Email, spoc.Phone); err != nil {
		return 0, fmt.Errorf("create spoc: %w", err)
	}
	return id, nil
}

// Update rewrites one SPOC. Returns sql.ErrNoRows when the id matches
// nothing.
func (r *SpocRepository) Update(ctx context.Context, spoc *models.Spoc) error {
	const query = `UPDATE spocs SET name = $1, company = $2, address = $3, email = $4, phone = $5 WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query, spoc.Name, spoc.Company, spoc.Address, spoc.Email, spoc.Phone, spoc.ID)
	if err != nil {
		return fmt.Errorf("update spoc: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check spoc update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one SPOC. Returns sql.ErrNoRows when nothing matched.
func (r *SpocRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM spocs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete spoc: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check spoc delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
