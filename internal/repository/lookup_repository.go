package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// KeyedLabelRepository manages a key+label reference table. The table name
// is fixed at construction; one instance serves domains, EPIC levels or
// user types.
type KeyedLabelRepository struct {
	db    *sqlx.DB
	table string
}

// NewKeyedLabelRepository constructs a KeyedLabelRepository over the named
// table.
func NewKeyedLabelRepository(db *sqlx.DB, table string) *KeyedLabelRepository {
	return &KeyedLabelRepository{db: db, table: table}
}

// List returns every row, oldest first.
func (r *KeyedLabelRepository) List(ctx context.Context) ([]models.KeyedLabel, error) {
	query := fmt.Sprintf("SELECT id, key, label FROM %s ORDER BY id", r.table)
	var rows []models.KeyedLabel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return rows, nil
}

// FindByID fetches one row.
func (r *KeyedLabelRepository) FindByID(ctx context.Context, id int64) (*models.KeyedLabel, error) {
	query := fmt.Sprintf("SELECT id, key, label FROM %s WHERE id = $1", r.table)
	var row models.KeyedLabel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts one row and returns the generated id.
func (r *KeyedLabelRepository) Create(ctx context.Context, key, label string) (int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (key, label) VALUES ($1, $2) RETURNING id", r.table)
	var id int64
	if err := r.db.GetContext(ctx, &id, query, key, label); err != nil {
		return 0, fmt.Errorf("create %s row: %w", r.table, err)
	}
	return id, nil
}

// Update rewrites one row. Returns sql.ErrNoRows when the id matches
// nothing.
func (r *KeyedLabelRepository) Update(ctx context.Context, id int64, key, label string) error {
	query := fmt.Sprintf("UPDATE %s SET key = $1, label = $2 WHERE id = $3", r.table)
	result, err := r.db.ExecContext(ctx, query, key, label, id)
	if err != nil {
		return fmt.Errorf("update %s row: %w", r.table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check %s update rows: %w", r.table, err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one row. Returns sql.ErrNoRows when nothing matched.
func (r *KeyedLabelRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s row: %w", r.table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check %s delete rows: %w", r.table, err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// LabelRepository manages a label-only reference table (eligibility,
// batch and placement statuses).
type LabelRepository struct {
	db    *sqlx.DB
	table string
}

// NewLabelRepository constructs a LabelRepository over the named table.
func NewLabelRepository(db *sqlx.DB, table string) *LabelRepository {
	return &LabelRepository{db: db, table: table}
}

// List returns every row, oldest first.
func (r *LabelRepository) List(ctx context.Context) ([]models.Label, error) {
	query := fmt.Sprintf("SELECT id, label, created_at FROM %s ORDER BY id", r.table)
	var rows []models.Label
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return rows, nil
}

// FindByID fetches one row.
func (r *LabelRepository) FindByID(ctx context.Context, id int64) (*models.Label, error) {
	query := fmt.Sprintf("SELECT id, label, created_at FROM %s WHERE id = $1", r.table)
	var row models.Label
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts one row and returns the generated id.
func (r *LabelRepository) Create(ctx context.Context, label string) (int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (label, created_at) VALUES ($1, NOW()) RETURNING id", r.table)
	var id int64
	if err := r.db.GetContext(ctx, &id, query, label); err != nil {
		return 0, fmt.Errorf("create %s row: %w", r.table, err)
	}
	return id, nil
}

// Update rewrites one row. Returns sql.ErrNoRows when the id matches
// nothing.
func (r *LabelRepository) Update(ctx context.Context, id int64, label string) error {
	query := fmt.Sprintf("UPDATE %s SET label = $1 WHERE id = $2", r.table)
	result, err := r.db.ExecContext(ctx, query, label, id)
	if err != nil {
		return fmt.Errorf("update %s row: %w", r.table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check %s update rows: %w", r.table, err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one row. Returns sql.ErrNoRows when nothing matched.
func (r *LabelRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s row: %w", r.table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check %s delete rows: %w", r.table, err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
