package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// UserRepository manages dashboard login accounts. The password column is
// written at creation and rotation only and never selected into listings.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users without password hashes, newest first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = "SELECT id, name, email, phone, role, created_at, updated_at FROM users ORDER BY id DESC"
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches one user without the password hash.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	const query = "SELECT id, name, email, phone, role, created_at, updated_at FROM users WHERE id = $1"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user account uses the email, optionally
// ignoring one id.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	var err error
	if excludeID == 0 {
		err = r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email)
	} else {
		err = r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)", email, excludeID)
	}
	if err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

// Create inserts one user with a pre-hashed password and returns the
// generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	const query = `INSERT INTO users (name, email, phone, role, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query,
		user.Name, user.Email, user.Phone, user.Role, user.PasswordHash,
	); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Update rewrites the profile columns of one user. The password hash is
// not touched here. Returns sql.ErrNoRows when the id matches nothing.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	const query = `UPDATE users SET name = $1, email = $2, phone = $3, role = $4, updated_at = NOW() WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.Phone, user.Role, user.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check user update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one user. Returns sql.ErrNoRows when nothing matched.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check user delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
