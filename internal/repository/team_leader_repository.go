package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

// TeamLeaderRepository manages placement team leader accounts. Team leader
// ids are application-generated UUIDs.
type TeamLeaderRepository struct {
	db *sqlx.DB
}

// NewTeamLeaderRepository constructs a TeamLeaderRepository.
func NewTeamLeaderRepository(db *sqlx.DB) *TeamLeaderRepository {
	return &TeamLeaderRepository{db: db}
}

// List returns all team leaders, newest first.
func (r *TeamLeaderRepository) List(ctx context.Context) ([]models.TeamLeader, error) {
	const query = "SELECT id, name, email, phone, role, password FROM team_leaders ORDER BY id DESC"
	var leaders []models.TeamLeader
	if err := r.db.SelectContext(ctx, &leaders, query); err != nil {
		return nil, fmt.Errorf("list team leaders: %w", err)
	}
	return leaders, nil
}

// FindByID fetches one team leader.
func (r *TeamLeaderRepository) FindByID(ctx context.Context, id string) (*models.TeamLeader, error) {
	var leader models.TeamLeader
	if err := r.db.GetContext(ctx, &leader, "SELECT id, name, email, phone, role, password FROM team_leaders WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &leader, nil
}

// ExistsByEmail reports whether a team leader uses the email, optionally
// ignoring one id (for updates checking against other rows).
func (r *TeamLeaderRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	var exists bool
	var err error
	if excludeID == "" {
		err = r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM team_leaders WHERE email = $1)", email)
	} else {
		err = r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM team_leaders WHERE email = $1 AND id <> $2)", email, excludeID)
	}
	if err != nil {
		return false, fmt.Errorf("check team leader email: %w", err)
	}
	return exists, nil
}

// Create inserts one team leader.
func (r *TeamLeaderRepository) Create(ctx context.Context, leader *models.TeamLeader) error {
	const query = `INSERT INTO team_leaders (id, name, email, phone, role, password)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		leader.ID, leader.Name, leader.Email, leader.Phone, leader.Role, leader.Password,
	); err != nil {
		return fmt.Errorf("create team leader: %w", err)
	}
	return nil
}

// UpdateTeamLeaderParams groups the mutable team leader columns.
type UpdateTeamLeaderParams struct {
	Name     *string
	Email    *string
	Phone    *string
	Role     *string
	Password *string
}

// Update applies a partial update to one team leader. Returns
// sql.ErrNoRows when the id matches nothing.
func (r *TeamLeaderRepository) Update(ctx context.Context, id string, params UpdateTeamLeaderParams) error {
	setParts := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Email != nil {
		add("email", *params.Email)
	}
	if params.Phone != nil {
		add("phone", *params.Phone)
	}
	if params.Role != nil {
		add("role", *params.Role)
	}
	if params.Password != nil {
		add("password", *params.Password)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("update team leader: no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE team_leaders SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update team leader: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check team leader update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one team leader. Returns sql.ErrNoRows when nothing
// matched.
func (r *TeamLeaderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM team_leaders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete team leader: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check team leader delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
