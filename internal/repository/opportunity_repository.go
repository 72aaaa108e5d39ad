package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

const opportunityColumns = "id, company_name, drive_date, drive_role, package, selected_batch, domain, created_domain"

// OpportunityRepository manages placement drives and their student
// assignments.
type OpportunityRepository struct {
	db *sqlx.DB
}

// NewOpportunityRepository constructs an OpportunityRepository.
func NewOpportunityRepository(db *sqlx.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

// List returns all opportunities, newest drive first.
func (r *OpportunityRepository) List(ctx context.Context) ([]models.Opportunity, error) {
	query := "SELECT " + opportunityColumns + " FROM opportunities ORDER BY drive_date DESC NULLS LAST, id DESC"
	var opportunities []models.Opportunity
	if err := r.db.SelectContext(ctx, &opportunities, query); err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return opportunities, nil
}

// FindByID fetches one opportunity.
func (r *OpportunityRepository) FindByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	if err := r.db.GetContext(ctx, &opportunity, "SELECT "+opportunityColumns+" FROM opportunities WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &opportunity, nil
}

// Create inserts an opportunity and returns the generated id.
func (r *OpportunityRepository) Create(ctx context.Context, opportunity *models.Opportunity) (int64, error) {
	const query = `INSERT INTO opportunities
		(company_name, drive_date, drive_role, package, selected_batch, domain, created_domain)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query,
		opportunity.CompanyName, opportunity.DriveDate, opportunity.DriveRole,
		opportunity.Package, opportunity.SelectedBatch, opportunity.Domain, opportunity.CreatedDomain,
	); err != nil {
		return 0, fmt.Errorf("create opportunity: %w", err)
	}
	return id, nil
}

// Update rewrites one opportunity. Returns sql.ErrNoRows when the id
// matches nothing.
func (r *OpportunityRepository) Update(ctx context.Context, opportunity *models.Opportunity) error {
	const query = `UPDATE opportunities SET
			company_name = $1, drive_date = $2, drive_role = $3, package = $4,
			selected_batch = $5, domain = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		opportunity.CompanyName, opportunity.DriveDate, opportunity.DriveRole,
		opportunity.Package, opportunity.SelectedBatch, opportunity.Domain, opportunity.ID,
	)
	if err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check opportunity update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one opportunity together with its student assignments.
func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin opportunity delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM opportunity_students WHERE opportunity_id = $1", id); err != nil {
		return fmt.Errorf("delete opportunity assignments: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM opportunities WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check opportunity delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit opportunity delete: %w", err)
	}
	return nil
}

// StudentsFor returns the students currently assigned to an opportunity.
func (r *OpportunityRepository) StudentsFor(ctx context.Context, opportunityID int64) ([]models.Student, error) {
	const query = `SELECT s.id, s.booking_id, s.batch_name, s.batch_no, s.domain, s.name, s.email, s.phone,
			s.placement, s.status, s.company, s.designation, s.salary
		FROM students s
		JOIN opportunity_students os ON os.student_booking_id = s.booking_id
		WHERE os.opportunity_id = $1
		ORDER BY s.id`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, opportunityID); err != nil {
		return nil, fmt.Errorf("list opportunity students: %w", err)
	}
	return students, nil
}

// ReplaceStudents rewrites the full assignment list of an opportunity
// inside one transaction. An empty booking list clears the assignments.
func (r *OpportunityRepository) ReplaceStudents(ctx context.Context, opportunityID int64, bookingIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin assignment rewrite: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var exists bool
	if err := tx.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM opportunities WHERE id = $1)", opportunityID); err != nil {
		return fmt.Errorf("check opportunity exists: %w", err)
	}
	if !exists {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM opportunity_students WHERE opportunity_id = $1", opportunityID); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}

	if len(bookingIDs) > 0 {
		placeholders := make([]string, 0, len(bookingIDs))
		args := make([]interface{}, 0, len(bookingIDs)+1)
		args = append(args, opportunityID)
		for _, bookingID := range bookingIDs {
			args = append(args, bookingID)
			placeholders = append(placeholders, fmt.Sprintf("($1, $%d)", len(args)))
		}
		query := "INSERT INTO opportunity_students (opportunity_id, student_booking_id) VALUES " + strings.Join(placeholders, ", ")
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert assignments: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assignment rewrite: %w", err)
	}
	return nil
}

// AppendStudents adds assignments without touching existing rows.
func (r *OpportunityRepository) AppendStudents(ctx context.Context, opportunityID int64, bookingIDs []string) error {
	if len(bookingIDs) == 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM opportunities WHERE id = $1)", opportunityID); err != nil {
		return fmt.Errorf("check opportunity exists: %w", err)
	}
	if !exists {
		return sql.ErrNoRows
	}

	placeholders := make([]string, 0, len(bookingIDs))
	args := make([]interface{}, 0, len(bookingIDs)+1)
	args = append(args, opportunityID)
	for _, bookingID := range bookingIDs {
		args = append(args, bookingID)
		placeholders = append(placeholders, fmt.Sprintf("($1, $%d)", len(args)))
	}
	query := "INSERT INTO opportunity_students (opportunity_id, student_booking_id) VALUES " + strings.Join(placeholders, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert assignments: %w", err)
	}
	return nil
}
