package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/placement-success/placement-api/internal/models"
)

const studentColumns = `id, booking_id, batch_id, batch_name, batch_no, domain, name, email, phone,
	alternate_phone, mode, gender, dob, address, pincode, city, state, photo_url, cv_url,
	tenth_percentage, tenth_year, twelfth_percentage, twelfth_year,
	ug_percentage, ug_mode, ug_specialization, ug_year, ug_certificate_available, ug_arrears_pending,
	pg_percentage, pg_specialization, pg_year, pg_certificate_available, pg_arrears_pending,
	gap_in_education, gap_reason, work_experience_years, work_experience_months, previous_organisation,
	willing_to_relocate, languages_write, languages_read, languages_speak,
	certificate_received, epic_status, placement, status, trainer_name,
	company, designation, salary, placed_month,
	domain_score, aptitude_score, communication_score, attendance, mile1, mile2, mile3, irc, created_at`

// studentUpdatableColumns is the whitelist for partial updates, in the
// order the SET clause is built. Keys outside this list are rejected.
var studentUpdatableColumns = []string{
	"batch_id", "batch_name", "batch_no", "domain", "name", "email", "phone",
	"alternate_phone", "mode", "gender", "dob", "address", "pincode", "city", "state",
	"photo_url", "cv_url",
	"tenth_percentage", "tenth_year", "twelfth_percentage", "twelfth_year",
	"ug_percentage", "ug_mode", "ug_specialization", "ug_year", "ug_certificate_available", "ug_arrears_pending",
	"pg_percentage", "pg_specialization", "pg_year", "pg_certificate_available", "pg_arrears_pending",
	"gap_in_education", "gap_reason", "work_experience_years", "work_experience_months", "previous_organisation",
	"willing_to_relocate", "languages_write", "languages_read", "languages_speak",
	"certificate_received", "epic_status", "placement", "status", "trainer_name",
	"company", "designation", "salary", "placed_month",
	"domain_score", "aptitude_score", "communication_score", "attendance",
	"mile1", "mile2", "mile3", "irc",
}

// StudentRepository manages persistence for placement candidates.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the optional equality filters.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students WHERE 1=1"
	args := []interface{}{}

	if filter.BatchID != "" {
		args = append(args, filter.BatchID)
		query += fmt.Sprintf(" AND batch_id = $%d", len(args))
	}
	if filter.BatchName != "" {
		args = append(args, filter.BatchName)
		query += fmt.Sprintf(" AND batch_name = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Placement != "" {
		args = append(args, filter.Placement)
		query += fmt.Sprintf(" AND placement = $%d", len(args))
	}

	query += " ORDER BY id"

	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// SearchByBatchNo returns students whose batch number contains the given
// fragment. An empty fragment matches everyone.
func (r *StudentRepository) SearchByBatchNo(ctx context.Context, fragment string) ([]models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students"
	args := []interface{}{}
	if fragment != "" {
		query += " WHERE batch_no LIKE $1"
		args = append(args, "%"+fragment+"%")
	}
	query += " ORDER BY id"

	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	return students, nil
}

// FindByBookingID fetches one student by the booking business key.
func (r *StudentRepository) FindByBookingID(ctx context.Context, bookingID string) (*models.Student, error) {
	var student models.Student
	if err := r.db.GetContext(ctx, &student, "SELECT "+studentColumns+" FROM students WHERE booking_id = $1", bookingID); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByBookingID reports whether a student row exists for the booking id.
func (r *StudentRepository) ExistsByBookingID(ctx context.Context, bookingID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM students WHERE booking_id = $1)", bookingID); err != nil {
		return false, fmt.Errorf("check student exists: %w", err)
	}
	return exists, nil
}

// ListByBatchName returns the students of one batch.
func (r *StudentRepository) ListByBatchName(ctx context.Context, batchName string) ([]models.Student, error) {
	var students []models.Student
	query := "SELECT " + studentColumns + " FROM students WHERE batch_name = $1 ORDER BY id"
	if err := r.db.SelectContext(ctx, &students, query, batchName); err != nil {
		return nil, fmt.Errorf("list batch students: %w", err)
	}
	return students, nil
}

// ListByBatchNo returns every student linked to one batch number.
func (r *StudentRepository) ListByBatchNo(ctx context.Context, batchNo string) ([]models.Student, error) {
	var students []models.Student
	query := "SELECT " + studentColumns + " FROM students WHERE batch_no = $1 ORDER BY id"
	if err := r.db.SelectContext(ctx, &students, query, batchNo); err != nil {
		return nil, fmt.Errorf("list batch students: %w", err)
	}
	return students, nil
}

// ListEpicByBatch returns the students of one batch with the EPIC status
// coalesced to Capable when unset. The stored value is left untouched.
func (r *StudentRepository) ListEpicByBatch(ctx context.Context, batchName string) ([]models.Student, error) {
	query := `SELECT id, booking_id, batch_name, batch_no, name, email, phone,
		mile1, mile2, mile3, irc, attendance,
		COALESCE(NULLIF(epic_status, ''), 'Capable') AS epic_status
		FROM students WHERE batch_name = $1 ORDER BY id`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, batchName); err != nil {
		return nil, fmt.Errorf("list batch epic statuses: %w", err)
	}
	return students, nil
}

// ListPlaced returns every placed student.
func (r *StudentRepository) ListPlaced(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	query := "SELECT " + studentColumns + " FROM students WHERE placement = $1 ORDER BY id"
	if err := r.db.SelectContext(ctx, &students, query, models.PlacementPlaced); err != nil {
		return nil, fmt.Errorf("list placed students: %w", err)
	}
	return students, nil
}

// Create inserts one student row.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students
		(booking_id, batch_id, batch_name, batch_no, domain, name, email, phone,
		alternate_phone, mode, gender, dob, address, pincode, city, state, photo_url, cv_url,
		tenth_percentage, tenth_year, twelfth_percentage, twelfth_year,
		ug_percentage, ug_mode, ug_specialization, ug_year, ug_certificate_available, ug_arrears_pending,
		pg_percentage, pg_specialization, pg_year, pg_certificate_available, pg_arrears_pending,
		gap_in_education, gap_reason, work_experience_years, work_experience_months, previous_organisation,
		willing_to_relocate, languages_write, languages_read, languages_speak,
		certificate_received, epic_status, placement, status, trainer_name,
		company, designation, salary, placed_month,
		domain_score, aptitude_score, communication_score, attendance, mile1, mile2, mile3, irc)
		VALUES
		(:booking_id, :batch_id, :batch_name, :batch_no, :domain, :name, :email, :phone,
		:alternate_phone, :mode, :gender, :dob, :address, :pincode, :city, :state, :photo_url, :cv_url,
		:tenth_percentage, :tenth_year, :twelfth_percentage, :twelfth_year,
		:ug_percentage, :ug_mode, :ug_specialization, :ug_year, :ug_certificate_available, :ug_arrears_pending,
		:pg_percentage, :pg_specialization, :pg_year, :pg_certificate_available, :pg_arrears_pending,
		:gap_in_education, :gap_reason, :work_experience_years, :work_experience_months, :previous_organisation,
		:willing_to_relocate, :languages_write, :languages_read, :languages_speak,
		:certificate_received, :epic_status, :placement, :status, :trainer_name,
		:company, :designation, :salary, :placed_month,
		:domain_score, :aptitude_score, :communication_score, :attendance, :mile1, :mile2, :mile3, :irc)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// BulkInsert inserts a batch of students in one multi-row statement and
// returns the number of rows written.
func (r *StudentRepository) BulkInsert(ctx context.Context, students []models.Student) (int64, error) {
	if len(students) == 0 {
		return 0, nil
	}
	const query = `INSERT INTO students
		(booking_id, batch_id, batch_name, batch_no, domain, name, email, phone,
		alternate_phone, mode, gender, dob, address, pincode, city, state,
		tenth_percentage, tenth_year, twelfth_percentage, twelfth_year,
		ug_percentage, ug_mode, ug_specialization, ug_year, ug_certificate_available, ug_arrears_pending,
		pg_percentage, pg_specialization, pg_year, pg_certificate_available, pg_arrears_pending,
		gap_in_education, gap_reason, work_experience_years, work_experience_months, previous_organisation,
		willing_to_relocate, languages_write, languages_read, languages_speak,
		certificate_received, epic_status, placement, status, trainer_name)
		VALUES
		(:booking_id, :batch_id, :batch_name, :batch_no, :domain, :name, :email, :phone,
		:alternate_phone, :mode, :gender, :dob, :address, :pincode, :city, :state,
		:tenth_percentage, :tenth_year, :twelfth_percentage, :twelfth_year,
		:ug_percentage, :ug_mode, :ug_specialization, :ug_year, :ug_certificate_available, :ug_arrears_pending,
		:pg_percentage, :pg_specialization, :pg_year, :pg_certificate_available, :pg_arrears_pending,
		:gap_in_education, :gap_reason, :work_experience_years, :work_experience_months, :previous_organisation,
		:willing_to_relocate, :languages_write, :languages_read, :languages_speak,
		:certificate_received, :epic_status, :placement, :status, :trainer_name)`
	result, err := r.db.NamedExecContext(ctx, query, students)
	if err != nil {
		return 0, fmt.Errorf("bulk insert students: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count inserted students: %w", err)
	}
	return rows, nil
}

// Update applies a partial update addressed by booking id. The fields map
// is keyed by column name; unknown columns are rejected before any SQL
// runs. Returns sql.ErrNoRows when the booking id matches nothing.
func (r *StudentRepository) Update(ctx context.Context, bookingID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return fmt.Errorf("update student: no fields to update")
	}

	setParts := []string{}
	args := []interface{}{}
	for _, column := range studentUpdatableColumns {
		value, ok := fields[column]
		if !ok {
			continue
		}
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(setParts) != len(fields) {
		return fmt.Errorf("update student: unknown column in update set")
	}

	args = append(args, bookingID)
	query := fmt.Sprintf("UPDATE students SET %s WHERE booking_id = $%d", strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check student update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes one student by booking id. Returns sql.ErrNoRows when
// nothing matched.
func (r *StudentRepository) Delete(ctx context.Context, bookingID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE booking_id = $1", bookingID)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check student delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
