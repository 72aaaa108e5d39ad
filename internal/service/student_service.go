package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByBookingID(ctx context.Context, bookingID string) (*models.Student, error)
	ExistsByBookingID(ctx context.Context, bookingID string) (bool, error)
	ListByBatchName(ctx context.Context, batchName string) ([]models.Student, error)
	ListByBatchNo(ctx context.Context, batchNo string) ([]models.Student, error)
	SearchByBatchNo(ctx context.Context, fragment string) ([]models.Student, error)
	ListEpicByBatch(ctx context.Context, batchName string) ([]models.Student, error)
	ListPlaced(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	BulkInsert(ctx context.Context, students []models.Student) (int64, error)
	Update(ctx context.Context, bookingID string, fields map[string]interface{}) error
	Delete(ctx context.Context, bookingID string) error
}

type batchFinder interface {
	FindByName(ctx context.Context, batchName string) (*models.Batch, error)
}

// CreateStudentRequest holds payload for registering a single student.
type CreateStudentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Phone     string  `json:"phone"`
	BatchName string  `json:"batch_name" validate:"required"`
	Domain    string  `json:"domain"`
	Mode      string  `json:"mode"`
	Gender    *string `json:"gender"`
	DOB       *string `json:"dob"`
	Address   *string `json:"address"`
	Pincode   *string `json:"pincode"`
	City      *string `json:"city"`
	State     *string `json:"state"`

	TenthPercentage   *float64 `json:"tenth_percentage"`
	TenthYear         *int     `json:"tenth_year"`
	TwelfthPercentage *float64 `json:"twelfth_percentage"`
	TwelfthYear       *int     `json:"twelfth_year"`
	UGPercentage      *float64 `json:"ug_percentage"`
	UGMode            *string  `json:"ug_mode"`
	UGSpecialization  *string  `json:"ug_specialization"`
	UGYear            *int     `json:"ug_year"`
	UGCertificate     bool     `json:"ug_certificate_available"`
	PGPercentage      *float64 `json:"pg_percentage"`
	PGSpecialization  *string  `json:"pg_specialization"`
	PGYear            *int     `json:"pg_year"`
	PGCertificate     bool     `json:"pg_certificate_available"`
	WorkExpYears      *int     `json:"work_experience_years"`
	WorkExpMonths     *int     `json:"work_experience_months"`
	PreviousOrg       *string  `json:"previous_organisation"`
	WillingToRelocate bool     `json:"willing_to_relocate"`
}

// UpdateStudentRequest holds the optional fields of a partial student
// update. Absent fields are left untouched.
type UpdateStudentRequest struct {
	Name                *string  `json:"name"`
	Email               *string  `json:"email"`
	Phone               *string  `json:"phone"`
	BatchName           *string  `json:"batch_name"`
	BatchNo             *string  `json:"batch_no"`
	Domain              *string  `json:"domain"`
	Mode                *string  `json:"mode"`
	Address             *string  `json:"address"`
	City                *string  `json:"city"`
	State               *string  `json:"state"`
	CertificateReceived *string  `json:"certificate_received"`
	EpicStatus          *string  `json:"epic_status"`
	Placement           *string  `json:"placement"`
	Status              *string  `json:"status"`
	TrainerName         *string  `json:"trainer_name"`
	Company             *string  `json:"company"`
	Designation         *string  `json:"designation"`
	Salary              *float64 `json:"salary"`
	PlacedMonth         *string  `json:"placed_month"`
	Attendance          *float64 `json:"attendance"`
	Mile1               *float64 `json:"mile1"`
	Mile2               *float64 `json:"mile2"`
	Mile3               *float64 `json:"mile3"`
	IRC                 *float64 `json:"irc"`
	DomainScore         *float64 `json:"domain_score"`
	AptitudeScore       *float64 `json:"aptitude_score"`
	CommunicationScore  *float64 `json:"communication_score"`
}

// BulkStudentRow is one row of a bulk import payload. Every field except
// the booking id may be absent; defaults are applied before insert.
type BulkStudentRow struct {
	BookingID string   `json:"booking_id" validate:"required"`
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	AltPhone  *string  `json:"alternate_phone"`
	BatchName *string  `json:"batch_name"`
	Domain    *string  `json:"domain"`
	Mode      *string  `json:"mode"`
	Gender    *string  `json:"gender"`
	DOB       *string  `json:"dob"`
	Address   *string  `json:"address"`
	Pincode   *string  `json:"pincode"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`

	TenthPercentage     *float64 `json:"tenth_percentage"`
	TenthYear           *int     `json:"tenth_year"`
	TwelfthPercentage   *float64 `json:"twelfth_percentage"`
	TwelfthYear         *int     `json:"twelfth_year"`
	UGPercentage        *float64 `json:"ug_percentage"`
	UGMode              *string  `json:"ug_mode"`
	UGSpecialization    *string  `json:"ug_specialization"`
	UGYear              *int     `json:"ug_year"`
	UGCertificate       *bool    `json:"ug_certificate_available"`
	PGPercentage        *float64 `json:"pg_percentage"`
	PGSpecialization    *string  `json:"pg_specialization"`
	PGYear              *int     `json:"pg_year"`
	PGCertificate       *bool    `json:"pg_certificate_available"`
	WorkExpYears        *int     `json:"work_experience_years"`
	WorkExpMonths       *int     `json:"work_experience_months"`
	PreviousOrg         *string  `json:"previous_organisation"`
	WillingToRelocate   *bool    `json:"willing_to_relocate"`
	CertificateReceived *string  `json:"certificate_received"`
	Placement           *string  `json:"placement"`
	Status              *string  `json:"status"`
	TrainerName         *string  `json:"trainer_name"`
}

// BulkImportResult summarises an import run.
type BulkImportResult struct {
	Inserted int64 `json:"inserted"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	batches   batchFinder
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, batches batchFinder, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, batches: batches, cache: cache, validator: validate, logger: logger}
}

// List returns students matching the optional filters.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student by booking id.
func (s *StudentService) Get(ctx context.Context, bookingID string) (*models.Student, error) {
	student, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// ListByBatch returns the students of one batch.
func (s *StudentService) ListByBatch(ctx context.Context, batchName string) ([]models.Student, error) {
	students, err := s.repo.ListByBatchName(ctx, batchName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batch students")
	}
	return students, nil
}

// ListByBatchNo returns the students enrolled under one batch number.
func (s *StudentService) ListByBatchNo(ctx context.Context, batchNo string) ([]models.Student, error) {
	students, err := s.repo.ListByBatchNo(ctx, batchNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batch students")
	}
	return students, nil
}

// SearchByBatchNo returns students whose batch number contains the
// fragment.
func (s *StudentService) SearchByBatchNo(ctx context.Context, fragment string) ([]models.Student, error) {
	students, err := s.repo.SearchByBatchNo(ctx, strings.TrimSpace(fragment))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search students")
	}
	return students, nil
}

// EpicByBatch returns the students of one batch with display EPIC
// statuses applied.
func (s *StudentService) EpicByBatch(ctx context.Context, batchName string) ([]models.Student, error) {
	students, err := s.repo.ListEpicByBatch(ctx, batchName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list epic statuses")
	}
	return students, nil
}

// ListPlaced returns every placed student.
func (s *StudentService) ListPlaced(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.ListPlaced(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list placed students")
	}
	return students, nil
}

// Create registers one student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	exists, err := s.repo.ExistsByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate booking id")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "booking id already used")
	}

	student := &models.Student{
		BookingID:           req.BookingID,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		BatchName:           req.BatchName,
		Domain:              req.Domain,
		Mode:                req.Mode,
		Gender:              req.Gender,
		DOB:                 req.DOB,
		Address:             req.Address,
		Pincode:             req.Pincode,
		City:                req.City,
		State:               req.State,
		TenthPercentage:     req.TenthPercentage,
		TenthYear:           req.TenthYear,
		TwelfthPercentage:   req.TwelfthPercentage,
		TwelfthYear:         req.TwelfthYear,
		UGPercentage:        req.UGPercentage,
		UGMode:              req.UGMode,
		UGSpecialization:    req.UGSpecialization,
		UGYear:              req.UGYear,
		UGCertificate:       req.UGCertificate,
		PGPercentage:        req.PGPercentage,
		PGSpecialization:    req.PGSpecialization,
		PGYear:              req.PGYear,
		PGCertificate:       req.PGCertificate,
		WorkExpYears:        req.WorkExpYears,
		WorkExpMonths:       req.WorkExpMonths,
		PreviousOrg:         req.PreviousOrg,
		WillingToRelocate:   req.WillingToRelocate,
		CertificateReceived: "N",
		Placement:           models.PlacementYetToPlace,
		Status:              models.StatusOngoing,
	}
	s.resolveBatch(ctx, student)

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	s.invalidateDashboards(ctx)
	return student, nil
}

// Update applies a partial update to one student.
func (s *StudentService) Update(ctx context.Context, bookingID string, req UpdateStudentRequest) error {
	fields := map[string]interface{}{}
	addString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	addFloat := func(column string, value *float64) {
		if value != nil {
			fields[column] = *value
		}
	}
	addString("name", req.Name)
	addString("email", req.Email)
	addString("phone", req.Phone)
	addString("batch_name", req.BatchName)
	addString("batch_no", req.BatchNo)
	addString("domain", req.Domain)
	addString("mode", req.Mode)
	addString("address", req.Address)
	addString("city", req.City)
	addString("state", req.State)
	addString("certificate_received", req.CertificateReceived)
	addString("epic_status", req.EpicStatus)
	addString("placement", req.Placement)
	addString("status", req.Status)
	addString("trainer_name", req.TrainerName)
	addString("company", req.Company)
	addString("designation", req.Designation)
	addFloat("salary", req.Salary)
	addFloat("attendance", req.Attendance)
	addFloat("mile1", req.Mile1)
	addFloat("mile2", req.Mile2)
	addFloat("mile3", req.Mile3)
	addFloat("irc", req.IRC)
	addFloat("domain_score", req.DomainScore)
	addFloat("aptitude_score", req.AptitudeScore)
	addFloat("communication_score", req.CommunicationScore)
	if req.PlacedMonth != nil {
		parsed, err := parseDateOnly(*req.PlacedMonth)
		if err != nil {
			return appErrors.Clone(appErrors.ErrValidation, "invalid placed_month")
		}
		fields["placed_month"] = parsed
	}

	if len(fields) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if err := s.repo.Update(ctx, bookingID, fields); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateDashboards(ctx)
	return nil
}

// SetPlacementFlag sets the placement column to one of the two manual
// opt-out states. Every other placement value is driven by score and
// opportunity updates, not this endpoint.
func (s *StudentService) SetPlacementFlag(ctx context.Context, bookingID, placement string) error {
	if placement != models.PlacementNotRequired && placement != models.PlacementIneligible {
		return appErrors.Clone(appErrors.ErrValidation, "placement must be Not Required or Ineligible")
	}
	if err := s.repo.Update(ctx, bookingID, map[string]interface{}{"placement": placement}); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateDashboards(ctx)
	return nil
}

// Delete removes one student.
func (s *StudentService) Delete(ctx context.Context, bookingID string) error {
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.invalidateDashboards(ctx)
	return nil
}

// BulkImport inserts a sheet of students with defaults applied. Every row
// is inserted as given; the batch name falls back to the path parameter
// when a row leaves it blank.
func (s *StudentService) BulkImport(ctx context.Context, batchName string, rows []BulkStudentRow) (*BulkImportResult, error) {
	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no rows to import")
	}

	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, s.normaliseRow(ctx, batchName, row))
	}

	inserted, err := s.repo.BulkInsert(ctx, students)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import students")
	}
	s.invalidateDashboards(ctx)
	return &BulkImportResult{Inserted: inserted}, nil
}

func (s *StudentService) normaliseRow(ctx context.Context, fallbackBatch string, row BulkStudentRow) models.Student {
	str := func(v *string) string {
		if v == nil {
			return ""
		}
		return strings.TrimSpace(*v)
	}
	boolVal := func(v *bool) bool {
		return v != nil && *v
	}

	student := models.Student{
		BookingID:           strings.TrimSpace(row.BookingID),
		Name:                str(row.Name),
		Email:               str(row.Email),
		Phone:               str(row.Phone),
		AltPhone:            row.AltPhone,
		BatchName:           str(row.BatchName),
		Domain:              str(row.Domain),
		Mode:                str(row.Mode),
		Gender:              row.Gender,
		DOB:                 row.DOB,
		Address:             row.Address,
		Pincode:             row.Pincode,
		City:                row.City,
		State:               row.State,
		TenthPercentage:     row.TenthPercentage,
		TenthYear:           row.TenthYear,
		TwelfthPercentage:   row.TwelfthPercentage,
		TwelfthYear:         row.TwelfthYear,
		UGPercentage:        row.UGPercentage,
		UGMode:              row.UGMode,
		UGSpecialization:    row.UGSpecialization,
		UGYear:              row.UGYear,
		UGCertificate:       boolVal(row.UGCertificate),
		PGPercentage:        row.PGPercentage,
		PGSpecialization:    row.PGSpecialization,
		PGYear:              row.PGYear,
		PGCertificate:       boolVal(row.PGCertificate),
		WorkExpYears:        row.WorkExpYears,
		WorkExpMonths:       row.WorkExpMonths,
		PreviousOrg:         row.PreviousOrg,
		WillingToRelocate:   boolVal(row.WillingToRelocate),
		CertificateReceived: str(row.CertificateReceived),
		Placement:           str(row.Placement),
		Status:              str(row.Status),
		TrainerName:         row.TrainerName,
	}

	if student.BatchName == "" {
		student.BatchName = fallbackBatch
	}
	if student.CertificateReceived == "" {
		student.CertificateReceived = "N"
	}
	if student.Status == "" {
		student.Status = models.StatusOngoing
	}
	// Placement stays empty when the sheet leaves it out; imported rows do
	// not count as waiting until someone sets the flag.
	s.resolveBatch(ctx, &student)
	return student
}

// resolveBatch fills batch_id and batch_no from the batch name when the
// batch exists. Unknown batch names are tolerated; the linkage stays
// empty until the batch is registered.
func (s *StudentService) resolveBatch(ctx context.Context, student *models.Student) {
	if s.batches == nil || student.BatchName == "" {
		return
	}
	batch, err := s.batches.FindByName(ctx, student.BatchName)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("batch lookup failed", zap.String("batch_name", student.BatchName), zap.Error(err))
		}
		return
	}
	student.BatchID = &batch.ID
	if student.BatchNo == "" {
		student.BatchNo = batch.BatchNo
	}
	if student.Domain == "" {
		student.Domain = batch.Domain
	}
}

func (s *StudentService) invalidateDashboards(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, dashboardCacheKeyPattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
