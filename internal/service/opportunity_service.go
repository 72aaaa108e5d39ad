package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/domainkey"
	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type opportunityRepository interface {
	List(ctx context.Context) ([]models.Opportunity, error)
	FindByID(ctx context.Context, id int64) (*models.Opportunity, error)
	Create(ctx context.Context, opportunity *models.Opportunity) (int64, error)
	Update(ctx context.Context, opportunity *models.Opportunity) error
	Delete(ctx context.Context, id int64) error
	StudentsFor(ctx context.Context, opportunityID int64) ([]models.Student, error)
	ReplaceStudents(ctx context.Context, opportunityID int64, bookingIDs []string) error
	AppendStudents(ctx context.Context, opportunityID int64, bookingIDs []string) error
}

// OpportunityRequest holds payload for creating or updating a drive.
type OpportunityRequest struct {
	CompanyName   string   `json:"company_name" validate:"required"`
	DriveDate     *string  `json:"drive_date"`
	DriveRole     string   `json:"drive_role" validate:"required"`
	Package       *float64 `json:"package" validate:"omitempty,gte=0"`
	SelectedBatch string   `json:"selected_batch"`
	Domain        string   `json:"domain" validate:"required"`
}

// AssignStudentsRequest rewrites the student list of a drive.
type AssignStudentsRequest struct {
	BookingIDs []string `json:"booking_ids" validate:"required,min=1,dive,required"`
}

// OpportunityDetail pairs a drive with its assigned students.
type OpportunityDetail struct {
	models.Opportunity
	Students []models.Student `json:"students"`
}

// OpportunityService handles placement drive use-cases.
type OpportunityService struct {
	repo      opportunityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOpportunityService constructs the opportunity service.
func NewOpportunityService(repo opportunityRepository, validate *validator.Validate, logger *zap.Logger) *OpportunityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpportunityService{repo: repo, validator: validate, logger: logger}
}

// List returns all drives.
func (s *OpportunityService) List(ctx context.Context) ([]models.Opportunity, error) {
	opportunities, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list opportunities")
	}
	return opportunities, nil
}

// Get returns one drive with its assigned students.
func (s *OpportunityService) Get(ctx context.Context, id int64) (*OpportunityDetail, error) {
	opportunity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load opportunity")
	}
	students, err := s.repo.StudentsFor(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load opportunity students")
	}
	return &OpportunityDetail{Opportunity: *opportunity, Students: students}, nil
}

// Create registers a drive. The creating domain is captured canonically
// so cross-domain drives can be traced back.
func (s *OpportunityService) Create(ctx context.Context, req OpportunityRequest) (*models.Opportunity, error) {
	opportunity, err := s.build(req)
	if err != nil {
		return nil, err
	}
	opportunity.CreatedDomain = domainkey.Canonical(req.Domain)

	id, err := s.repo.Create(ctx, opportunity)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create opportunity")
	}
	opportunity.ID = id
	return opportunity, nil
}

// Update rewrites one drive. The created domain is immutable.
func (s *OpportunityService) Update(ctx context.Context, id int64, req OpportunityRequest) error {
	opportunity, err := s.build(req)
	if err != nil {
		return err
	}
	opportunity.ID = id
	if err := s.repo.Update(ctx, opportunity); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update opportunity")
	}
	return nil
}

// Delete removes one drive and its assignments.
func (s *OpportunityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete opportunity")
	}
	return nil
}

// AssignStudents replaces the student list of a drive. Repeating the call
// with a different list reassigns; the previous assignments are dropped.
func (s *OpportunityService) AssignStudents(ctx context.Context, id int64, req AssignStudentsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	if err := s.repo.ReplaceStudents(ctx, id, req.BookingIDs); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign students")
	}
	return nil
}

// AppendStudents adds to the student list without dropping prior assignments.
func (s *OpportunityService) AppendStudents(ctx context.Context, id int64, req AssignStudentsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	if err := s.repo.AppendStudents(ctx, id, req.BookingIDs); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign students")
	}
	return nil
}

func (s *OpportunityService) build(req OpportunityRequest) (*models.Opportunity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid opportunity payload")
	}
	opportunity := &models.Opportunity{
		CompanyName:   req.CompanyName,
		DriveRole:     req.DriveRole,
		Package:       req.Package,
		SelectedBatch: req.SelectedBatch,
		Domain:        domainkey.Canonical(req.Domain),
	}
	if req.DriveDate != nil {
		parsed, err := parseDateOnly(*req.DriveDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid drive_date")
		}
		opportunity.DriveDate = parsed
	}
	return opportunity, nil
}
