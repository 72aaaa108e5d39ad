package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type spocRepository interface {
	List(ctx context.Context) ([]models.Spoc, error)
	FindByID(ctx context.Context, id int64) (*models.Spoc, error)
	Create(ctx context.Context, spoc *models.Spoc) (int64, error)
	Update(ctx context.Context, spoc *models.Spoc) error
	Delete(ctx context.Context, id int64) error
}

// SpocRequest holds payload for creating or updating a company contact.
// Every field is required; a contact card with holes in it is useless to
// the placement team.
type SpocRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
}

// SpocService handles company contact use-cases.
type SpocService struct {
	repo      spocRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSpocService constructs the SPOC service.
func NewSpocService(repo spocRepository, validate *validator.Validate, logger *zap.Logger) *SpocService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpocService{repo: repo, validator: validate, logger: logger}
}

// List returns all contacts.
func (s *SpocService) List(ctx context.Context) ([]models.Spoc, error) {
	spocs, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list spocs")
	}
	return spocs, nil
}

// Get returns one contact.
func (s *SpocService) Get(ctx context.Context, id int64) (*models.Spoc, error) {
	spoc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "spoc not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load spoc")
	}
	return spoc, nil
}

// Create registers a contact.
func (s *SpocService) Create(ctx context.Context, req SpocRequest) (*models.Spoc, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid spoc payload")
	}
	spoc := &models.Spoc{Name: req.Name, Company: req.Company, Address: req.Address, Email: req.Email, Phone: req.Phone}
	id, err := s.repo.Create(ctx, spoc)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create spoc")
	}
	spoc.ID = id
	return spoc, nil
}

// Update rewrites one contact.
func (s *SpocService) Update(ctx context.Context, id int64, req SpocRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid spoc payload")
	}
	spoc := &models.Spoc{ID: id, Name: req.Name, Company: req.Company, Address: req.Address, Email: req.Email, Phone: req.Phone}
	if err := s.repo.Update(ctx, spoc); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "spoc not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update spoc")
	}
	return nil
}

// Delete removes one contact.
func (s *SpocService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "spoc not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete spoc")
	}
	return nil
}
