package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/domainkey"
	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/repository"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

// dashboardCacheKeyPattern matches every cached dashboard payload.
// Mutations on batches, students and scores invalidate the lot.
const dashboardCacheKeyPattern = "dashboard:*"

type batchRepository interface {
	List(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error)
	FindByID(ctx context.Context, id int64) (*models.Batch, error)
	FindByName(ctx context.Context, batchName string) (*models.Batch, error)
	Create(ctx context.Context, batch *models.Batch) (int64, error)
	Update(ctx context.Context, id int64, params repository.UpdateBatchParams) error
	Delete(ctx context.Context, id int64) error
	Transfer(ctx context.Context, params repository.TransferParams) error
}

type batchStudentLister interface {
	ListByBatchName(ctx context.Context, batchName string) ([]models.Student, error)
	ListByBatchNo(ctx context.Context, batchNo string) ([]models.Student, error)
}

type cacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CreateBatchRequest holds payload for creating batches.
type CreateBatchRequest struct {
	BatchNo     string  `json:"batch_no" validate:"required"`
	BatchName   string  `json:"batch_name" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	Mode        string  `json:"mode" validate:"required"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Domain      string  `json:"domain" validate:"required"`
	Sections    *string `json:"sections"`
	TrainerName *string `json:"trainer_name"`
	TotalCount  *int    `json:"total_count"`
}

// UpdateBatchRequest holds the optional fields of a batch update.
type UpdateBatchRequest struct {
	BatchName   *string `json:"batch_name"`
	Status      *string `json:"status"`
	Mode        *string `json:"mode"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Domain      *string `json:"domain"`
	TrainerName *string `json:"trainer_name"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}

// TransferStudentRequest moves one student into another batch. The
// booking id comes from the route path, not the body.
type TransferStudentRequest struct {
	BookingID     string `json:"-" validate:"required"`
	ToBatch       string `json:"to_batch" validate:"required"`
	Domain        string `json:"domain"`
	Reason        string `json:"reason" validate:"required"`
	AttachmentURL string `json:"attachment_url"`
	RequestedBy   string `json:"requested_by"`
}

// BatchDetail pairs a batch with its current students.
type BatchDetail struct {
	models.Batch
	Students []models.Student `json:"students"`
}

// BatchService handles batch use-cases.
type BatchService struct {
	repo      batchRepository
	students  batchStudentLister
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBatchService constructs the batch service.
func NewBatchService(repo batchRepository, students batchStudentLister, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *BatchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{repo: repo, students: students, cache: cache, validator: validate, logger: logger}
}

// List returns batches matching the optional search filters.
func (s *BatchService) List(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error) {
	batches, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batches")
	}
	return batches, nil
}

// Get returns one batch by id together with the students enrolled under
// its batch number.
func (s *BatchService) Get(ctx context.Context, id int64) (*BatchDetail, error) {
	batch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}
	students, err := s.students.ListByBatchNo(ctx, batch.BatchNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch students")
	}
	return &BatchDetail{Batch: *batch, Students: students}, nil
}

// GetByName returns one batch with its students.
func (s *BatchService) GetByName(ctx context.Context, batchName string) (*BatchDetail, error) {
	batch, err := s.repo.FindByName(ctx, batchName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}
	students, err := s.students.ListByBatchName(ctx, batchName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch students")
	}
	return &BatchDetail{Batch: *batch, Students: students}, nil
}

// Create registers a new batch. The domain label is stored as given; all
// grouping happens on the canonical key derived at query time.
func (s *BatchService) Create(ctx context.Context, req CreateBatchRequest) (*models.Batch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}
	batch := &models.Batch{
		BatchNo:     req.BatchNo,
		BatchName:   req.BatchName,
		Status:      req.Status,
		Mode:        req.Mode,
		Domain:      req.Domain,
		Sections:    req.Sections,
		TrainerName: req.TrainerName,
		TotalCount:  req.TotalCount,
	}
	if req.StartDate != nil {
		parsed, err := parseDateOnly(*req.StartDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid start_date")
		}
		batch.StartDate = parsed
	}
	if req.EndDate != nil {
		parsed, err := parseDateOnly(*req.EndDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid end_date")
		}
		batch.EndDate = parsed
	}
	id, err := s.repo.Create(ctx, batch)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create batch")
	}
	batch.ID = id
	s.invalidateDashboards(ctx)
	return batch, nil
}

// Update applies a partial update to one batch.
func (s *BatchService) Update(ctx context.Context, id int64, req UpdateBatchRequest) error {
	params := repository.UpdateBatchParams{
		BatchName:   req.BatchName,
		Status:      req.Status,
		Mode:        req.Mode,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Domain:      req.Domain,
		TrainerName: req.TrainerName,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if params == (repository.UpdateBatchParams{}) {
		return appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if err := s.repo.Update(ctx, id, params); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update batch")
	}
	s.invalidateDashboards(ctx)
	return nil
}

// Delete removes one batch.
func (s *BatchService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete batch")
	}
	s.invalidateDashboards(ctx)
	return nil
}

// Transfer moves a student to another batch and records the change.
func (s *BatchService) Transfer(ctx context.Context, req TransferStudentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid transfer payload")
	}
	domain := req.Domain
	if domain != "" {
		domain = domainkey.Canonical(domain)
	}
	err := s.repo.Transfer(ctx, repository.TransferParams{
		BookingID:     req.BookingID,
		ToBatchName:   req.ToBatch,
		Domain:        domain,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		RequestedBy:   req.RequestedBy,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student or target batch not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to transfer student")
	}
	s.invalidateDashboards(ctx)
	return nil
}

func (s *BatchService) invalidateDashboards(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, dashboardCacheKeyPattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
