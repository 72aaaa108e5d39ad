package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type scoreRepository interface {
	List(ctx context.Context) ([]models.Score, error)
	FindByBookingID(ctx context.Context, bookingID string) (*models.Score, error)
	ExistsByBookingID(ctx context.Context, bookingID string) (bool, error)
	Upsert(ctx context.Context, score *models.Score) error
	Update(ctx context.Context, score *models.Score) error
}

type studentExistsChecker interface {
	ExistsByBookingID(ctx context.Context, bookingID string) (bool, error)
}

// ScoreRequest holds a score submission for one student.
type ScoreRequest struct {
	BookingID  string   `json:"booking_id" validate:"required"`
	Mile1      *float64 `json:"mile1" validate:"omitempty,gte=0,lte=100"`
	Mile2      *float64 `json:"mile2" validate:"omitempty,gte=0,lte=100"`
	Mile3      *float64 `json:"mile3" validate:"omitempty,gte=0,lte=100"`
	IRC        *float64 `json:"irc" validate:"omitempty,gte=0,lte=100"`
	Attendance *float64 `json:"attendance" validate:"omitempty,gte=0,lte=100"`
	EpicStatus *string  `json:"epic_status" validate:"omitempty,oneof=Excellent Proficient Ideal Capable"`
}

// ScoreService handles score-sheet use-cases. Submitting a score requires
// the student to exist; creation upserts while update insists on an
// existing score row.
type ScoreService struct {
	repo      scoreRepository
	students  studentExistsChecker
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScoreService constructs the score service.
func NewScoreService(repo scoreRepository, students studentExistsChecker, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *ScoreService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreService{repo: repo, students: students, cache: cache, validator: validate, logger: logger}
}

// List returns every score row.
func (s *ScoreService) List(ctx context.Context) ([]models.Score, error) {
	scores, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scores")
	}
	return scores, nil
}

// Get returns the score row of one student.
func (s *ScoreService) Get(ctx context.Context, bookingID string) (*models.Score, error) {
	score, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "score not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load score")
	}
	return score, nil
}

// Submit writes the score sheet of one student, replacing any earlier
// submission for the same booking id.
func (s *ScoreService) Submit(ctx context.Context, req ScoreRequest) (*models.Score, error) {
	score, err := s.verify(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, score); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit score")
	}
	s.invalidateDashboards(ctx)
	return score, nil
}

// Update rewrites an existing score row. Unlike Submit it refuses to
// create one, returning not found when no score has been submitted yet.
func (s *ScoreService) Update(ctx context.Context, req ScoreRequest) (*models.Score, error) {
	score, err := s.verify(ctx, req)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.ExistsByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check score")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "score not found")
	}
	if err := s.repo.Update(ctx, score); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "score not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update score")
	}
	s.invalidateDashboards(ctx)
	return score, nil
}

func (s *ScoreService) verify(ctx context.Context, req ScoreRequest) (*models.Score, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid score payload")
	}
	exists, err := s.students.ExistsByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown booking id")
	}
	return &models.Score{
		BookingID:  req.BookingID,
		Mile1:      req.Mile1,
		Mile2:      req.Mile2,
		Mile3:      req.Mile3,
		IRC:        req.IRC,
		Attendance: req.Attendance,
		EpicStatus: req.EpicStatus,
	}, nil
}

func (s *ScoreService) invalidateDashboards(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, dashboardCacheKeyPattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
