package service

import (
	"context"
	"database/sql"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/repository"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

const (
	defaultTeamLeaderRole     = "Placement TL"
	defaultTeamLeaderPassword = "welcome123"
	minTeamLeaderPassword     = 6
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

type teamLeaderRepository interface {
	List(ctx context.Context) ([]models.TeamLeader, error)
	FindByID(ctx context.Context, id string) (*models.TeamLeader, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, leader *models.TeamLeader) error
	Update(ctx context.Context, id string, params repository.UpdateTeamLeaderParams) error
	Delete(ctx context.Context, id string) error
}

// CreateTeamLeaderRequest holds payload for registering a team leader.
// Role and password fall back to defaults when omitted.
type CreateTeamLeaderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateTeamLeaderRequest holds the optional fields of a partial update.
type UpdateTeamLeaderRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// TeamLeaderService handles placement team leader use-cases. Field
// validation reports every failing field at once rather than the first.
type TeamLeaderService struct {
	repo       teamLeaderRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewTeamLeaderService constructs the team leader service.
func NewTeamLeaderService(repo teamLeaderRepository, bcryptCost int, logger *zap.Logger) *TeamLeaderService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamLeaderService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// List returns all team leaders with passwords blanked.
func (s *TeamLeaderService) List(ctx context.Context) ([]models.TeamLeader, error) {
	leaders, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list team leaders")
	}
	for i := range leaders {
		leaders[i].Password = ""
	}
	return leaders, nil
}

// Get returns one team leader.
func (s *TeamLeaderService) Get(ctx context.Context, id string) (*models.TeamLeader, error) {
	leader, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team leader not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load team leader")
	}
	leader.Password = ""
	return leader, nil
}

// Create registers a team leader. A duplicate email is rejected before
// any insert.
func (s *TeamLeaderService) Create(ctx context.Context, req CreateTeamLeaderRequest) (*models.TeamLeader, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Role == "" {
		req.Role = defaultTeamLeaderRole
	}
	if req.Password == "" {
		req.Password = defaultTeamLeaderPassword
	}

	details := map[string]string{}
	if req.Name == "" {
		details["name"] = "name is required"
	}
	if !emailPattern.MatchString(req.Email) {
		details["email"] = "invalid email address"
	}
	if !phonePattern.MatchString(req.Phone) {
		details["phone"] = "phone must be a 10 digit mobile number"
	}
	if len(req.Password) < minTeamLeaderPassword {
		details["password"] = "password must be at least 6 characters"
	}
	if len(details) > 0 {
		return nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid team leader payload"), details)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already used")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	leader := &models.TeamLeader{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Password: string(hashed),
	}
	if err := s.repo.Create(ctx, leader); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create team leader")
	}
	leader.Password = ""
	return leader, nil
}

// Update applies a partial update to one team leader.
func (s *TeamLeaderService) Update(ctx context.Context, id string, req UpdateTeamLeaderRequest) error {
	details := map[string]string{}
	if req.Email != nil && !emailPattern.MatchString(strings.TrimSpace(*req.Email)) {
		details["email"] = "invalid email address"
	}
	if req.Phone != nil && !phonePattern.MatchString(strings.TrimSpace(*req.Phone)) {
		details["phone"] = "phone must be a 10 digit mobile number"
	}
	if req.Password != nil && len(*req.Password) < minTeamLeaderPassword {
		details["password"] = "password must be at least 6 characters"
	}
	if len(details) > 0 {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid team leader payload"), details)
	}

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
		exists, err := s.repo.ExistsByEmail(ctx, trimmed, id)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
		}
		if exists {
			return appErrors.Clone(appErrors.ErrConflict, "email already used")
		}
	}

	params := repository.UpdateTeamLeaderParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
		}
		hashedStr := string(hashed)
		params.Password = &hashedStr
	}
	if params == (repository.UpdateTeamLeaderParams{}) {
		return appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}

	if err := s.repo.Update(ctx, id, params); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "team leader not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update team leader")
	}
	return nil
}

// Delete removes one team leader.
func (s *TeamLeaderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "team leader not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete team leader")
	}
	return nil
}
