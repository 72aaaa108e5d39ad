package service

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

// timePattern accepts 12-hour clock times like "9:30 AM" or "12:05 PM".
var timePattern = regexp.MustCompile(`^([1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)

type trainerRepository interface {
	ListActive(ctx context.Context) ([]models.Trainer, error)
	FindActiveByName(ctx context.Context, name string) (*models.Trainer, error)
	ListAssignments(ctx context.Context, batchNo string) ([]models.TrainerAssignment, error)
	CreateAssignment(ctx context.Context, assignment *models.TrainerAssignment) (int64, error)
}

// AssignTrainerRequest books a trainer onto a batch for a daily slot. The
// trainer arrives by roster name, and times arrive on the 12-hour clock
// and are stored as 24-hour HH:MM.
type AssignTrainerRequest struct {
	TrainerName string `json:"trainer_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// TrainerService handles trainer roster and assignment use-cases.
type TrainerService struct {
	repo   trainerRepository
	logger *zap.Logger
}

// NewTrainerService constructs the trainer service.
func NewTrainerService(repo trainerRepository, logger *zap.Logger) *TrainerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainerService{repo: repo, logger: logger}
}

// ListActive returns the active trainer roster.
func (s *TrainerService) ListActive(ctx context.Context) ([]models.Trainer, error) {
	trainers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list trainers")
	}
	return trainers, nil
}

// Assignments returns the assignment history of one batch with times
// converted back to the 12-hour clock clients submit them on.
func (s *TrainerService) Assignments(ctx context.Context, batchNo string) ([]models.TrainerAssignment, error) {
	assignments, err := s.repo.ListAssignments(ctx, batchNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	for i := range assignments {
		assignments[i].StartTime = to12Hour(assignments[i].StartTime)
		assignments[i].EndTime = to12Hour(assignments[i].EndTime)
	}
	return assignments, nil
}

// Assign books a trainer onto a batch. Assignments accumulate; assigning
// again records another slot rather than replacing the first.
func (s *TrainerService) Assign(ctx context.Context, batchNo string, req AssignTrainerRequest) (*models.TrainerAssignment, error) {
	details := map[string]string{}
	if strings.TrimSpace(req.TrainerName) == "" {
		details["trainer_name"] = "trainer_name is required"
	}
	start, err := to24Hour(req.StartTime)
	if err != nil {
		details["start_time"] = "start_time must look like 9:30 AM"
	}
	end, err := to24Hour(req.EndTime)
	if err != nil {
		details["end_time"] = "end_time must look like 5:30 PM"
	}
	if len(details) == 0 && start == end {
		details["end_time"] = "end_time must differ from start_time"
	}
	if len(details) > 0 {
		return nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid assignment payload"), details)
	}

	trainer, err := s.repo.FindActiveByName(ctx, strings.TrimSpace(req.TrainerName))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "trainer not found or inactive")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load trainer")
	}

	assignment := &models.TrainerAssignment{
		BatchNo:     batchNo,
		TrainerID:   trainer.ID,
		TrainerName: trainer.Name,
		StartTime:   start,
		EndTime:     end,
	}
	id, err := s.repo.CreateAssignment(ctx, assignment)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign trainer")
	}
	assignment.ID = id
	return assignment, nil
}

// to24Hour converts a 12-hour clock time to HH:MM on the 24-hour clock.
func to24Hour(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !timePattern.MatchString(raw) {
		return "", fmt.Errorf("invalid time %q", raw)
	}
	parts := strings.SplitN(raw, " ", 2)
	clock := strings.SplitN(parts[0], ":", 2)
	hour, _ := strconv.Atoi(clock[0])
	if parts[1] == "PM" && hour != 12 {
		hour += 12
	}
	if parts[1] == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%s", hour, clock[1]), nil
}

// to12Hour converts a stored 24-hour time back to the 12-hour clock.
// Tolerates a trailing seconds component from TIME columns; anything
// unparseable passes through unchanged.
func to12Hour(raw string) string {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return raw
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return raw
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], period)
}
