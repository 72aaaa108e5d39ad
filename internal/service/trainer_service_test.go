package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type stubTrainerRepo struct {
	trainers    map[string]*models.Trainer
	assignments []models.TrainerAssignment
}

func (r *stubTrainerRepo) ListActive(context.Context) ([]models.Trainer, error) { return nil, nil }

func (r *stubTrainerRepo) FindActiveByName(_ context.Context, name string) (*models.Trainer, error) {
	if trainer, ok := r.trainers[name]; ok {
		return trainer, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubTrainerRepo) ListAssignments(context.Context, string) ([]models.TrainerAssignment, error) {
	return r.assignments, nil
}

func (r *stubTrainerRepo) CreateAssignment(_ context.Context, assignment *models.TrainerAssignment) (int64, error) {
	r.assignments = append(r.assignments, *assignment)
	return int64(len(r.assignments)), nil
}

func TestTo24HourConversion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9:30 AM", "09:30"},
		{"12:05 PM", "12:05"},
		{"12:00 AM", "00:00"},
		{"1:00 PM", "13:00"},
		{"11:59 PM", "23:59"},
	}
	for _, tc := range cases {
		got, err := to24Hour(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTo24HourRejectsBadShapes(t *testing.T) {
	for _, in := range []string{"13:00 PM", "0:30 AM", "9:5 AM", "9:30", "9:30 am", ""} {
		_, err := to24Hour(in)
		assert.Error(t, err, in)
	}
}

func TestTo12HourConversion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:30", "9:30 AM"},
		{"09:30:00", "9:30 AM"},
		{"12:05", "12:05 PM"},
		{"00:00", "12:00 AM"},
		{"13:00", "1:00 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, to12Hour(tc.in), tc.in)
	}
}

func TestAssignResolvesRosterNameAndConvertsTimes(t *testing.T) {
	repo := &stubTrainerRepo{trainers: map[string]*models.Trainer{"Ravi": {ID: 7, Name: "Ravi", IsActive: true}}}
	svc := NewTrainerService(repo, nil)

	assignment, err := svc.Assign(context.Background(), "FS10", AssignTrainerRequest{
		TrainerName: "Ravi",
		StartTime:   "9:30 AM",
		EndTime:     "5:30 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), assignment.TrainerID)
	assert.Equal(t, "Ravi", assignment.TrainerName)
	assert.Equal(t, "09:30", assignment.StartTime)
	assert.Equal(t, "17:30", assignment.EndTime)
	assert.Equal(t, "FS10", assignment.BatchNo)
}

func TestAssignRejectsEqualTimes(t *testing.T) {
	repo := &stubTrainerRepo{trainers: map[string]*models.Trainer{"Ravi": {ID: 7, Name: "Ravi"}}}
	svc := NewTrainerService(repo, nil)

	_, err := svc.Assign(context.Background(), "FS10", AssignTrainerRequest{
		TrainerName: "Ravi",
		StartTime:   "9:30 AM",
		EndTime:     "9:30 AM",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "end_time")
}

func TestAssignRequiresTrainerName(t *testing.T) {
	svc := NewTrainerService(&stubTrainerRepo{}, nil)

	_, err := svc.Assign(context.Background(), "FS10", AssignTrainerRequest{
		StartTime: "9:30 AM",
		EndTime:   "5:30 PM",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "trainer_name")
}

func TestAssignUnknownTrainer(t *testing.T) {
	svc := NewTrainerService(&stubTrainerRepo{}, nil)

	_, err := svc.Assign(context.Background(), "FS10", AssignTrainerRequest{
		TrainerName: "Nobody",
		StartTime:   "9:30 AM",
		EndTime:     "5:30 PM",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestAssignmentsAccumulateAndListTwelveHour(t *testing.T) {
	repo := &stubTrainerRepo{trainers: map[string]*models.Trainer{"Ravi": {ID: 7, Name: "Ravi"}}}
	svc := NewTrainerService(repo, nil)

	_, err := svc.Assign(context.Background(), "FS10", AssignTrainerRequest{TrainerName: "Ravi", StartTime: "9:00 AM", EndTime: "11:00 AM"})
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), "FS10", AssignTrainerRequest{TrainerName: "Ravi", StartTime: "2:00 PM", EndTime: "4:00 PM"})
	require.NoError(t, err)

	assignments, err := svc.Assignments(context.Background(), "FS10")
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "9:00 AM", assignments[0].StartTime)
	assert.Equal(t, "11:00 AM", assignments[0].EndTime)
	assert.Equal(t, "4:00 PM", assignments[1].EndTime)
}
