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

type stubScoreRepo struct {
	scores    map[string]*models.Score
	upserts   int
	updates   int
	updateErr error
}

func (r *stubScoreRepo) List(context.Context) ([]models.Score, error) { return nil, nil }

func (r *stubScoreRepo) FindByBookingID(_ context.Context, bookingID string) (*models.Score, error) {
	if score, ok := r.scores[bookingID]; ok {
		return score, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubScoreRepo) ExistsByBookingID(_ context.Context, bookingID string) (bool, error) {
	_, ok := r.scores[bookingID]
	return ok, nil
}

func (r *stubScoreRepo) Upsert(_ context.Context, score *models.Score) error {
	r.upserts++
	if r.scores == nil {
		r.scores = map[string]*models.Score{}
	}
	r.scores[score.BookingID] = score
	return nil
}

func (r *stubScoreRepo) Update(_ context.Context, score *models.Score) error {
	r.updates++
	return r.updateErr
}

type stubStudentChecker struct {
	known map[string]bool
}

func (c *stubStudentChecker) ExistsByBookingID(_ context.Context, bookingID string) (bool, error) {
	return c.known[bookingID], nil
}

func TestScoreSubmitRejectsUnknownStudent(t *testing.T) {
	repo := &stubScoreRepo{}
	svc := NewScoreService(repo, &stubStudentChecker{}, nil, nil, nil)

	_, err := svc.Submit(context.Background(), ScoreRequest{BookingID: "ghost"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Zero(t, repo.upserts)
}

func TestScoreSubmitUpsertsExistingRow(t *testing.T) {
	repo := &stubScoreRepo{scores: map[string]*models.Score{"BK1": {BookingID: "BK1"}}}
	students := &stubStudentChecker{known: map[string]bool{"BK1": true}}
	svc := NewScoreService(repo, students, nil, nil, nil)

	mile1 := 88.0
	score, err := svc.Submit(context.Background(), ScoreRequest{BookingID: "BK1", Mile1: &mile1})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, 88.0, *score.Mile1)
}

func TestScoreUpdateRequiresExistingRow(t *testing.T) {
	repo := &stubScoreRepo{}
	students := &stubStudentChecker{known: map[string]bool{"BK1": true}}
	svc := NewScoreService(repo, students, nil, nil, nil)

	_, err := svc.Update(context.Background(), ScoreRequest{BookingID: "BK1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Zero(t, repo.updates)
}

func TestScoreUpdateRejectsUnknownStudentBeforeScoreCheck(t *testing.T) {
	repo := &stubScoreRepo{scores: map[string]*models.Score{"BK1": {BookingID: "BK1"}}}
	svc := NewScoreService(repo, &stubStudentChecker{}, nil, nil, nil)

	_, err := svc.Update(context.Background(), ScoreRequest{BookingID: "BK1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestScoreRequestValidatesRange(t *testing.T) {
	students := &stubStudentChecker{known: map[string]bool{"BK1": true}}
	svc := NewScoreService(&stubScoreRepo{}, students, nil, nil, nil)

	bad := 120.0
	_, err := svc.Submit(context.Background(), ScoreRequest{BookingID: "BK1", Mile1: &bad})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
