package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/repository"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type stubTeamLeaderRepo struct {
	leaders map[string]*models.TeamLeader
	emails  map[string]bool
	created *models.TeamLeader
}

func (r *stubTeamLeaderRepo) List(context.Context) ([]models.TeamLeader, error) { return nil, nil }

func (r *stubTeamLeaderRepo) FindByID(_ context.Context, id string) (*models.TeamLeader, error) {
	if leader, ok := r.leaders[id]; ok {
		return leader, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubTeamLeaderRepo) ExistsByEmail(_ context.Context, email, _ string) (bool, error) {
	return r.emails[email], nil
}

func (r *stubTeamLeaderRepo) Create(_ context.Context, leader *models.TeamLeader) error {
	r.created = leader
	return nil
}

func (r *stubTeamLeaderRepo) Update(_ context.Context, id string, _ repository.UpdateTeamLeaderParams) error {
	if _, ok := r.leaders[id]; !ok {
		return sql.ErrNoRows
	}
	return nil
}

func (r *stubTeamLeaderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.leaders[id]; !ok {
		return sql.ErrNoRows
	}
	return nil
}

func TestTeamLeaderCreateAppliesDefaults(t *testing.T) {
	repo := &stubTeamLeaderRepo{}
	svc := NewTeamLeaderService(repo, bcrypt.MinCost, nil)

	leader, err := svc.Create(context.Background(), CreateTeamLeaderRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Placement TL", leader.Role)
	assert.NotEmpty(t, leader.ID)
	assert.Empty(t, leader.Password)

	require.NotNil(t, repo.created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("welcome123")))
}

func TestTeamLeaderCreateReportsEveryInvalidField(t *testing.T) {
	svc := NewTeamLeaderService(&stubTeamLeaderRepo{}, bcrypt.MinCost, nil)

	_, err := svc.Create(context.Background(), CreateTeamLeaderRequest{
		Email:    "not-an-email",
		Phone:    "12345",
		Password: "abc",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "name")
	assert.Contains(t, appErr.Details, "email")
	assert.Contains(t, appErr.Details, "phone")
	assert.Contains(t, appErr.Details, "password")
}

func TestTeamLeaderCreateRejectsLandlinePrefix(t *testing.T) {
	svc := NewTeamLeaderService(&stubTeamLeaderRepo{}, bcrypt.MinCost, nil)

	_, err := svc.Create(context.Background(), CreateTeamLeaderRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "1234567890",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Contains(t, appErr.Details, "phone")
}

func TestTeamLeaderCreateDuplicateEmail(t *testing.T) {
	repo := &stubTeamLeaderRepo{emails: map[string]bool{"asha@example.com": true}}
	svc := NewTeamLeaderService(repo, bcrypt.MinCost, nil)

	_, err := svc.Create(context.Background(), CreateTeamLeaderRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "9876543210",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestTeamLeaderUpdateUnknownID(t *testing.T) {
	svc := NewTeamLeaderService(&stubTeamLeaderRepo{}, bcrypt.MinCost, nil)

	name := "New Name"
	err := svc.Update(context.Background(), "ghost", UpdateTeamLeaderRequest{Name: &name})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestTeamLeaderListBlanksPasswords(t *testing.T) {
	repo := &stubTeamLeaderRepo{}
	svc := NewTeamLeaderService(repo, bcrypt.MinCost, nil)

	leaders, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, leader := range leaders {
		assert.Empty(t, leader.Password)
	}
}
