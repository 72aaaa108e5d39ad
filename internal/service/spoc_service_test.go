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

type stubSpocRepo struct {
	created []models.Spoc
}

func (r *stubSpocRepo) List(context.Context) ([]models.Spoc, error) { return nil, nil }

func (r *stubSpocRepo) FindByID(context.Context, int64) (*models.Spoc, error) {
	return nil, sql.ErrNoRows
}

func (r *stubSpocRepo) Create(_ context.Context, spoc *models.Spoc) (int64, error) {
	r.created = append(r.created, *spoc)
	return int64(len(r.created)), nil
}

func (r *stubSpocRepo) Update(context.Context, *models.Spoc) error { return nil }

func (r *stubSpocRepo) Delete(context.Context, int64) error { return nil }

func TestSpocCreateRequiresAllFields(t *testing.T) {
	repo := &stubSpocRepo{}
	svc := NewSpocService(repo, nil, nil)

	_, err := svc.Create(context.Background(), SpocRequest{
		Name:    "Meera",
		Company: "Acme",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestSpocCreateFullCard(t *testing.T) {
	repo := &stubSpocRepo{}
	svc := NewSpocService(repo, nil, nil)

	spoc, err := svc.Create(context.Background(), SpocRequest{
		Name:    "Meera",
		Company: "Acme",
		Address: "12 MG Road, Bengaluru",
		Email:   "meera@acme.example",
		Phone:   "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), spoc.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Acme", repo.created[0].Company)
}
