package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/repository"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type stubBatchRepo struct {
	batches map[int64]*models.Batch
}

func (r *stubBatchRepo) List(context.Context, models.BatchFilter) ([]models.Batch, error) {
	return nil, nil
}

func (r *stubBatchRepo) FindByID(_ context.Context, id int64) (*models.Batch, error) {
	if batch, ok := r.batches[id]; ok {
		return batch, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubBatchRepo) FindByName(_ context.Context, name string) (*models.Batch, error) {
	for _, batch := range r.batches {
		if batch.BatchName == name {
			return batch, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *stubBatchRepo) Create(_ context.Context, batch *models.Batch) (int64, error) {
	return 1, nil
}

func (r *stubBatchRepo) Update(context.Context, int64, repository.UpdateBatchParams) error {
	return nil
}

func (r *stubBatchRepo) Delete(context.Context, int64) error { return nil }

func (r *stubBatchRepo) Transfer(context.Context, repository.TransferParams) error { return nil }

type stubBatchStudents struct {
	byName map[string][]models.Student
	byNo   map[string][]models.Student
}

func (l *stubBatchStudents) ListByBatchName(_ context.Context, name string) ([]models.Student, error) {
	return l.byName[name], nil
}

func (l *stubBatchStudents) ListByBatchNo(_ context.Context, batchNo string) ([]models.Student, error) {
	return l.byNo[batchNo], nil
}

func TestBatchGetReturnsStudents(t *testing.T) {
	repo := &stubBatchRepo{batches: map[int64]*models.Batch{
		4: {ID: 4, BatchNo: "FS10", BatchName: "FSD Batch 10"},
	}}
	students := &stubBatchStudents{byNo: map[string][]models.Student{
		"FS10": {{BookingID: "BK1"}, {BookingID: "BK2"}},
	}}
	svc := NewBatchService(repo, students, nil, nil, nil)

	detail, err := svc.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "FS10", detail.BatchNo)
	require.Len(t, detail.Students, 2)
	assert.Equal(t, "BK1", detail.Students[0].BookingID)
}

func TestBatchGetUnknownID(t *testing.T) {
	svc := NewBatchService(&stubBatchRepo{}, &stubBatchStudents{}, nil, nil, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestBatchGetByNameReturnsStudents(t *testing.T) {
	repo := &stubBatchRepo{batches: map[int64]*models.Batch{
		4: {ID: 4, BatchNo: "FS10", BatchName: "FSD Batch 10"},
	}}
	students := &stubBatchStudents{byName: map[string][]models.Student{
		"FSD Batch 10": {{BookingID: "BK1"}},
	}}
	svc := NewBatchService(repo, students, nil, nil, nil)

	detail, err := svc.GetByName(context.Background(), "FSD Batch 10")
	require.NoError(t, err)
	require.Len(t, detail.Students, 1)
}
