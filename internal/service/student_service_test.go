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

type stubStudentRepo struct {
	students map[string]*models.Student
	inserted []models.Student
	updated  map[string]interface{}
}

func (r *stubStudentRepo) List(context.Context, models.StudentFilter) ([]models.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) FindByBookingID(_ context.Context, bookingID string) (*models.Student, error) {
	if student, ok := r.students[bookingID]; ok {
		return student, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubStudentRepo) ExistsByBookingID(_ context.Context, bookingID string) (bool, error) {
	_, ok := r.students[bookingID]
	return ok, nil
}

func (r *stubStudentRepo) ListByBatchName(context.Context, string) ([]models.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) ListByBatchNo(context.Context, string) ([]models.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) SearchByBatchNo(context.Context, string) ([]models.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) ListEpicByBatch(context.Context, string) ([]models.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) ListPlaced(context.Context) ([]models.Student, error) { return nil, nil }

func (r *stubStudentRepo) Create(_ context.Context, student *models.Student) error {
	if r.students == nil {
		r.students = map[string]*models.Student{}
	}
	r.students[student.BookingID] = student
	return nil
}

func (r *stubStudentRepo) BulkInsert(_ context.Context, students []models.Student) (int64, error) {
	r.inserted = students
	return int64(len(students)), nil
}

func (r *stubStudentRepo) Update(_ context.Context, bookingID string, fields map[string]interface{}) error {
	if _, ok := r.students[bookingID]; !ok {
		return sql.ErrNoRows
	}
	r.updated = fields
	return nil
}

func (r *stubStudentRepo) Delete(_ context.Context, bookingID string) error {
	if _, ok := r.students[bookingID]; !ok {
		return sql.ErrNoRows
	}
	delete(r.students, bookingID)
	return nil
}

type stubBatchFinder struct {
	batches map[string]*models.Batch
}

func (f *stubBatchFinder) FindByName(_ context.Context, name string) (*models.Batch, error) {
	if batch, ok := f.batches[name]; ok {
		return batch, nil
	}
	return nil, sql.ErrNoRows
}

func TestStudentCreateAppliesDefaultsAndResolvesBatch(t *testing.T) {
	repo := &stubStudentRepo{}
	batches := &stubBatchFinder{batches: map[string]*models.Batch{
		"FSD Batch 10": {ID: 4, BatchNo: "FS10", BatchName: "FSD Batch 10", Domain: "Full Stack Development"},
	}}
	svc := NewStudentService(repo, batches, nil, nil, nil)

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		BookingID: "BK1001",
		Name:      "Asha",
		BatchName: "FSD Batch 10",
	})
	require.NoError(t, err)
	assert.Equal(t, "N", student.CertificateReceived)
	assert.Equal(t, "on going", student.Status)
	assert.Equal(t, models.PlacementYetToPlace, student.Placement)
	require.NotNil(t, student.BatchID)
	assert.Equal(t, int64(4), *student.BatchID)
	assert.Equal(t, "FS10", student.BatchNo)
	assert.Equal(t, "Full Stack Development", student.Domain)
}

func TestStudentCreateDuplicateBookingID(t *testing.T) {
	repo := &stubStudentRepo{students: map[string]*models.Student{"BK1001": {BookingID: "BK1001"}}}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		BookingID: "BK1001",
		Name:      "Asha",
		BatchName: "FSD Batch 10",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestBulkImportAppliesDefaults(t *testing.T) {
	repo := &stubStudentRepo{}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	name := "Asha"
	result, err := svc.BulkImport(context.Background(), "FSD Batch 10", []BulkStudentRow{
		{BookingID: "BK1", Name: &name},
		{BookingID: "BK2"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Inserted)

	require.Len(t, repo.inserted, 2)
	first := repo.inserted[0]
	assert.Equal(t, "FSD Batch 10", first.BatchName)
	assert.Equal(t, "N", first.CertificateReceived)
	assert.Equal(t, "on going", first.Status)
	assert.Equal(t, "", first.Placement)
	assert.Equal(t, "", repo.inserted[1].Name)
	assert.False(t, first.WillingToRelocate)
}

func TestBulkImportKeepsRowsWithoutBookingID(t *testing.T) {
	repo := &stubStudentRepo{}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	result, err := svc.BulkImport(context.Background(), "FSD Batch 10", []BulkStudentRow{
		{BookingID: "BK1"},
		{BookingID: "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Inserted)
	require.Len(t, repo.inserted, 2)
	assert.Equal(t, "", repo.inserted[1].BookingID)
	assert.Equal(t, "", repo.inserted[1].Placement)
}

func TestBulkImportRowBatchNameWins(t *testing.T) {
	repo := &stubStudentRepo{}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	rowBatch := "DADS Batch 3"
	_, err := svc.BulkImport(context.Background(), "FSD Batch 10", []BulkStudentRow{
		{BookingID: "BK1", BatchName: &rowBatch},
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "DADS Batch 3", repo.inserted[0].BatchName)
}

func TestBulkImportEmptySheet(t *testing.T) {
	svc := NewStudentService(&stubStudentRepo{}, &stubBatchFinder{}, nil, nil, nil)

	_, err := svc.BulkImport(context.Background(), "FSD Batch 10", nil)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestStudentUpdateBuildsFieldMap(t *testing.T) {
	repo := &stubStudentRepo{students: map[string]*models.Student{"BK1": {BookingID: "BK1"}}}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	placement := models.PlacementPlaced
	company := "Acme"
	salary := 6.5
	month := "2026-03-01"
	err := svc.Update(context.Background(), "BK1", UpdateStudentRequest{
		Placement:   &placement,
		Company:     &company,
		Salary:      &salary,
		PlacedMonth: &month,
	})
	require.NoError(t, err)
	assert.Equal(t, "Placed", repo.updated["placement"])
	assert.Equal(t, "Acme", repo.updated["company"])
	assert.Equal(t, 6.5, repo.updated["salary"])
	assert.Contains(t, repo.updated, "placed_month")
}

func TestStudentUpdateNoFields(t *testing.T) {
	repo := &stubStudentRepo{students: map[string]*models.Student{"BK1": {BookingID: "BK1"}}}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	err := svc.Update(context.Background(), "BK1", UpdateStudentRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestStudentDeleteUnknown(t *testing.T) {
	svc := NewStudentService(&stubStudentRepo{}, &stubBatchFinder{}, nil, nil, nil)

	err := svc.Delete(context.Background(), "ghost")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestStudentServiceSetPlacementFlag(t *testing.T) {
	repo := &stubStudentRepo{students: map[string]*models.Student{"BK1": {BookingID: "BK1"}}}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	require.NoError(t, svc.SetPlacementFlag(context.Background(), "BK1", models.PlacementIneligible))
	assert.Equal(t, map[string]interface{}{"placement": "Ineligible"}, repo.updated)
}

func TestStudentServiceSetPlacementFlagRejectsOtherValues(t *testing.T) {
	repo := &stubStudentRepo{students: map[string]*models.Student{"BK1": {BookingID: "BK1"}}}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	err := svc.SetPlacementFlag(context.Background(), "BK1", models.PlacementPlaced)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.updated)
}

func TestStudentServiceSetPlacementFlagUnknownStudent(t *testing.T) {
	repo := &stubStudentRepo{}
	svc := NewStudentService(repo, &stubBatchFinder{}, nil, nil, nil)

	err := svc.SetPlacementFlag(context.Background(), "BK-404", models.PlacementNotRequired)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
