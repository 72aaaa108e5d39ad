package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-success/placement-api/internal/models"
)

func studentRow() *sqlmock.Rows {
	cols := []string{"id", "booking_id", "batch_name", "batch_no", "name", "email", "phone", "placement", "status"}
	return sqlmock.NewRows(cols).
		AddRow(1, "BK1001", "FSD Batch 10", "FS10", "Asha", "asha@example.com", "9876543210", "Yet to Place", "on going")
}

func TestStudentRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM students WHERE 1=1 AND batch_name = (.+) AND placement =").
		WithArgs("FSD Batch 10", "Placed").
		WillReturnRows(studentRow())

	students, err := repo.List(context.Background(), models.StudentFilter{BatchName: "FSD Batch 10", Placement: "Placed"})
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "BK1001", students[0].BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByBookingIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM students WHERE booking_id =").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByBookingID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryExistsByBookingID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("BK1001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByBookingID(context.Background(), "BK1001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStudentRepositoryListEpicByBatchAppliesDefault(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "booking_id", "batch_name", "batch_no", "name", "email", "phone", "epic_status"}).
		AddRow(1, "BK1001", "FSD Batch 10", "FS10", "Asha", "a@example.com", "9876543210", "Capable")
	mock.ExpectQuery("COALESCE\\(NULLIF\\(epic_status, ''\\), 'Capable'\\)").
		WithArgs("FSD Batch 10").
		WillReturnRows(rows)

	students, err := repo.ListEpicByBatch(context.Background(), "FSD Batch 10")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Capable", students[0].EpicStatus)
}

func TestStudentRepositoryBulkInsertEmpty(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	count, err := repo.BulkInsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStudentRepositoryBulkInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.BulkInsert(context.Background(), []models.Student{
		{BookingID: "BK1", BatchName: "FSD Batch 10", Name: "A", Status: models.StatusOngoing},
		{BookingID: "BK2", BatchName: "FSD Batch 10", Name: "B", Status: models.StatusOngoing},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateBuildsWhitelistedSet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET placement = (.+), company = (.+) WHERE booking_id =").
		WithArgs("Placed", "Acme", "BK1001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "BK1001", map[string]interface{}{
		"placement": "Placed",
		"company":   "Acme",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateRejectsUnknownColumn(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	err := repo.Update(context.Background(), "BK1001", map[string]interface{}{"booking_id": "BK2"})
	assert.Error(t, err)
}

func TestStudentRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "ghost", map[string]interface{}{"placement": "Placed"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("DELETE FROM students WHERE booking_id =").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
