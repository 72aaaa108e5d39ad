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

func floatPtr(v float64) *float64 { return &v }

func TestScoreRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScoreRepository(db)

	mock.ExpectExec("INSERT INTO scores (.+) ON CONFLICT \\(booking_id\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), &models.Score{
		BookingID: "BK1001",
		Mile1:     floatPtr(82),
		Mile2:     floatPtr(75),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScoreRepository(db)

	mock.ExpectExec("UPDATE scores SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Score{BookingID: "ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestScoreRepositoryExists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScoreRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("BK1001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByBookingID(context.Background(), "BK1001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScoreRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScoreRepository(db)

	rows := sqlmock.NewRows([]string{"id", "booking_id", "mile1", "mile2", "mile3", "irc", "attendance", "epic_status"}).
		AddRow(1, "BK1001", 82.0, 75.0, nil, nil, 90.5, "Proficient")
	mock.ExpectQuery("SELECT (.+) FROM scores ORDER BY id").
		WillReturnRows(rows)

	scores, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "BK1001", scores[0].BookingID)
	assert.Nil(t, scores[0].Mile3)
}
