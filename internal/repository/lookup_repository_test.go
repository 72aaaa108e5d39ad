package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLabelRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewKeyedLabelRepository(db, "domains")

	rows := sqlmock.NewRows([]string{"id", "key", "label"}).
		AddRow(1, "fullstack", "Full Stack Development").
		AddRow(2, "data", "Data Analytics")
	mock.ExpectQuery("SELECT id, key, label FROM domains ORDER BY id").
		WillReturnRows(rows)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "fullstack", entries[0].Key)
}

func TestKeyedLabelRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewKeyedLabelRepository(db, "epic_levels")

	mock.ExpectQuery("INSERT INTO epic_levels").
		WithArgs("excellent", "Excellent").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	id, err := repo.Create(context.Background(), "excellent", "Excellent")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestKeyedLabelRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewKeyedLabelRepository(db, "domains")

	mock.ExpectExec("UPDATE domains SET key =").
		WithArgs("sap", "SAP", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 9, "sap", "SAP")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLabelRepositoryCreateAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLabelRepository(db, "batch_statuses")

	mock.ExpectQuery("INSERT INTO batch_statuses").
		WithArgs("Ongoing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("DELETE FROM batch_statuses WHERE id =").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Create(context.Background(), "Ongoing")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
