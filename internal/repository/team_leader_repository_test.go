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

func TestTeamLeaderRepositoryListNewestFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeamLeaderRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "role", "password"}).
		AddRow("tl-2", "Ravi", "ravi@example.com", "9876543210", "Placement TL", "hash").
		AddRow("tl-1", "Asha", "asha@example.com", "9123456780", "Placement TL", "hash")
	mock.ExpectQuery("SELECT (.+) FROM team_leaders ORDER BY id DESC").
		WillReturnRows(rows)

	leaders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	assert.Equal(t, "tl-2", leaders[0].ID)
}

func TestTeamLeaderRepositoryExistsByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeamLeaderRepository(db)

	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM team_leaders WHERE email =").
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "asha@example.com", "")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTeamLeaderRepositoryExistsByEmailExcludesSelf(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeamLeaderRepository(db)

	mock.ExpectQuery("AND id <>").
		WithArgs("asha@example.com", "tl-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByEmail(context.Background(), "asha@example.com", "tl-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTeamLeaderRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeamLeaderRepository(db)

	mock.ExpectExec("INSERT INTO team_leaders").
		WithArgs("tl-1", "Asha", "asha@example.com", "9123456780", "Placement TL", "hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.TeamLeader{
		ID: "tl-1", Name: "Asha", Email: "asha@example.com",
		Phone: "9123456780", Role: "Placement TL", Password: "hash",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamLeaderRepositoryUpdatePartial(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeamLeaderRepository(db)

	phone := "9000000000"
	mock.ExpectExec("UPDATE team_leaders SET phone = (.+) WHERE id =").
		WithArgs("9000000000", "tl-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "tl-1", UpdateTeamLeaderParams{Phone: &phone})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamLeaderRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeamLeaderRepository(db)

	mock.ExpectExec("DELETE FROM team_leaders WHERE id =").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
