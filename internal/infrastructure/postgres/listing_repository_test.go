package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
)

func TestListingRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, title, description, company_id`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	repo := NewListingRepository(mock)
	_, err = repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, title, description, company_id`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "description", "company_id", "location", "salary", "created_at", "updated_at",
		}).
			AddRow("l1", "Backend Engineer", "Go services", "c1", "Remote", "open", now, now).
			AddRow("l2", "SRE", "On-call", "c1", "Madrid", "", now, now))

	repo := NewListingRepository(mock)
	got, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Backend Engineer", got[0].Title)
	assert.Equal(t, "l2", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM listings`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewListingRepository(mock)
	err = repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE listings`).
		WithArgs("Backend Engineer", "Go services", "c1", "Remote", "open", pgxmock.AnyArg(), "l1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewListingRepository(mock)
	l := &entity.Listing{
		ID:          "l1",
		Title:       "Backend Engineer",
		Description: "Go services",
		CompanyID:   "c1",
		Location:    "Remote",
		Salary:      "open",
	}
	require.NoError(t, repo.Update(context.Background(), l))
	assert.False(t, l.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
