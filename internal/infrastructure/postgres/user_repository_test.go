package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "digest").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow("7c1b2f34-0000-0000-0000-000000000001", createdAt))

	repo := NewUserRepository(mock)
	u := &entity.User{Email: "a@x.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(context.Background(), u))

	assert.Equal(t, "7c1b2f34-0000-0000-0000-000000000001", u.ID)
	assert.Equal(t, createdAt, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// the unique index is the authority under concurrent registration
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "digest").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := NewUserRepository(mock)
	u := &entity.User{Email: "a@x.com", PasswordHash: "digest"}
	err = repo.Create(context.Background(), u)

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      *entity.User
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, password_hash, created_at`).
					WithArgs("a@x.com").
					WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
						AddRow("u1", "a@x.com", "digest", time.Unix(0, 0)))
			},
			want: &entity.User{ID: "u1", Email: "a@x.com", PasswordHash: "digest", CreatedAt: time.Unix(0, 0)},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, password_hash, created_at`).
					WithArgs("a@x.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, password_hash, created_at`).
					WithArgs("a@x.com").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			got, err := repo.GetByEmail(context.Background(), "a@x.com")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("b@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewUserRepository(mock)

	got, err := repo.ExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = repo.ExistsByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.False(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}
