package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-directory-api/internal/domain/user"
)

var columns = []string{
	"id", "email", "first_name", "last_name", "phone_number", "day_birthday", "birthday_this_year",
	"hashed_password", "refresh_token", "avatar", "is_active", "created_at", "updated_at",
}

func strPtr(s string) *string { return &s }

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, &Repository{db: mock}
}

func someRow(id uint64, email string) []any {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)
	return []any{
		id, email, strPtr("Ann"), strPtr("Lee"), strPtr("+380501234567"),
		time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		time.Date(domain.ReferenceYear, time.March, 15, 0, 0, 0, 0, time.UTC),
		strPtr("$2a$hash"), (*string)(nil), (*string)(nil), true, now, now,
	}
}

func TestRepository_FetchUsers(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectUsers)).
		WithArgs(10, 20).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(someRow(1, "a@x.com")...).
			AddRow(someRow(2, "b@x.com")...))

	us, err := repo.FetchUsers(context.Background(), 20, 10)
	require.NoError(t, err)
	require.Len(t, us, 2)
	assert.Equal(t, domain.ID(1), us[0].ID)
	assert.Equal(t, "b@x.com", us[1].Email)
	assert.Equal(t, "Ann", *us[0].FirstName)
	assert.True(t, us[0].IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchUsers_Empty(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectUsers)).
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(columns))

	us, err := repo.FetchUsers(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, us)
	assert.Empty(t, us)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchUserByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
					WithArgs(uint64(1)).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(someRow(1, "a@x.com")...))
			},
		},
		{
			name: "not found",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
					WithArgs(uint64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMock(t)
			tt.setup(mock)

			u, err := repo.FetchUserByID(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.ID(1), u.ID)
				assert.Equal(t, time.March, u.BirthdayThisYear.Month())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchUserByEmail_DBError(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
		WithArgs("a@x.com").
		WillReturnError(errors.New("connection refused"))

	u, err := repo.FetchUserByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchUsers(t *testing.T) {
	mock, repo := newMock(t)

	q, _ := buildSearchQuery(domain.NewFilter("", "Ann", "Lee"))
	mock.ExpectQuery(regexp.QuoteMeta(q)).
		WithArgs("Ann", "Lee").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(someRow(3, "c@x.com")...))

	us, err := repo.SearchUsers(context.Background(), domain.NewFilter("", "Ann", "Lee"))
	require.NoError(t, err)
	require.Len(t, us, 1)
	assert.Equal(t, domain.ID(3), us[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchUsersByBirthdays(t *testing.T) {
	t.Run("no keys skips the query", func(t *testing.T) {
		mock, repo := newMock(t)

		us, err := repo.FetchUsersByBirthdays(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, us)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matches keys", func(t *testing.T) {
		mock, repo := newMock(t)
		keys := []time.Time{time.Date(domain.ReferenceYear, time.March, 15, 0, 0, 0, 0, time.UTC)}

		mock.ExpectQuery(regexp.QuoteMeta(SelectUsersByBirthdays)).
			WithArgs(keys).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(someRow(1, "a@x.com")...))

		us, err := repo.FetchUsersByBirthdays(context.Background(), keys)
		require.NoError(t, err)
		require.Len(t, us, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateUser(t *testing.T) {
	req := domain.User{
		Email:        "a@x.com",
		FirstName:    strPtr("Ann"),
		LastName:     strPtr("Lee"),
		Phone:        strPtr("+380501234567"),
		PasswordHash: strPtr("$2a$hash"),
	}
	req.SetDayBirthday(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))

	args := []any{
		req.Email, req.FirstName, req.LastName, req.Phone,
		req.DayBirthday, req.BirthdayThisYear, req.PasswordHash, req.Avatar,
	}

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(InsertUser)).
					WithArgs(args...).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(someRow(1, "a@x.com")...))
			},
		},
		{
			name: "duplicate email",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(InsertUser)).
					WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMock(t)
			tt.setup(mock)

			u, err := repo.CreateUser(context.Background(), req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.ID(1), u.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateUser(t *testing.T) {
	req := domain.User{ID: 4, Email: "new@x.com"}
	req.SetDayBirthday(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))

	args := []any{
		req.Email, req.FirstName, req.LastName, req.Phone,
		req.DayBirthday, req.BirthdayThisYear, uint64(4),
	}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "updated"},
		{name: "not found", err: pgx.ErrNoRows, wantErr: domain.ErrNotFound},
		{name: "duplicate email", err: &pgconn.PgError{Code: "23505"}, wantErr: domain.ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMock(t)
			exp := mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).WithArgs(args...)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(pgxmock.NewRows(columns).AddRow(someRow(4, "new@x.com")...))
			}

			u, err := repo.UpdateUser(context.Background(), req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "new@x.com", u.Email)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteUser(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(DeleteUserByID)).
				WithArgs(uint64(9)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := repo.DeleteUser(context.Background(), 9)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateRefreshToken(t *testing.T) {
	mock, repo := newMock(t)
	token := strPtr("refresh-abc")

	mock.ExpectExec(regexp.QuoteMeta(UpdateRefreshTokenByID)).
		WithArgs(token, uint64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(UpdateRefreshTokenByID)).
		WithArgs((*string)(nil), uint64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateRefreshToken(context.Background(), 2, token))
	require.ErrorIs(t, repo.UpdateRefreshToken(context.Background(), 3, nil), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
