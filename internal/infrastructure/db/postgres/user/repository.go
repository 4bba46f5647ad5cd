package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.DayBirthday,
		&u.BirthdayThisYear,
		&u.PasswordHash,
		&u.RefreshToken,
		&u.Avatar,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (user.Users, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := Users{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsers(ctx context.Context, skip, limit int) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsers, limit, skip)
}

func (r *Repository) SearchUsers(ctx context.Context, f user.Filter) (user.Users, error) {
	query, args := buildSearchQuery(f)
	return r.fetchMany(ctx, query, args...)
}

func (r *Repository) FetchUsersByBirthdays(ctx context.Context, keys []time.Time) (user.Users, error) {
	if len(keys) == 0 {
		return user.Users{}, nil
	}
	return r.fetchMany(ctx, SelectUsersByBirthdays, keys)
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, uint64(id))
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.FirstName, req.LastName, req.Phone,
		req.DayBirthday, req.BirthdayThisYear, req.PasswordHash, req.Avatar,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		UpdateUserByID,
		req.Email, req.FirstName, req.LastName, req.Phone,
		req.DayBirthday, req.BirthdayThisYear, uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("update user %d: %w", req.ID, err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateRefreshToken(ctx context.Context, id user.ID, token *string) error {
	tag, err := r.db.Exec(ctx, UpdateRefreshTokenByID, token, uint64(id))
	if err != nil {
		return fmt.Errorf("update refresh token of user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, DeleteUserByID, uint64(id))
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}
