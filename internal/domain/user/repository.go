package user

import (
	"context"
	"time"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUsers(ctx context.Context, skip, limit int) (Users, error)
	SearchUsers(ctx context.Context, f Filter) (Users, error)
	FetchUsersByBirthdays(ctx context.Context, keys []time.Time) (Users, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	DeleteUser(ctx context.Context, id ID) error
	UpdateRefreshToken(ctx context.Context, id ID, token *string) error
}
