package ports

import (
	"context"

	"user-directory-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context, skip, limit int) (user.Users, error)
	SearchUsers(ctx context.Context, f user.Filter) (user.Users, error)
	UpcomingBirthdays(ctx context.Context, days int) ([]user.Users, error)
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	PatchUser(ctx context.Context, id user.ID, p user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
	UpdateRefreshToken(ctx context.Context, id user.ID, token *string) error
}
