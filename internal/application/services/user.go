package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"user-directory-api/internal/application/ports"
	domain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/mq"
	"user-directory-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	avatars        ports.AvatarFinder
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
	now            func() time.Time
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	avatars ports.AvatarFinder,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	now func() time.Time,
) ports.UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		avatars:        avatars,
		events:         events,
		mCounter:       mCounter,
		now:            now,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return us.userRepository.FetchUserByID(ctx, id)
}

func (us *UserService) FindUsers(ctx context.Context, skip, limit int) (domain.Users, error) {
	return us.userRepository.FetchUsers(ctx, skip, limit)
}

func (us *UserService) SearchUsers(ctx context.Context, f domain.Filter) (domain.Users, error) {
	return us.userRepository.SearchUsers(ctx, f)
}

// UpcomingBirthdays returns one group per day of [today, today+days), empty days included.
func (us *UserService) UpcomingBirthdays(ctx context.Context, days int) ([]domain.Users, error) {
	window := domain.Window(us.now(), days)
	groups := make([]domain.Users, 0, len(window))

	for _, day := range window {
		users, err := us.userRepository.FetchUsersByBirthdays(ctx, domain.BirthdayKeys(day))
		if err != nil {
			return nil, fmt.Errorf("birthdays on %s: %w", day.Format(time.DateOnly), err)
		}
		if users == nil {
			users = domain.Users{}
		}
		groups = append(groups, users)
	}

	return groups, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if err := us.ensureEmailFree(ctx, u.Email, 0); err != nil {
		return nil, err
	}

	u.SetDayBirthday(u.DayBirthday)
	u.IsActive = true

	if password != "" {
		hash, err := us.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = &hash
	}

	if url, ok := us.avatars.Find(ctx, u.Email); ok {
		u.Avatar = &url
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPost, uRet)
	us.count("user_created_total")

	return uRet, nil
}

// UpdateUser replaces every client-editable field of an existing record.
func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	current, err := us.userRepository.FetchUserByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if err = us.ensureEmailFree(ctx, u.Email, u.ID); err != nil {
		return nil, err
	}

	current.Email = u.Email
	current.FirstName = u.FirstName
	current.LastName = u.LastName
	current.Phone = u.Phone
	current.SetDayBirthday(u.DayBirthday)

	uRet, err := us.userRepository.UpdateUser(ctx, *current)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPut, uRet)
	us.count("user_updated_total")

	return uRet, nil
}

func (us *UserService) PatchUser(ctx context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	current, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email, ok := p.NewEmail(); ok && email != current.Email {
		if err = us.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}
	if err = p.ApplyTo(current); err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.UpdateUser(ctx, *current)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPatch, uRet)
	us.count("user_patched_total")

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return err
	}
	if err = us.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	us.publish(http.MethodDelete, u)
	us.count("user_deleted_total")

	return nil
}

// UpdateRefreshToken stores the internal refresh token; nil clears it.
func (us *UserService) UpdateRefreshToken(ctx context.Context, id domain.ID, token *string) error {
	return us.userRepository.UpdateRefreshToken(ctx, id, token)
}

// ensureEmailFree fails with ErrEmailAlreadyExists when email belongs to a record other than owner.
func (us *UserService) ensureEmailFree(ctx context.Context, email string, owner domain.ID) error {
	existing, err := us.userRepository.FetchUserByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != owner:
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func (us *UserService) publish(method string, u *domain.User) {
	if us.events == nil || u == nil {
		return
	}
	us.events.Publish(mq.NewEvent(method, user.ToResponseUser(*u)))
}

func (us *UserService) count(label string) {
	if us.mCounter != nil {
		us.mCounter.WithLabelValues(label).Inc()
	}
}
