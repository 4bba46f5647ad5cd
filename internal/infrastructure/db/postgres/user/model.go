package user

import (
	"time"
)

type (
	User struct {
		ID           uint64
		Email        string
		FirstName    *string
		LastName     *string
		Phone        *string
		PasswordHash *string
		RefreshToken *string
		Avatar       *string
		IsActive     bool

		DayBirthday      time.Time
		BirthdayThisYear time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
