package user

import (
	"time"
)

type (
	User struct {
		ID               uint64    `json:"id"`
		FirstName        *string   `json:"first_name"`
		LastName         *string   `json:"last_name"`
		Email            string    `json:"email"`
		PhoneNumber      *string   `json:"phone_number"`
		DayBirthday      string    `json:"day_birthday"`
		BirthdayThisYear string    `json:"birthday_this_year"`
		Avatar           string    `json:"avatar,omitempty"`
		IsActive         bool      `json:"is_active"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}
	Users []User
)
