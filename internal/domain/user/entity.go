package user

import (
	"time"

	"user-directory-api/pkg/optional"
)

type (
	ID   uint64
	User struct {
		ID           ID
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

	// Patch carries the fields of a partial update. Absent fields are left untouched.
	Patch struct {
		Email       optional.Value[string]
		FirstName   optional.Value[string]
		LastName    optional.Value[string]
		Phone       optional.Value[string]
		DayBirthday optional.Value[time.Time]
	}
)

// SetDayBirthday keeps BirthdayThisYear in step with DayBirthday.
func (u *User) SetDayBirthday(d time.Time) {
	u.DayBirthday = DateOf(d)
	u.BirthdayThisYear = BirthdayThisYear(d)
}

// NewEmail reports the email the patch switches to, if any.
func (p Patch) NewEmail() (string, bool) {
	return p.Email.Get()
}

func (p Patch) ApplyTo(u *User) error {
	if p.Email.IsNull() {
		return ErrEmailRequired
	}
	if p.DayBirthday.IsNull() {
		return ErrBirthdayRequired
	}

	if email, ok := p.Email.Get(); ok {
		u.Email = email
	}
	if p.FirstName.IsSet() {
		u.FirstName = p.FirstName.Ptr()
	}
	if p.LastName.IsSet() {
		u.LastName = p.LastName.Ptr()
	}
	if p.Phone.IsSet() {
		u.Phone = p.Phone.Ptr()
	}
	if d, ok := p.DayBirthday.Get(); ok {
		u.SetDayBirthday(d)
	}

	return nil
}
