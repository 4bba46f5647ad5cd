package user

import (
	"errors"
	"strings"
	"time"

	"user-directory-api/internal/domain/user"
	"user-directory-api/pkg/optional"
)

var errBirthdayFormat = errors.New("invalid day_birthday format, want YYYY-MM-DD")

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:               uint64(uDomain.ID),
		FirstName:        uDomain.FirstName,
		LastName:         uDomain.LastName,
		Email:            uDomain.Email,
		PhoneNumber:      uDomain.Phone,
		DayBirthday:      uDomain.DayBirthday.Format(time.DateOnly),
		BirthdayThisYear: uDomain.BirthdayThisYear.Format(time.DateOnly),
		IsActive:         uDomain.IsActive,
		CreatedAt:        uDomain.CreatedAt,
		UpdatedAt:        uDomain.UpdatedAt,
	}
	if uDomain.Avatar != nil {
		u.Avatar = *uDomain.Avatar
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToResponseGroups keeps one (possibly empty) group per input group.
func ToResponseGroups(groups []user.Users) []Users {
	out := make([]Users, len(groups))
	for idx, g := range groups {
		out[idx] = ToResponseUsers(g)
	}

	return out
}

func ToDomainUser(uRequest Request) (user.User, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(uRequest.DayBirthday))
	if err != nil {
		return user.User{}, errBirthdayFormat
	}

	var u = user.User{
		Email:     strings.TrimSpace(uRequest.Email),
		FirstName: uRequest.FirstName,
		LastName:  uRequest.LastName,
		Phone:     uRequest.PhoneNumber,
	}
	u.SetDayBirthday(d)

	return u, nil
}

func ToDomainPatch(req PatchRequest) (user.Patch, error) {
	p := user.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.PhoneNumber,
	}

	switch {
	case req.Email.IsNull():
		p.Email = optional.Null[string]()
	case req.Email.IsSet():
		email, _ := req.Email.Get()
		p.Email = optional.Of(strings.TrimSpace(email))
	}

	switch {
	case req.DayBirthday.IsNull():
		p.DayBirthday = optional.Null[time.Time]()
	case req.DayBirthday.IsSet():
		raw, _ := req.DayBirthday.Get()
		d, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
		if err != nil {
			return user.Patch{}, errBirthdayFormat
		}
		p.DayBirthday = optional.Of(d)
	}

	return p, nil
}
