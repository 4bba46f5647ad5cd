package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	domain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/interface/api/rest/dto/user"
	"user-directory-api/pkg/optional"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	maxNameLen  = 50
	maxEmailLen = 150
	maxPhoneLen = 150

	DefaultSkip  = 0
	DefaultLimit = 10
	MinLimit     = 10
	MaxLimit     = 100
	DefaultDays  = 7
	MaxDays      = 366
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{4,}$`)

	ErrInvalidID    = errors.New("user_id must be a positive integer")
	ErrInvalidSkip  = errors.New("skip must be a non-negative integer")
	ErrInvalidLimit = errors.New("limit must be an integer between 10 and 100")
	ErrInvalidDays  = errors.New("days must be an integer between 0 and 366")
)

func ValidateID(s string) (domain.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return domain.ID(id), nil
}

func ValidatePaging(skip, limit string) (int, int, error) {
	s, l := DefaultSkip, DefaultLimit
	var err error

	if skip != "" {
		if s, err = strconv.Atoi(skip); err != nil || s < 0 {
			return 0, 0, ErrInvalidSkip
		}
	}
	if limit != "" {
		if l, err = strconv.Atoi(limit); err != nil || l < MinLimit || l > MaxLimit {
			return 0, 0, ErrInvalidLimit
		}
	}

	return s, l, nil
}

func ValidateDays(days string) (int, error) {
	if days == "" {
		return DefaultDays, nil
	}
	d, err := strconv.Atoi(days)
	if err != nil || d < 0 || d > MaxDays {
		return 0, ErrInvalidDays
	}
	return d, nil
}

func ValidateUser(r user.Request) map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)
	validateBirthday(errs, r.DayBirthday)
	if r.FirstName != nil {
		validateName(errs, "first_name", *r.FirstName)
	}
	if r.LastName != nil {
		validateName(errs, "last_name", *r.LastName)
	}
	if r.PhoneNumber != nil {
		validatePhone(errs, *r.PhoneNumber)
	}

	// password is optional, but must be hashable when present
	if r.Password != "" {
		if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
			errs["password"] = "password length must be 8–72 characters"
		} else if len(r.Password) > maxPasswordLen {
			errs["password"] = "password must not exceed 72 bytes"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidatePatch(r user.PatchRequest) map[string]string {
	errs := make(map[string]string)

	switch {
	case r.Email.IsNull():
		errs["email"] = "email cannot be null"
	case r.Email.IsSet():
		v, _ := r.Email.Get()
		validateEmail(errs, v)
	}

	switch {
	case r.DayBirthday.IsNull():
		errs["day_birthday"] = "day_birthday cannot be null"
	case r.DayBirthday.IsSet():
		v, _ := r.DayBirthday.Get()
		validateBirthday(errs, v)
	}

	validateOptional(r.FirstName, func(v string) { validateName(errs, "first_name", v) })
	validateOptional(r.LastName, func(v string) { validateName(errs, "last_name", v) })
	validateOptional(r.PhoneNumber, func(v string) { validatePhone(errs, v) })

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func validateOptional(v optional.Value[string], check func(string)) {
	if s, ok := v.Get(); ok {
		check(s)
	}
}

func validateEmail(errs map[string]string, raw string) {
	email := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case email == "":
		errs["email"] = "email is required"
	case len(email) > maxEmailLen:
		errs["email"] = "email must not exceed 150 characters"
	default:
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs["email"] = "invalid email format"
		}
	}
}

func validateBirthday(errs map[string]string, raw string) {
	bdate := strings.TrimSpace(raw)
	if bdate == "" {
		errs["day_birthday"] = "day_birthday is required"
	} else if _, err := time.Parse(time.DateOnly, bdate); err != nil {
		errs["day_birthday"] = "must be YYYY-MM-DD"
	}
}

// empty names are allowed: they are a value, not an omission
func validateName(errs map[string]string, field, raw string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs[field] = field + " must not exceed 50 characters"
	} else if !isHumanName(name) {
		errs[field] = "allowed characters: letters, space, '-', '''"
	}
}

func validatePhone(errs map[string]string, raw string) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return
	}
	if len(phone) > maxPhoneLen || !phoneRe.MatchString(phone) {
		errs["phone_number"] = "invalid phone number format"
	}
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
