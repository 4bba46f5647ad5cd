package user

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("this email already exists")
	ErrValidation         = errors.New("validation failed")

	ErrEmailRequired    = fmt.Errorf("%w: email cannot be null", ErrValidation)
	ErrBirthdayRequired = fmt.Errorf("%w: day_birthday cannot be null", ErrValidation)
)
