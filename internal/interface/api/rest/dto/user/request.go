package user

import "user-directory-api/pkg/optional"

type (
	// Request is the body of create and full update. Password is only honoured on create.
	Request struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Email       string  `json:"email"`
		PhoneNumber *string `json:"phone_number"`
		DayBirthday string  `json:"day_birthday"`
		Password    string  `json:"password,omitempty"`
	}

	PatchRequest struct {
		FirstName   optional.Value[string] `json:"first_name"`
		LastName    optional.Value[string] `json:"last_name"`
		Email       optional.Value[string] `json:"email"`
		PhoneNumber optional.Value[string] `json:"phone_number"`
		DayBirthday optional.Value[string] `json:"day_birthday"`
	}
)
