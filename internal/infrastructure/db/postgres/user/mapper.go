package user

import (
	domain "user-directory-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Email:        model.Email,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Phone:        model.Phone,
		PasswordHash: model.PasswordHash,
		RefreshToken: model.RefreshToken,
		Avatar:       model.Avatar,
		IsActive:     model.IsActive,

		DayBirthday:      model.DayBirthday,
		BirthdayThisYear: model.BirthdayThisYear,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}
