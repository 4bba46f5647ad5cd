package user

const (
	userColumns = `id, email, first_name, last_name, phone_number, day_birthday, birthday_this_year, hashed_password, refresh_token, avatar, is_active, created_at, updated_at`

	SelectUsersBase = `SELECT ` + userColumns + ` FROM users`

	SelectUsers = SelectUsersBase + `
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	SelectUserByID = SelectUsersBase + `
		WHERE id = $1
	`
	SelectUserByEmail = SelectUsersBase + `
		WHERE email = $1
	`
	SelectUsersByBirthdays = SelectUsersBase + `
		WHERE birthday_this_year = ANY($1::date[])
		ORDER BY id
	`
	InsertUser = `
		INSERT INTO users (email, first_name, last_name, phone_number, day_birthday, birthday_this_year, hashed_password, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    first_name = $2,
		    last_name = $3,
		    phone_number = $4,
		    day_birthday = $5,
		    birthday_this_year = $6,
		    updated_at = now()
		WHERE id = $7
		RETURNING ` + userColumns
	UpdateRefreshTokenByID = `
		UPDATE users
		SET refresh_token = $1,
		    updated_at = now()
		WHERE id = $2
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
