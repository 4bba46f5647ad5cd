package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Schema is idempotent; it is applied explicitly at startup, never on first use.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id                 BIGSERIAL PRIMARY KEY,
		first_name         VARCHAR(50),
		last_name          VARCHAR(50),
		email              VARCHAR(150) NOT NULL,
		phone_number       VARCHAR(150),
		day_birthday       DATE NOT NULL,
		birthday_this_year DATE NOT NULL,
		hashed_password    TEXT,
		refresh_token      TEXT,
		avatar             TEXT,
		is_active          BOOLEAN NOT NULL DEFAULT TRUE,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_email_key UNIQUE (email)
	);
	CREATE INDEX IF NOT EXISTS users_birthday_this_year_idx ON users (birthday_this_year);
	CREATE INDEX IF NOT EXISTS users_first_name_idx ON users (first_name);
	CREATE INDEX IF NOT EXISTS users_last_name_idx ON users (last_name);
`

func EnsureSchema(ctx context.Context, logger *zap.Logger, db DB) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	logger.Info("db schema is up to date")

	return nil
}
