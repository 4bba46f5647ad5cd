package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsPgUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"other pg error", &pgconn.PgError{Code: "23502"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPgUniqueViolation(tt.err))
		})
	}
}

func TestEnsureSchema(t *testing.T) {
	t.Run("applies ddl", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(Schema)).WillReturnResult(pgxmock.NewResult("CREATE", 0))

		require.NoError(t, EnsureSchema(context.Background(), zap.NewNop(), mock))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(Schema)).WillReturnError(errors.New("permission denied"))

		err = EnsureSchema(context.Background(), zap.NewNop(), mock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ensure schema")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
