//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"eventora/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows maps to not found", err: pgx.ErrNoRows, want: infra.NotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.DuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.ForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.SerializationFailed},
		{name: "deadlock detected", err: &pgconn.PgError{Code: "40P01"}, want: infra.SerializationFailed},
		{name: "anything else is a db failure", err: errors.New("connection refused"), want: infra.DBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr(tt.err, "query failed")
			require.Error(t, wrapped)
			assert.True(t, infra.IsKind(wrapped, tt.want))
		})
	}
}

func TestWrapRepoErr_NilPassthrough(t *testing.T) {
	assert.NoError(t, infra.WrapRepoErr(nil, "ignored"))
}

func TestWrapRepoErr_PreservesCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}
	wrapped := infra.WrapRepoErr(cause, "insert review")

	var pgErr *pgconn.PgError
	require.True(t, errors.As(wrapped, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)
}
