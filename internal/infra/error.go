package infra

import (
	"errors"
	"fmt"

	"eventora/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

const (
	NotFound            RepositoryErrorKind = "NOT_FOUND"
	DBFailure           RepositoryErrorKind = "DB_FAILURE"
	DuplicateKey        RepositoryErrorKind = "DUPLICATE_KEY"
	ForeignKeyViolated  RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	SerializationFailed RepositoryErrorKind = "SERIALIZATION_FAILED"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error (%s): %v", e.Kind, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// WrapRepoErr classifies a raw database error into a RepositoryError so
// upper layers can branch on Kind without importing pgx.
func WrapRepoErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	kind := classify(err)
	return errs.Wrap(&RepositoryError{Kind: kind, Err: err}, msg)
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return DuplicateKey
		case "23503":
			return ForeignKeyViolated
		case "40001", "40P01":
			return SerializationFailed
		}
	}
	return DBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
