package commands

import (
	"eventora/internal/infra"
	"eventora/internal/pkg/errs"
)

// markRepoErr translates repository failures into the usecase sentinels the
// boundary maps to HTTP statuses.
func markRepoErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.NotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.DuplicateKey):
		return errs.Mark(err, errs.ErrInvalidState)
	case infra.IsKind(err, infra.ForeignKeyViolated):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
