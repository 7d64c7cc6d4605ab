// Package dberr maps GORM and PostgreSQL failures onto the errs taxonomy so
// callers never see driver specific errors.
package dberr

import (
	"errors"

	"ordertrack/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	stringTooLong       = "22001"
	numericOutOfRange   = "22003"
)

// referenceParam is reported when a write points at a row that no longer
// exists. The constraint name stays in the cause.
const referenceParam = "reference"

var errDoesNotFit = errors.New("value does not fit the column")

// Service names the store in TransportError messages.
const Service = "postgres"

// Translate converts err returned by a query on entity identified by key:
//   - a missing row becomes *errs.ObjectNotFoundError
//   - a unique key violation becomes *errs.ObjectAlreadyExistsError
//   - a foreign key violation becomes *errs.ObjectNotFoundError of the referenced row
//   - a value that does not fit its column becomes *errs.ValueIsInvalidError
//     whose message carries no driver text
//   - anything else becomes *errs.TransportError
func Translate(err error, entity string, key any) error {
	return TranslateUnique(err, entity, key, entity, key)
}

// TranslateUnique is Translate with the duplicated param/value reported
// separately from the looked up key.
func TranslateUnique(err error, entity string, key any, param string, value any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, key)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause(param, value, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errs.NewObjectAlreadyExistsErrorWithCause(param, value, err)
		case foreignKeyViolation:
			return errs.NewObjectNotFoundErrorWithCause(referenceParam, key, err)
		case stringTooLong, numericOutOfRange:
			column := pgErr.ColumnName
			if column == "" {
				column = entity
			}
			return errs.NewValueIsInvalidErrorWithCause(column, errDoesNotFit)
		}
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectNotFoundErrorWithCause(entity, key, err)
	}

	return errs.NewTransportErrorWithCause(Service, err)
}
