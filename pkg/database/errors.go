package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"blogpost/pkg/apperrors"
)

const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02"
)

// IsUniqueViolation reports whether err came from a unique constraint.
// It recognises gorm's translated error as well as raw postgres and sqlite
// driver errors, since translation depends on the dialector.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsMalformedID reports a postgres rejection of a value cast to a typed
// column, such as a non-UUID string compared against a uuid id.
func IsMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidText
}

// Translate maps gorm errors to domain errors: a missing row or a malformed
// id becomes NotFound("<what> not found") and a unique violation becomes
// Conflict.
// Anything else is returned unchanged.
func Translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case IsNotFound(err), IsMalformedID(err):
		return apperrors.NotFound(what + " not found")
	case IsUniqueViolation(err):
		return apperrors.Conflict(what + " already exists")
	default:
		return err
	}
}
