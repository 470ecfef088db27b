package infra

import (
	"errors"

	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a low-level failure. An explicit kind wins; otherwise
// the kind is derived from pgx sentinels and Postgres SQLSTATE codes. The
// result also carries the matching domain error kind so usecases and handlers
// never need to look at RepositoryErrorKind.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	repoErr := RepositoryError{Kind: k, msg: msg, err: err}
	if marker := domainMarker(k); marker != nil {
		return errs.Mark(repoErr, marker)
	}
	return repoErr
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindTimeout            RepositoryErrorKind = "TIMEOUT"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)

const (
	PgCodeUniqueViolation     = "23505"
	PgCodeForeignKeyViolation = "23503"
	PgCodeExclusionViolation  = "23P01"
	PgCodeCheckViolation      = "23514"
	PgCodeLockNotAvailable    = "55P03"
	PgCodeQueryCanceled       = "57014"
)

// PgCode returns the SQLSTATE carried by err, or "".
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	switch PgCode(err) {
	case PgCodeExclusionViolation:
		return KindConflict
	case PgCodeUniqueViolation:
		return KindDuplicateKey
	case PgCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case PgCodeCheckViolation:
		return KindCheckViolated
	case PgCodeLockNotAvailable, PgCodeQueryCanceled:
		return KindTimeout
	default:
		return KindDBFailure
	}
}

func domainMarker(kind RepositoryErrorKind) error {
	switch kind {
	case KindNotFound, KindForeignKeyViolated:
		return errs.ErrNotFound
	case KindConflict:
		return errs.ErrConflict
	case KindCheckViolated:
		return errs.ErrValidation
	default:
		return nil
	}
}
