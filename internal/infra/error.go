package infra

import (
	"errors"
	"log/slog"

	"click-collect/internal/pkg/errs"
	"click-collect/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
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

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// A guarded update matched no row.
	KindConflict RepositoryErrorKind = "CONFLICT"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// WrapRepoErr classifies a driver error, logs it once and wraps it.
func WrapRepoErr(msg string, err error) error {
	return NewRepoErr(Classify(err), msg, err)
}

// NewRepoErr builds a repository error of an explicit kind; err may be nil.
func NewRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	switch kind {
	case KindNotFound:
		slog.Debug("Repository error: "+msg, logArgs...)
	case KindConflict, KindDuplicateKey:
		slog.Warn("Repository error: "+msg, logArgs...)
	default:
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func Classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) || errors.Is(err, mongo.ErrNoDocuments) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindDuplicateKey
		case pgForeignKeyViolation:
			return KindForeignKeyViolated
		case pgCheckViolation:
			return KindConflict
		}
	}
	if mongo.IsDuplicateKeyError(err) {
		return KindDuplicateKey
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
