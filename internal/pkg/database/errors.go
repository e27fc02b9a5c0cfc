package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeNumericOverflow      = "22003"

	connectionExceptionClass = "08"
)

// IsSerializationConflict reports whether the store aborted the statement
// because of a competing transaction. Rerunning the transaction may succeed.
func IsSerializationConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	default:
		return false
	}
}

// IsConnectionFailure reports whether err came from a broken or timed out
// connection rather than from the statement itself. Cancellation of the
// caller's context is never a connection failure.
func IsConnectionFailure(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, connectionExceptionClass)
	}

	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// CommitError is returned by WithinTransaction when COMMIT itself fails.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("failed to commit transaction: %v", e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

func (e *CommitError) Is(target error) bool {
	_, ok := target.(*CommitError)
	return ok
}

// IsCommitOutcomeUnknown reports whether COMMIT failed without the server
// answering, so the transaction may or may not have been applied. Such a
// transaction must not be run again.
func IsCommitOutcomeUnknown(err error) bool {
	var commitErr *CommitError
	if !errors.As(err, &commitErr) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(commitErr.Err, &pgErr) || errors.Is(commitErr.Err, pgx.ErrTxCommitRollback) {
		return false
	}

	return !pgconn.SafeToRetry(commitErr.Err)
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

func IsNumericOverflow(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeNumericOverflow
}
