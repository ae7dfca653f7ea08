package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the repos can hit
const (
	sqlUniqueViolation     = "23505"
	sqlForeignKeyViolation = "23503"
	sqlNotNullViolation    = "23502"
	sqlCheckViolation      = "23514"
	sqlStringTooLong       = "22001"
	sqlBadTextValue        = "22P02"
	sqlUndefinedTable      = "42P01"
	sqlReadOnlyTx          = "25006"
	sqlCannotConnectNow    = "57P03"
)

var codeBySQLState = map[string]ErrorCode{
	sqlUniqueViolation:     ErrorCodeDuplicateKey,
	sqlForeignKeyViolation: ErrorCodeInvalidArgument,
	sqlStringTooLong:       ErrorCodeInvalidArgument,
	sqlBadTextValue:        ErrorCodeInvalidArgument,
	sqlNotNullViolation:    ErrorCodeValidation,
	sqlCheckViolation:      ErrorCodeValidation,
	// tables missing means reset has not run yet
	sqlUndefinedTable:   ErrorCodeUnavailable,
	sqlReadOnlyTx:       ErrorCodeUnavailable,
	sqlCannotConnectNow: ErrorCodeUnavailable,
}

// PgError digs the *pgconn.PgError out of err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// DBErrorCode classifies a postgres error by SQLSTATE
// ok is false when err is not a postgres error at all
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, known := codeBySQLState[pgErr.Code]; known {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with msg under the code its SQLSTATE maps to
// errors that did not come from the server are ErrorCodeDB, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresWithField is FromPostgres plus the column the server blamed
// the column name wins, else the constraint suffix (events_title_check -> title)
func FromPostgresWithField(err error, msg string) error {
	wrapped := FromPostgres(err, msg)
	pgErr, ok := PgError(err)
	if !ok {
		return wrapped
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(wrapped, col)
	}
	if f := constraintField(pgErr.TableName, pgErr.ConstraintName); f != "" {
		return WithField(wrapped, f)
	}
	return wrapped
}

// constraintField strips the table prefix and the kind suffix postgres puts on generated names
func constraintField(table, constraint string) string {
	c := strings.TrimSpace(constraint)
	if c == "" {
		return ""
	}
	if table != "" {
		c = strings.TrimPrefix(c, table+"_")
	}
	for _, suffix := range []string{"_fkey", "_key", "_check", "_pkey"} {
		c = strings.TrimSuffix(c, suffix)
	}
	if c == "" || c == constraint {
		return ""
	}
	return c
}
