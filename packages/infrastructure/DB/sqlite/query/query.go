package query

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"context"
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var queryLogger = logger.NewSource("QUERY", logger.Default)

type Query struct {
	SQL  string
	Args []any
}

func New(sql string, args ...any) *Query {
	return &Query{
		SQL:  sql,
		Args: args,
	}
}

func IsUniqueViolation(err error) bool {
	var e *sqlite.Error
	if errors.As(err, &e) {
		return e.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			e.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// Referenced row doesn't exist (or was deleted in the meantime).
func IsForeignKeyViolation(err error) bool {
	var e *sqlite.Error
	if errors.As(err, &e) {
		return e.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}

// Converts err into *Error.Status and logs it.
//
// Unique constraint violation is converted to Error.StatusConflict,
// deadline to Error.StatusTimeout. Both sql.ErrNoRows and foreign key
// violation are converted to Error.StatusNotFound.
// Any other error is converted to Error.StatusInternalError.
func (q *Query) ConvertError(err error) *Error.Status {
	if errors.Is(err, sql.ErrNoRows) {
		return Error.StatusNotFound
	}

	if IsUniqueViolation(err) {
		queryLogger.Trace("Unique constraint violated: "+err.Error(), nil)
		return Error.StatusConflict
	}

	if IsForeignKeyViolation(err) {
		queryLogger.Trace("Foreign key constraint violated: "+err.Error(), nil)
		return Error.StatusNotFound
	}

	defer queryLogger.Debug("Failed query: "+q.SQL, nil)

	if errors.Is(err, context.DeadlineExceeded) {
		queryLogger.Error("Query failed", "Operation timeout", nil)
		return Error.StatusTimeout
	}

	queryLogger.Error("Query failed", err.Error(), nil)

	return Error.StatusInternalError
}
