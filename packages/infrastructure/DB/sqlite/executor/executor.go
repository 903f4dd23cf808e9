package executor

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/DB/sqlite/connection"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var executorLogger = logger.NewSource("EXECUTOR", logger.Default)

var conManager *connection.Manager

func Init(manager *connection.Manager) {
	if manager == nil {
		executorLogger.Panic(
			"Failed to initialize DB executor module",
			"Connection manager can't be nil",
			nil,
		)
	}
	conManager = manager
}

func logQuery(q *query.Query) {
	if !config.Debug.Enabled || !config.Debug.LogDbQueries {
		return
	}

	args := make([]string, len(q.Args))
	for i, arg := range q.Args {
		switch a := arg.(type) {
		case *string:
			if a == nil {
				args[i] = "NULL"
			} else {
				args[i] = *a
			}
		case nil:
			args[i] = "NULL"
		default:
			args[i] = fmt.Sprint(a)
		}
	}

	executorLogger.Debug("Running query:\n"+q.SQL+"\n * Query args: "+strings.Join(args, "; "), nil)
}

func prepare(q *query.Query) (context.Context, context.CancelFunc, *Error.Status) {
	ctx, cancel, err := conManager.Context()
	if err != nil {
		return nil, nil, err
	}

	logQuery(q)

	return ctx, cancel, nil
}

// Common interface of *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dests ...any) error
}

// Wrapper for '*sql.DB.ExecContext'
func Exec(q *query.Query) (sql.Result, *Error.Status) {
	ctx, cancel, err := prepare(q)
	if err != nil {
		return nil, err
	}
	defer cancel()

	res, e := conManager.DB.ExecContext(ctx, q.SQL, q.Args...)
	if e != nil {
		return nil, q.ConvertError(e)
	}

	return res, nil
}

// Runs insert query and returns id of the inserted row.
func Insert(q *query.Query) (int64, *Error.Status) {
	res, err := Exec(q)
	if err != nil {
		return 0, err
	}

	id, e := res.LastInsertId()
	if e != nil {
		return 0, q.ConvertError(e)
	}

	return id, nil
}

// Runs query and returns amount of affected rows.
func Affected(q *query.Query) (int64, *Error.Status) {
	res, err := Exec(q)
	if err != nil {
		return 0, err
	}

	n, e := res.RowsAffected()
	if e != nil {
		return 0, q.ConvertError(e)
	}

	return n, nil
}

// Same as Affected, but returns notFound if no rows were affected.
func AffectedOrNotFound(q *query.Query, notFound *Error.Status) *Error.Status {
	n, err := Affected(q)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// Runs query and scans resulting row with scan.
// Returns Error.StatusNotFound if query has no result.
func Row[T any](q *query.Query, scan func(Scanner) (T, error)) (T, *Error.Status) {
	var zero T

	ctx, cancel, err := prepare(q)
	if err != nil {
		return zero, err
	}
	defer cancel()

	v, e := scan(conManager.DB.QueryRowContext(ctx, q.SQL, q.Args...))
	if e != nil {
		return zero, q.ConvertError(e)
	}

	return v, nil
}

// Runs query and scans all resulting rows with scan.
// Empty result is not an error.
func Collect[T any](q *query.Query, scan func(Scanner) (T, error)) ([]T, *Error.Status) {
	ctx, cancel, err := prepare(q)
	if err != nil {
		return nil, err
	}
	defer cancel()

	rows, e := conManager.DB.QueryContext(ctx, q.SQL, q.Args...)
	if e != nil {
		return nil, q.ConvertError(e)
	}
	defer rows.Close()

	res := []T{}

	for rows.Next() {
		v, e := scan(rows)
		if e != nil {
			executorLogger.Error("Failed to collect rows", e.Error(), nil)
			return nil, q.ConvertError(e)
		}
		res = append(res, v)
	}

	if e := rows.Err(); e != nil {
		return nil, q.ConvertError(e)
	}

	return res, nil
}

// Scans single integer, e.g. result of COUNT(*).
func Count(q *query.Query) (int, *Error.Status) {
	return Row(q, func(s Scanner) (int, error) {
		var n int
		err := s.Scan(&n)
		return n, err
	})
}
