package transaction

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/DB/sqlite/connection"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"database/sql"
	"errors"
)

var txLogger = logger.NewSource("DB TRANSACTION", logger.Default)

var conManager *connection.Manager

func Init(manager *connection.Manager) {
	if manager == nil {
		txLogger.Panic(
			"Failed to initialize DB transaction module",
			"Connection manager can't be nil",
			nil,
		)
	}
	conManager = manager
}

type Transaction struct {
	queries []*query.Query
}

func New(queries ...*query.Query) *Transaction {
	return &Transaction{queries}
}

// Runs all queries in a single transaction.
// Returns total amount of affected rows.
// If any query fails, none of them is applied.
func (t *Transaction) Exec() (int64, *Error.Status) {
	if len(t.queries) == 0 {
		txLogger.Warning("Transaction has no queries, execution will be skipped", nil)
		return 0, nil
	}

	for _, query := range t.queries {
		if query == nil {
			txLogger.Panic("Failed to run transaction", "At least one query is nil", nil)
			return 0, Error.StatusInternalError
		}
	}

	ctx, cancel, err := conManager.Context()
	if err != nil {
		return 0, err
	}
	defer cancel()

	tx, e := conManager.DB.BeginTx(ctx, nil)
	if e != nil {
		txLogger.Error("Failed to begin transaction", e.Error(), nil)
		return 0, Error.StatusInternalError
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			txLogger.Error("Rollback failed (non-critical)", err.Error(), nil)
		}
	}()

	var affected int64

	for _, query := range t.queries {
		res, err := tx.ExecContext(ctx, query.SQL, query.Args...)
		if err != nil {
			return 0, query.ConvertError(err)
		}
		if n, err := res.RowsAffected(); err == nil {
			affected += n
		}
	}

	if err := tx.Commit(); err != nil {
		txLogger.Error("Failed to commit transaction", err.Error(), nil)
		return 0, Error.StatusInternalError
	}

	return affected, nil
}
