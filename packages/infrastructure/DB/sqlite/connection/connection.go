package connection

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"classroom/packages/common/structs"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

var connectionLogger = logger.NewSource("CONNECTION", logger.Default)

const driverName = "sqlite"

type Manager struct {
	DB          *sql.DB
	path        string
	isConnected bool
}

func New() *Manager {
	return new(Manager)
}

// Builds DSN for the DB file at path.
// WAL journal is used for files, in-memory DBs doesn't support it.
func dsn(path string) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
	}

	if path != ":memory:" && !strings.HasPrefix(path, "file::memory:") {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + strings.Join(pragmas, "&")
}

func (m *Manager) IsConnected() bool {
	return m.isConnected
}

func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) Connect() error {
	if m.isConnected {
		return errors.New("connection already established")
	}

	m.path = config.DB.Path

	connectionLogger.Info("Opening DB: "+m.path+"...", nil)

	db, err := sql.Open(driverName, dsn(m.path))
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(config.DB.MaxOpenConnections)
	db.SetConnMaxIdleTime(time.Minute * 5)

	connectionLogger.Info("Ping connection...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), config.DB.QueryTimeout())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.New("ping timeout")
		}
		return err
	}

	connectionLogger.Info("Ping connection: OK", nil)

	connectionLogger.Info("Opening DB: OK", nil)

	m.DB = db
	m.isConnected = true

	return nil
}

func (m *Manager) Disconnect() error {
	if !m.isConnected {
		return errors.New("connection not established")
	}

	connectionLogger.Info("Closing DB...", nil)

	var closeErr error

	err := structs.SetTimeout(context.Background(), time.Second*10, func(ctx context.Context) {
		closeErr = m.DB.Close()
	})
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	connectionLogger.Info("Closing DB: OK", nil)

	m.isConnected = false

	return nil
}

// Returns context that is bound to the configured query timeout.
func (m *Manager) Context() (context.Context, context.CancelFunc, *Error.Status) {
	if !m.isConnected {
		connectionLogger.Error("Failed to create query context", "connection not established", nil)
		return nil, nil, Error.StatusInternalError
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DB.QueryTimeout())

	return ctx, cancel, nil
}
