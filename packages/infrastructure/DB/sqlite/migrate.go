package sqlite

import (
	"classroom/packages/common/logger"
	"embed"
	"errors"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var migrationLogger = logger.NewSource("MIGRATION", logger.Default)

//go:embed migrations/*.sql
var migrations embed.FS

type Migrate struct {
	//
}

// Migrator must not be closed, closing it will close DB connection as well.
func (_ Migrate) init() (*migrate.Migrate, error) {
	migrationLogger.Trace("Initializing DB driver for migrations...", nil)

	if driver == nil || !driver.manager.IsConnected() {
		return nil, errors.New("DB connection not established")
	}

	dbDriver, err := migratesqlite.WithInstance(driver.manager.DB, &migratesqlite.Config{})
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", dbDriver)
	if err != nil {
		return nil, err
	}

	migrationLogger.Trace("Initializing DB driver for migrations: OK", nil)

	return m, nil
}

func (m Migrate) step(n int) error {
	version := strconv.FormatInt(int64(n), 10)

	migrator, err := m.init()
	if err != nil {
		migrationLogger.Error("Failed to initialize migrations", err.Error(), nil)
		return err
	}

	migrationLogger.Info("Applying migrations... (version change: "+version+")", nil)

	if err = migrator.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		migrationLogger.Error("Failed to apply migrations", err.Error(), nil)
		return err
	}

	migrationLogger.Info("Migrations applied (version change: "+version+")", nil)

	return nil
}

// Migrates forward on 1 version
func (m Migrate) Up() error {
	return m.step(1)
}

// Migrates back on 1 version
func (m Migrate) Down() error {
	return m.step(-1)
}

// Migrates forward on n versions if n > 0, back on n versions otherwise.
func (m Migrate) Steps(n int) error {
	return m.step(n)
}

// Applies all pending migrations.
func (m Migrate) Latest() error {
	migrator, err := m.init()
	if err != nil {
		migrationLogger.Error("Failed to initialize migrations", err.Error(), nil)
		return err
	}

	migrationLogger.Info("Applying all pending migrations...", nil)

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			migrationLogger.Info("No pending migrations", nil)
			return nil
		}
		migrationLogger.Error("Failed to apply migrations", err.Error(), nil)
		return err
	}

	migrationLogger.Info("Applying all pending migrations: OK", nil)

	return nil
}

// Returns current schema version, 0 if no migrations were applied.
func (m Migrate) Version() (uint, bool, error) {
	migrator, err := m.init()
	if err != nil {
		return 0, false, err
	}

	v, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return v, dirty, err
}
