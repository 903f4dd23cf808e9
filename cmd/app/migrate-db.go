package app

import (
	"classroom/packages/infrastructure/DB"
	"errors"
	"strconv"
)

var ErrInvalidMigrationSteps = errors.New("invalid migration steps: expected number or 'Up' or 'Down'")

// Opens DB without auto migration and applies requested migration steps.
func MigrateDB(steps string) error {
	if err := DB.Database.Open(); err != nil {
		return err
	}
	defer func() {
		if err := DB.Database.Disconnect(); err != nil {
			appLogger.Error("Failed to disconnect from DB", err.Error(), nil)
		}
	}()

	switch steps {
	case "Up", "up":
		return DB.Migrate.Up()
	case "Down", "down":
		return DB.Migrate.Down()
	}

	n, err := strconv.Atoi(steps)
	if err != nil || n == 0 {
		return ErrInvalidMigrationSteps
	}

	return DB.Migrate.Steps(n)
}
