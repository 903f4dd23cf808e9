package main

import (
	"classroom/cmd/app"
	"classroom/packages/common/config"
	"classroom/packages/common/logger"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
)

var migrateLogger = logger.NewSource("MIGRATE", logger.Default)

type migrateArgs struct {
	Config    *string
	TraceLogs *bool
	Steps     *string
}

var args = new(migrateArgs)

func (a *migrateArgs) Parse() {
	parser := argparse.NewParser("classroom-migrate", "Applies migrations to classroom DB")

	a.Config = parser.String("c", "config", &argparse.Options{
		Default: config.DefaultPath,
		Help:    "Path to YAML config file",
	})
	a.TraceLogs = parser.Flag("t", "trace-logs", &argparse.Options{
		Help: "Enable trace logs",
	})
	a.Steps = parser.String("s", "steps", &argparse.Options{
		Required: true,
		Help: "(Required) Amount of database migration steps. Valid values:\n" +
			"\t\t\t- Up: Migrate forward on 1 version\n" +
			"\t\t\t- Down: Migrate back on 1 version\n" +
			"\t\t\t- N: Number, if N > 0 then will migrate forward on N versions, if N < 0 then will migrate back on N versions",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Println(parser.Usage(err))
		os.Exit(1)
	}
}

func main() {
	args.Parse()

	app.StartInit()

	config.Init(*args.Config)

	logger.Trace.Store(*args.TraceLogs)

	migrateLogger.Info("Applying migrations: "+*args.Steps+"...", nil)

	if err := app.MigrateDB(*args.Steps); err != nil {
		migrateLogger.Error("Failed to apply migrations", err.Error(), nil)
		os.Exit(1)
	}

	migrateLogger.Info("Applying migrations: "+*args.Steps+": OK", nil)
}
