package app

import (
	"classroom/packages/common/config"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
)

type appArgs struct {
	Config    *string
	Debug     *bool
	ShowLogs  *bool
	TraceLogs *bool
	MigrateDB *string
}

var Args = new(appArgs)

func (a *appArgs) Parse() {
	parser := argparse.NewParser(
		"classroom",
		"Blog API with JWT authentication (users, posts and comments)",
	)

	a.Config = parser.String("c", "config", &argparse.Options{
		Default: config.DefaultPath,
		Help:    "Path to YAML config file",
	})
	a.Debug = parser.Flag("d", "debug", &argparse.Options{
		Help: "Enable debug mode",
	})
	a.ShowLogs = parser.Flag("l", "show-logs", &argparse.Options{
		Help: "Show logs in terminal",
	})
	a.TraceLogs = parser.Flag("t", "trace-logs", &argparse.Options{
		Help: "Enable trace logs",
	})
	a.MigrateDB = parser.String("M", "migrate-db", &argparse.Options{
		Help: "Apply DB migrations and exit, valid values:\n" +
			"\t\t\tUp - Migrate forward on 1 version\n" +
			"\t\t\tDown - Migrate back on 1 version\n" +
			"\t\t\tN - Number, if N > 0 then will migrate forward on N versions, if N < 0 then will migrate back on N versions",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Println(parser.Usage(err))
		os.Exit(1)
	}
}

// Overrides config with values of command line flags.
func (a *appArgs) Apply() {
	if *a.Debug {
		config.Debug.Enabled = true
	}
	if *a.ShowLogs {
		config.App.ShowLogs = true
	}
	if *a.TraceLogs {
		config.App.TraceLogsEnabled = true
	}
}
