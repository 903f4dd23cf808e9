package commands

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/DB"
	"context"

	"github.com/spf13/cobra"
)

const defaultDBPath = "toolkit.db"

var log = logger.NewSource("TOOLKIT", logger.Default)

type options struct {
	configPath string
	dbPath     string
	verbose    bool
}

func NewRoot(ctx context.Context) *cobra.Command {
	opts := new(options)

	cmd := &cobra.Command{
		Use:           "toolkit",
		Short:         "Utilitários do curso: tarefas, clientes, clima, livros e mais",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "arquivo de configuração")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", defaultDBPath, "caminho do banco SQLite")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "exibir logs no stdout")

	cmd.AddCommand(
		newTasksCommand(),
		newClientsCommand(),
		newWeatherCommand(ctx),
		newBooksCommand(ctx),
		newCalcCommand(),
		newValidateCommand(),
		newShoppingCommand(),
		newContactsCommand(),
		newBackupCommand(),
		newGradesCommand(),
	)

	return cmd
}

// Config file is optional, "--db" always takes precedence over its db-path.
func setup(opts *options) error {
	logger.Debug.Store(opts.verbose)

	if opts.verbose {
		// Forwarding may already exist if root was executed before in the same process
		_ = logger.Default.NewForwarding(logger.Stdout)
	}

	c, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	c.Path = opts.dbPath
	c.ShowLogs = opts.verbose

	config.Apply(c)

	return nil
}

// Wraps run, so DB is connected (and migrated) before it and disconnected after.
func withDB(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := DB.Database.Connect(); err != nil {
			return err
		}
		defer func() {
			if err := DB.Database.Disconnect(); err != nil {
				log.Error("Failed to disconnect from DB", err.Error(), nil)
			}
		}()

		return run(cmd, args)
	}
}

// Converts status error to plain error, so nil status doesn't become non-nil interface.
func check(err *Error.Status) error {
	if err != nil {
		return err
	}
	return nil
}
