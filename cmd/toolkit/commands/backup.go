package commands

import (
	"classroom/packages/infrastructure/backup"
	"strconv"

	"github.com/spf13/cobra"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <origem> <destino>",
		Short: "Copiar arquivos de um diretório para outro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := backup.Run(args[0], args[1])
			if err != nil {
				return err
			}

			rows := make([][]string, len(report.Copied))
			for i, name := range report.Copied {
				rows[i] = []string{name}
			}

			out := cmd.OutOrStdout()

			renderTable(out, []string{"Arquivo"}, rows)
			success(out, strconv.Itoa(len(report.Copied))+" arquivos copiados para "+report.Destination)

			return nil
		},
	}
}
