package commands

import (
	"classroom/packages/common/validation"
	"classroom/packages/infrastructure/grades"
	"strconv"

	"github.com/spf13/cobra"
)

const defaultGradesFile = "notas_alunos.csv"

func formatGrade(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func newGradesCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Sistema de notas em arquivo CSV",
	}

	cmd.PersistentFlags().StringVarP(&file, "file", "f", defaultGradesFile, "arquivo CSV de notas")

	minGrade, maxGrade := 0.0, 10.0

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <nome> <materia> <nota>",
			Short: "Adicionar nota",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				nome, err := validation.Text(args[0], 2, 100)
				if err != nil {
					return err
				}
				materia, err := validation.Text(args[1], 2, 100)
				if err != nil {
					return err
				}
				nota, err := validation.Float(args[2], &minGrade, &maxGrade)
				if err != nil {
					return err
				}

				if err := grades.Add(file, &grades.Grade{Nome: nome, Materia: materia, Nota: nota}); err != nil {
					return err
				}

				success(cmd.OutOrStdout(), "Nota de "+nome+" em "+materia+" adicionada")

				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Adicionar notas de exemplo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				samples := grades.Samples()

				if err := grades.Add(file, samples...); err != nil {
					return err
				}

				success(cmd.OutOrStdout(), strconv.Itoa(len(samples))+" notas de exemplo adicionadas em "+file)

				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Exibir notas",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				all, err := grades.Load(file)
				if err != nil {
					return err
				}

				rows := make([][]string, len(all))
				for i, g := range all {
					rows[i] = []string{g.Nome, g.Materia, formatGrade(g.Nota)}
				}

				renderTable(cmd.OutOrStdout(), grades.Header, rows)

				return nil
			},
		},
	)

	return cmd
}
