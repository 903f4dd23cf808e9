package commands

import (
	"classroom/packages/common/validation"
	"classroom/packages/core/task"
	"classroom/packages/infrastructure/DB"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(raw string) (int64, error) {
	min := 1

	id, err := validation.Integer(raw, &min, nil)
	if err != nil {
		return 0, err
	}

	return int64(id), nil
}

func newTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Gerenciador de tarefas",
	}

	cmd.AddCommand(newTasksAddCommand(), newTasksListCommand(), newTasksDoneCommand(), newTasksRmCommand(), newTasksStatsCommand())

	return cmd
}

func newTasksAddCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <titulo>",
		Short: "Adicionar tarefa",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			title, err := task.ValidateTitle(args[0])
			if err != nil {
				return err
			}

			id, err := DB.Database.CreateTask(title, description)
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Tarefa #"+strconv.FormatInt(id, 10)+" adicionada")

			return nil
		}),
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "descrição da tarefa")

	return cmd
}

func renderTasks(cmd *cobra.Command, tasks []*task.Task) {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			t.Description,
			string(t.Status),
			t.CreatedAt,
			orDash(t.CompletedAt),
		}
	}

	renderTable(cmd.OutOrStdout(), []string{"ID", "Título", "Descrição", "Status", "Criada em", "Concluída em"}, rows)
}

func newTasksListCommand() *cobra.Command {
	var rawStatus string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar tarefas",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			var status *task.Status

			if rawStatus != "" {
				s, err := task.ParseStatus(rawStatus)
				if err != nil {
					return err
				}
				status = &s
			}

			tasks, err := DB.Database.GetTasks(status)
			if err != nil {
				return err
			}

			renderTasks(cmd, tasks)

			return nil
		}),
	}

	cmd.Flags().StringVarP(&rawStatus, "status", "s", "", "filtrar por status (Pendente, Concluída)")

	return cmd
}

func newTasksDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Marcar tarefa como concluída",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := DB.Database.CompleteTask(id); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Tarefa #"+args[0]+" concluída")

			return nil
		}),
	}
}

func newTasksRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Excluir tarefa",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := DB.Database.DeleteTask(id); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Tarefa #"+args[0]+" excluída")

			return nil
		}),
	}
}

func newTasksStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Estatísticas das tarefas",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			stats, err := DB.Database.GetTaskStats()
			if err != nil {
				return err
			}

			renderPairs(cmd.OutOrStdout(), [][2]string{
				{"Total", strconv.Itoa(stats.Total)},
				{"Pendentes", strconv.Itoa(stats.Pending)},
				{"Concluídas", strconv.Itoa(stats.Done)},
				{"Progresso", fmt.Sprintf("%.0f%%", progress(stats))},
			})

			return nil
		}),
	}
}

func progress(stats *task.Stats) float64 {
	if stats.Total == 0 {
		return 0
	}
	return float64(stats.Done) / float64(stats.Total) * 100
}
