package commands

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/validation"
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newClientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Cadastro de clientes",
	}

	cmd.AddCommand(
		newClientsAddCommand(),
		newClientsImportCommand(),
		newClientsListCommand(),
		newClientsGetCommand(),
		newClientsFindCommand(),
		newClientsSearchCommand(),
		newClientsUpdateCommand(),
		newClientsRmCommand(),
		newClientsClearCommand(),
		newClientsStatsCommand(),
		newClientsSeedCommand(),
		newClientsFilterCommand(),
		newClientsGroupCommand(),
		newClientsExportCommand(),
	)

	return cmd
}

func renderClients(cmd *cobra.Command, clients []*client.Client) {
	rows := make([][]string, len(clients))
	for i, c := range clients {
		rows[i] = []string{
			strconv.FormatInt(c.ID, 10),
			c.Nome,
			c.Email,
			orDash(c.Telefone),
			orDash(c.Cidade),
			yesNo(c.Ativo),
		}
	}

	renderTable(cmd.OutOrStdout(), []string{"ID", "Nome", "Email", "Telefone", "Cidade", "Ativo"}, rows)
}

func renderGroups(cmd *cobra.Command, keyHeader string, groups []client.Group) {
	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{g.Key, strconv.Itoa(g.Total), strconv.Itoa(g.Ativos)}
	}

	renderTable(cmd.OutOrStdout(), []string{keyHeader, "Total", "Ativos"}, rows)
}

// Resolves client by id if ref is integer, by email otherwise.
func getClient(ref string) (*client.Client, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		c, err := DB.Database.GetClientByID(id)
		return c, check(err)
	}

	c, err := DB.Database.GetClientByEmail(strings.TrimSpace(ref))
	return c, check(err)
}

func newClientsAddCommand() *cobra.Command {
	data := new(client.New)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Cadastrar cliente",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			if err := data.Normalize(); err != nil {
				return err
			}

			id, err := DB.Database.CreateClient(data)
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Cliente #"+strconv.FormatInt(id, 10)+" cadastrado")

			return nil
		}),
	}

	cmd.Flags().StringVar(&data.Nome, "nome", "", "nome do cliente")
	cmd.Flags().StringVar(&data.Email, "email", "", "email do cliente")
	cmd.Flags().StringVar(&data.Telefone, "telefone", "", "telefone do cliente")
	cmd.Flags().StringVar(&data.Cidade, "cidade", "", "cidade do cliente")
	cmd.Flags().BoolVar(&data.Inactive, "inativo", false, "cadastrar como inativo")

	return cmd
}

func newClientsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <arquivo.json>",
		Short: "Importar clientes de um arquivo JSON (lista de objetos)",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var batch []*client.New
			if err := json.Unmarshal(raw, &batch); err != nil {
				return errors.New("JSON inválido: " + err.Error())
			}

			n, serr := DB.Database.CreateClients(batch)
			if serr != nil {
				return serr
			}

			success(cmd.OutOrStdout(), fmt.Sprintf("%d de %d clientes importados", n, len(batch)))

			return nil
		}),
	}
}

func newClientsListCommand() *cobra.Command {
	var rawOrder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar clientes",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			order, err := client.ParseOrder(rawOrder)
			if err != nil {
				return err
			}

			clients, err := DB.Database.Sorted(order)
			if err != nil {
				return err
			}

			renderClients(cmd, clients)

			return nil
		}),
	}

	cmd.Flags().StringVarP(&rawOrder, "order", "o", string(client.OrderByName), "ordenação ("+strings.Join(client.Orders, ", ")+")")

	return cmd
}

func newClientsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|email>",
		Short: "Buscar cliente por id ou email",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			c, err := getClient(args[0])
			if err != nil {
				return err
			}

			renderPairs(cmd.OutOrStdout(), [][2]string{
				{"ID", strconv.FormatInt(c.ID, 10)},
				{"Nome", c.Nome},
				{"Email", c.Email},
				{"Telefone", orDash(c.Telefone)},
				{"Cidade", orDash(c.Cidade)},
				{"Ativo", yesNo(c.Ativo)},
				{"Cadastro", c.CreatedAt},
				{"Atualização", orDash(c.UpdatedAt)},
			})

			return nil
		}),
	}
}

func newClientsFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <nome>",
		Short: "Buscar clientes pelo nome",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			clients, err := DB.Database.GetClientsByName(args[0])
			if err != nil {
				return err
			}

			renderClients(cmd, clients)

			return nil
		}),
	}
}

func newClientsSearchCommand() *cobra.Command {
	f := new(client.Filter)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Busca avançada (filtros combinados)",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			clients, err := DB.Database.SearchClients(f)
			if err != nil {
				return err
			}

			renderClients(cmd, clients)

			return nil
		}),
	}

	cmd.Flags().StringVar(&f.Nome, "nome", "", "parte do nome")
	cmd.Flags().StringVar(&f.Email, "email", "", "parte do email")
	cmd.Flags().StringVar(&f.Telefone, "telefone", "", "parte do telefone")

	return cmd
}

func newClientsUpdateCommand() *cobra.Command {
	var nome, email, telefone string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Atualizar cliente",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			changes := new(client.Changes)
			if cmd.Flags().Changed("nome") {
				changes.Nome = &nome
			}
			if cmd.Flags().Changed("email") {
				changes.Email = &email
			}
			if cmd.Flags().Changed("telefone") {
				changes.Telefone = &telefone
			}

			if err := changes.Normalize(); err != nil {
				return err
			}

			if err := DB.Database.UpdateClient(id, changes); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Cliente #"+args[0]+" atualizado")

			return nil
		}),
	}

	cmd.Flags().StringVar(&nome, "nome", "", "novo nome")
	cmd.Flags().StringVar(&email, "email", "", "novo email")
	cmd.Flags().StringVar(&telefone, "telefone", "", "novo telefone (vazio remove)")

	return cmd
}

func newClientsRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id|email>",
		Short: "Excluir cliente por id ou email",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				if err := DB.Database.DeleteClient(id); err != nil {
					return err
				}
			} else if err := DB.Database.DeleteClientByEmail(strings.TrimSpace(args[0])); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Cliente "+args[0]+" excluído")

			return nil
		}),
	}
}

func newClientsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Excluir todos os clientes",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			n, err := DB.Database.ClearClients()
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), strconv.Itoa(n)+" clientes excluídos")

			return nil
		}),
	}
}

func newClientsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Estatísticas dos clientes",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			s, err := DB.Database.GetClientStats()
			if err != nil {
				return err
			}

			renderPairs(cmd.OutOrStdout(), [][2]string{
				{"Total", strconv.Itoa(s.Total)},
				{"Ativos", strconv.Itoa(s.Ativos)},
				{"Inativos", strconv.Itoa(s.Inativos)},
				{"Com telefone", strconv.Itoa(s.ComTelefone)},
				{"Sem telefone", strconv.Itoa(s.SemTelefone)},
				{"Cidades", strconv.Itoa(s.Cidades)},
				{"Primeiro cadastro", orDash(s.PrimeiroCadastro)},
				{"Último cadastro", orDash(s.UltimoCadastro)},
			})

			return nil
		}),
	}
}

func newClientsSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Cadastrar clientes de exemplo",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			n, err := DB.Database.SeedClients()
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), strconv.Itoa(n)+" clientes de exemplo cadastrados")

			return nil
		}),
	}
}

var filterKinds = []string{
	"starts-with <letra>",
	"contains <texto>",
	"domain <dominio>",
	"city <cidade>",
	"active",
	"inactive",
	"criteria [--cidade] [--ativo]",
	"cities <cidade> [cidade...]",
	"starts-or-city <letra> <cidade>",
	"min-length <n>",
	"with-phone",
	"without-phone",
}

var ErrUnknownFilter = errors.New("filtro desconhecido, opções: " + strings.Join(filterKinds, "; "))
var ErrFilterArgs = errors.New("quantidade de argumentos inválida para o filtro")

func newClientsFilterCommand() *cobra.Command {
	var cidade string
	var ativo bool

	cmd := &cobra.Command{
		Use:   "filter <tipo> [args...]",
		Short: "Filtrar clientes",
		Long:  "Filtros disponíveis:\n  " + strings.Join(filterKinds, "\n  "),
		Args:  cobra.MinimumNArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			criteria := new(client.Criteria)
			if cmd.Flags().Changed("cidade") {
				criteria.Cidade = &cidade
			}
			if cmd.Flags().Changed("ativo") {
				criteria.Ativo = &ativo
			}

			clients, err := filterClients(args[0], args[1:], criteria)
			if err != nil {
				return err
			}

			renderClients(cmd, clients)

			return nil
		}),
	}

	cmd.Flags().StringVar(&cidade, "cidade", "", "cidade (filtro criteria)")
	cmd.Flags().BoolVar(&ativo, "ativo", true, "status ativo (filtro criteria)")

	return cmd
}

func filterClients(kind string, args []string, criteria *client.Criteria) ([]*client.Client, error) {
	want := func(n int) error {
		if len(args) != n {
			return ErrFilterArgs
		}
		return nil
	}

	var clients []*client.Client
	var err error

	switch kind {
	case "starts-with":
		if err := want(1); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.NameStartsWith(args[0]))
	case "contains":
		if err := want(1); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.NameContains(args[0]))
	case "domain":
		if err := want(1); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.EmailDomain(args[0]))
	case "city":
		if err := want(1); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.ByCity(args[0]))
	case "active", "inactive":
		if err := want(0); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.ByActive(kind == "active"))
	case "criteria":
		if err := want(0); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.ByCriteria(criteria))
	case "cities":
		if len(args) == 0 {
			return nil, ErrFilterArgs
		}
		clients, err = statusErr(DB.Database.InCities(args))
	case "starts-or-city":
		if err := want(2); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.NameStartsWithOrCity(args[0], args[1]))
	case "min-length":
		if err := want(1); err != nil {
			return nil, err
		}
		min := 1
		n, serr := validation.Integer(args[0], &min, nil)
		if serr != nil {
			return nil, serr
		}
		clients, err = statusErr(DB.Database.NameMinLength(n))
	case "with-phone", "without-phone":
		if err := want(0); err != nil {
			return nil, err
		}
		clients, err = statusErr(DB.Database.WithPhone(kind == "with-phone"))
	default:
		return nil, ErrUnknownFilter
	}

	return clients, err
}

func statusErr[T any](v T, err *Error.Status) (T, error) {
	return v, check(err)
}

var groupKinds = []string{"city", "initial", "at-least <n>", "starting-with <letra>"}

var ErrUnknownGroup = errors.New("agrupamento desconhecido, opções: " + strings.Join(groupKinds, "; "))

func newClientsGroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "group <tipo> [arg]",
		Short: "Agrupar clientes",
		Long:  "Agrupamentos disponíveis:\n  " + strings.Join(groupKinds, "\n  "),
		Args:  cobra.RangeArgs(1, 2),
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "city", "initial":
				if len(args) != 1 {
					return ErrFilterArgs
				}

				groups, err := DB.Database.CountByCity()
				header := "Cidade"
				if args[0] == "initial" {
					groups, err = DB.Database.CountByInitial()
					header = "Inicial"
				}
				if err != nil {
					return err
				}

				renderGroups(cmd, header, groups)
			case "at-least":
				if len(args) != 2 {
					return ErrFilterArgs
				}

				min := 1
				n, err := validation.Integer(args[1], &min, nil)
				if err != nil {
					return err
				}

				groups, err := DB.Database.CitiesWithAtLeast(n)
				if err != nil {
					return err
				}

				renderGroups(cmd, "Cidade", groups)
			case "starting-with":
				if len(args) != 2 {
					return ErrFilterArgs
				}

				n, err := DB.Database.CountStartingWith(args[1])
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d clientes com nome iniciando em '%s'\n", n, args[1])
			default:
				return ErrUnknownGroup
			}

			return nil
		}),
	}
}

func newClientsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exportar clientes em JSON",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, args []string) error {
			clients, serr := DB.Database.GetClients()
			if serr != nil {
				return serr
			}

			raw, err := json.MarshalIndent(clients, "", "  ")
			if err != nil {
				return err
			}
			raw = append(raw, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}

			if err := os.WriteFile(output, raw, 0644); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), strconv.Itoa(len(clients))+" clientes exportados para "+output)

			return nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "arquivo de saída (stdout se vazio)")

	return cmd
}
