package commands

import (
	"classroom/packages/core/contacts"
	"fmt"

	"github.com/spf13/cobra"
)

func renderContacts(p *prompter, list []contacts.Contact) {
	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{c.Name, c.Phone}
	}
	renderTable(p.out, []string{"Nome", "Telefone"}, rows)
}

func newContactsCommand() *cobra.Command {
	var empty bool

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Agenda de contatos (menu interativo)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			book := contacts.NewSampleBook()
			if empty {
				book = contacts.NewBook()
			}

			runMenu(newPrompter(cmd), "Agenda de contatos", []menuOption{
				{"Adicionar contato", func(p *prompter) bool {
					name, ok := p.ask("Nome: ")
					if !ok {
						return false
					}
					phone, ok := p.ask("Telefone: ")
					if !ok {
						return false
					}
					if err := book.Add(name, phone); err != nil {
						warning(p.out, err.Error())
						return true
					}
					success(p.out, "Contato '"+name+"' adicionado")
					return true
				}},
				{"Remover contato", func(p *prompter) bool {
					name, ok := p.ask("Nome: ")
					if !ok {
						return false
					}
					if err := book.Remove(name); err != nil {
						warning(p.out, err.Error())
						return true
					}
					success(p.out, "Contato '"+name+"' removido")
					return true
				}},
				{"Buscar contato", func(p *prompter) bool {
					query, ok := p.ask("Buscar: ")
					if !ok {
						return false
					}
					renderContacts(p, book.Find(query))
					return true
				}},
				{"Listar contatos", func(p *prompter) bool {
					renderContacts(p, book.List())
					return true
				}},
				{"Sair", func(p *prompter) bool {
					fmt.Fprintln(p.out, "Até logo!")
					return false
				}},
			})
		},
	}

	cmd.Flags().BoolVar(&empty, "empty", false, "iniciar com agenda vazia")

	return cmd
}
