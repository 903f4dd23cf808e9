package commands

import (
	"classroom/packages/core/shopping"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShoppingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shopping",
		Short: "Lista de compras (menu interativo)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list := shopping.NewList()

			runMenu(newPrompter(cmd), "Lista de compras", []menuOption{
				{"Adicionar item", func(p *prompter) bool {
					item, ok := p.ask("Item: ")
					if !ok {
						return false
					}
					if err := list.Add(item); err != nil {
						warning(p.out, err.Error())
						return true
					}
					success(p.out, "'"+item+"' adicionado")
					return true
				}},
				{"Remover item", func(p *prompter) bool {
					item, ok := p.ask("Item: ")
					if !ok {
						return false
					}
					if err := list.Remove(item); err != nil {
						warning(p.out, err.Error())
						return true
					}
					success(p.out, "'"+item+"' removido")
					return true
				}},
				{"Ver lista", func(p *prompter) bool {
					items := list.Items()
					rows := make([][]string, len(items))
					for i, item := range items {
						rows[i] = []string{strconv.Itoa(i + 1), item}
					}
					renderTable(p.out, []string{"#", "Item"}, rows)
					return true
				}},
				{"Sair", func(p *prompter) bool {
					fmt.Fprintln(p.out, "Até logo! Itens na lista: "+strconv.Itoa(list.Len()))
					return false
				}},
			})
		},
	}
}
