package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type prompter struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		scanner:     bufio.NewScanner(cmd.InOrStdin()),
		out:         cmd.OutOrStdout(),
		interactive: isInteractive(cmd.InOrStdin()),
	}
}

// Reads next trimmed line. Label is printed only if input is a terminal.
// Returns false when input is exhausted.
func (p *prompter) ask(label string) (string, bool) {
	if p.interactive {
		fmt.Fprint(p.out, label)
	}

	if !p.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(p.scanner.Text()), true
}

type menuOption struct {
	label  string
	action func(p *prompter) bool
}

// Runs menu until option action returns false or input is exhausted.
// Options are numbered from 1 in the given order.
func runMenu(p *prompter, heading string, options []menuOption) {
	for {
		if p.interactive {
			fmt.Fprintln(p.out)
			title(p.out, heading)
			for i, o := range options {
				fmt.Fprintf(p.out, "%d. %s\n", i+1, o.label)
			}
		}

		choice, ok := p.ask("Escolha uma opção: ")
		if !ok {
			return
		}

		n := 0
		if _, err := fmt.Sscanf(choice, "%d", &n); err != nil || n < 1 || n > len(options) {
			warning(p.out, "Opção inválida")
			continue
		}

		if !options[n-1].action(p) {
			return
		}
	}
}
