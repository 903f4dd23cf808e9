package commands

import (
	"classroom/packages/common/util"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	CellStyle    = lipgloss.NewStyle().Padding(0, 1)
	TitleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("Nenhum registro encontrado."))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		})

	fmt.Fprintln(w, t.String())
}

// Renders key-value pairs as two-column table.
func renderPairs(w io.Writer, pairs [][2]string) {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return HeaderStyle
			}
			return CellStyle
		})

	fmt.Fprintln(w, t.String())
}

func success(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+msg))
}

func warning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningStyle.Render("! "+msg))
}

func title(w io.Writer, msg string) {
	fmt.Fprintln(w, TitleStyle.Render(msg))
}

// Reports whether r is a terminal, prompts are printed only in that case.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func yesNo(v bool) string {
	return util.Ternary(v, "sim", "não")
}
