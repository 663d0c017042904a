package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C42")).
			MarginTop(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB84D")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	numberStyle = cellStyle.
			Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)
)

type fileSummary struct {
	File    string                `json:"arquivo"`
	Summary *domain.LedgerSummary `json:"resumo"`
}

type fileReport struct {
	File       string               `json:"arquivo"`
	Result     *domain.FilterResult `json:"resultado"`
	ExportedTo string               `json:"exportado_em,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	out, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func renderSummary(w io.Writer, file string, s *domain.LedgerSummary) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(
			[]string{"Clientes", strconv.Itoa(s.TotalCustomers)},
			[]string{"Valor total", s.TotalSpend},
			[]string{"Primeira venda", s.FirstSale},
			[]string{"Última venda", s.LastSale},
			[]string{"Nunca compraram", strconv.Itoa(s.NeverPurchased)},
		)

	fmt.Fprintln(w, titleStyle.Render(file))
	fmt.Fprintln(w, t.Render())
}

func renderResult(w io.Writer, r fileReport) {
	fmt.Fprintln(w, titleStyle.Render(r.File))
	fmt.Fprintln(w, subtitleStyle.Render(fmt.Sprintf("%s: %d cliente(s)", r.Result.FilterDescription, r.Result.Total)))

	if r.Result.Total == 0 {
		fmt.Fprintln(w, emptyStyle.Render("Nenhum cliente encontrado"))
	} else {
		fmt.Fprintln(w, customersTable(r.Result.Customers).Render())
	}

	if r.ExportedTo != "" {
		fmt.Fprintln(w, subtitleStyle.Render("Exportado para "+r.ExportedTo))
	}
}

func customersTable(customers []domain.OutputRecord) *table.Table {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{c.Code, c.Name, c.LastSale, c.DaysInactive.String(), c.Total})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Código", "Nome Fantasia", "Última Venda", "Dias Inativo", "Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 3:
				return numberStyle
			default:
				return cellStyle
			}
		})
}
