package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/ingest"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = cellStyle.Foreground(lipgloss.Color("205"))
)

// render lays the upload summaries out as a table with a totals row.
func render(summaries []ingest.Summary) string {
	var (
		premium, commission decimal.Decimal
		lines, txs          int
	)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("CARRIER", "BATCH", "ROWS", "TRANSACTIONS", "PREMIUM", "COMMISSION")

	for _, s := range summaries {
		t.Row(
			s.Carrier,
			strconv.FormatInt(s.BatchID, 10),
			strconv.Itoa(s.Rows),
			strconv.Itoa(s.Transactions),
			s.Premium.StringFixed(2),
			s.Commission.StringFixed(2),
		)

		premium = premium.Add(s.Premium)
		commission = commission.Add(s.Commission)
		lines += s.Rows
		txs += s.Transactions
	}

	t.Row("Total", "", strconv.Itoa(lines), strconv.Itoa(txs), premium.StringFixed(2), commission.StringFixed(2))

	// Data rows are indexed from zero, so the totals row sits at len(summaries).
	totalRow := len(summaries)

	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch row {
		case table.HeaderRow:
			return headerStyle
		case totalRow:
			return totalStyle
		}

		return cellStyle
	})

	return t.String()
}
