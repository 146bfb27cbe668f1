package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PierrunoYT/financeflow/internal/ledger"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("FinanceFlow"))
	b.WriteString("\n\n")
	b.WriteString(m.summaryView())
	b.WriteString("\n\n")
	b.WriteString(m.formView())
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("tab: switch section • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) summaryView() string {
	summary := ledger.Summarize(m.store.Transactions())

	income := cardStyle.Render(fmt.Sprintf("Total Income\n%s", incomeStyle.Render(formatAmount(summary.TotalIncome))))
	expenses := cardStyle.Render(fmt.Sprintf("Total Expenses\n%s", expenseStyle.Render(formatAmount(summary.TotalExpenses))))
	balance := cardStyle.Render(fmt.Sprintf("Current Balance\n%s (%s)", formatAmount(summary.AbsBalance()), summary.Label()))

	return lipgloss.JoinHorizontal(lipgloss.Top, income, " ", expenses, " ", balance)
}

func (m Model) formView() string {
	var b strings.Builder

	header := "Add Transaction"
	if m.section == sectionForm {
		header = activeStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	typeLabel := "Expense"
	if m.txType == ledger.TypeIncome {
		typeLabel = "Income"
	}
	b.WriteString(labelStyle.Render("Type (ctrl+t): "))
	b.WriteString(typeLabel)
	b.WriteString("\n")

	labels := []string{"Description", "Amount", "Date"}
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i] + ": "))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	options := ledger.CategoriesFor(m.txType)
	category := options[m.categoryIdx%len(options)]
	marker := "  "
	if m.section == sectionForm && m.focus == fieldCategory {
		marker = "> "
	}
	b.WriteString(labelStyle.Render("Category: "))
	b.WriteString(marker + category)
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.successMsg != "" {
		b.WriteString(successStyle.Render(m.successMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) listView() string {
	transactions := m.store.Transactions()
	if len(transactions) == 0 {
		return labelStyle.Render("No transactions yet")
	}

	applied := m.view.Apply(transactions)
	page := ledger.ClampPage(m.view.Page, len(applied))
	visible := m.view.Visible(transactions)

	var b strings.Builder
	header := fmt.Sprintf("Transactions — sort: %s, filter: %s", m.view.Sort, m.view.Category)
	if m.section == sectionList {
		header = activeStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	for i, t := range visible {
		cursor := "  "
		if m.section == sectionList && i == m.cursor {
			cursor = "> "
		}

		sign := "-"
		amountStyle := expenseStyle
		if t.Type == ledger.TypeIncome {
			sign = "+"
			amountStyle = incomeStyle
		}

		line := fmt.Sprintf("%s%s %s  %s  %s • %s",
			cursor,
			sign,
			amountStyle.Render(formatAmount(t.Amount)),
			t.Description,
			t.Date.Format("Jan 2, 2006"),
			t.Category,
		)
		if m.deleteID == t.ID {
			line += pendingStyle.Render("  delete? y/n")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("Page %d/%d • s: sort • f: filter • ←/→: page • d: delete",
		page, ledger.PageCount(len(applied)))))
	return b.String()
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	// Insert thousands separators into the integer part.
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]
	var out []byte
	for i, d := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return "$" + string(out) + fracPart
}
