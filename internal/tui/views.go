package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/model"
)

const maxListRows = 12

func (m Model) View() string {
	if !m.ready {
		return m.theme.Muted.Render("Loading…")
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.summaryView())
	b.WriteString("\n")
	b.WriteString(m.trendView())
	b.WriteString("\n")
	b.WriteString(m.goalView())
	b.WriteString("\n\n")

	switch m.state {
	case stateAdd:
		b.WriteString(m.addFormView())
	case stateGoal:
		b.WriteString(m.goalFormView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := m.theme.Title.Render("🪙 fintrack")
	month := m.theme.Subtitle.Render(ledger.MonthLabel(m.cursor.Month()))
	line := title + "  " + month
	if m.err != nil {
		return line + "  " + m.theme.Error.Render("error: "+m.err.Error())
	}
	if m.status != "" {
		return line + "  " + m.theme.Success.Render(m.status)
	}
	return line
}

func (m Model) summaryView() string {
	allTime := ledger.Totals(m.transactions)
	month := ledger.TotalsForMonth(m.transactions, m.cursor.Month())

	allBox := m.theme.Box.Render(m.aggregateLines("All time", allTime))
	monthBox := m.theme.ActiveBox.Render(m.aggregateLines(ledger.MonthLabel(m.cursor.Month()), month))
	return lipgloss.JoinHorizontal(lipgloss.Top, allBox, " ", monthBox)
}

func (m Model) aggregateLines(title string, agg model.Aggregate) string {
	return strings.Join([]string{
		m.theme.Subtitle.Render(title),
		m.theme.Income.Render("Income  " + cli.FormatAmount(m.currency, agg.Income)),
		m.theme.Expense.Render("Expense " + cli.FormatAmount(m.currency, agg.Expense)),
		m.theme.Normal.Render("Balance " + cli.FormatAmount(m.currency, agg.Balance)),
	}, "\n")
}

func (m Model) trendView() string {
	window := ledger.LastNMonths(m.transactions, m.cursor.Month(), ledger.DefaultWindow)
	cards := make([]string, 0, len(window))
	for _, s := range window {
		body := strings.Join([]string{
			m.theme.Subtitle.Render(s.Month.Format("Jan 06")),
			m.theme.Income.Render("+" + cli.FormatAmount(m.currency, s.Income)),
			m.theme.Expense.Render("-" + cli.FormatAmount(m.currency, s.Expense)),
		}, "\n")
		style := m.theme.Box
		if s.Key == ledger.MonthKey(m.cursor.Month()) {
			style = m.theme.ActiveBox
		}
		cards = append(cards, style.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) goalView() string {
	month := ledger.TotalsForMonth(m.transactions, m.cursor.Month())
	progress := ledger.EvaluateGoal(month.Expense, m.goal)

	feedback := cli.GoalFeedbackText(progress)
	var styled string
	switch progress.Status {
	case model.GoalOnTrack:
		styled = m.theme.Success.Render(feedback)
	case model.GoalWarning:
		styled = m.theme.Warning.Render(feedback)
	case model.GoalExceeded:
		styled = m.theme.Error.Render(feedback)
	case model.GoalNoSpending:
		styled = m.theme.Info.Render(feedback)
	default:
		styled = m.theme.Muted.Render(feedback)
	}

	if progress.Status == model.GoalNone {
		return styled
	}

	bar := m.goalBar.ViewAs(progress.Percent / 100)
	spent := fmt.Sprintf("%s of %s",
		cli.FormatAmount(m.currency, month.Expense),
		cli.FormatAmount(m.currency, m.goal))
	return bar + "  " + m.theme.Normal.Render(spent) + "\n" + styled
}

func (m Model) listView() string {
	visible := m.visible()

	header := m.theme.Subtitle.Render(m.listHeader(len(visible)))
	if len(visible) == 0 {
		return header + "\n" + m.theme.Muted.Render("  No transactions.")
	}

	start := 0
	if m.selected >= maxListRows {
		start = m.selected - maxListRows + 1
	}
	end := min(start+maxListRows, len(visible))

	rows := make([]string, 0, end-start+1)
	rows = append(rows, header)
	for i := start; i < end; i++ {
		rows = append(rows, m.rowView(visible[i], i == m.selected))
	}
	if end < len(visible) {
		rows = append(rows, m.theme.Muted.Render(fmt.Sprintf("  … %d more", len(visible)-end)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) listHeader(count int) string {
	parts := []string{fmt.Sprintf("Transactions (%d)", count)}
	if m.typeFilter != nil {
		parts = append(parts, "type: "+string(*m.typeFilter))
	}
	if q := strings.TrimSpace(m.searchInput.Value()); q != "" || m.searching {
		parts = append(parts, "search: "+m.searchInput.View())
	}
	return strings.Join(parts, "  ·  ")
}

func (m Model) rowView(txn model.Transaction, selected bool) string {
	sign := "-"
	amountStyle := m.theme.Expense
	if txn.Type == model.TypeIncome {
		sign = "+"
		amountStyle = m.theme.Income
	}

	category := txn.Category
	if category == "" {
		category = "—"
	}

	line := fmt.Sprintf("%s  %-28.28s %-14.14s %s",
		txn.Date.Format("2006-01-02"),
		txn.Description,
		category,
		amountStyle.Render(sign+cli.FormatAmount(m.currency, txn.Amount)))

	if selected {
		return m.theme.Selected.Render("▸ ") + line
	}
	return "  " + line
}

func (m Model) addFormView() string {
	typeLabel := m.theme.Expense.Render("expense")
	if m.form.txnType == model.TypeIncome {
		typeLabel = m.theme.Income.Render("income")
	}
	marker := func(field int) string {
		if m.form.focus == field {
			return m.theme.Title.Render("▸ ")
		}
		return "  "
	}

	lines := []string{
		m.theme.Subtitle.Render("New transaction (enter to save, esc to cancel)"),
		marker(fieldType) + "Type        " + typeLabel + m.theme.Muted.Render("  (←/→ to switch)"),
		marker(fieldDescription) + "Description " + m.form.inputs[fieldDescription].View(),
		marker(fieldCategory) + "Category    " + m.form.inputs[fieldCategory].View(),
		marker(fieldAmount) + "Amount      " + m.form.inputs[fieldAmount].View(),
		marker(fieldDate) + "Date        " + m.form.inputs[fieldDate].View(),
	}
	if m.form.errText != "" {
		lines = append(lines, m.theme.Error.Render(m.form.errText))
	}
	return m.theme.ActiveBox.Render(strings.Join(lines, "\n"))
}

func (m Model) goalFormView() string {
	lines := []string{
		m.theme.Subtitle.Render("Monthly goal (enter to save, esc to cancel)"),
		"Amount " + m.goalInput.View(),
	}
	return m.theme.ActiveBox.Render(strings.Join(lines, "\n"))
}

func (m Model) footerView() string {
	return m.theme.Help.Render(m.help.View(m.keys))
}