package tui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/theirongolddev/lifecost/internal/cli"
	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/tui/components"
	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

// renderResults renders the income cards, the two-column breakdown and the
// expense distribution for the active tab.
func (a App) renderResults(cw int) string {
	t := theme.Active
	st := a.state()

	if st.err != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		body := warnStyle.Render("Cannot compute an estimate") + "\n\n" +
			dimStyle.Width(components.CardInnerWidth(cw)).Render(st.err.Error()) + "\n\n" +
			dimStyle.Render("Fix the input or press d to reset.")
		return components.ContentCard("Estimate", body, cw)
	}

	est := st.estimate
	money := func(v float64) string { return cli.FormatMoney(v, est.CurrencySymbol, est.Decimals) }

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: money(est.MonthlyIncome), Delta: "before tax", Color: t.GreenBright},
		{Label: "Annual Income", Value: money(est.AnnualIncome), Delta: "monthly × 12", Color: t.AccentBright},
		{Label: "Monthly Expenses", Value: money(est.TotalMonthly), Delta: fmt.Sprintf("%d categories", len(est.Expenses))},
		{Label: "Income Tax", Value: cli.FormatRate(est.TaxRate), Delta: "flat rate"},
	}, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Monthly Expense Breakdown", renderBreakdown(est, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Expense Distribution", renderDistribution(est.Shares(), components.CardInnerWidth(cw)), cw))
	return b.String()
}

// renderBreakdown lays the expenses out in two columns, first half left.
func renderBreakdown(est model.Estimate, innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	zeroStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	gap := 3
	colW := (innerW - gap) / 2

	cell := func(e *finance.Expense) string {
		if e == nil {
			return gapStyle.Render(strings.Repeat(" ", colW))
		}
		amount := cli.FormatMoney(e.Amount, est.CurrencySymbol, est.Decimals)
		labelW := max(colW-utf8.RuneCountInString(amount)-1, 4)
		vs := valueStyle
		if e.Amount == 0 {
			vs = zeroStyle
		}
		return labelStyle.Render(fmt.Sprintf("%-*s ", labelW, truncStr(e.Category, labelW))) + vs.Render(amount)
	}

	left, right := est.Columns()
	lines := make([]string, 0, len(right))
	for i := range right {
		var l *finance.Expense
		if i < len(left) {
			l = &left[i]
		}
		lines = append(lines, cell(l)+gapStyle.Render(strings.Repeat(" ", gap))+cell(&right[i]))
	}
	return strings.Join(lines, "\n")
}

// renderDistribution renders one share bar per non-zero category, largest
// first. It stands in for a pie chart.
func renderDistribution(shares []finance.Share, innerW int) string {
	shares = lo.Filter(shares, func(s finance.Share, _ int) bool { return s.Fraction > 0 })
	if len(shares) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Background(theme.Active.Surface).
			Render("No expenses")
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Fraction > shares[j].Fraction })

	labelW := min(lo.Max(lo.Map(shares, func(s finance.Share, _ int) int {
		return utf8.RuneCountInString(s.Category)
	})), 22)
	barW := innerW - labelW - 8

	lines := make([]string, len(shares))
	for i, s := range shares {
		lines[i] = components.ShareBar(s.Category, s.Fraction, labelW, barW)
	}
	return strings.Join(lines, "\n")
}
