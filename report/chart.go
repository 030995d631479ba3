// Package report renders spending summaries as PNG charts.
package report

import (
	"fmt"
	"time"

	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"

	"gitlab.com/mkubat/kapsa/ledger"
)

// fallbackShopLabel groups expenses whose shop was deleted and that carry no
// shop snapshot.
const fallbackShopLabel = "Other"

// SpendingByShopChart creates a pie chart of expense totals per shop.
// Returns PNG image bytes. Income entries are skipped.
func SpendingByShopChart(expenses []ledger.Expense, shops []ledger.Shop, title string) ([]byte, error) {
	totals := aggregateByShop(expenses, shops)
	if len(totals) == 0 {
		return nil, fmt.Errorf("no expenses to chart")
	}

	var values []float64
	var labels []string
	for label, total := range totals {
		labels = append(labels, label)
		values = append(values, total.InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: title,
		}),
		charts.LegendLabelsOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

// MonthlyTrendChart creates a line chart of expense and income totals per
// calendar month. Returns PNG image bytes. Months with no entries between the
// first and last recorded month are included as zero.
func MonthlyTrendChart(expenses []ledger.Expense, title string) ([]byte, error) {
	if len(expenses) == 0 {
		return nil, fmt.Errorf("no entries to chart")
	}

	first, last := expenses[0].Date, expenses[0].Date
	for _, e := range expenses[1:] {
		if e.Date.Before(first) {
			first = e.Date
		}
		if e.Date.After(last) {
			last = e.Date
		}
	}

	spent := make(map[string]decimal.Decimal)
	earned := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		key := e.Date.Format("2006-01")
		switch e.Type {
		case ledger.EntryIncome:
			earned[key] = earned[key].Add(e.Amount)
		default:
			spent[key] = spent[key].Add(e.Amount)
		}
	}

	var months []string
	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m.Format("2006-01"))
	}

	values := make([][]float64, 2)
	for _, key := range months {
		values[0] = append(values[0], spent[key].InexactFloat64())
		values[1] = append(values[1], earned[key].InexactFloat64())
	}

	p, err := charts.LineRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: title,
		}),
		charts.XAxisLabelsOptionFunc(months),
		charts.LegendLabelsOptionFunc([]string{"Expenses", "Income"}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

// aggregateByShop groups expense entries and returns per-shop totals. The
// expense's shop snapshot wins over the live shop record so the chart labels
// match what the entry list shows.
func aggregateByShop(expenses []ledger.Expense, shops []ledger.Shop) map[string]decimal.Decimal {
	names := make(map[string]string, len(shops))
	for _, shop := range shops {
		names[shop.ID] = shop.Name
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.Type != ledger.EntryExpense {
			continue
		}
		label := e.OriginalShopName
		if label == "" {
			label = names[e.ShopID]
		}
		if label == "" {
			label = fallbackShopLabel
		}
		totals[label] = totals[label].Add(e.Amount)
	}
	return totals
}
