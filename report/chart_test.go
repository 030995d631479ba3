package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gitlab.com/mkubat/kapsa/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSpendingByShopChart(t *testing.T) {
	shops := []ledger.Shop{
		{ID: "s1", Name: "Groceries"},
		{ID: "s2", Name: "Cafe"},
	}
	expenses := []ledger.Expense{
		{ID: "e1", ShopID: "s1", Amount: dec("120.50"), Date: time.Now(), Type: ledger.EntryExpense, OriginalShopName: "Groceries"},
		{ID: "e2", ShopID: "s2", Amount: dec("15"), Date: time.Now(), Type: ledger.EntryExpense},
		{ID: "e3", ShopID: ledger.IncomeShopID, Amount: dec("500"), Date: time.Now(), Type: ledger.EntryIncome},
	}

	png, err := SpendingByShopChart(expenses, shops, "August spending")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output is a PNG image")
}

func TestSpendingByShopChartNoExpenses(t *testing.T) {
	_, err := SpendingByShopChart(nil, nil, "empty")
	require.Error(t, err)

	// Income-only data has nothing to chart either.
	_, err = SpendingByShopChart([]ledger.Expense{
		{ID: "e1", ShopID: ledger.IncomeShopID, Amount: dec("500"), Type: ledger.EntryIncome},
	}, nil, "income only")
	require.Error(t, err)
}

func TestMonthlyTrendChart(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: "e1", ShopID: "s1", Amount: dec("100"), Date: time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC), Type: ledger.EntryExpense},
		{ID: "e2", ShopID: "s1", Amount: dec("40"), Date: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC), Type: ledger.EntryExpense},
		{ID: "e3", ShopID: ledger.IncomeShopID, Amount: dec("900"), Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Type: ledger.EntryIncome},
	}

	png, err := MonthlyTrendChart(expenses, "Trend")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestMonthlyTrendChartNoEntries(t *testing.T) {
	_, err := MonthlyTrendChart(nil, "empty")
	require.Error(t, err)
}

func TestAggregateByShop(t *testing.T) {
	shops := []ledger.Shop{{ID: "s1", Name: "Groceries"}}
	expenses := []ledger.Expense{
		{ID: "e1", ShopID: "s1", Amount: dec("10"), Type: ledger.EntryExpense, OriginalShopName: "Potraviny"},
		{ID: "e2", ShopID: "s1", Amount: dec("5"), Type: ledger.EntryExpense},
		{ID: "e3", ShopID: "gone", Amount: dec("3"), Type: ledger.EntryExpense},
		{ID: "e4", ShopID: "s1", Amount: dec("100"), Type: ledger.EntryIncome},
	}

	totals := aggregateByShop(expenses, shops)

	// The snapshot name wins over the live record, deleted shops fall back
	// to the shared label, and income never contributes.
	require.Len(t, totals, 3)
	require.True(t, dec("10").Equal(totals["Potraviny"]))
	require.True(t, dec("5").Equal(totals["Groceries"]))
	require.True(t, dec("3").Equal(totals[fallbackShopLabel]))
}
