// Package reports computes derived analytics over the ledger. All queries
// are pure reads: they fold over the owner's current transaction snapshot
// and keep no state of their own.
package reports

import (
	"time"

	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FallbackColor is used in breakdowns for transactions whose category name
// does not match any category of the owner.
const FallbackColor = "#64748b"

// Period is the time window of a category breakdown.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Periods lists all valid breakdown periods.
var Periods = []Period{PeriodMonth, PeriodQuarter, PeriodYear}

// Engine answers analytical queries over a ledger.Store.
type Engine struct {
	store ledger.Store

	// Now is the clock all calendar-relative queries use. Overridable for
	// tests, defaults to time.Now.
	Now func() time.Time
}

// NewEngine returns an Engine reading from the given store.
func NewEngine(store ledger.Store) *Engine {
	return &Engine{
		store: store,
		Now:   time.Now,
	}
}

// DashboardStats summarizes the current calendar month and compares it to
// the previous one.
type DashboardStats struct {
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"2500"`   // Income of the current month
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"1800"` // Expenses of the current month
	NetBalance    decimal.Decimal `json:"netBalance" example:"700"`     // Income minus expenses

	// Percentage changes relative to the previous calendar month. A change
	// over an empty previous month is 0, not infinity.
	IncomeChange   decimal.Decimal `json:"incomeChange" example:"25"`
	ExpensesChange decimal.Decimal `json:"expensesChange" example:"-10"`
	BalanceChange  decimal.Decimal `json:"balanceChange" example:"150"`
}

// DashboardStats computes the dashboard summary for one owner.
func (e *Engine) DashboardStats(owner uint64) (DashboardStats, error) {
	transactions, err := e.store.AllTransactions(owner)
	if err != nil {
		return DashboardStats{}, err
	}

	current := types.MonthOf(e.Now())
	previous := current.AddDate(0, -1)

	income, expenses := sumMonth(transactions, current)
	previousIncome, previousExpenses := sumMonth(transactions, previous)

	balance := income.Sub(expenses)
	previousBalance := previousIncome.Sub(previousExpenses)

	// The denominator uses the absolute value so the sign of the change
	// stays meaningful when the previous balance was negative
	balanceChange := decimal.Zero
	if !previousBalance.IsZero() {
		balanceChange = balance.Sub(previousBalance).Div(previousBalance.Abs()).Mul(decimal.NewFromInt(100))
	}

	return DashboardStats{
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetBalance:     balance,
		IncomeChange:   percentChange(income, previousIncome),
		ExpensesChange: percentChange(expenses, previousExpenses),
		BalanceChange:  balanceChange,
	}, nil
}

// ChartSeries is the income/expense history for a chart. The three slices
// always have equal length, one entry per month, oldest first.
type ChartSeries struct {
	Labels   []string          `json:"labels" example:"Jan,Feb,Mar"` // Short month names
	Income   []decimal.Decimal `json:"income"`
	Expenses []decimal.Decimal `json:"expenses"`
}

// ChartSeries computes per-month income and expense sums for the given
// number of consecutive calendar months, ending at and including the
// current one. Months without transactions report zero.
func (e *Engine) ChartSeries(owner uint64, months int) (ChartSeries, error) {
	if months < 1 {
		return ChartSeries{}, ledger.ValidationError{Fields: map[string]string{
			"months": "months must be at least 1",
		}}
	}

	transactions, err := e.store.AllTransactions(owner)
	if err != nil {
		return ChartSeries{}, err
	}

	series := ChartSeries{
		Labels:   make([]string, 0, months),
		Income:   make([]decimal.Decimal, 0, months),
		Expenses: make([]decimal.Decimal, 0, months),
	}

	current := types.MonthOf(e.Now())
	for i := months - 1; i >= 0; i-- {
		month := current.AddDate(0, -i)
		income, expenses := sumMonth(transactions, month)

		series.Labels = append(series.Labels, month.Label())
		series.Income = append(series.Income, income)
		series.Expenses = append(series.Expenses, expenses)
	}

	return series, nil
}

// CategorySum is one slice of a category breakdown.
type CategorySum struct {
	Category string          `json:"category" example:"Food & Dining"`
	Amount   decimal.Decimal `json:"amount" example:"320.5"`
	Color    string          `json:"color" example:"#f59e0b"`
}

// CategoryBreakdown sums the owner's expenses per category name, starting
// at the beginning of the current month, quarter or year. Income is
// excluded: the breakdown answers "where did my money go". Colors come from
// the owner's categories, with FallbackColor for unknown names.
func (e *Engine) CategoryBreakdown(owner uint64, period Period) ([]CategorySum, error) {
	if !slices.Contains(Periods, period) {
		return nil, ledger.ValidationError{Fields: map[string]string{
			"period": "period must be one of: month, quarter, year",
		}}
	}

	transactions, err := e.store.AllTransactions(owner)
	if err != nil {
		return nil, err
	}

	categories, err := e.store.Categories(owner)
	if err != nil {
		return nil, err
	}

	// Window starts are built with NewMonth so they are midnight UTC like
	// the stored transaction dates, regardless of the clock's location
	now := e.Now()
	var start types.Month
	switch period {
	case PeriodMonth:
		start = types.NewMonth(now.Year(), now.Month())
	case PeriodQuarter:
		start = types.QuarterStartOf(now)
	case PeriodYear:
		start = types.YearStartOf(now)
	}
	startDate := time.Time(start)

	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Kind != ledger.KindExpense || t.Date.Before(startDate) {
			continue
		}

		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	colors := make(map[string]string, len(categories))
	for _, category := range categories {
		colors[category.Name] = category.Color
	}

	breakdown := make([]CategorySum, 0, len(totals))
	for name, amount := range totals {
		color, ok := colors[name]
		if !ok {
			color = FallbackColor
		}

		breakdown = append(breakdown, CategorySum{
			Category: name,
			Amount:   amount,
			Color:    color,
		})
	}

	// Map iteration order is random, the breakdown must be stable
	slices.SortFunc(breakdown, func(a, b CategorySum) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}

		switch {
		case a.Category < b.Category:
			return -1
		case a.Category > b.Category:
			return 1
		default:
			return 0
		}
	})

	return breakdown, nil
}

// sumMonth folds all transactions dated in the given month into an income
// sum and an expense sum.
func sumMonth(transactions []ledger.Transaction, month types.Month) (income, expenses decimal.Decimal) {
	for _, t := range transactions {
		if !month.Contains(t.Date) {
			continue
		}

		switch t.Kind {
		case ledger.KindIncome:
			income = income.Add(t.Amount)
		case ledger.KindExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return income, expenses
}

// percentChange returns the change from previous to current in percent.
// A zero previous value yields 0 so that an empty previous month never
// produces an undefined percentage.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}

	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}
