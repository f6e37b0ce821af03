package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/dateutil"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type CategoryPrediction struct {
	Category  string          `json:"category"`
	ThisMonth decimal.Decimal `json:"thisMonth"`
	LastMonth decimal.Decimal `json:"lastMonth"`
	Projected decimal.Decimal `json:"projected"`
}

type Prediction struct {
	ThisMonthExpense decimal.Decimal      `json:"thisMonthExpense"`
	LastMonthExpense decimal.Decimal      `json:"lastMonthExpense"`
	ProjectedExpense decimal.Decimal      `json:"projectedExpense"`
	PercentChange    float64              `json:"percentChange"`
	Categories       []CategoryPrediction `json:"categories"`
}

// Predict does the linear month projection: spend so far scaled from
// elapsed days to the full month, with a month-over-month change that
// reads as 0% when last month had no spend.
func Predict(txns []models.Transaction, now time.Time) Prediction {
	thisKey := dateutil.MonthKey(now)
	lastKey := dateutil.PrevMonthKey(now)
	dayOfMonth := int64(now.Day())
	daysInMonth := int64(dateutil.DaysInMonth(now))

	thisMonth := expenseTotal(txns, thisKey)
	lastMonth := expenseTotal(txns, lastKey)

	projected := project(thisMonth, dayOfMonth, daysInMonth)

	change := 0.0
	if lastMonth.IsPositive() {
		change = thisMonth.Sub(lastMonth).Div(lastMonth).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return Prediction{
		ThisMonthExpense: thisMonth,
		LastMonthExpense: lastMonth,
		ProjectedExpense: projected,
		PercentChange:    change,
		Categories:       categoryPredictions(txns, thisKey, lastKey, dayOfMonth, daysInMonth),
	}
}

// categoryPredictions projects each expense category and keeps the top
// five by projected spend.
func categoryPredictions(txns []models.Transaction, thisKey, lastKey string, dayOfMonth, daysInMonth int64) []CategoryPrediction {
	out := make([]CategoryPrediction, 0, len(models.ExpenseCategories))
	for _, cat := range models.ExpenseCategories {
		thisVal := categoryTotal(txns, thisKey, cat)
		lastVal := categoryTotal(txns, lastKey, cat)
		projected := project(thisVal, dayOfMonth, daysInMonth)
		if !projected.IsPositive() {
			continue
		}
		out = append(out, CategoryPrediction{
			Category:  cat,
			ThisMonth: thisVal,
			LastMonth: lastVal,
			Projected: projected,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Projected.Equal(out[j].Projected) {
			return out[i].Projected.GreaterThan(out[j].Projected)
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func project(spent decimal.Decimal, dayOfMonth, daysInMonth int64) decimal.Decimal {
	if dayOfMonth <= 0 {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromInt(dayOfMonth)).Mul(decimal.NewFromInt(daysInMonth))
}

func expenseTotal(txns []models.Transaction, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == models.TypeExpense && strings.HasPrefix(t.Date, monthKey) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func categoryTotal(txns []models.Transaction, monthKey, category string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == models.TypeExpense && t.Category == category && strings.HasPrefix(t.Date, monthKey) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TrendPoint is one month in the income/expense trend series.
type TrendPoint struct {
	Month   string          `json:"month"`
	Key     string          `json:"key"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Trend returns totals for the last n calendar months, oldest first.
func Trend(txns []models.Transaction, now time.Time, n int) []TrendPoint {
	out := make([]TrendPoint, 0, n)
	start := dateutil.StartOfMonth(now)
	for i := n - 1; i >= 0; i-- {
		m := start.AddDate(0, -i, 0)
		key := dateutil.MonthKey(m)
		totals := MonthlyTotals(txns, key)
		out = append(out, TrendPoint{
			Month:   m.Format("Jan"),
			Key:     key,
			Income:  totals.Income,
			Expense: totals.Expense,
		})
	}
	return out
}
