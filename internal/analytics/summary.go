// Package analytics computes derived aggregates over the in-memory
// collections. Every function is pure: deterministic given the same
// input slice and reference time, never persisted, recomputed on
// demand.
package analytics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type MonthTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// MonthlyTotals sums the month's transactions by type;
// savings = income - expense.
func MonthlyTotals(txns []models.Transaction, monthKey string) MonthTotals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		if !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return MonthTotals{
		Month:   monthKey,
		Income:  income,
		Expense: expense,
		Savings: income.Sub(expense),
	}
}

type BudgetTier string

const (
	TierNominal  BudgetTier = "nominal"
	TierWarning  BudgetTier = "warning"
	TierCritical BudgetTier = "critical"
)

type BudgetUsage struct {
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	UsedPercent float64         `json:"usedPercent"`
	Tier        BudgetTier      `json:"tier"`
}

// BudgetUsageFor reports spend against the monthly budget. Tier
// boundaries are inclusive: exactly 70% is warning, exactly 90% is
// critical. This drives display color only; nothing is enforced.
func BudgetUsageFor(spent, budget decimal.Decimal) BudgetUsage {
	percent := 0.0
	if budget.IsPositive() {
		percent = spent.Div(budget).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	tier := TierNominal
	switch {
	case percent >= 90:
		tier = TierCritical
	case percent >= 70:
		tier = TierWarning
	}

	return BudgetUsage{
		Budget:      budget,
		Spent:       spent,
		UsedPercent: percent,
		Tier:        tier,
	}
}
