package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  float64         `json:"percent"`
}

// CategoryBreakdown groups the month's expense transactions by
// category. Categories with zero spend are excluded; shares are sorted
// descending by amount (category name breaks ties so output is stable).
func CategoryBreakdown(txns []models.Transaction, monthKey string) []CategoryShare {
	totals := make(map[string]decimal.Decimal)
	period := decimal.Zero
	for _, t := range txns {
		if t.Type != models.TypeExpense || !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		period = period.Add(t.Amount)
	}

	shares := make([]CategoryShare, 0, len(totals))
	for cat, amount := range totals {
		if !amount.IsPositive() {
			continue
		}
		pct := 0.0
		if period.IsPositive() {
			pct = amount.Div(period).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		shares = append(shares, CategoryShare{Category: cat, Amount: amount, Percent: pct})
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

// TopWithOthers keeps the top n shares and rolls the rest into a
// synthetic "Others" bucket, omitted when the remainder is zero.
func TopWithOthers(shares []CategoryShare, n int) []CategoryShare {
	if len(shares) <= n {
		return shares
	}

	out := append([]CategoryShare(nil), shares[:n]...)
	rest := decimal.Zero
	restPct := 0.0
	for _, s := range shares[n:] {
		rest = rest.Add(s.Amount)
		restPct += s.Percent
	}
	if rest.IsPositive() {
		out = append(out, CategoryShare{Category: "Others", Amount: rest, Percent: restPct})
	}
	return out
}
