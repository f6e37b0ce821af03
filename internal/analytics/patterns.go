package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type Bucket struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayHistogram buckets expense transactions by the weekday of their
// date (0=Sunday). Transactions with unparseable dates are skipped.
func WeekdayHistogram(txns []models.Transaction) [7]Bucket {
	var out [7]Bucket
	for i := range out {
		out[i] = Bucket{Label: weekdayLabels[i], Amount: decimal.Zero}
	}
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		d, err := time.Parse(models.DateLayout, t.Date)
		if err != nil {
			continue
		}
		idx := int(d.Weekday())
		out[idx].Amount = out[idx].Amount.Add(t.Amount)
		out[idx].Count++
	}
	return out
}

// HourHistogram buckets expense transactions by creation hour, treating
// records without a usable createdAt timestamp as midday.
func HourHistogram(txns []models.Transaction) [24]Bucket {
	var out [24]Bucket
	for i := range out {
		out[i] = Bucket{Label: hourLabel(i), Amount: decimal.Zero}
	}
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		h := 12
		if t.CreatedAt != "" {
			if ts, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
				h = ts.Hour()
			}
		}
		out[h].Amount = out[h].Amount.Add(t.Amount)
		out[h].Count++
	}
	return out
}

func hourLabel(h int) string {
	return time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("15:00")
}

type Merchant struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// TopMerchants groups expense transactions by description, falling back
// to category and then "Unknown", and returns the top n by amount.
func TopMerchants(txns []models.Transaction, n int) []Merchant {
	totals := make(map[string]*Merchant)
	var order []string
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		name := t.Description
		if name == "" {
			name = t.Category
		}
		if name == "" {
			name = "Unknown"
		}
		m, ok := totals[name]
		if !ok {
			m = &Merchant{Name: name, Amount: decimal.Zero}
			totals[name] = m
			order = append(order, name)
		}
		m.Amount = m.Amount.Add(t.Amount)
		m.Count++
	}

	out := make([]Merchant, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
