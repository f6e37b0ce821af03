// Package reports builds account statements and renders them as PDFs.
// Generated documents are parked in an in-memory store behind one-time
// download tokens so the download link can be shared without auth.
package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

// Row is one statement line.
type Row struct {
	Type     models.TransactionType
	Date     string
	Category string
	Title    string
	Method   models.PaymentMethod
	Amount   decimal.Decimal
}

// Statement is a date-bounded view over a user's transactions.
type Statement struct {
	Email        string
	From, To     string
	Rows         []Row
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Net is income minus expense for the period.
func (s Statement) Net() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// Build selects transactions with from <= date <= to (inclusive,
// YYYY-MM-DD string comparison) and orders them newest first.
func Build(email, from, to string, txns []models.Transaction) Statement {
	st := Statement{Email: email, From: from, To: to}
	for _, t := range txns {
		if t.Date < from || t.Date > to {
			continue
		}
		title := strings.TrimSpace(t.Description)
		if title == "" {
			title = t.Category
		}
		st.Rows = append(st.Rows, Row{
			Type:     t.Type,
			Date:     t.Date,
			Category: t.Category,
			Title:    title,
			Method:   t.PaymentMethod,
			Amount:   t.Amount,
		})
		if t.Type == models.TypeIncome {
			st.TotalIncome = st.TotalIncome.Add(t.Amount)
		} else {
			st.TotalExpense = st.TotalExpense.Add(t.Amount)
		}
	}
	sort.SliceStable(st.Rows, func(i, j int) bool {
		return st.Rows[i].Date > st.Rows[j].Date
	})
	return st
}
