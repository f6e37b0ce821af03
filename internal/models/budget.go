package models

import "github.com/shopspring/decimal"

// Budget is a single monthly spending limit, keyed by (user, YYYY-MM)
// and read/written wholesale.
type Budget struct {
	Amount decimal.Decimal `json:"amount"`
}

// DefaultBudget is used when a month has no saved budget.
var DefaultBudget = decimal.NewFromInt(50000)
