// Package models holds the user-scoped entity records mirrored from the
// remote store, plus the draft/update shapes accepted by the ledger.
// Field names follow the persisted JSON shape (camelCase, dates as
// YYYY-MM-DD strings, timestamps as ISO-8601 strings).
package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amounts are stored as plain JSON numbers in the remote tree.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

var ErrValidation = errors.New("validation failed")

const (
	DateLayout = "2006-01-02"
	MonthKey   = "2006-01"
)

// Snapshot is a point-in-time copy of one user's collections, safe to
// hand to the analytics layer while mutations continue.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
	Accounts     []Account     `json:"accounts"`
	Cards        []CreditCard  `json:"cards"`
	Reminders    []Reminder    `json:"reminders"`
}
