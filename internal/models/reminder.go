package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RepeatInterval string

const (
	RepeatOnce    RepeatInterval = "once"
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
	RepeatYearly  RepeatInterval = "yearly"
)

func (r RepeatInterval) Valid() bool {
	switch r {
	case RepeatOnce, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	}
	return false
}

// Reminder is a bill reminder. Overdue/due-today/upcoming status is a
// pure function of DueDate and the current date, never stored.
type Reminder struct {
	ID        string          `json:"id,omitempty"`
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
	Repeat    RepeatInterval  `json:"repeat"`
	IsActive  bool            `json:"isActive"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

type ReminderDraft struct {
	Title    string          `json:"title"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"dueDate"`
	Repeat   RepeatInterval  `json:"repeat"`
	Notes    string          `json:"notes,omitempty"`
}

func (d ReminderDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if d.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, d.DueDate); err != nil {
		return fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrValidation)
	}
	if d.Repeat != "" && !d.Repeat.Valid() {
		return fmt.Errorf("%w: unknown repeat interval %q", ErrValidation, d.Repeat)
	}
	return nil
}
