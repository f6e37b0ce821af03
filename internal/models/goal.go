package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is one entry in a goal's ledger.
type Contribution struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Timestamp string          `json:"timestamp"`
}

// Goal is a savings goal. CurrentAmount must equal the amount at
// creation plus the sum of all contributions currently in the list.
type Goal struct {
	ID            string          `json:"id,omitempty"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline"`
	Category      string          `json:"category,omitempty"`
	Contributions []Contribution  `json:"contributions,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}

type GoalDraft struct {
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline"`
	Category      string          `json:"category,omitempty"`
}

func (d GoalDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !d.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: targetAmount must be positive", ErrValidation)
	}
	if d.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: currentAmount cannot be negative", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, d.Deadline); err != nil {
		return fmt.Errorf("%w: deadline must be YYYY-MM-DD", ErrValidation)
	}
	return nil
}

type GoalUpdate struct {
	Title        *string          `json:"title,omitempty"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
	Deadline     *string          `json:"deadline,omitempty"`
	Category     *string          `json:"category,omitempty"`
}

func (u GoalUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if u.TargetAmount != nil && !u.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: targetAmount must be positive", ErrValidation)
	}
	if u.Deadline != nil {
		if _, err := time.Parse(DateLayout, *u.Deadline); err != nil {
			return fmt.Errorf("%w: deadline must be YYYY-MM-DD", ErrValidation)
		}
	}
	return nil
}

func (u GoalUpdate) Patch() map[string]any {
	p := map[string]any{}
	if u.Title != nil {
		p["title"] = *u.Title
	}
	if u.TargetAmount != nil {
		p["targetAmount"] = *u.TargetAmount
	}
	if u.Deadline != nil {
		p["deadline"] = *u.Deadline
	}
	if u.Category != nil {
		p["category"] = *u.Category
	}
	return p
}
