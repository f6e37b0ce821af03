package ledger

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

var monthKeyRe = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// Budget returns the month's spending limit, falling back to the
// default when none has been saved for that month.
func (s *Service) Budget(ctx context.Context, userKey, month string) (decimal.Decimal, error) {
	if !monthKeyRe.MatchString(month) {
		return decimal.Zero, fmt.Errorf("%w: month must be YYYY-MM", models.ErrValidation)
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()

	if amount, ok := st.budgets[month]; ok {
		return amount, nil
	}

	b, found, err := s.gw.Budget(ctx, userKey, month)
	if err != nil {
		return decimal.Zero, err
	}
	amount := models.DefaultBudget
	if found && b.Amount.IsPositive() {
		amount = b.Amount
	}
	st.budgets[month] = amount
	return amount, nil
}

func (s *Service) SetBudget(ctx context.Context, userKey, month string, amount decimal.Decimal) error {
	if !monthKeyRe.MatchString(month) {
		return fmt.Errorf("%w: month must be YYYY-MM", models.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: budget amount must be positive", models.ErrValidation)
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := s.gw.SaveBudget(ctx, userKey, month, models.Budget{Amount: amount}); err != nil {
		return err
	}
	st.budgets[month] = amount
	return nil
}
