package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type PaymentMethod string

const (
	PayCash       PaymentMethod = "Cash"
	PayUPI        PaymentMethod = "UPI"
	PayCard       PaymentMethod = "Card"
	PayCreditCard PaymentMethod = "CreditCard"
	PayNetBanking PaymentMethod = "NetBanking"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PayCash, PayUPI, PayCard, PayCreditCard, PayNetBanking:
		return true
	}
	return false
}

type Transaction struct {
	ID            string          `json:"id,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	AccountID     string          `json:"accountId,omitempty"`
	CardID        string          `json:"cardId,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}

// SignedEffect is the balance adjustment this transaction contributes to
// its linked account: +amount for income, -amount for expense.
func (t Transaction) SignedEffect() decimal.Decimal {
	return signedEffect(t.Type, t.Amount)
}

func signedEffect(typ TransactionType, amount decimal.Decimal) decimal.Decimal {
	if typ == TypeIncome {
		return amount
	}
	return amount.Neg()
}

// TransactionDraft is an unpersisted transaction-shaped record (form
// input or parser output) prior to acceptance by the ledger.
type TransactionDraft struct {
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	AccountID     string          `json:"accountId,omitempty"`
	CardID        string          `json:"cardId,omitempty"`
}

func (d TransactionDraft) Validate() error {
	if !d.Type.Valid() {
		return fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	if !d.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !CategoryForType(d.Type, d.Category) {
		return fmt.Errorf("%w: unknown %s category %q", ErrValidation, d.Type, d.Category)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if d.PaymentMethod != "" && !d.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, d.PaymentMethod)
	}
	return nil
}

// TransactionUpdate is a partial update; nil fields are left unchanged.
type TransactionUpdate struct {
	Type          *TransactionType `json:"type,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Date          *string          `json:"date,omitempty"`
	Description   *string          `json:"description,omitempty"`
	PaymentMethod *PaymentMethod   `json:"paymentMethod,omitempty"`
	AccountID     *string          `json:"accountId,omitempty"`
	CardID        *string          `json:"cardId,omitempty"`
}

func (u TransactionUpdate) Validate() error {
	if u.Type != nil && !u.Type.Valid() {
		return fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	if u.Amount != nil && !u.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if u.Date != nil {
		if _, err := time.Parse(DateLayout, *u.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
	}
	if u.PaymentMethod != nil && !u.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, *u.PaymentMethod)
	}
	return nil
}

// Patch returns the partial-merge body for the remote store.
func (u TransactionUpdate) Patch() map[string]any {
	p := map[string]any{}
	if u.Type != nil {
		p["type"] = *u.Type
	}
	if u.Amount != nil {
		p["amount"] = *u.Amount
	}
	if u.Category != nil {
		p["category"] = *u.Category
	}
	if u.Date != nil {
		p["date"] = *u.Date
	}
	if u.Description != nil {
		p["description"] = *u.Description
	}
	if u.PaymentMethod != nil {
		p["paymentMethod"] = *u.PaymentMethod
	}
	if u.AccountID != nil {
		p["accountId"] = *u.AccountID
	}
	if u.CardID != nil {
		p["cardId"] = *u.CardID
	}
	return p
}
