package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountSavings AccountType = "savings"
	AccountCurrent AccountType = "current"
	AccountCash    AccountType = "cash"
	AccountWallet  AccountType = "wallet"
)

func (a AccountType) Valid() bool {
	switch a {
	case AccountSavings, AccountCurrent, AccountCash, AccountWallet:
		return true
	}
	return false
}

// Account is a bank/cash/wallet account. Balance must stay equal to the
// opening balance plus the signed effect of every linked transaction,
// applied exactly once each.
type Account struct {
	ID            string          `json:"id,omitempty"`
	BankName      string          `json:"bankName"`
	AccountHolder string          `json:"accountHolder"`
	AccountNumber string          `json:"accountNumber"`
	IFSC          string          `json:"ifsc,omitempty"`
	Branch        string          `json:"branch,omitempty"`
	Type          AccountType     `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	Color         string          `json:"color,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}

type AccountDraft struct {
	BankName      string          `json:"bankName"`
	AccountHolder string          `json:"accountHolder"`
	AccountNumber string          `json:"accountNumber"`
	IFSC          string          `json:"ifsc,omitempty"`
	Branch        string          `json:"branch,omitempty"`
	Type          AccountType     `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	Color         string          `json:"color,omitempty"`
}

func (d AccountDraft) Validate() error {
	if d.BankName == "" {
		return fmt.Errorf("%w: bankName is required", ErrValidation)
	}
	if d.AccountHolder == "" {
		return fmt.Errorf("%w: accountHolder is required", ErrValidation)
	}
	if d.AccountNumber == "" {
		return fmt.Errorf("%w: accountNumber is required", ErrValidation)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown account type %q", ErrValidation, d.Type)
	}
	return nil
}

// AccountUpdate carries user-editable fields; balance changes flow
// through transaction mutations, not direct edits, except for the
// opening-balance correction case.
type AccountUpdate struct {
	BankName      *string          `json:"bankName,omitempty"`
	AccountHolder *string          `json:"accountHolder,omitempty"`
	AccountNumber *string          `json:"accountNumber,omitempty"`
	IFSC          *string          `json:"ifsc,omitempty"`
	Branch        *string          `json:"branch,omitempty"`
	Type          *AccountType     `json:"type,omitempty"`
	Balance       *decimal.Decimal `json:"balance,omitempty"`
	Color         *string          `json:"color,omitempty"`
}

func (u AccountUpdate) Validate() error {
	if u.BankName != nil && *u.BankName == "" {
		return fmt.Errorf("%w: bankName cannot be empty", ErrValidation)
	}
	if u.AccountNumber != nil && *u.AccountNumber == "" {
		return fmt.Errorf("%w: accountNumber cannot be empty", ErrValidation)
	}
	if u.Type != nil && !u.Type.Valid() {
		return fmt.Errorf("%w: unknown account type %q", ErrValidation, *u.Type)
	}
	return nil
}

func (u AccountUpdate) Patch() map[string]any {
	p := map[string]any{}
	if u.BankName != nil {
		p["bankName"] = *u.BankName
	}
	if u.AccountHolder != nil {
		p["accountHolder"] = *u.AccountHolder
	}
	if u.AccountNumber != nil {
		p["accountNumber"] = *u.AccountNumber
	}
	if u.IFSC != nil {
		p["ifsc"] = *u.IFSC
	}
	if u.Branch != nil {
		p["branch"] = *u.Branch
	}
	if u.Type != nil {
		p["type"] = *u.Type
	}
	if u.Balance != nil {
		p["balance"] = *u.Balance
	}
	if u.Color != nil {
		p["color"] = *u.Color
	}
	return p
}
