package models

import (
	"fmt"
	"regexp"
)

var last4Re = regexp.MustCompile(`^[0-9]{4}$`)

// CreditCard stores no balance of its own; the outstanding amount is
// always derived from the transactions carrying its id. Settled is a
// manual flag and never resets that derived sum.
type CreditCard struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Last4     string `json:"last4"`
	Color     string `json:"color,omitempty"`
	Settled   bool   `json:"settled"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type CardDraft struct {
	Name  string `json:"name"`
	Last4 string `json:"last4"`
	Color string `json:"color,omitempty"`
}

func (d CardDraft) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !last4Re.MatchString(d.Last4) {
		return fmt.Errorf("%w: last4 must be exactly 4 digits", ErrValidation)
	}
	return nil
}
