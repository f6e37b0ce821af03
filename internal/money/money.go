package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid money amount")
)

// Parse parses a user-entered decimal rupee amount like "12.34",
// tolerating thousands separators.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatINR renders an amount in the en-IN style used across the app:
// rupee sign, Indian digit grouping, no fraction digits (₹12,34,567).
func FormatINR(d decimal.Decimal) string {
	neg := d.IsNegative()
	grouped := groupIndian(d.Abs().Round(0).String())
	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

// FormatCompact renders large amounts in the ₹K/L/Cr notation.
func FormatCompact(d decimal.Decimal) string {
	crore := decimal.NewFromInt(10000000)
	lakh := decimal.NewFromInt(100000)
	thousand := decimal.NewFromInt(1000)

	switch {
	case d.GreaterThanOrEqual(crore):
		return "₹" + d.Div(crore).StringFixed(2) + "Cr"
	case d.GreaterThanOrEqual(lakh):
		return "₹" + d.Div(lakh).StringFixed(2) + "L"
	case d.GreaterThanOrEqual(thousand):
		return "₹" + d.Div(thousand).StringFixed(2) + "K"
	default:
		return "₹" + d.Round(0).String()
	}
}

// groupIndian inserts separators in the 3-then-2s pattern:
// 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	parts := append([]string{head}, groups...)
	return strings.Join(parts, ",") + "," + digits[n-3:]
}
