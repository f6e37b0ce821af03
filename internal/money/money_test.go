package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := map[string]string{
		"12.34":    "12.34",
		" 500 ":    "500",
		"1,23,456": "123456",
		"1,234.50": "1234.5",
		"-750":     "-750",
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", in, err)
			continue
		}
		if got.String() != want {
			t.Errorf("Parse(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "12.3.4"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestFormatINRIndianGrouping(t *testing.T) {
	cases := map[int64]string{
		0:        "₹0",
		999:      "₹999",
		1000:     "₹1,000",
		12345:    "₹12,345",
		123456:   "₹1,23,456",
		1234567:  "₹12,34,567",
		12345678: "₹1,23,45,678",
		-54321:   "-₹54,321",
	}
	for in, want := range cases {
		if got := FormatINR(decimal.NewFromInt(in)); got != want {
			t.Errorf("FormatINR(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatINRRoundsFractions(t *testing.T) {
	if got := FormatINR(decimal.NewFromFloat(1234.56)); got != "₹1,235" {
		t.Errorf("FormatINR(1234.56) = %q, want ₹1,235", got)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[int64]string{
		500:      "₹500",
		1500:     "₹1.50K",
		250000:   "₹2.50L",
		30000000: "₹3.00Cr",
	}
	for in, want := range cases {
		if got := FormatCompact(decimal.NewFromInt(in)); got != want {
			t.Errorf("FormatCompact(%d) = %q, want %q", in, got, want)
		}
	}
}
