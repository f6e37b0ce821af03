// Package smsparser extracts a draft transaction from a raw bank SMS.
// Parsing never fails: every field that cannot be matched degrades to a
// default (zero amount, today's date, "Unknown Merchant", Cash, the
// "others" category), so the output is always reviewable by the user.
package smsparser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

// Result is the low-confidence draft extracted from one SMS.
type Result struct {
	Amount        decimal.Decimal      `json:"amount"`
	Merchant      string               `json:"merchant"`
	Category      string               `json:"category"`
	Date          string               `json:"date"`
	TransactionID string               `json:"transactionId"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

var (
	amountRe   = regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*([0-9]+(?:,[0-9]+)*(?:\.[0-9]{2})?)`)
	dateRe     = regexp.MustCompile(`([0-9]{1,2})[-/]([0-9]{1,2})[-/]([0-9]{2,4})`)
	transferRe = regexp.MustCompile(`(?i)(?:credited to|paid to|transferred to)\s+([A-Za-z][A-Za-z &.]*?)(?:\s+on\b|\s+via\b|\s+upi\b|\s+\*|\s+a/c|\s+rs\.?\s|$)`)
	merchantRe = regexp.MustCompile(`(?i)(?:at|to|from|paid at)\s+([A-Za-z][A-Za-z &.]*?)(?:\s+on\b|\s+via\b|\s+upi\b|\s+\*|\s+a/c|$)`)
	rrnRe      = regexp.MustCompile(`(?i)RRN[:\s]*([0-9]+)`)
	upiRefRe   = regexp.MustCompile(`(?i)UPI[/:]?\s*([0-9]+)`)
	cardRe     = regexp.MustCompile(`\*+([0-9]{4})`)
	handleRe   = regexp.MustCompile(`[A-Za-z0-9._-]+@[A-Za-z]+`)
	spacesRe   = regexp.MustCompile(`\s+`)
)

// categoryRules is evaluated in order; the first rule whose keyword
// appears in the lowercased SMS wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"food", []string{"swiggy", "zomato", "dominos", "pizza", "mcdonald", "restaurant", "cafe", "food"}},
	{"transport", []string{"uber", "ola", "rapido", "petrol", "fuel", "parking", "metro"}},
	{"shopping", []string{"amazon", "flipkart", "myntra", "ajio", "nykaa", "mall"}},
	{"entertainment", []string{"netflix", "spotify", "hotstar", "prime", "movie", "pvr", "inox"}},
	{"bills", []string{"electricity", "water", "gas", "broadband", "recharge", "bill"}},
	{"health", []string{"hospital", "pharmacy", "apollo", "medicine", "clinic"}},
}

// Parse extracts a draft transaction using the current date as the
// fallback for missing dates.
func Parse(text string) Result {
	return ParseAt(text, time.Now())
}

// ParseAt is Parse with an explicit reference time, fully deterministic
// for a given input.
func ParseAt(text string, now time.Time) Result {
	lower := strings.ToLower(text)
	handle := handleRe.FindString(text)
	cardMatch := cardRe.FindStringSubmatch(text)
	rrn := submatch(rrnRe, text)

	return Result{
		Amount:        parseAmount(text),
		Merchant:      parseMerchant(text, handle),
		Category:      parseCategory(lower),
		Date:          parseDate(text, now),
		TransactionID: transactionRef(rrn, text, cardMatch),
		PaymentMethod: paymentMethod(lower, handle, rrn, cardMatch),
	}
}

func parseAmount(text string) decimal.Decimal {
	m := amountRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDate(text string, now time.Time) string {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return now.Format("2006-01-02")
	}
	day := pad2(m[1])
	month := pad2(m[2])
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	return year + "-" + month + "-" + day
}

func parseMerchant(text, handle string) string {
	// Person-to-person transfer framing wins over purchase framing.
	if m := transferRe.FindStringSubmatch(text); m != nil {
		return titleCase(m[1])
	}
	if m := merchantRe.FindStringSubmatch(text); m != nil {
		return titleCase(m[1])
	}
	if handle != "" {
		local := strings.SplitN(handle, "@", 2)[0]
		name := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
		if strings.TrimSpace(name) != "" {
			return titleCase(name)
		}
	}
	return "Unknown Merchant"
}

func transactionRef(rrn, text string, cardMatch []string) string {
	if rrn != "" {
		return rrn
	}
	if upi := submatch(upiRefRe, text); upi != "" {
		return upi
	}
	if cardMatch != nil {
		return cardMatch[1]
	}
	return ""
}

func paymentMethod(lower, handle, rrn string, cardMatch []string) models.PaymentMethod {
	switch {
	case strings.Contains(lower, "credit card"):
		return models.PayCreditCard
	case strings.Contains(lower, "debit card"):
		return models.PayCard
	case strings.Contains(lower, "upi") || handle != "" || rrn != "":
		return models.PayUPI
	case strings.Contains(lower, "netbanking") || strings.Contains(lower, "net banking") ||
		strings.Contains(lower, "neft") || strings.Contains(lower, "imps") || strings.Contains(lower, "rtgs"):
		return models.PayNetBanking
	case cardMatch != nil:
		return models.PayCard
	default:
		return models.PayCash
	}
}

func parseCategory(lower string) string {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return "others"
}

func submatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// titleCase collapses whitespace and capitalizes each word, so "swiggy
// mumbai" and "SWIGGY  MUMBAI" both come out "Swiggy Mumbai".
func titleCase(s string) string {
	words := spacesRe.Split(strings.TrimSpace(s), -1)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
