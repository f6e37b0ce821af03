package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func TestWeekdayHistogram(t *testing.T) {
	txns := []models.Transaction{
		txn(models.TypeExpense, 100, "food", "2025-06-01"), // Sunday
		txn(models.TypeExpense, 200, "food", "2025-06-08"), // Sunday
		txn(models.TypeExpense, 300, "bills", "2025-06-02"), // Monday
		txn(models.TypeIncome, 900, "salary", "2025-06-02"), // income skipped
		txn(models.TypeExpense, 50, "food", "not-a-date"),   // unparseable skipped
	}

	got := WeekdayHistogram(txns)
	if got[0].Label != "Sun" || !got[0].Amount.Equal(decimal.NewFromInt(300)) || got[0].Count != 2 {
		t.Errorf("Sunday bucket = %+v, want 300 over 2", got[0])
	}
	if !got[1].Amount.Equal(decimal.NewFromInt(300)) || got[1].Count != 1 {
		t.Errorf("Monday bucket = %+v, want 300 over 1", got[1])
	}
	for i := 2; i < 7; i++ {
		if got[i].Count != 0 {
			t.Errorf("bucket %d count = %d, want 0", i, got[i].Count)
		}
	}
}

func TestHourHistogramFallsBackToMidday(t *testing.T) {
	withStamp := txn(models.TypeExpense, 100, "food", "2025-06-01")
	withStamp.CreatedAt = time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC).Format(time.RFC3339)
	noStamp := txn(models.TypeExpense, 200, "bills", "2025-06-02")

	got := HourHistogram([]models.Transaction{withStamp, noStamp})
	if got[21].Count != 1 || !got[21].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("21:00 bucket = %+v, want 100 over 1", got[21])
	}
	if got[12].Count != 1 || !got[12].Amount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("12:00 fallback bucket = %+v, want 200 over 1", got[12])
	}
}

func TestTopMerchants(t *testing.T) {
	a := txn(models.TypeExpense, 500, "food", "2025-06-01")
	a.Description = "Swiggy"
	b := txn(models.TypeExpense, 300, "food", "2025-06-02")
	b.Description = "Swiggy"
	c := txn(models.TypeExpense, 2000, "shopping", "2025-06-03")
	c.Description = "Amazon"
	d := txn(models.TypeExpense, 100, "transport", "2025-06-04") // no description

	got := TopMerchants([]models.Transaction{a, b, c, d}, 2)
	if len(got) != 2 {
		t.Fatalf("merchants = %d, want 2", len(got))
	}
	if got[0].Name != "Amazon" {
		t.Errorf("top merchant = %q, want Amazon", got[0].Name)
	}
	if got[1].Name != "Swiggy" || got[1].Count != 2 || !got[1].Amount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("second merchant = %+v, want Swiggy 800 over 2", got[1])
	}
}

func TestTopMerchantsFallbackNames(t *testing.T) {
	noDesc := txn(models.TypeExpense, 100, "transport", "2025-06-04")
	blank := txn(models.TypeExpense, 50, "", "2025-06-05")

	got := TopMerchants([]models.Transaction{noDesc, blank}, 5)
	if len(got) != 2 {
		t.Fatalf("merchants = %d, want 2", len(got))
	}
	names := map[string]bool{got[0].Name: true, got[1].Name: true}
	if !names["transport"] || !names["Unknown"] {
		t.Errorf("fallback names = %v, want transport and Unknown", names)
	}
}

func TestGoalProgress(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	g := models.Goal{
		ID:            "goal001",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2500),
		Deadline:      "2025-06-25",
	}

	got := Progress(g, now)
	if got.Percent != 25 {
		t.Errorf("percent = %f, want 25", got.Percent)
	}
	if got.DaysLeft != 10 {
		t.Errorf("daysLeft = %d, want 10", got.DaysLeft)
	}

	// Overfunded goals exceed 100; overdue deadlines go negative.
	g.CurrentAmount = decimal.NewFromInt(12000)
	g.Deadline = "2025-06-10"
	got = Progress(g, now)
	if got.Percent != 120 {
		t.Errorf("overfunded percent = %f, want 120", got.Percent)
	}
	if got.DaysLeft >= 0 {
		t.Errorf("daysLeft = %d, want negative for past deadline", got.DaysLeft)
	}
}

func TestCardOutstandingIgnoresSettledFlag(t *testing.T) {
	a := txn(models.TypeExpense, 700, "shopping", "2025-06-01")
	a.CardID = "card001"
	b := txn(models.TypeExpense, 300, "food", "2025-06-02")
	b.CardID = "card001"
	c := txn(models.TypeExpense, 999, "food", "2025-06-03")
	c.CardID = "card002"

	got := CardOutstanding([]models.Transaction{a, b, c}, "card001")
	if !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("outstanding = %s, want 1000", got)
	}
}
