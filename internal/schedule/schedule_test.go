package schedule

import (
	"testing"
	"time"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

var scheduleRef = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestStatusOf(t *testing.T) {
	cases := map[string]Status{
		"2025-06-10": StatusOverdue,
		"2025-06-15": StatusDueToday,
		"2025-06-16": StatusUpcoming,
		"2025-07-01": StatusUpcoming,
	}
	for date, want := range cases {
		if got := StatusOf(date, scheduleRef); got != want {
			t.Errorf("StatusOf(%s) = %q, want %q", date, got, want)
		}
	}
}

func TestNextOccurrencesMonthly(t *testing.T) {
	rem := models.Reminder{
		ID:      "rem001",
		DueDate: "2025-01-05",
		Repeat:  models.RepeatMonthly,
	}

	got, err := NextOccurrences(rem, scheduleRef, 3)
	if err != nil {
		t.Fatalf("next occurrences: %v", err)
	}
	want := []string{"2025-07-05", "2025-08-05", "2025-09-05"}
	if len(got) != len(want) {
		t.Fatalf("occurrences = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Format("2006-01-02") != w {
			t.Errorf("occurrence %d = %s, want %s", i, got[i].Format("2006-01-02"), w)
		}
	}
}

func TestNextOccurrencesOnce(t *testing.T) {
	future := models.Reminder{ID: "rem002", DueDate: "2025-08-01", Repeat: models.RepeatOnce}
	got, err := NextOccurrences(future, scheduleRef, 5)
	if err != nil {
		t.Fatalf("next occurrences: %v", err)
	}
	if len(got) != 1 || got[0].Format("2006-01-02") != "2025-08-01" {
		t.Errorf("future once = %v, want single 2025-08-01", got)
	}

	past := models.Reminder{ID: "rem003", DueDate: "2025-01-01", Repeat: models.RepeatOnce}
	got, err = NextOccurrences(past, scheduleRef, 5)
	if err != nil {
		t.Fatalf("next occurrences: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("past once = %v, want none", got)
	}
}

func TestNextOccurrencesBadDueDate(t *testing.T) {
	rem := models.Reminder{ID: "rem004", DueDate: "05/01/2025", Repeat: models.RepeatWeekly}
	if _, err := NextOccurrences(rem, scheduleRef, 3); err == nil {
		t.Error("expected error for unparseable due date")
	}
}
