package dateutil

import (
	"testing"
	"time"
)

func TestMonthKeys(t *testing.T) {
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	if got := MonthKey(now); got != "2025-01" {
		t.Errorf("MonthKey = %q, want 2025-01", got)
	}
	// Previous month crosses the year boundary.
	if got := PrevMonthKey(now); got != "2024-12" {
		t.Errorf("PrevMonthKey = %q, want 2024-12", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := map[time.Month]int{
		time.January:  31,
		time.February: 28,
		time.April:    30,
	}
	for month, want := range cases {
		now := time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)
		if got := DaysInMonth(now); got != want {
			t.Errorf("DaysInMonth(%s 2025) = %d, want %d", month, got, want)
		}
	}
	// Leap year February.
	if got := DaysInMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)); got != 29 {
		t.Errorf("DaysInMonth(Feb 2024) = %d, want 29", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	if got := DaysUntil("2025-06-25", now); got != 10 {
		t.Errorf("DaysUntil future = %d, want 10", got)
	}
	if got := DaysUntil("2025-06-15", now); got != 0 {
		t.Errorf("DaysUntil today = %d, want 0", got)
	}
	if got := DaysUntil("2025-06-10", now); got != -5 {
		t.Errorf("DaysUntil past = %d, want -5", got)
	}
	if got := DaysUntil("garbage", now); got != 0 {
		t.Errorf("DaysUntil unparseable = %d, want 0", got)
	}

	// A partial day still counts as one remaining day.
	evening := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
	if got := DaysUntil("2025-06-15", evening); got != 1 {
		t.Errorf("DaysUntil partial day = %d, want 1", got)
	}
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	if got := DayLabel("2025-06-15", now); got != "Today" {
		t.Errorf("DayLabel today = %q", got)
	}
	if got := DayLabel("2025-06-14", now); got != "Yesterday" {
		t.Errorf("DayLabel yesterday = %q", got)
	}
	if got := DayLabel("2025-06-01", now); got != "Jun 1" {
		t.Errorf("DayLabel older = %q, want Jun 1", got)
	}
	if got := DayLabel("not-a-date", now); got != "not-a-date" {
		t.Errorf("DayLabel unparseable = %q, want passthrough", got)
	}
}
