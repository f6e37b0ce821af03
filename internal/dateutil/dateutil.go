// Package dateutil centralizes calendar helpers: all entity dates are
// YYYY-MM-DD strings and months are keyed YYYY-MM.
package dateutil

import (
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// PrevMonthKey returns the key of the month before t's month.
func PrevMonthKey(t time.Time) string {
	return StartOfMonth(t).AddDate(0, -1, 0).Format(MonthLayout)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func DaysInMonth(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaysUntil returns the whole-day distance from now to the given date,
// rounding partial days up. Negative when the date is in the past.
func DaysUntil(date string, now time.Time) int {
	d, err := ParseDate(date)
	if err != nil {
		return 0
	}
	diff := d.Sub(now).Hours() / 24
	return int(math.Ceil(diff))
}

// DayLabel renders a date the way the transaction list shows it:
// Today, Yesterday, or "Jan 2".
func DayLabel(date string, now time.Time) string {
	d, err := ParseDate(date)
	if err != nil {
		return date
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	switch {
	case sameDay(d, today):
		return "Today"
	case sameDay(d, today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return d.Format("Jan 2")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
