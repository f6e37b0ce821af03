// Package schedule derives reminder due status and, for repeating
// reminders, upcoming occurrences from the recurrence rule.
package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/kunduaritra/Expense-Tracker/internal/dateutil"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due-today"
	StatusUpcoming Status = "upcoming"
)

// StatusOf classifies a due date against the current date. Pure: the
// same dueDate and now always give the same answer.
func StatusOf(dueDate string, now time.Time) Status {
	days := dateutil.DaysUntil(dueDate, now)
	switch {
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}

// NextOccurrences returns up to n upcoming occurrences of the reminder
// strictly after now. A once-only reminder yields its due date while it
// is still in the future, then nothing.
func NextOccurrences(rem models.Reminder, now time.Time, n int) ([]time.Time, error) {
	due, err := dateutil.ParseDate(rem.DueDate)
	if err != nil {
		return nil, fmt.Errorf("reminder %s: bad due date %q", rem.ID, rem.DueDate)
	}

	if rem.Repeat == "" || rem.Repeat == models.RepeatOnce {
		if due.After(now) {
			return []time.Time{due}, nil
		}
		return nil, nil
	}

	freq, err := frequencyFor(rem.Repeat)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Dtstart: due,
	})
	if err != nil {
		return nil, fmt.Errorf("reminder %s: %w", rem.ID, err)
	}

	var out []time.Time
	cursor := now
	for len(out) < n {
		next := rule.After(cursor, false)
		if next.IsZero() {
			break
		}
		out = append(out, next)
		cursor = next
	}
	return out, nil
}

func frequencyFor(r models.RepeatInterval) (rrule.Frequency, error) {
	switch r {
	case models.RepeatDaily:
		return rrule.DAILY, nil
	case models.RepeatWeekly:
		return rrule.WEEKLY, nil
	case models.RepeatMonthly:
		return rrule.MONTHLY, nil
	case models.RepeatYearly:
		return rrule.YEARLY, nil
	default:
		return 0, fmt.Errorf("no recurrence for repeat %q", r)
	}
}
