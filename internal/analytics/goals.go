package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/dateutil"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type GoalProgress struct {
	GoalID   string  `json:"goalId"`
	Percent  float64 `json:"percent"`
	DaysLeft int     `json:"daysLeft"`
}

// Progress reports completion percent (uncapped; the display layer
// clamps bars at 100) and whole days until the deadline, negative once
// the goal is overdue.
func Progress(g models.Goal, now time.Time) GoalProgress {
	percent := 0.0
	if g.TargetAmount.IsPositive() {
		percent = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return GoalProgress{
		GoalID:   g.ID,
		Percent:  percent,
		DaysLeft: dateutil.DaysUntil(g.Deadline, now),
	}
}

// CardOutstanding is the live sum of amounts on transactions linked to
// the card. It ignores the settled flag and is never cached, so it
// survives card deletion as a recomputable value.
func CardOutstanding(txns []models.Transaction, cardID string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.CardID == cardID {
			total = total.Add(t.Amount)
		}
	}
	return total
}
