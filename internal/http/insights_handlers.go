package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/analytics"
	"github.com/kunduaritra/Expense-Tracker/internal/dateutil"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/money"
)

// InsightsHandler serves the derived views: totals, breakdowns,
// spending patterns, and projections. Everything here is computed from
// a snapshot; nothing writes.
type InsightsHandler struct {
	Ledger *ledger.Service
}

func (h *InsightsHandler) month(c *fiber.Ctx) string {
	if m := c.Query("month"); m != "" {
		return m
	}
	return dateutil.MonthKey(time.Now())
}

// Overview bundles the dashboard numbers: month totals and budget
// usage with its tier.
func (h *InsightsHandler) Overview(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	month := h.month(c)
	totals := analytics.MonthlyTotals(snap.Transactions, month)

	budget, err := h.Ledger.Budget(c.UserContext(), key, month)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(fiber.Map{
		"totals": totals,
		"budget": analytics.BudgetUsageFor(totals.Expense, budget),
		"display": fiber.Map{
			"income":  money.FormatINR(totals.Income),
			"expense": money.FormatINR(totals.Expense),
			"savings": money.FormatINR(totals.Savings),
			"budget":  money.FormatCompact(budget),
		},
	})
}

func (h *InsightsHandler) Breakdown(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	month := h.month(c)
	shares := analytics.CategoryBreakdown(snap.Transactions, month)
	return c.JSON(fiber.Map{
		"month":     month,
		"breakdown": shares,
		"top":       analytics.TopWithOthers(shares, 3),
	})
}

func (h *InsightsHandler) Patterns(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(fiber.Map{
		"byWeekday": analytics.WeekdayHistogram(snap.Transactions),
		"byHour":    analytics.HourHistogram(snap.Transactions),
	})
}

func (h *InsightsHandler) Merchants(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"merchants": analytics.TopMerchants(snap.Transactions, 8)})
}

func (h *InsightsHandler) Predictions(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(analytics.Predict(snap.Transactions, time.Now()))
}

func (h *InsightsHandler) Trend(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"trend": analytics.Trend(snap.Transactions, time.Now(), 6)})
}
