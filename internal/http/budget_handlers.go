package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/dateutil"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
)

type BudgetHandler struct {
	Ledger *ledger.Service
}

type setBudgetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	month := c.Query("month")
	if month == "" {
		month = dateutil.MonthKey(time.Now())
	}

	amount, err := h.Ledger.Budget(c.UserContext(), key, month)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"month": month, "amount": amount})
}

func (h *BudgetHandler) Set(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	month := c.Query("month")
	if month == "" {
		month = dateutil.MonthKey(time.Now())
	}

	var body setBudgetRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Ledger.SetBudget(c.UserContext(), key, month, body.Amount); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"month": month, "amount": body.Amount})
}
