package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/analytics"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type GoalHandler struct {
	Ledger *ledger.Service
}

type contributionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var draft models.GoalDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	goal, err := h.Ledger.AddGoal(c.UserContext(), key, draft)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	now := time.Now()
	progress := make([]analytics.GoalProgress, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		progress = append(progress, analytics.Progress(g, now))
	}
	return c.JSON(fiber.Map{"goals": snap.Goals, "progress": progress})
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var upd models.GoalUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Ledger.UpdateGoal(c.UserContext(), key, c.Params("id"), upd); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.RemoveGoal(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *GoalHandler) AddContribution(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var body contributionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Ledger.AddContribution(c.UserContext(), key, c.Params("id"), body.Amount, body.Date); err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *GoalHandler) EditContribution(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "index must be an integer")
	}

	var body contributionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Ledger.EditContribution(c.UserContext(), key, c.Params("id"), index, body.Amount, body.Date); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *GoalHandler) DeleteContribution(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "index must be an integer")
	}

	if err := h.Ledger.DeleteContribution(c.UserContext(), key, c.Params("id"), index); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
