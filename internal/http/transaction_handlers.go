package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type TransactionHandler struct {
	Ledger *ledger.Service
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var draft models.TransactionDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	txn, err := h.Ledger.AddTransaction(c.UserContext(), key, draft)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"transactions": snap.Transactions})
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var upd models.TransactionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Ledger.UpdateTransaction(c.UserContext(), key, c.Params("id"), upd); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.RemoveTransaction(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
