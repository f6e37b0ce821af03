package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type AccountHandler struct {
	Ledger *ledger.Service
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var draft models.AccountDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	acct, err := h.Ledger.AddAccount(c.UserContext(), key, draft)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(acct)
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"accounts": snap.Accounts})
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var upd models.AccountUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Ledger.UpdateAccount(c.UserContext(), key, c.Params("id"), upd); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.RemoveAccount(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
