package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/analytics"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

type CardHandler struct {
	Ledger *ledger.Service
}

func (h *CardHandler) Create(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var draft models.CardDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	card, err := h.Ledger.AddCard(c.UserContext(), key, draft)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *CardHandler) List(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"cards": snap.Cards})
}

// Outstanding reports the live unsettled spend against one card.
func (h *CardHandler) Outstanding(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	id := c.Params("id")
	card, ok := findCard(snap.Cards, id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "card not found")
	}

	return c.JSON(fiber.Map{
		"cardId":      id,
		"settled":     card.Settled,
		"outstanding": analytics.CardOutstanding(snap.Transactions, id),
	})
}

func (h *CardHandler) Settle(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.SettleCard(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CardHandler) Delete(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.RemoveCard(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func findCard(cards []models.CreditCard, id string) (models.CreditCard, bool) {
	for _, card := range cards {
		if card.ID == id {
			return card, true
		}
	}
	return models.CreditCard{}, false
}
