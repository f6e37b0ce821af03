package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/smsparser"
)

// SMSHandler turns raw bank SMS text into a transaction draft the
// client can confirm before saving. Parsing never fails: missing
// fields degrade to defaults.
type SMSHandler struct{}

type parseSMSRequest struct {
	Text string `json:"text"`
}

func (h *SMSHandler) Parse(c *fiber.Ctx) error {
	if _, err := userKey(c); err != nil {
		return err
	}

	var body parseSMSRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Text) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	return c.JSON(smsparser.Parse(body.Text))
}
