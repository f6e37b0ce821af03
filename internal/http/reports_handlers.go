package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/auth"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
	"github.com/kunduaritra/Expense-Tracker/internal/reports"
)

type ReportsHandler struct {
	Ledger *ledger.Service
	Store  *reports.Store
}

// Generate renders a statement PDF for the requested period (last 30
// days when unspecified) and parks it behind a download token, or
// streams it inline when ?inline=true.
func (h *ReportsHandler) Generate(c *fiber.Ctx) error {
	email, err := auth.UserEmail(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	key, err := userKey(c)
	if err != nil {
		return err
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -29)
		from = start.Format(models.DateLayout)
		to = end.Format(models.DateLayout)
	}
	if _, err := time.Parse(models.DateLayout, from); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	if _, err := time.Parse(models.DateLayout, to); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	st := reports.Build(email, from, to, snap.Transactions)
	data, err := reports.RenderPDF(st, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed")
	}

	filename := "statement-" + from + "-to-" + to + ".pdf"
	if c.Query("inline") == "true" {
		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", `inline; filename="`+filename+`"`)
		return c.Send(data)
	}

	token, expires := h.Store.Put(data, filename)
	return c.JSON(fiber.Map{
		"token":     token,
		"url":       "/r/" + token,
		"expiresAt": expires.UTC().Format(time.RFC3339),
	})
}

// Download serves a previously generated PDF. Unauthenticated on
// purpose so the link can be opened outside the app.
func (h *ReportsHandler) Download(c *fiber.Ctx) error {
	data, filename, err := h.Store.Get(c.Params("token"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "report expired or not found")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
