package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
	"github.com/kunduaritra/Expense-Tracker/internal/schedule"
)

type ReminderHandler struct {
	Ledger *ledger.Service
}

func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	var draft models.ReminderDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	rem, err := h.Ledger.AddReminder(c.UserContext(), key, draft)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(rem)
}

func (h *ReminderHandler) List(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	now := time.Now()
	type reminderView struct {
		models.Reminder
		Status schedule.Status `json:"status"`
	}
	views := make([]reminderView, 0, len(snap.Reminders))
	for _, r := range snap.Reminders {
		views = append(views, reminderView{
			Reminder: r,
			Status:   schedule.StatusOf(r.DueDate, now),
		})
	}
	return c.JSON(fiber.Map{"reminders": views})
}

// Upcoming lists the next few occurrences of one reminder.
func (h *ReminderHandler) Upcoming(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	snap, err := h.Ledger.Snapshot(c.UserContext(), key)
	if err != nil {
		return toHTTPError(err)
	}

	id := c.Params("id")
	var rem models.Reminder
	found := false
	for _, r := range snap.Reminders {
		if r.ID == id {
			rem, found = r, true
			break
		}
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "reminder not found")
	}

	occ, err := schedule.NextOccurrences(rem, time.Now(), 5)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dates := make([]string, 0, len(occ))
	for _, t := range occ {
		dates = append(dates, t.Format(models.DateLayout))
	}
	return c.JSON(fiber.Map{"reminderId": id, "upcoming": dates})
}

func (h *ReminderHandler) Toggle(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.ToggleReminder(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	key, err := userKey(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.RemoveReminder(c.UserContext(), key, c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
