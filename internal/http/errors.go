// Package http holds the Fiber handlers that expose the ledger,
// analytics, and reporting features over REST.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/auth"
	"github.com/kunduaritra/Expense-Tracker/internal/firebase"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

// toHTTPError maps domain errors onto HTTP statuses. Anything
// unrecognized becomes a 500 with a generic message so internals do
// not leak to clients.
func toHTTPError(err error) error {
	var statusErr *firebase.StatusError
	var authErr *firebase.AuthError

	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &statusErr):
		return fiber.NewError(fiber.StatusBadGateway, "upstream store error")
	case errors.As(err, &authErr):
		return authHTTPError(authErr)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}

// userKey resolves the authenticated email into the key the remote
// store partitions user data by.
func userKey(c *fiber.Ctx) (string, error) {
	email, err := auth.UserEmail(c)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return firebase.SanitizeKey(email), nil
}
