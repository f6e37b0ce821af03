package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/auth"
	"github.com/kunduaritra/Expense-Tracker/internal/firebase"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
)

type AuthHandler struct {
	Accounts *firebase.AuthClient
	Ledger   *ledger.Service
	Secret   []byte
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	session, err := h.Accounts.SignUp(c.UserContext(), body.Email, body.Password, body.Name)
	if err != nil {
		return toHTTPError(err)
	}

	token, err := auth.GenerateToken(h.Secret, session.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}
	return c.JSON(authResponse{Token: token, Email: session.Email, Name: body.Name})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	session, err := h.Accounts.SignIn(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return toHTTPError(err)
	}

	token, err := auth.GenerateToken(h.Secret, session.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	// Warm the user's collections so the first authenticated request
	// doesn't pay the full load. A failed warm load is not a login
	// failure; later reads retry it.
	_ = h.Ledger.LoadAll(c.UserContext(), firebase.SanitizeKey(session.Email))

	return c.JSON(authResponse{Token: token, Email: session.Email, Name: session.DisplayName})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	email, err := auth.UserEmail(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"email": email})
}

// authHTTPError keeps credential failures indistinguishable (401,
// generic message) while surfacing actionable signup errors.
func authHTTPError(err *firebase.AuthError) error {
	msg := strings.ToUpper(err.Message)
	switch {
	case strings.Contains(msg, "EMAIL_NOT_FOUND"),
		strings.Contains(msg, "INVALID_PASSWORD"),
		strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS"):
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	case strings.Contains(msg, "EMAIL_EXISTS"):
		return fiber.NewError(fiber.StatusConflict, "email already registered")
	case strings.Contains(msg, "WEAK_PASSWORD"):
		return fiber.NewError(fiber.StatusBadRequest, "password too weak")
	default:
		return fiber.NewError(fiber.StatusBadGateway, "auth provider error")
	}
}
