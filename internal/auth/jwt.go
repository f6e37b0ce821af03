// Package auth issues and verifies the session tokens that protect
// the API. Identity itself lives with the external provider; a token
// only carries the verified email.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const localsEmailKey = "user_email"

// GenerateToken signs a 24h session token for the given email.
func GenerateToken(secret []byte, email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Middleware rejects requests without a valid Bearer token and stores
// the token's email in c.Locals for downstream handlers.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing auth token")
		}

		tokenStr := strings.TrimPrefix(h, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid claims")
		}
		email, ok := claims["email"].(string)
		if !ok || email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "email missing")
		}

		c.Locals(localsEmailKey, email)
		return c.Next()
	}
}

// UserEmail returns the authenticated email set by Middleware.
func UserEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals(localsEmailKey).(string)
	if !ok || email == "" {
		return "", errors.New("user not authenticated")
	}
	return email, nil
}
