package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kunduaritra/Expense-Tracker/internal/firebase"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func TestToHTTPErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want int
	}{
		{"validation", fmt.Errorf("%w: amount must be positive", models.ErrValidation), fiber.StatusBadRequest},
		{"not found", fmt.Errorf("transaction x: %w", ledger.ErrNotFound), fiber.StatusNotFound},
		{"store failure", &firebase.StatusError{Status: 503, Body: "unavailable"}, fiber.StatusBadGateway},
		{"wrapped store failure", fmt.Errorf("load: %w", &firebase.StatusError{Status: 500}), fiber.StatusBadGateway},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		var fe *fiber.Error
		if !errors.As(toHTTPError(tc.in), &fe) {
			t.Fatalf("%s: not a fiber error", tc.name)
		}
		if fe.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, fe.Code, tc.want)
		}
	}
}

func TestToHTTPErrorHidesInternals(t *testing.T) {
	var fe *fiber.Error
	if !errors.As(toHTTPError(errors.New("pg: connection refused")), &fe) {
		t.Fatal("not a fiber error")
	}
	if fe.Message != "internal error" {
		t.Errorf("message = %q, want generic", fe.Message)
	}
}

func TestAuthHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		msg  string
		want int
	}{
		{"INVALID_PASSWORD", fiber.StatusUnauthorized},
		{"EMAIL_NOT_FOUND", fiber.StatusUnauthorized},
		{"INVALID_LOGIN_CREDENTIALS", fiber.StatusUnauthorized},
		{"EMAIL_EXISTS", fiber.StatusConflict},
		{"WEAK_PASSWORD : Password should be at least 6 characters", fiber.StatusBadRequest},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", fiber.StatusBadGateway},
	}
	for _, tc := range cases {
		var fe *fiber.Error
		if !errors.As(authHTTPError(&firebase.AuthError{Status: 400, Message: tc.msg}), &fe) {
			t.Fatalf("%s: not a fiber error", tc.msg)
		}
		if fe.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.msg, fe.Code, tc.want)
		}
	}
}

func TestAuthHTTPErrorHidesWhichCredentialFailed(t *testing.T) {
	a := authHTTPError(&firebase.AuthError{Status: 400, Message: "EMAIL_NOT_FOUND"})
	b := authHTTPError(&firebase.AuthError{Status: 400, Message: "INVALID_PASSWORD"})
	var fa, fb *fiber.Error
	errors.As(a, &fa)
	errors.As(b, &fb)
	if fa.Message != fb.Message {
		t.Errorf("credential errors distinguishable: %q vs %q", fa.Message, fb.Message)
	}
}
