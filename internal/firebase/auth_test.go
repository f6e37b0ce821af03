package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAuthClient(t *testing.T, handler http.HandlerFunc) *AuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &AuthClient{
		apiKey:  "test-key",
		baseURL: srv.URL,
		httpc:   &http.Client{Timeout: time.Second},
	}
}

func TestSignInReturnsSession(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts:signInWithPassword" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %s, want test-key", r.URL.Query().Get("key"))
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["returnSecureToken"] != true {
			t.Error("returnSecureToken not set")
		}
		w.Write([]byte(`{"email":"user@example.com","idToken":"tok123","localId":"uid1"}`))
	})

	got, err := c.SignIn(context.Background(), "user@example.com", "secret")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got.Email != "user@example.com" || got.IDToken != "tok123" || got.UID != "uid1" {
		t.Errorf("session = %+v", got)
	}
}

func TestSignUpSetsDisplayName(t *testing.T) {
	var paths []string
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"email":"new@example.com","idToken":"tok456","localId":"uid2"}`))
	})

	got, err := c.SignUp(context.Background(), "new@example.com", "secret", "New User")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if got.DisplayName != "New User" {
		t.Errorf("displayName = %q, want New User", got.DisplayName)
	}
	if len(paths) != 2 || paths[0] != "/accounts:signUp" || paths[1] != "/accounts:update" {
		t.Errorf("calls = %v, want signUp then update", paths)
	}
}

func TestRejectionBecomesAuthError(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	})

	_, err := c.SignIn(context.Background(), "user@example.com", "wrong")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want *AuthError", err)
	}
	if authErr.Message != "INVALID_PASSWORD" {
		t.Errorf("message = %q, want INVALID_PASSWORD", authErr.Message)
	}
}

func TestUserInfoFirstUser(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[{"email":"user@example.com","localId":"uid1","emailVerified":true}]}`))
	})

	got, err := c.UserInfo(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("user info: %v", err)
	}
	if got.Email != "user@example.com" || !got.EmailVerified {
		t.Errorf("profile = %+v", got)
	}
}

func TestUserInfoNoUsers(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[]}`))
	})

	_, err := c.UserInfo(context.Background(), "tok123")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want *AuthError", err)
	}
}
