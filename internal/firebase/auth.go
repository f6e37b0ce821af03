package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// AuthError is a rejection from the identity provider, carrying its
// message code (EMAIL_EXISTS, INVALID_PASSWORD, ...).
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth: %s", e.Message)
}

// AuthClient talks to the external identity provider. The rest of the
// app only ever consumes the resulting email as its persistence key.
type AuthClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewAuthClient(apiKey string) *AuthClient {
	return &AuthClient{
		apiKey:  apiKey,
		baseURL: identityToolkitURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Session is the provider-issued identity for one signed-in user.
type Session struct {
	Email       string `json:"email"`
	IDToken     string `json:"idToken"`
	UID         string `json:"localId"`
	DisplayName string `json:"displayName,omitempty"`
}

// Profile is the stored user record returned by lookup.
type Profile struct {
	Email         string `json:"email"`
	DisplayName   string `json:"displayName,omitempty"`
	UID           string `json:"localId"`
	CreatedAt     string `json:"createdAt,omitempty"`
	LastLoginAt   string `json:"lastLoginAt,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

func (c *AuthClient) SignUp(ctx context.Context, email, password, name string) (Session, error) {
	var out Session
	err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return Session{}, err
	}

	if name != "" {
		if err := c.UpdateProfile(ctx, out.IDToken, name); err != nil {
			return Session{}, err
		}
		out.DisplayName = name
	}
	return out, nil
}

func (c *AuthClient) SignIn(ctx context.Context, email, password string) (Session, error) {
	var out Session
	err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return Session{}, err
	}
	return out, nil
}

func (c *AuthClient) UpdateProfile(ctx context.Context, idToken, displayName string) error {
	return c.post(ctx, "accounts:update", map[string]any{
		"idToken":           idToken,
		"displayName":       displayName,
		"returnSecureToken": true,
	}, nil)
}

func (c *AuthClient) UserInfo(ctx context.Context, idToken string) (Profile, error) {
	var out struct {
		Users []Profile `json:"users"`
	}
	err := c.post(ctx, "accounts:lookup", map[string]any{"idToken": idToken}, &out)
	if err != nil {
		return Profile{}, err
	}
	if len(out.Users) == 0 {
		return Profile{}, &AuthError{Status: http.StatusNotFound, Message: "USER_NOT_FOUND"}
	}
	return out.Users[0], nil
}

func (c *AuthClient) post(ctx context.Context, endpoint string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := c.baseURL + "/" + endpoint + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(raw, &failure)
		msg := failure.Error.Message
		if msg == "" {
			msg = res.Status
		}
		return &AuthError{Status: res.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
