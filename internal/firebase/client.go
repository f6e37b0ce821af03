// Package firebase implements the two external collaborators: the
// per-user JSON document store (Realtime-Database-style REST tree) and
// the identity-toolkit authentication API.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// StatusError is a non-2xx response from the remote store.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("firebase: status %d: %s", e.Status, e.Body)
}

// SanitizeKey maps a user email to a store path segment. The store
// forbids . # $ [ ] in path segments.
func SanitizeKey(email string) string {
	return strings.NewReplacer(".", "_", "#", "_", "$", "_", "[", "_", "]", "_").Replace(email)
}

// Store is the persistence gateway: per-entity CRUD over the remote
// JSON tree rooted at /expense/<userKey>.
type Store struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
	now     func() time.Time
}

func NewStore(baseURL string, log zerolog.Logger) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		log:     log,
		now:     time.Now,
	}
}

func (s *Store) url(userKey string, parts ...string) string {
	p := s.baseURL + "/expense/" + SanitizeKey(userKey)
	for _, part := range parts {
		p += "/" + part
	}
	return p + ".json"
}

// do issues one JSON request. A JSON "null" response body leaves out
// untouched, which is how the store signals an absent node.
func (s *Store) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		s.log.Error().Int("status", res.StatusCode).Str("url", url).Msg("store request failed")
		return &StatusError{Status: res.StatusCode, Body: string(raw)}
	}

	if out == nil || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, out)
}
