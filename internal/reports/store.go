package reports

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("report not found")

// Store keeps rendered PDFs in memory behind random download tokens.
// Entries disappear after their TTL; Get lazily evicts the expired.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	data     []byte
	filename string
	expires  time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Put registers a rendered document and returns its download token
// with the expiry time.
func (s *Store) Put(data []byte, filename string) (string, time.Time) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	expires := s.now().Add(s.ttl)
	s.entries[token] = entry{data: data, filename: filename, expires: expires}
	return token, expires
}

// Get resolves a token to the document bytes and suggested filename.
// Expired or unknown tokens return ErrNotFound.
func (s *Store) Get(token string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok || s.now().After(e.expires) {
		delete(s.entries, token)
		return nil, "", ErrNotFound
	}
	return e.data, e.filename, nil
}

func (s *Store) sweepLocked() {
	now := s.now()
	for token, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, token)
		}
	}
}
