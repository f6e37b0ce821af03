package ledger

import (
	"context"
	"fmt"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func (s *Service) AddCard(ctx context.Context, userKey string, d models.CardDraft) (models.CreditCard, error) {
	if err := d.Validate(); err != nil {
		return models.CreditCard{}, err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return models.CreditCard{}, err
	}

	saved, err := s.gw.SaveCard(ctx, userKey, d)
	if err != nil {
		return models.CreditCard{}, err
	}
	return saved, s.reloadCards(ctx, st, userKey)
}

// SettleCard flips the settled flag and nothing else; the outstanding
// amount stays derived from the card's transactions.
func (s *Service) SettleCard(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if _, ok := findCard(st.cards, id); !ok {
		return fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	if err := s.gw.UpdateCard(ctx, userKey, id, map[string]any{"settled": true}); err != nil {
		return err
	}
	return s.reloadCards(ctx, st, userKey)
}

// RemoveCard deletes the card record and leaves its linked transactions
// in place; their outstanding sum just becomes unreachable.
func (s *Service) RemoveCard(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if err := s.gw.DeleteCard(ctx, userKey, id); err != nil {
		return err
	}
	return s.reloadCards(ctx, st, userKey)
}

func findCard(cards []models.CreditCard, id string) (models.CreditCard, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.CreditCard{}, false
}
