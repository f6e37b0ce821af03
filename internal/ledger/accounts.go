package ledger

import (
	"context"
	"fmt"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func (s *Service) AddAccount(ctx context.Context, userKey string, d models.AccountDraft) (models.Account, error) {
	if err := d.Validate(); err != nil {
		return models.Account{}, err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return models.Account{}, err
	}

	saved, err := s.gw.SaveAccount(ctx, userKey, d)
	if err != nil {
		return models.Account{}, err
	}
	return saved, s.reloadAccounts(ctx, st, userKey)
}

func (s *Service) UpdateAccount(ctx context.Context, userKey, id string, u models.AccountUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if _, ok := findAccount(st.accounts, id); !ok {
		return fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if err := s.gw.UpdateAccount(ctx, userKey, id, u.Patch()); err != nil {
		return err
	}
	return s.reloadAccounts(ctx, st, userKey)
}

// RemoveAccount deletes the account record only: transactions that
// referenced it keep their accountId and dangle.
func (s *Service) RemoveAccount(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if err := s.gw.DeleteAccount(ctx, userKey, id); err != nil {
		return err
	}
	return s.reloadAccounts(ctx, st, userKey)
}
