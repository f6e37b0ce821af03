// Package ledger keeps per-user in-memory mirrors of the remote
// collections and coordinates mutations so that cross-entity invariants
// hold after every operation. Local state only ever changes through a
// full reload after a successful write; a failed write leaves it stale,
// never half-applied.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	gw              Gateway
	log             zerolog.Logger
	reverseOnDelete bool

	mu    sync.Mutex
	users map[string]*userState
}

// userState mirrors one user's remote collections. Its mutex serializes
// all mutations for that user, which closes the read-modify-write race
// on account balances under concurrent calls.
type userState struct {
	mu     sync.Mutex
	loaded bool

	transactions []models.Transaction
	goals        []models.Goal
	accounts     []models.Account
	cards        []models.CreditCard
	reminders    []models.Reminder
	budgets      map[string]decimal.Decimal
}

type Option func(*Service)

// WithReverseBalanceOnDelete makes RemoveTransaction undo the linked
// account's balance effect. The reference behavior leaves the balance
// untouched on delete, so this is off by default.
func WithReverseBalanceOnDelete() Option {
	return func(s *Service) { s.reverseOnDelete = true }
}

func NewService(gw Gateway, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		gw:    gw,
		log:   log,
		users: make(map[string]*userState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) state(userKey string) *userState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.users[userKey]
	if !ok {
		st = &userState{budgets: make(map[string]decimal.Decimal)}
		s.users[userKey] = st
	}
	return st
}

// LoadAll refreshes every collection for the user. The five collection
// reads are independent and run concurrently, as at session start.
func (s *Service) LoadAll(ctx context.Context, userKey string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	return s.loadAllLocked(ctx, st, userKey)
}

func (s *Service) loadAllLocked(ctx context.Context, st *userState, userKey string) error {
	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)
	go func() { defer wg.Done(); errs[0] = s.reloadTransactions(ctx, st, userKey) }()
	go func() { defer wg.Done(); errs[1] = s.reloadGoals(ctx, st, userKey) }()
	go func() { defer wg.Done(); errs[2] = s.reloadAccounts(ctx, st, userKey) }()
	go func() { defer wg.Done(); errs[3] = s.reloadCards(ctx, st, userKey) }()
	go func() { defer wg.Done(); errs[4] = s.reloadReminders(ctx, st, userKey) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	st.loaded = true
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context, st *userState, userKey string) error {
	if st.loaded {
		return nil
	}
	return s.loadAllLocked(ctx, st, userKey)
}

// The reload helpers are the only writers of local collection state.
// Slice replacement is all-or-nothing: a gateway failure keeps the
// previous snapshot.

func (s *Service) reloadTransactions(ctx context.Context, st *userState, userKey string) error {
	txns, err := s.gw.Transactions(ctx, userKey)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	st.transactions = txns
	return nil
}

func (s *Service) reloadGoals(ctx context.Context, st *userState, userKey string) error {
	goals, err := s.gw.Goals(ctx, userKey)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	st.goals = goals
	return nil
}

func (s *Service) reloadAccounts(ctx context.Context, st *userState, userKey string) error {
	accounts, err := s.gw.Accounts(ctx, userKey)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	st.accounts = accounts
	return nil
}

func (s *Service) reloadCards(ctx context.Context, st *userState, userKey string) error {
	cards, err := s.gw.Cards(ctx, userKey)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}
	st.cards = cards
	return nil
}

func (s *Service) reloadReminders(ctx context.Context, st *userState, userKey string) error {
	reminders, err := s.gw.Reminders(ctx, userKey)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}
	st.reminders = reminders
	return nil
}

// Snapshot returns a copy of the user's collections for the analytics
// layer, loading them first if this user has no local state yet.
func (s *Service) Snapshot(ctx context.Context, userKey string) (models.Snapshot, error) {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return models.Snapshot{}, err
	}

	snap := models.Snapshot{
		Transactions: append([]models.Transaction(nil), st.transactions...),
		Goals:        make([]models.Goal, len(st.goals)),
		Accounts:     append([]models.Account(nil), st.accounts...),
		Cards:        append([]models.CreditCard(nil), st.cards...),
		Reminders:    append([]models.Reminder(nil), st.reminders...),
	}
	for i, g := range st.goals {
		g.Contributions = append([]models.Contribution(nil), g.Contributions...)
		snap.Goals[i] = g
	}
	return snap, nil
}

/* transactions */

// AddTransaction persists the draft, reloads the collection and, when
// the draft is linked to an account, applies the signed effect to that
// account's balance exactly once.
func (s *Service) AddTransaction(ctx context.Context, userKey string, d models.TransactionDraft) (models.Transaction, error) {
	if err := d.Validate(); err != nil {
		return models.Transaction{}, err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return models.Transaction{}, err
	}

	saved, err := s.gw.SaveTransaction(ctx, userKey, d)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := s.reloadTransactions(ctx, st, userKey); err != nil {
		return models.Transaction{}, err
	}

	if d.AccountID != "" {
		if acc, ok := findAccount(st.accounts, d.AccountID); ok {
			delta := saved.SignedEffect()
			if err := s.writeBalance(ctx, st, userKey, acc.ID, acc.Balance.Add(delta)); err != nil {
				return models.Transaction{}, err
			}
		}
	}
	return saved, nil
}

// UpdateTransaction reconciles account balances against the old
// (accountId, amount, type) triple: the old effect is reversed, then
// the new effect is applied, so every affected balance ends up as if
// the transaction had always had its new values.
func (s *Service) UpdateTransaction(ctx context.Context, userKey, id string, u models.TransactionUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	old, ok := findTransaction(st.transactions, id)
	if !ok {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}

	newType := old.Type
	if u.Type != nil {
		newType = *u.Type
	}
	newCategory := old.Category
	if u.Category != nil {
		newCategory = *u.Category
	}
	if !models.CategoryForType(newType, newCategory) {
		return fmt.Errorf("%w: unknown %s category %q", models.ErrValidation, newType, newCategory)
	}

	if err := s.gw.UpdateTransaction(ctx, userKey, id, u.Patch()); err != nil {
		return err
	}
	if err := s.reloadTransactions(ctx, st, userKey); err != nil {
		return err
	}

	oldAccID := old.AccountID
	newAccID := oldAccID
	if u.AccountID != nil {
		newAccID = *u.AccountID
	}
	if oldAccID == "" && newAccID == "" {
		return nil
	}

	newAmount := old.Amount
	if u.Amount != nil {
		newAmount = *u.Amount
	}
	oldDelta := old.SignedEffect()
	newDelta := newAmount
	if newType == models.TypeExpense {
		newDelta = newAmount.Neg()
	}

	// Balances are taken from the pre-mutation account snapshot; the
	// final write per account wins, matching the original semantics.
	if oldAccID != "" {
		if acc, ok := findAccount(st.accounts, oldAccID); ok {
			if err := s.writeBalanceNoReload(ctx, userKey, acc.ID, acc.Balance.Sub(oldDelta)); err != nil {
				return err
			}
		}
	}
	if newAccID != "" && newAccID != oldAccID {
		if acc, ok := findAccount(st.accounts, newAccID); ok {
			if err := s.writeBalanceNoReload(ctx, userKey, acc.ID, acc.Balance.Add(newDelta)); err != nil {
				return err
			}
		}
	} else if newAccID != "" && newAccID == oldAccID && !oldDelta.Equal(newDelta) {
		if acc, ok := findAccount(st.accounts, newAccID); ok {
			if err := s.writeBalanceNoReload(ctx, userKey, acc.ID, acc.Balance.Add(newDelta.Sub(oldDelta))); err != nil {
				return err
			}
		}
	}
	return s.reloadAccounts(ctx, st, userKey)
}

// RemoveTransaction deletes the record and reloads. The linked account
// balance is reversed only when the service was built with
// WithReverseBalanceOnDelete; the reference behavior leaves it as is.
func (s *Service) RemoveTransaction(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	old, found := findTransaction(st.transactions, id)

	if err := s.gw.DeleteTransaction(ctx, userKey, id); err != nil {
		return err
	}
	if err := s.reloadTransactions(ctx, st, userKey); err != nil {
		return err
	}

	if s.reverseOnDelete && found && old.AccountID != "" {
		if acc, ok := findAccount(st.accounts, old.AccountID); ok {
			if err := s.writeBalance(ctx, st, userKey, acc.ID, acc.Balance.Sub(old.SignedEffect())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) writeBalanceNoReload(ctx context.Context, userKey, accountID string, balance decimal.Decimal) error {
	return s.gw.UpdateAccount(ctx, userKey, accountID, map[string]any{"balance": balance})
}

func (s *Service) writeBalance(ctx context.Context, st *userState, userKey, accountID string, balance decimal.Decimal) error {
	if err := s.writeBalanceNoReload(ctx, userKey, accountID, balance); err != nil {
		return err
	}
	return s.reloadAccounts(ctx, st, userKey)
}

func findTransaction(txns []models.Transaction, id string) (models.Transaction, bool) {
	for _, t := range txns {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

func findAccount(accounts []models.Account, id string) (models.Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Account{}, false
}
