package firebase

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

// Transactions and goals carry client-generated millisecond-timestamp
// ids (the store does not echo a key back on PUT); accounts, cards and
// reminders are POSTed and use the store-assigned key.

type pushResponse struct {
	Name string `json:"name"`
}

func (s *Store) timestampID() string {
	return strconv.FormatInt(s.now().UnixMilli(), 10)
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// listCollection reads a whole collection node. The store returns an
// unordered object keyed by id; sorting by key keeps listings
// deterministic (push and timestamp keys are chronological).
func listCollection[T any](ctx context.Context, s *Store, userKey, name string, setID func(*T, string)) ([]T, error) {
	var raw map[string]T
	if err := s.do(ctx, http.MethodGet, s.url(userKey, name), nil, &raw); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(raw))
	for _, k := range keys {
		rec := raw[k]
		setID(&rec, k)
		out = append(out, rec)
	}
	return out, nil
}

/* transactions */

func (s *Store) SaveTransaction(ctx context.Context, userKey string, d models.TransactionDraft) (models.Transaction, error) {
	rec := models.Transaction{
		Type:          d.Type,
		Amount:        d.Amount,
		Category:      d.Category,
		Date:          d.Date,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		AccountID:     d.AccountID,
		CardID:        d.CardID,
		CreatedAt:     s.stamp(),
	}
	id := s.timestampID()
	if err := s.do(ctx, http.MethodPut, s.url(userKey, "transactions", id), rec, nil); err != nil {
		return models.Transaction{}, err
	}
	rec.ID = id
	return rec, nil
}

func (s *Store) Transactions(ctx context.Context, userKey string) ([]models.Transaction, error) {
	return listCollection(ctx, s, userKey, "transactions", func(t *models.Transaction, id string) { t.ID = id })
}

func (s *Store) UpdateTransaction(ctx context.Context, userKey, id string, patch map[string]any) error {
	return s.do(ctx, http.MethodPatch, s.url(userKey, "transactions", id), patch, nil)
}

func (s *Store) DeleteTransaction(ctx context.Context, userKey, id string) error {
	return s.do(ctx, http.MethodDelete, s.url(userKey, "transactions", id), nil, nil)
}

/* goals */

func (s *Store) SaveGoal(ctx context.Context, userKey string, d models.GoalDraft) (models.Goal, error) {
	rec := models.Goal{
		Title:         d.Title,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Category:      d.Category,
		Contributions: []models.Contribution{},
		CreatedAt:     s.stamp(),
	}
	id := s.timestampID()
	if err := s.do(ctx, http.MethodPut, s.url(userKey, "goals", id), rec, nil); err != nil {
		return models.Goal{}, err
	}
	rec.ID = id
	return rec, nil
}

func (s *Store) Goals(ctx context.Context, userKey string) ([]models.Goal, error) {
	return listCollection(ctx, s, userKey, "goals", func(g *models.Goal, id string) { g.ID = id })
}

func (s *Store) UpdateGoal(ctx context.Context, userKey, id string, patch map[string]any) error {
	return s.do(ctx, http.MethodPatch, s.url(userKey, "goals", id), patch, nil)
}

func (s *Store) DeleteGoal(ctx context.Context, userKey, id string) error {
	return s.do(ctx, http.MethodDelete, s.url(userKey, "goals", id), nil, nil)
}

/* accounts */

func (s *Store) SaveAccount(ctx context.Context, userKey string, d models.AccountDraft) (models.Account, error) {
	rec := models.Account{
		BankName:      d.BankName,
		AccountHolder: d.AccountHolder,
		AccountNumber: d.AccountNumber,
		IFSC:          d.IFSC,
		Branch:        d.Branch,
		Type:          d.Type,
		Balance:       d.Balance,
		Color:         d.Color,
		CreatedAt:     s.stamp(),
	}
	var resp pushResponse
	if err := s.do(ctx, http.MethodPost, s.url(userKey, "accounts"), rec, &resp); err != nil {
		return models.Account{}, err
	}
	rec.ID = resp.Name
	return rec, nil
}

func (s *Store) Accounts(ctx context.Context, userKey string) ([]models.Account, error) {
	return listCollection(ctx, s, userKey, "accounts", func(a *models.Account, id string) { a.ID = id })
}

func (s *Store) UpdateAccount(ctx context.Context, userKey, id string, patch map[string]any) error {
	return s.do(ctx, http.MethodPatch, s.url(userKey, "accounts", id), patch, nil)
}

func (s *Store) DeleteAccount(ctx context.Context, userKey, id string) error {
	return s.do(ctx, http.MethodDelete, s.url(userKey, "accounts", id), nil, nil)
}

/* cards */

func (s *Store) SaveCard(ctx context.Context, userKey string, d models.CardDraft) (models.CreditCard, error) {
	rec := models.CreditCard{
		Name:      d.Name,
		Last4:     d.Last4,
		Color:     d.Color,
		Settled:   false,
		CreatedAt: s.stamp(),
	}
	var resp pushResponse
	if err := s.do(ctx, http.MethodPost, s.url(userKey, "cards"), rec, &resp); err != nil {
		return models.CreditCard{}, err
	}
	rec.ID = resp.Name
	return rec, nil
}

func (s *Store) Cards(ctx context.Context, userKey string) ([]models.CreditCard, error) {
	return listCollection(ctx, s, userKey, "cards", func(c *models.CreditCard, id string) { c.ID = id })
}

func (s *Store) UpdateCard(ctx context.Context, userKey, id string, patch map[string]any) error {
	return s.do(ctx, http.MethodPatch, s.url(userKey, "cards", id), patch, nil)
}

func (s *Store) DeleteCard(ctx context.Context, userKey, id string) error {
	return s.do(ctx, http.MethodDelete, s.url(userKey, "cards", id), nil, nil)
}

/* reminders */

func (s *Store) SaveReminder(ctx context.Context, userKey string, d models.ReminderDraft) (models.Reminder, error) {
	rec := models.Reminder{
		Title:     d.Title,
		Category:  d.Category,
		Amount:    d.Amount,
		DueDate:   d.DueDate,
		Repeat:    d.Repeat,
		IsActive:  true,
		Notes:     d.Notes,
		CreatedAt: s.stamp(),
	}
	var resp pushResponse
	if err := s.do(ctx, http.MethodPost, s.url(userKey, "reminders"), rec, &resp); err != nil {
		return models.Reminder{}, err
	}
	rec.ID = resp.Name
	return rec, nil
}

func (s *Store) Reminders(ctx context.Context, userKey string) ([]models.Reminder, error) {
	return listCollection(ctx, s, userKey, "reminders", func(r *models.Reminder, id string) { r.ID = id })
}

func (s *Store) UpdateReminder(ctx context.Context, userKey, id string, patch map[string]any) error {
	return s.do(ctx, http.MethodPatch, s.url(userKey, "reminders", id), patch, nil)
}

func (s *Store) DeleteReminder(ctx context.Context, userKey, id string) error {
	return s.do(ctx, http.MethodDelete, s.url(userKey, "reminders", id), nil, nil)
}

/* budget */

// Budget reads the month's budget; ok is false when the month has no
// saved budget.
func (s *Store) Budget(ctx context.Context, userKey, month string) (models.Budget, bool, error) {
	var b *models.Budget
	if err := s.do(ctx, http.MethodGet, s.url(userKey, "budgets", month), nil, &b); err != nil {
		return models.Budget{}, false, err
	}
	if b == nil {
		return models.Budget{}, false, nil
	}
	return *b, true, nil
}

func (s *Store) SaveBudget(ctx context.Context, userKey, month string, b models.Budget) error {
	return s.do(ctx, http.MethodPut, s.url(userKey, "budgets", month), b, nil)
}
