package ledger

import (
	"context"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

// Gateway is the persistence contract the coordinator depends on. The
// production implementation is *firebase.Store; tests use an in-memory
// fake. Every write is followed by a full collection reload rather than
// an in-place patch of local state, so an alternative implementation
// could switch to optimistic patching without touching call sites.
type Gateway interface {
	SaveTransaction(ctx context.Context, userKey string, d models.TransactionDraft) (models.Transaction, error)
	Transactions(ctx context.Context, userKey string) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userKey, id string, patch map[string]any) error
	DeleteTransaction(ctx context.Context, userKey, id string) error

	SaveGoal(ctx context.Context, userKey string, d models.GoalDraft) (models.Goal, error)
	Goals(ctx context.Context, userKey string) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, userKey, id string, patch map[string]any) error
	DeleteGoal(ctx context.Context, userKey, id string) error

	SaveAccount(ctx context.Context, userKey string, d models.AccountDraft) (models.Account, error)
	Accounts(ctx context.Context, userKey string) ([]models.Account, error)
	UpdateAccount(ctx context.Context, userKey, id string, patch map[string]any) error
	DeleteAccount(ctx context.Context, userKey, id string) error

	SaveCard(ctx context.Context, userKey string, d models.CardDraft) (models.CreditCard, error)
	Cards(ctx context.Context, userKey string) ([]models.CreditCard, error)
	UpdateCard(ctx context.Context, userKey, id string, patch map[string]any) error
	DeleteCard(ctx context.Context, userKey, id string) error

	SaveReminder(ctx context.Context, userKey string, d models.ReminderDraft) (models.Reminder, error)
	Reminders(ctx context.Context, userKey string) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, userKey, id string, patch map[string]any) error
	DeleteReminder(ctx context.Context, userKey, id string) error

	Budget(ctx context.Context, userKey, month string) (models.Budget, bool, error)
	SaveBudget(ctx context.Context, userKey, month string, b models.Budget) error
}
