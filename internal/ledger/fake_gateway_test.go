package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

var errGatewayDown = errors.New("gateway down")

// fakeGateway is an in-memory stand-in for the remote store. Patches
// go through a JSON merge so the fake honors the same partial-update
// contract as the real store.
type fakeGateway struct {
	mu     sync.Mutex
	nextID int

	failWrites bool

	transactions []models.Transaction
	goals        []models.Goal
	accounts     []models.Account
	cards        []models.CreditCard
	reminders    []models.Reminder
	budgets      map[string]models.Budget
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{budgets: make(map[string]models.Budget)}
}

func (g *fakeGateway) id(prefix string) string {
	g.nextID++
	return fmt.Sprintf("%s%03d", prefix, g.nextID)
}

func mergePatch[T any](rec *T, patch map[string]any) {
	base, _ := json.Marshal(rec)
	var m map[string]any
	_ = json.Unmarshal(base, &m)

	raw, _ := json.Marshal(patch)
	var pm map[string]any
	_ = json.Unmarshal(raw, &pm)

	for k, v := range pm {
		m[k] = v
	}
	merged, _ := json.Marshal(m)
	_ = json.Unmarshal(merged, rec)
}

func (g *fakeGateway) SaveTransaction(_ context.Context, _ string, d models.TransactionDraft) (models.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return models.Transaction{}, errGatewayDown
	}
	rec := models.Transaction{
		ID:            g.id("txn"),
		Type:          d.Type,
		Amount:        d.Amount,
		Category:      d.Category,
		Date:          d.Date,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		AccountID:     d.AccountID,
		CardID:        d.CardID,
	}
	g.transactions = append(g.transactions, rec)
	return rec, nil
}

func (g *fakeGateway) Transactions(_ context.Context, _ string) ([]models.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Transaction(nil), g.transactions...), nil
}

func (g *fakeGateway) UpdateTransaction(_ context.Context, _, id string, patch map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.transactions {
		if g.transactions[i].ID == id {
			mergePatch(&g.transactions[i], patch)
			g.transactions[i].ID = id
			return nil
		}
	}
	return nil
}

func (g *fakeGateway) DeleteTransaction(_ context.Context, _, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.transactions {
		if g.transactions[i].ID == id {
			g.transactions = append(g.transactions[:i], g.transactions[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) SaveGoal(_ context.Context, _ string, d models.GoalDraft) (models.Goal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return models.Goal{}, errGatewayDown
	}
	rec := models.Goal{
		ID:            g.id("goal"),
		Title:         d.Title,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Category:      d.Category,
		Contributions: []models.Contribution{},
	}
	g.goals = append(g.goals, rec)
	return rec, nil
}

func (g *fakeGateway) Goals(_ context.Context, _ string) ([]models.Goal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Goal, len(g.goals))
	for i, goal := range g.goals {
		goal.Contributions = append([]models.Contribution(nil), goal.Contributions...)
		out[i] = goal
	}
	return out, nil
}

func (g *fakeGateway) UpdateGoal(_ context.Context, _, id string, patch map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.goals {
		if g.goals[i].ID == id {
			mergePatch(&g.goals[i], patch)
			g.goals[i].ID = id
			return nil
		}
	}
	return nil
}

func (g *fakeGateway) DeleteGoal(_ context.Context, _, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.goals {
		if g.goals[i].ID == id {
			g.goals = append(g.goals[:i], g.goals[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) SaveAccount(_ context.Context, _ string, d models.AccountDraft) (models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return models.Account{}, errGatewayDown
	}
	rec := models.Account{
		ID:            g.id("acc"),
		BankName:      d.BankName,
		AccountHolder: d.AccountHolder,
		AccountNumber: d.AccountNumber,
		IFSC:          d.IFSC,
		Branch:        d.Branch,
		Type:          d.Type,
		Balance:       d.Balance,
		Color:         d.Color,
	}
	g.accounts = append(g.accounts, rec)
	return rec, nil
}

func (g *fakeGateway) Accounts(_ context.Context, _ string) ([]models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Account(nil), g.accounts...), nil
}

func (g *fakeGateway) UpdateAccount(_ context.Context, _, id string, patch map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.accounts {
		if g.accounts[i].ID == id {
			mergePatch(&g.accounts[i], patch)
			g.accounts[i].ID = id
			return nil
		}
	}
	return nil
}

func (g *fakeGateway) DeleteAccount(_ context.Context, _, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.accounts {
		if g.accounts[i].ID == id {
			g.accounts = append(g.accounts[:i], g.accounts[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) SaveCard(_ context.Context, _ string, d models.CardDraft) (models.CreditCard, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return models.CreditCard{}, errGatewayDown
	}
	rec := models.CreditCard{
		ID:    g.id("card"),
		Name:  d.Name,
		Last4: d.Last4,
		Color: d.Color,
	}
	g.cards = append(g.cards, rec)
	return rec, nil
}

func (g *fakeGateway) Cards(_ context.Context, _ string) ([]models.CreditCard, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.CreditCard(nil), g.cards...), nil
}

func (g *fakeGateway) UpdateCard(_ context.Context, _, id string, patch map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.cards {
		if g.cards[i].ID == id {
			mergePatch(&g.cards[i], patch)
			g.cards[i].ID = id
			return nil
		}
	}
	return nil
}

func (g *fakeGateway) DeleteCard(_ context.Context, _, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.cards {
		if g.cards[i].ID == id {
			g.cards = append(g.cards[:i], g.cards[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) SaveReminder(_ context.Context, _ string, d models.ReminderDraft) (models.Reminder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return models.Reminder{}, errGatewayDown
	}
	rec := models.Reminder{
		ID:       g.id("rem"),
		Title:    d.Title,
		Category: d.Category,
		Amount:   d.Amount,
		DueDate:  d.DueDate,
		Repeat:   d.Repeat,
		IsActive: true,
		Notes:    d.Notes,
	}
	g.reminders = append(g.reminders, rec)
	return rec, nil
}

func (g *fakeGateway) Reminders(_ context.Context, _ string) ([]models.Reminder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Reminder(nil), g.reminders...), nil
}

func (g *fakeGateway) UpdateReminder(_ context.Context, _, id string, patch map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.reminders {
		if g.reminders[i].ID == id {
			mergePatch(&g.reminders[i], patch)
			g.reminders[i].ID = id
			return nil
		}
	}
	return nil
}

func (g *fakeGateway) DeleteReminder(_ context.Context, _, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	for i := range g.reminders {
		if g.reminders[i].ID == id {
			g.reminders = append(g.reminders[:i], g.reminders[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) Budget(_ context.Context, _, month string) (models.Budget, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.budgets[month]
	return b, ok, nil
}

func (g *fakeGateway) SaveBudget(_ context.Context, _, month string, b models.Budget) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failWrites {
		return errGatewayDown
	}
	g.budgets[month] = b
	return nil
}
