package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func (s *Service) AddGoal(ctx context.Context, userKey string, d models.GoalDraft) (models.Goal, error) {
	if err := d.Validate(); err != nil {
		return models.Goal{}, err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return models.Goal{}, err
	}

	saved, err := s.gw.SaveGoal(ctx, userKey, d)
	if err != nil {
		return models.Goal{}, err
	}
	return saved, s.reloadGoals(ctx, st, userKey)
}

func (s *Service) UpdateGoal(ctx context.Context, userKey, id string, u models.GoalUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if _, ok := findGoal(st.goals, id); !ok {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	if err := s.gw.UpdateGoal(ctx, userKey, id, u.Patch()); err != nil {
		return err
	}
	return s.reloadGoals(ctx, st, userKey)
}

func (s *Service) RemoveGoal(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if err := s.gw.DeleteGoal(ctx, userKey, id); err != nil {
		return err
	}
	return s.reloadGoals(ctx, st, userKey)
}

// Contribution operations adjust currentAmount by the delta and write
// the ledger and the adjusted total as one persisted update, so the
// invariant currentAmount == opening value + sum(contributions) holds
// after every call.

func (s *Service) AddContribution(ctx context.Context, userKey, goalID string, amount decimal.Decimal, date string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: contribution amount must be positive", models.ErrValidation)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrValidation)
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	goal, ok := findGoal(st.goals, goalID)
	if !ok {
		return fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
	}

	contribs := append(append([]models.Contribution(nil), goal.Contributions...), models.Contribution{
		Amount:    amount,
		Date:      date,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	patch := map[string]any{
		"contributions": contribs,
		"currentAmount": goal.CurrentAmount.Add(amount),
	}
	if err := s.gw.UpdateGoal(ctx, userKey, goalID, patch); err != nil {
		return err
	}
	return s.reloadGoals(ctx, st, userKey)
}

func (s *Service) EditContribution(ctx context.Context, userKey, goalID string, index int, amount decimal.Decimal, date string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: contribution amount must be positive", models.ErrValidation)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrValidation)
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	goal, ok := findGoal(st.goals, goalID)
	if !ok {
		return fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
	}
	if index < 0 || index >= len(goal.Contributions) {
		return fmt.Errorf("contribution %d: %w", index, ErrNotFound)
	}

	contribs := append([]models.Contribution(nil), goal.Contributions...)
	oldAmount := contribs[index].Amount
	contribs[index] = models.Contribution{
		Amount:    amount,
		Date:      date,
		Timestamp: contribs[index].Timestamp,
	}

	patch := map[string]any{
		"contributions": contribs,
		"currentAmount": goal.CurrentAmount.Add(amount.Sub(oldAmount)),
	}
	if err := s.gw.UpdateGoal(ctx, userKey, goalID, patch); err != nil {
		return err
	}
	return s.reloadGoals(ctx, st, userKey)
}

func (s *Service) DeleteContribution(ctx context.Context, userKey, goalID string, index int) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	goal, ok := findGoal(st.goals, goalID)
	if !ok {
		return fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
	}
	if index < 0 || index >= len(goal.Contributions) {
		return fmt.Errorf("contribution %d: %w", index, ErrNotFound)
	}

	contribs := append([]models.Contribution(nil), goal.Contributions...)
	deleted := contribs[index].Amount
	contribs = append(contribs[:index], contribs[index+1:]...)

	patch := map[string]any{
		"contributions": contribs,
		"currentAmount": goal.CurrentAmount.Sub(deleted),
	}
	if err := s.gw.UpdateGoal(ctx, userKey, goalID, patch); err != nil {
		return err
	}
	return s.reloadGoals(ctx, st, userKey)
}

func findGoal(goals []models.Goal, id string) (models.Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}
