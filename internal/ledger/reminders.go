package ledger

import (
	"context"
	"fmt"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func (s *Service) AddReminder(ctx context.Context, userKey string, d models.ReminderDraft) (models.Reminder, error) {
	if err := d.Validate(); err != nil {
		return models.Reminder{}, err
	}
	if d.Repeat == "" {
		d.Repeat = models.RepeatMonthly
	}

	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return models.Reminder{}, err
	}

	saved, err := s.gw.SaveReminder(ctx, userKey, d)
	if err != nil {
		return models.Reminder{}, err
	}
	return saved, s.reloadReminders(ctx, st, userKey)
}

// ToggleReminder flips isActive and changes no other field, so a double
// toggle restores the original record.
func (s *Service) ToggleReminder(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	rem, ok := findReminder(st.reminders, id)
	if !ok {
		return fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	if err := s.gw.UpdateReminder(ctx, userKey, id, map[string]any{"isActive": !rem.IsActive}); err != nil {
		return err
	}
	return s.reloadReminders(ctx, st, userKey)
}

func (s *Service) RemoveReminder(ctx context.Context, userKey, id string) error {
	st := s.state(userKey)
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := s.ensureLoaded(ctx, st, userKey); err != nil {
		return err
	}

	if err := s.gw.DeleteReminder(ctx, userKey, id); err != nil {
		return err
	}
	return s.reloadReminders(ctx, st, userKey)
}

func findReminder(reminders []models.Reminder, id string) (models.Reminder, bool) {
	for _, r := range reminders {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reminder{}, false
}
