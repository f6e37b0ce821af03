package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

func seedGoal(t *testing.T, svc *ledger.Service) models.Goal {
	t.Helper()
	goal, err := svc.AddGoal(context.Background(), testUser, models.GoalDraft{
		Title:        "Emergency fund",
		TargetAmount: decimal.NewFromInt(100000),
		Deadline:     "2026-03-31",
	})
	if err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	return goal
}

func goalByID(t *testing.T, svc *ledger.Service, id string) models.Goal {
	t.Helper()
	snap, err := svc.Snapshot(context.Background(), testUser)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	for _, g := range snap.Goals {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("goal %s not in snapshot", id)
	return models.Goal{}
}

func TestContributionLifecycleKeepsCurrentAmountConsistent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	goal := seedGoal(t, svc)

	if err := svc.AddContribution(ctx, testUser, goal.ID, decimal.NewFromInt(1000), "2025-06-10"); err != nil {
		t.Fatalf("add contribution: %v", err)
	}
	if err := svc.AddContribution(ctx, testUser, goal.ID, decimal.NewFromInt(2500), "2025-06-20"); err != nil {
		t.Fatalf("add contribution: %v", err)
	}

	g := goalByID(t, svc, goal.ID)
	if len(g.Contributions) != 2 {
		t.Fatalf("contributions = %d, want 2", len(g.Contributions))
	}
	if !g.CurrentAmount.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("currentAmount = %s, want 3500", g.CurrentAmount)
	}

	if err := svc.EditContribution(ctx, testUser, goal.ID, 0, decimal.NewFromInt(1500), "2025-06-11"); err != nil {
		t.Fatalf("edit contribution: %v", err)
	}
	g = goalByID(t, svc, goal.ID)
	if !g.CurrentAmount.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("currentAmount after edit = %s, want 4000", g.CurrentAmount)
	}
	if g.Contributions[0].Date != "2025-06-11" {
		t.Errorf("edited date = %s, want 2025-06-11", g.Contributions[0].Date)
	}

	if err := svc.DeleteContribution(ctx, testUser, goal.ID, 1); err != nil {
		t.Fatalf("delete contribution: %v", err)
	}
	g = goalByID(t, svc, goal.ID)
	if len(g.Contributions) != 1 {
		t.Fatalf("contributions after delete = %d, want 1", len(g.Contributions))
	}
	if !g.CurrentAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("currentAmount after delete = %s, want 1500", g.CurrentAmount)
	}
}

func TestContributionValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	goal := seedGoal(t, svc)

	if err := svc.AddContribution(ctx, testUser, goal.ID, decimal.Zero, "2025-06-10"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("zero amount err = %v, want ErrValidation", err)
	}
	if err := svc.AddContribution(ctx, testUser, goal.ID, decimal.NewFromInt(100), "10/06/2025"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("bad date err = %v, want ErrValidation", err)
	}
	if err := svc.AddContribution(ctx, testUser, "missing", decimal.NewFromInt(100), "2025-06-10"); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("missing goal err = %v, want ErrNotFound", err)
	}
}

func TestContributionIndexOutOfRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	goal := seedGoal(t, svc)

	if err := svc.AddContribution(ctx, testUser, goal.ID, decimal.NewFromInt(100), "2025-06-10"); err != nil {
		t.Fatalf("add contribution: %v", err)
	}

	if err := svc.EditContribution(ctx, testUser, goal.ID, 5, decimal.NewFromInt(200), "2025-06-12"); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("edit out of range err = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteContribution(ctx, testUser, goal.ID, -1); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("delete out of range err = %v, want ErrNotFound", err)
	}
}
