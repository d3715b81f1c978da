package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"diet-planner/internal/planner"
	"diet-planner/internal/tracking"
)

func TestTracking(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, nil)

	if _, err := a.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}
	if err := a.SaveProfile(ctx, "u1", testSnapshot()); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	t.Run("ProgressWithoutPlan", func(t *testing.T) {
		p, err := a.DayProgress(ctx, "u1", "2024-03-05")
		if err != nil {
			t.Fatalf("DayProgress failed: %v", err)
		}
		if p.Planned != nil || p.Check != nil || p.FoodLog != nil {
			t.Errorf("Expected empty progress, got %+v", p)
		}
	})

	cycle, err := a.GeneratePlanForUser(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("GeneratePlanForUser failed: %v", err)
	}

	t.Run("CheckAndLog", func(t *testing.T) {
		check, err := a.SaveDayCheck(ctx, "u1", "2024-03-05", tracking.DayCheck{
			MealsCompleted: map[planner.MealType]bool{planner.MealBreakfast: true, planner.MealDinner: true},
		})
		if err != nil || check.Date != "2024-03-05" {
			t.Fatalf("SaveDayCheck failed: %v, %+v", err, check)
		}

		day, err := a.LogFood(ctx, "u1", "2024-03-05", tracking.FoodLogEntry{
			MealType: planner.MealBreakfast,
			Name:     "Greek yoghurt",
			Totals:   tracking.Totals{Calories: 400, Protein: 30, Carbs: 40, Fat: 10},
		})
		if err != nil {
			t.Fatalf("LogFood failed: %v", err)
		}
		if day.Totals.Calories != 400 || len(day.Entries) != 1 {
			t.Errorf("Unexpected day %+v", day)
		}

		p, err := a.DayProgress(ctx, "u1", "2024-03-05")
		if err != nil {
			t.Fatalf("DayProgress failed: %v", err)
		}
		if p.Planned == nil || p.Planned.DayIndex != 2 {
			t.Fatalf("Expected the plan's second day, got %+v", p.Planned)
		}
		if p.MealsPlanned != 3 || p.MealsDone != 2 {
			t.Errorf("Expected 2 of 3 meals done, got %d of %d", p.MealsDone, p.MealsPlanned)
		}
		wantRemaining := float64(cycle.Targets.Calories) - 400
		if p.Remaining == nil || p.Remaining.Calories != wantRemaining {
			t.Errorf("Expected %.0f kcal remaining, got %+v", wantRemaining, p.Remaining)
		}
		if a.logs.FilterMessage("food logged").Len() != 1 {
			t.Error("Expected the food log to be logged")
		}
	})

	t.Run("InvalidDate", func(t *testing.T) {
		if _, err := a.DayProgress(ctx, "u1", "someday"); !errors.Is(err, tracking.ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}
	})
}
