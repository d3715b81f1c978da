package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"diet-planner/internal/database"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	d, err := database.NewDB(filepath.Join(t.TempDir(), "profiles.db"))
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer d.Close()
	repo := NewRepository(d.SQL)

	snap := Snapshot{
		Profile: &Profile{Age: 41, HeightCm: 165, WeightKg: 68.5, Sex: "mujer", Country: "MX"},
		Goal:    &Goal{GoalType: GoalMaintain, Pace: PaceGentle, ActivityLevel: ActivityHigh},
		Preferences: &Preferences{
			MealsPerDay: 4,
			Style:       StyleVegetarian,
			Snacks:      true,
			Allergies:   []string{"peanut"},
			BudgetLevel: "low",
		},
	}

	t.Run("Missing", func(t *testing.T) {
		got, err := repo.Get(ctx, "ghost")
		if err != nil || got != nil {
			t.Errorf("Expected nil, nil, got %v, %v", got, err)
		}
	})

	t.Run("SaveAndGet", func(t *testing.T) {
		if err := repo.Save(ctx, "u1", snap); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := repo.Get(ctx, "u1")
		if err != nil || got == nil {
			t.Fatalf("Expected snapshot, got %v, %v", got, err)
		}
		if diff := cmp.Diff(snap, *got); diff != "" {
			t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		updated := snap
		updated.Goal = &Goal{GoalType: GoalGainMuscle, Pace: PaceAggressive, ActivityLevel: ActivityAthlete}
		if err := repo.Save(ctx, "u1", updated); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, _ := repo.Get(ctx, "u1")
		if got.Goal.GoalType != GoalGainMuscle {
			t.Errorf("Expected updated goal, got %s", got.Goal.GoalType)
		}
	})

	t.Run("RejectsInvalid", func(t *testing.T) {
		invalid := snap
		invalid.Preferences = nil
		if err := repo.Save(ctx, "u2", invalid); !errors.Is(err, ErrIncomplete) {
			t.Errorf("Expected ErrIncomplete, got %v", err)
		}
		if err := repo.Save(ctx, "", snap); err == nil {
			t.Error("Expected an error for an empty user id")
		}
	})
}
