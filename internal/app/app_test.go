package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"diet-planner/internal/config"
	"diet-planner/internal/database"
	"diet-planner/internal/ghost"
	"diet-planner/internal/planner"
	"diet-planner/internal/profile"
	"diet-planner/internal/storage"
)

type testApp struct {
	*App
	logs *observer.ObservedLogs
	cfg  *config.Config
}

func newTestApp(t *testing.T, ghostClient ghost.Client) *testApp {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DatabasePath:  filepath.Join(dir, "db", "diet-planner.db"),
		PlanExportDir: filepath.Join(dir, "plans"),
		LogLevel:      "debug",
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	planStore, err := storage.NewPlanStore(cfg.PlanExportDir)
	if err != nil {
		t.Fatalf("Failed to create plan store: %v", err)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	a := NewApp(cfg, zap.New(core), db, ghostClient, planStore)
	a.now = func() time.Time { return time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC) }
	return &testApp{App: a, logs: logs, cfg: cfg}
}

func testSnapshot() profile.Snapshot {
	return profile.Snapshot{
		Profile: &profile.Profile{Age: 30, HeightCm: 170, WeightKg: 70, Sex: "male", Country: "ES"},
		Goal: &profile.Goal{
			GoalType:      profile.GoalLoseFat,
			Pace:          profile.PaceModerate,
			ActivityLevel: profile.ActivityModerate,
		},
		Preferences: &profile.Preferences{MealsPerDay: 3, Style: profile.StyleNormal},
	}
}

func TestGeneratePlanForUser(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, nil)

	if _, err := a.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}

	t.Run("WithoutProfile", func(t *testing.T) {
		_, err := a.GeneratePlanForUser(ctx, "u1", time.Time{})
		if !errors.Is(err, planner.ErrIncompleteProfile) {
			t.Errorf("Expected ErrIncompleteProfile, got %v", err)
		}
	})

	if err := a.SaveProfile(ctx, "u1", testSnapshot()); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	t.Run("Generate", func(t *testing.T) {
		cycle, err := a.GeneratePlanForUser(ctx, "u1", time.Time{})
		if err != nil {
			t.Fatalf("GeneratePlanForUser failed: %v", err)
		}
		if cycle.ID == "" || cycle.UserID != "u1" {
			t.Errorf("Expected a stored cycle, got id=%q user=%q", cycle.ID, cycle.UserID)
		}
		if got := cycle.StartDate.Format(time.DateOnly); got != "2024-03-04" {
			t.Errorf("Expected the cycle to start today, got %s", got)
		}

		active, err := a.ActivePlan(ctx, "u1")
		if err != nil || active.ID != cycle.ID {
			t.Fatalf("Expected active cycle %s, got %v, %v", cycle.ID, active, err)
		}

		if a.logs.FilterMessage("plan cycle generated").Len() != 1 {
			t.Error("Expected the generated cycle to be logged")
		}

		usage, err := a.DailyUsage(ctx, 1)
		if err != nil || len(usage) != 1 || usage[0].Generations != 1 {
			t.Errorf("Expected one recorded generation, got %v, %v", usage, err)
		}

		exported := filepath.Join(a.cfg.PlanExportDir, "u1_2024-03-04.json")
		if !a.planStore.Exists("u1", cycle.StartDate) {
			t.Errorf("Expected export %s", exported)
		}
	})

	t.Run("RegenerateArchives", func(t *testing.T) {
		first, _ := a.ActivePlan(ctx, "u1")
		start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
		second, err := a.GeneratePlanForUser(ctx, "u1", start)
		if err != nil {
			t.Fatalf("GeneratePlanForUser failed: %v", err)
		}
		if second.ID == first.ID {
			t.Fatal("Expected a new cycle")
		}
		active, _ := a.ActivePlan(ctx, "u1")
		if active.ID != second.ID {
			t.Errorf("Expected %s to be active, got %s", second.ID, active.ID)
		}
		if a.planStore.Exists("u1", first.StartDate) {
			t.Error("Expected the previous export to be replaced")
		}
	})

	t.Run("Degraded", func(t *testing.T) {
		snap := testSnapshot()
		snap.Preferences.Style = profile.StyleVegan
		snap.Preferences.Allergies = []string{"a", "e", "i", "o", "u"}
		if err := a.SaveProfile(ctx, "u2", snap); err != nil {
			t.Fatalf("SaveProfile failed: %v", err)
		}
		if _, err := a.GeneratePlanForUser(ctx, "u2", time.Time{}); err != nil {
			t.Fatalf("GeneratePlanForUser failed: %v", err)
		}

		warnings := a.logs.FilterMessage("no recipe passed the user's filters, planning with the whole catalog")
		if warnings.Len() != 1 {
			t.Fatalf("Expected a degraded warning, got %d", warnings.Len())
		}
		if warnings.All()[0].Level != zapcore.WarnLevel {
			t.Errorf("Expected warn level, got %s", warnings.All()[0].Level)
		}
	})
}

func TestGeneratePlanForUserEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, nil)

	if err := a.SaveProfile(ctx, "u1", testSnapshot()); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if _, err := a.GeneratePlanForUser(ctx, "u1", time.Time{}); !errors.Is(err, planner.ErrEmptyCatalog) {
		t.Errorf("Expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := a.ActivePlan(ctx, "u1"); !errors.Is(err, ErrNoActivePlan) {
		t.Errorf("Expected ErrNoActivePlan, got %v", err)
	}
}

func TestPlanWeekAndExport(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, nil)

	if _, err := a.PlanWeek(ctx, "u1", 1); !errors.Is(err, ErrNoActivePlan) {
		t.Errorf("Expected ErrNoActivePlan, got %v", err)
	}
	if _, err := a.ExportActivePlan(ctx, "u1"); !errors.Is(err, ErrNoActivePlan) {
		t.Errorf("Expected ErrNoActivePlan, got %v", err)
	}

	a.SeedCatalog(ctx)
	a.SaveProfile(ctx, "u1", testSnapshot())
	if _, err := a.GeneratePlanForUser(ctx, "u1", time.Time{}); err != nil {
		t.Fatalf("GeneratePlanForUser failed: %v", err)
	}

	week, err := a.PlanWeek(ctx, "u1", 2)
	if err != nil || week.WeekIndex != 2 || len(week.GroceryItems) == 0 {
		t.Errorf("Expected week 2 with groceries, got %v, %v", week, err)
	}
	if _, err := a.PlanWeek(ctx, "u1", 9); !errors.Is(err, planner.ErrInvalidWeek) {
		t.Errorf("Expected ErrInvalidWeek, got %v", err)
	}

	path, err := a.ExportActivePlan(ctx, "u1")
	if err != nil {
		t.Fatalf("ExportActivePlan failed: %v", err)
	}
	if filepath.Base(path) != "u1_2024-03-04.json" {
		t.Errorf("Unexpected export path %s", path)
	}
}

func TestMaintenance(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, nil)

	removed, err := a.CleanupMetrics(ctx, 30)
	if err != nil || removed != 0 {
		t.Errorf("Expected nothing to clean up, got %d, %v", removed, err)
	}

	h := a.Health()
	if h.Goroutines == 0 || h.DataDiskSize == "0 B" {
		t.Errorf("Expected health data including the database file, got %+v", h)
	}
}
