package recipe

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"diet-planner/internal/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	d, err := database.NewDB(filepath.Join(t.TempDir(), "recipes.db"))
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewRepository(d.SQL)
}

func TestSeedCatalog(t *testing.T) {
	catalog := SeedCatalog()
	if len(catalog) < 10 {
		t.Fatalf("Expected a starter catalog, got %d recipes", len(catalog))
	}
	for _, r := range catalog {
		if len(r.Ingredients) == 0 || len(r.Tags) == 0 {
			t.Errorf("Seed recipe %s is missing ingredients or tags", r.ID)
		}
		if r.Source != SourceSeed {
			t.Errorf("Seed recipe %s has source %q", r.ID, r.Source)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader(`[{"id":"a","name":"A"},{"id":"a","name":"B"}]`))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected duplicate id error, got %v", err)
	}

	_, err = LoadCatalog(strings.NewReader(`[{"name":"A"}]`))
	if err == nil {
		t.Error("Expected an error for a recipe without id")
	}

	_, err = LoadCatalog(strings.NewReader(`{`))
	if err == nil {
		t.Error("Expected a decode error")
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	catalog := []Recipe{
		{ID: "b", Name: "Second", Ingredients: []string{"x"}, Source: SourceGhost},
		{ID: "a", Name: "First", Ingredients: []string{"y"}, Source: SourceGhost, UpdatedAt: "2023-01-01T00:00:00Z"},
		{ID: "c", Name: "Third", Ingredients: []string{"z"}, Source: SourceSeed, UpdatedAt: "not a date"},
	}

	t.Run("SaveAllKeepsOrder", func(t *testing.T) {
		if err := repo.SaveAll(ctx, catalog); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		sameIDs(t, got, "b", "a", "c")
	})

	t.Run("UpdateKeepsPosition", func(t *testing.T) {
		if err := repo.Save(ctx, Recipe{ID: "b", Name: "Second, renamed", Ingredients: []string{"x"}, Source: SourceGhost}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, _ := repo.List(ctx)
		sameIDs(t, got, "b", "a", "c")
		if got[0].Name != "Second, renamed" {
			t.Errorf("Expected updated name, got %q", got[0].Name)
		}
	})

	t.Run("Get", func(t *testing.T) {
		rec, err := repo.Get(ctx, "a")
		if err != nil || rec == nil {
			t.Fatalf("Expected recipe a, got %v, %v", rec, err)
		}
		if rec.Name != "First" {
			t.Errorf("Expected First, got %q", rec.Name)
		}

		missing, err := repo.Get(ctx, "nope")
		if err != nil || missing != nil {
			t.Errorf("Expected nil, nil for missing recipe, got %v, %v", missing, err)
		}
	})

	t.Run("RejectsMissingID", func(t *testing.T) {
		if err := repo.Save(ctx, Recipe{Name: "anonymous"}); err == nil {
			t.Error("Expected an error for recipe without id")
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		removed, err := repo.DeleteMissing(ctx, SourceGhost, []string{"a"})
		if err != nil {
			t.Fatalf("DeleteMissing failed: %v", err)
		}
		if removed != 1 {
			t.Errorf("Expected 1 removed, got %d", removed)
		}
		count, _ := repo.Count(ctx)
		if count != 2 {
			t.Errorf("Expected 2 recipes left, got %d", count)
		}
	})
}
