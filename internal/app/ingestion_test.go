package app

import (
	"context"
	"errors"
	"testing"

	"diet-planner/internal/ghost"
	"diet-planner/internal/recipe"
)

type mockGhostClient struct {
	posts []ghost.Post
	err   error
}

func (m *mockGhostClient) FetchRecipes(ctx context.Context) ([]ghost.Post, error) {
	return m.posts, m.err
}

func post(id, title string) ghost.Post {
	return ghost.Post{
		ID:        id,
		Title:     title,
		UpdatedAt: "2024-01-01T00:00:00Z",
		HTML:      `<p>Tasty.</p><h2>Ingredients</h2><ul><li>rice</li></ul>`,
		Tags:      []ghost.Tag{{Name: "high-protein"}},
	}
}

func TestProcessPost(t *testing.T) {
	rec, err := ProcessPost(post("p1", "Rice bowl"))
	if err != nil {
		t.Fatalf("ProcessPost failed: %v", err)
	}
	if rec.Source != recipe.SourceGhost || !rec.HasTag(recipe.TagHighProtein) {
		t.Errorf("Unexpected recipe %+v", rec)
	}

	if _, err := ProcessPost(ghost.Post{ID: "p2", Title: "Empty"}); err == nil {
		t.Error("Expected an error for a post without ingredients")
	}
}

func TestIngestRecipes(t *testing.T) {
	ctx := context.Background()
	client := &mockGhostClient{}
	a := newTestApp(t, client)

	seeded, err := a.SeedCatalog(ctx)
	if err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}

	t.Run("FirstSync", func(t *testing.T) {
		client.posts = []ghost.Post{
			post("p1", "Rice bowl"),
			post("p2", "Bean chili"),
			{ID: "p3", Title: "Broken", HTML: "<p>no list</p>"},
		}
		result, err := a.IngestRecipes(ctx)
		if err != nil {
			t.Fatalf("IngestRecipes failed: %v", err)
		}
		if result.Fetched != 3 || result.Saved != 2 || result.Skipped != 1 || result.Removed != 0 {
			t.Errorf("Unexpected result %+v", result)
		}
		if a.logs.FilterMessage("skipping recipe post").Len() != 1 {
			t.Error("Expected the broken post to be logged")
		}
		count, _ := a.CatalogSize(ctx)
		if count != seeded+2 {
			t.Errorf("Expected %d recipes, got %d", seeded+2, count)
		}
	})

	t.Run("UnpublishedRecipesAreRemoved", func(t *testing.T) {
		client.posts = []ghost.Post{post("p2", "Bean chili")}
		result, err := a.IngestRecipes(ctx)
		if err != nil {
			t.Fatalf("IngestRecipes failed: %v", err)
		}
		if result.Removed != 1 {
			t.Errorf("Expected 1 removed recipe, got %d", result.Removed)
		}
		count, _ := a.CatalogSize(ctx)
		if count != seeded+1 {
			t.Errorf("Expected seeded recipes to survive, got %d recipes", count)
		}
	})

	t.Run("FetchError", func(t *testing.T) {
		client.err = errors.New("ghost down")
		defer func() { client.err = nil }()
		if _, err := a.IngestRecipes(ctx); err == nil {
			t.Error("Expected fetch error to be returned")
		}
	})
}

func TestIngestRecipesWithoutGhost(t *testing.T) {
	a := newTestApp(t, nil)
	if _, err := a.IngestRecipes(context.Background()); err == nil {
		t.Error("Expected an error when Ghost is not configured")
	}
}
