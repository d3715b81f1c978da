package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"diet-planner/internal/ghost"
	"diet-planner/internal/recipe"
)

// IngestResult summarizes a catalog sync.
type IngestResult struct {
	Fetched int
	Saved   int
	Skipped int
	Removed int
}

// SeedCatalog upserts the built-in starter recipes and returns how many were written.
func (a *App) SeedCatalog(ctx context.Context) (int, error) {
	recipes := recipe.SeedCatalog()
	if err := a.recipeRepo.SaveAll(ctx, recipes); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}
	a.logger.Info("catalog seeded", zap.Int("recipes", len(recipes)))
	return len(recipes), nil
}

// ProcessPost converts a Ghost post into a catalog recipe.
func ProcessPost(post ghost.Post) (recipe.Recipe, error) {
	rec, err := recipe.ParseHTML(post.PostData())
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to extract recipe: %w", err)
	}
	rec.Source = recipe.SourceGhost
	return rec, nil
}

// IngestRecipes syncs the catalog with the recipes published on Ghost. Posts
// that cannot be parsed are skipped; Ghost recipes that are no longer
// published are removed. Seeded and clipped recipes are left alone.
func (a *App) IngestRecipes(ctx context.Context) (IngestResult, error) {
	var result IngestResult
	if a.ghostClient == nil {
		return result, errors.New("ghost is not configured")
	}

	posts, err := a.ghostClient.FetchRecipes(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to fetch recipes from ghost: %w", err)
	}
	result.Fetched = len(posts)
	a.logger.Info("fetched recipe posts from ghost", zap.Int("posts", len(posts)))

	recipes := make([]recipe.Recipe, 0, len(posts))
	keep := make([]string, 0, len(posts))
	for _, post := range posts {
		// A post that fails to parse keeps its previous version in the catalog.
		keep = append(keep, post.ID)

		rec, err := ProcessPost(post)
		if err != nil {
			a.logger.Warn("skipping recipe post", zap.String("post_id", post.ID), zap.String("title", post.Title), zap.Error(err))
			result.Skipped++
			continue
		}
		recipes = append(recipes, rec)
	}

	if err := a.recipeRepo.SaveAll(ctx, recipes); err != nil {
		return result, fmt.Errorf("failed to save recipes: %w", err)
	}
	result.Saved = len(recipes)

	removed, err := a.recipeRepo.DeleteMissing(ctx, recipe.SourceGhost, keep)
	if err != nil {
		return result, fmt.Errorf("failed to remove unpublished recipes: %w", err)
	}
	result.Removed = removed

	a.logger.Info("ingestion complete",
		zap.Int("saved", result.Saved),
		zap.Int("skipped", result.Skipped),
		zap.Int("removed", result.Removed),
	)
	return result, nil
}

// ClipRecipe imports the recipe published at url into the catalog.
func (a *App) ClipRecipe(ctx context.Context, url string) (*recipe.Recipe, error) {
	rec, err := a.recipeClipper.ClipURL(ctx, url)
	if err != nil {
		return nil, err
	}
	a.logger.Info("recipe clipped", zap.String("recipe_id", rec.ID), zap.String("name", rec.Name))
	return rec, nil
}

// CatalogSize returns the number of recipes in the catalog.
func (a *App) CatalogSize(ctx context.Context) (int, error) {
	return a.recipeRepo.Count(ctx)
}
