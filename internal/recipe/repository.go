package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	db "diet-planner/internal/recipe/db"
)

// Repository is a database-backed recipe catalog. Recipes keep the position of
// their first insertion, so the catalog order is stable across updates.
type Repository struct {
	queries *db.Queries
	db      *sql.DB // Direct database access for transactions
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: db.New(d),
		db:      d,
	}
}

// Save inserts or updates a recipe in the database.
func (r *Repository) Save(ctx context.Context, rec Recipe) error {
	return save(ctx, r.queries, rec)
}

// SaveAll upserts the recipes in one transaction, in slice order.
func (r *Repository) SaveAll(ctx context.Context, recs []Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	for _, rec := range recs {
		if err := save(ctx, q, rec); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipes: %w", err)
	}
	return nil
}

func save(ctx context.Context, q *db.Queries, rec Recipe) error {
	if rec.ID == "" {
		return fmt.Errorf("recipe %q has no id", rec.Name)
	}

	recipeJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe to JSON: %w", err)
	}

	// Source timestamps are RFC3339 when present; anything else means "now".
	updatedAt := time.Now().UTC()
	if rec.UpdatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, rec.UpdatedAt); err == nil {
			updatedAt = parsed.UTC()
		}
	}

	if err := q.UpsertRecipe(ctx, db.UpsertRecipeParams{
		ID:        rec.ID,
		Data:      string(recipeJSON),
		UpdatedAt: updatedAt,
	}); err != nil {
		return fmt.Errorf("failed to save recipe %s: %w", rec.ID, err)
	}
	return nil
}

// Get retrieves a recipe by its ID. It returns nil, nil when the recipe does not exist.
func (r *Repository) Get(ctx context.Context, id string) (*Recipe, error) {
	dbRecipe, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	var rec Recipe
	if err := json.Unmarshal([]byte(dbRecipe.Data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe JSON: %w", err)
	}
	return &rec, nil
}

// List returns the whole catalog in insertion order.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	dbRecipes, err := r.queries.ListAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(dbRecipes))
	for _, dbRec := range dbRecipes {
		var rec Recipe
		if err := json.Unmarshal([]byte(dbRec.Data), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe JSON for ID %s: %w", dbRec.ID, err)
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

// Count returns the number of recipes in the database.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return int(count), nil
}

// DeleteMissing removes every recipe of the given source whose ID is not in
// keepIDs and returns how many were removed. Plans already generated keep
// their recipe names.
func (r *Repository) DeleteMissing(ctx context.Context, source string, keepIDs []string) (int, error) {
	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = struct{}{}
	}

	dbRecipes, err := r.queries.ListAllRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list recipes: %w", err)
	}

	removed := 0
	for _, dbRec := range dbRecipes {
		if _, ok := keep[dbRec.ID]; ok {
			continue
		}
		var rec Recipe
		if err := json.Unmarshal([]byte(dbRec.Data), &rec); err != nil {
			return removed, fmt.Errorf("failed to unmarshal recipe JSON for ID %s: %w", dbRec.ID, err)
		}
		if rec.Source != source {
			continue
		}
		if err := r.queries.DeleteRecipe(ctx, dbRec.ID); err != nil {
			return removed, fmt.Errorf("failed to delete recipe %s: %w", dbRec.ID, err)
		}
		removed++
	}
	return removed, nil
}
