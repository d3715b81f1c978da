package shopping

import (
	"context"
	"database/sql"
	"fmt"

	shoppingdb "diet-planner/internal/shopping/db"
)

// Repository handles persistence of weekly grocery lists.
type Repository struct {
	queries *shoppingdb.Queries
	db      *sql.DB
}

// NewRepository creates a new grocery list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: shoppingdb.New(d),
		db:      d,
	}
}

// WithTx returns a Repository that writes through the given transaction.
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	return &Repository{
		queries: r.queries.WithTx(tx),
		db:      r.db,
	}
}

// SaveWeek stores the grocery items of one plan week.
func (r *Repository) SaveWeek(ctx context.Context, weekID string, items []Item) error {
	for _, item := range items {
		err := r.queries.InsertGroceryItem(ctx, shoppingdb.InsertGroceryItemParams{
			WeekID:   weekID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
		if err != nil {
			return fmt.Errorf("failed to insert grocery item %q: %w", item.Name, err)
		}
	}
	return nil
}

// ListByWeek returns the grocery items of a week sorted by name.
func (r *Repository) ListByWeek(ctx context.Context, weekID string) ([]Item, error) {
	rows, err := r.queries.ListGroceryItemsByWeekID(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items for week %s: %w", weekID, err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{Name: row.Name, Quantity: row.Quantity})
	}
	return items, nil
}
