package tracking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"diet-planner/internal/planner"
	trackingdb "diet-planner/internal/tracking/tracking_db"
)

// Repository stores day check-ins and the food log.
type Repository struct {
	queries *trackingdb.Queries
	db      *sql.DB
}

// NewRepository creates a new tracking Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{queries: trackingdb.New(d), db: d}
}

// SaveDayCheck creates or replaces the user's check-in for check.Date. The
// date is normalized and UpdatedAt is set on check.
func (r *Repository) SaveDayCheck(ctx context.Context, userID string, check *DayCheck) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	date, err := ParseDate(check.Date)
	if err != nil {
		return err
	}
	if err := check.validate(); err != nil {
		return err
	}
	if check.MealsCompleted == nil {
		check.MealsCompleted = map[planner.MealType]bool{}
	}

	meals, err := json.Marshal(check.MealsCompleted)
	if err != nil {
		return fmt.Errorf("failed to marshal completed meals: %w", err)
	}

	updatedAt := time.Now().UTC()
	if err := r.queries.UpsertDayCheck(ctx, trackingdb.UpsertDayCheckParams{
		UserID:         userID,
		Date:           date,
		IsCompleted:    check.IsCompleted,
		MealsCompleted: string(meals),
		Notes:          nullString(check.Notes),
		UpdatedAt:      updatedAt,
	}); err != nil {
		return fmt.Errorf("failed to save day check for user %s: %w", userID, err)
	}

	check.Date = date
	check.UpdatedAt = updatedAt
	return nil
}

// GetDayCheck returns the user's check-in for a date, or nil, nil when there is none.
func (r *Repository) GetDayCheck(ctx context.Context, userID, date string) (*DayCheck, error) {
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	row, err := r.queries.GetDayCheck(ctx, trackingdb.GetDayCheckParams{UserID: userID, Date: date})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day check for user %s: %w", userID, err)
	}

	check := &DayCheck{
		Date:        row.Date,
		IsCompleted: row.IsCompleted,
		Notes:       row.Notes.String,
		UpdatedAt:   row.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(row.MealsCompleted), &check.MealsCompleted); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed meals: %w", err)
	}
	return check, nil
}

// LogFood appends an entry to the user's log for a date and adds its totals to
// the day, in one transaction. ID and CreatedAt are set on entry once stored.
func (r *Repository) LogFood(ctx context.Context, userID, date string, entry *FoodLogEntry) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	date, err := ParseDate(date)
	if err != nil {
		return err
	}
	if err := entry.normalize(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()
	q := r.queries.WithTx(tx)

	if err := q.AddFoodLogTotals(ctx, trackingdb.AddFoodLogTotalsParams{
		UserID:       userID,
		Date:         date,
		Calories:     entry.Totals.Calories,
		ProteinGrams: entry.Totals.Protein,
		CarbsGrams:   entry.Totals.Carbs,
		FatGrams:     entry.Totals.Fat,
	}); err != nil {
		return fmt.Errorf("failed to update food log totals: %w", err)
	}

	createdAt := time.Now().UTC()
	id, err := q.InsertFoodLogEntry(ctx, trackingdb.InsertFoodLogEntryParams{
		UserID:       userID,
		Date:         date,
		MealType:     string(entry.MealType),
		Source:       string(entry.Source),
		Name:         nullString(entry.Name),
		ServingText:  nullString(entry.ServingText),
		Quantity:     sql.NullFloat64{Float64: entry.Quantity, Valid: entry.Quantity > 0},
		Barcode:      nullString(entry.Barcode),
		Items:        nullString(string(entry.Items)),
		Calories:     entry.Totals.Calories,
		ProteinGrams: entry.Totals.Protein,
		CarbsGrams:   entry.Totals.Carbs,
		FatGrams:     entry.Totals.Fat,
		CreatedAt:    createdAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert food log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit food log entry: %w", err)
	}
	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// GetFoodLogDay returns the user's log for a date with its entries in the
// order they were logged, or nil, nil when nothing was logged.
func (r *Repository) GetFoodLogDay(ctx context.Context, userID, date string) (*FoodLogDay, error) {
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	key := trackingdb.GetFoodLogDayParams{UserID: userID, Date: date}
	row, err := r.queries.GetFoodLogDay(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get food log for user %s: %w", userID, err)
	}

	rows, err := r.queries.ListFoodLogEntries(ctx, trackingdb.ListFoodLogEntriesParams(key))
	if err != nil {
		return nil, fmt.Errorf("failed to list food log entries: %w", err)
	}

	day := &FoodLogDay{
		Date: row.Date,
		Totals: Totals{
			Calories: row.Calories,
			Protein:  row.ProteinGrams,
			Carbs:    row.CarbsGrams,
			Fat:      row.FatGrams,
		},
		Entries: make([]FoodLogEntry, 0, len(rows)),
	}
	for _, e := range rows {
		entry := FoodLogEntry{
			ID:          e.ID,
			MealType:    planner.MealType(e.MealType),
			Source:      Source(e.Source),
			Name:        e.Name.String,
			ServingText: e.ServingText.String,
			Quantity:    e.Quantity.Float64,
			Barcode:     e.Barcode.String,
			Totals: Totals{
				Calories: e.Calories,
				Protein:  e.ProteinGrams,
				Carbs:    e.CarbsGrams,
				Fat:      e.FatGrams,
			},
			CreatedAt: e.CreatedAt,
		}
		if e.Items.Valid {
			entry.Items = json.RawMessage(e.Items.String)
		}
		day.Entries = append(day.Entries, entry)
	}
	return day, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
