package planner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"diet-planner/internal/nutrition"
	"diet-planner/internal/planner/plan_db"
	"diet-planner/internal/shopping"
)

// PlanRepository is a database-backed repository for plan cycles.
type PlanRepository struct {
	queries  *plan_db.Queries
	shopping *shopping.Repository
	db       *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{
		queries:  plan_db.New(d),
		shopping: shopping.NewRepository(d),
		db:       d,
	}
}

// Replace archives the user's active cycle and stores the given one as the new
// active cycle, in a single transaction. Once the transaction commits, IDs, the
// user and the creation time are written back into cycle; on failure cycle is
// left as it was. It returns the new cycle ID.
func (r *PlanRepository) Replace(ctx context.Context, userID string, cycle *PlanCycle) (string, error) {
	if cycle == nil {
		return "", errors.New("cannot store a nil plan cycle")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	groceries := r.shopping.WithTx(tx)

	if _, err := q.ArchiveActiveCycles(ctx, userID); err != nil {
		return "", fmt.Errorf("failed to archive active cycle for user %s: %w", userID, err)
	}

	stored := cycle.clone()
	stored.ID = uuid.NewString()
	stored.UserID = userID
	stored.Status = StatusActive
	stored.CreatedAt = time.Now().UTC()

	err = q.InsertPlanCycle(ctx, plan_db.InsertPlanCycleParams{
		ID:           stored.ID,
		UserID:       userID,
		StartDate:    stored.StartDate,
		EndDate:      stored.EndDate,
		Status:       string(stored.Status),
		Calories:     int64(stored.Targets.Calories),
		ProteinGrams: int64(stored.Targets.Protein),
		CarbsGrams:   int64(stored.Targets.Carbs),
		FatGrams:     int64(stored.Targets.Fat),
		CreatedAt:    stored.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert plan cycle: %w", err)
	}

	for wi := range stored.Weeks {
		week := &stored.Weeks[wi]
		week.ID = uuid.NewString()
		if err := q.InsertPlanWeek(ctx, plan_db.InsertPlanWeekParams{
			ID:        week.ID,
			CycleID:   stored.ID,
			WeekIndex: int64(week.WeekIndex),
		}); err != nil {
			return "", fmt.Errorf("failed to insert week %d: %w", week.WeekIndex, err)
		}

		for di := range week.Days {
			if err := insertDay(ctx, q, week.ID, &week.Days[di]); err != nil {
				return "", err
			}
		}

		if err := groceries.SaveWeek(ctx, week.ID, week.GroceryItems); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit plan cycle: %w", err)
	}

	*cycle = *stored
	return cycle.ID, nil
}

func insertDay(ctx context.Context, q *plan_db.Queries, weekID string, day *PlanDay) error {
	day.ID = uuid.NewString()
	if err := q.InsertPlanDay(ctx, plan_db.InsertPlanDayParams{
		ID:       day.ID,
		WeekID:   weekID,
		DayIndex: int64(day.DayIndex),
		Date:     day.Date,
	}); err != nil {
		return fmt.Errorf("failed to insert day %d: %w", day.DayIndex, err)
	}

	for pos := range day.Meals {
		meal := &day.Meals[pos]
		meal.ID = uuid.NewString()
		if err := q.InsertMeal(ctx, plan_db.InsertMealParams{
			ID:           meal.ID,
			DayID:        day.ID,
			Position:     int64(pos),
			MealType:     string(meal.Type),
			RecipeID:     nullString(meal.RecipeID),
			RecipeName:   nullString(meal.RecipeName),
			Calories:     int64(meal.Targets.Calories),
			ProteinGrams: int64(meal.Targets.Protein),
			CarbsGrams:   int64(meal.Targets.Carbs),
			FatGrams:     int64(meal.Targets.Fat),
		}); err != nil {
			return fmt.Errorf("failed to insert %s meal of day %d: %w", meal.Type, day.DayIndex, err)
		}
	}
	return nil
}

// GetActive loads the user's active cycle with all weeks, days, meals and
// grocery items. It returns nil, nil when the user has no active cycle.
func (r *PlanRepository) GetActive(ctx context.Context, userID string) (*PlanCycle, error) {
	dbCycle, err := r.queries.GetActiveCycleByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active cycle for user %s: %w", userID, err)
	}

	cycle := &PlanCycle{
		ID:        dbCycle.ID,
		UserID:    dbCycle.UserID,
		StartDate: dbCycle.StartDate,
		EndDate:   dbCycle.EndDate,
		Status:    PlanStatus(dbCycle.Status),
		Targets: nutrition.Targets{
			Calories: int(dbCycle.Calories),
			Protein:  int(dbCycle.ProteinGrams),
			Carbs:    int(dbCycle.CarbsGrams),
			Fat:      int(dbCycle.FatGrams),
		},
		CreatedAt: dbCycle.CreatedAt,
	}

	dbWeeks, err := r.queries.ListWeeksByCycleID(ctx, cycle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks of cycle %s: %w", cycle.ID, err)
	}
	for _, dbWeek := range dbWeeks {
		week, err := r.loadWeek(ctx, dbWeek)
		if err != nil {
			return nil, err
		}
		cycle.Weeks = append(cycle.Weeks, *week)
	}
	return cycle, nil
}

// GetWeek loads one week of the user's active cycle. It returns nil, nil when
// the user has no active cycle.
func (r *PlanRepository) GetWeek(ctx context.Context, userID string, index int) (*PlanWeek, error) {
	if index < 1 || index > WeeksPerCycle {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeek, index)
	}

	dbCycle, err := r.queries.GetActiveCycleByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active cycle for user %s: %w", userID, err)
	}

	dbWeek, err := r.queries.GetWeekByCycleAndIndex(ctx, plan_db.GetWeekByCycleAndIndexParams{
		CycleID:   dbCycle.ID,
		WeekIndex: int64(index),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get week %d: %w", index, err)
	}
	return r.loadWeek(ctx, dbWeek)
}

// CountCycles returns how many cycles, active or archived, the user has.
func (r *PlanRepository) CountCycles(ctx context.Context, userID string) (int, error) {
	count, err := r.queries.CountCyclesByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count cycles for user %s: %w", userID, err)
	}
	return int(count), nil
}

func (r *PlanRepository) loadWeek(ctx context.Context, dbWeek plan_db.PlanWeek) (*PlanWeek, error) {
	week := &PlanWeek{
		ID:        dbWeek.ID,
		WeekIndex: int(dbWeek.WeekIndex),
	}

	dbDays, err := r.queries.ListDaysByWeekID(ctx, dbWeek.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days of week %d: %w", week.WeekIndex, err)
	}
	for _, dbDay := range dbDays {
		day := PlanDay{
			ID:       dbDay.ID,
			DayIndex: int(dbDay.DayIndex),
			Date:     dbDay.Date,
		}

		dbMeals, err := r.queries.ListMealsByDayID(ctx, dbDay.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list meals of day %d: %w", day.DayIndex, err)
		}
		for _, m := range dbMeals {
			day.Meals = append(day.Meals, Meal{
				ID:         m.ID,
				Type:       MealType(m.MealType),
				RecipeID:   m.RecipeID.String,
				RecipeName: m.RecipeName.String,
				Targets: nutrition.Targets{
					Calories: int(m.Calories),
					Protein:  int(m.ProteinGrams),
					Carbs:    int(m.CarbsGrams),
					Fat:      int(m.FatGrams),
				},
			})
		}
		week.Days = append(week.Days, day)
	}

	items, err := r.shopping.ListByWeek(ctx, week.ID)
	if err != nil {
		return nil, err
	}
	week.GroceryItems = items
	return week, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
