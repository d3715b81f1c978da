package planner

import (
	"fmt"
	"time"

	"diet-planner/internal/nutrition"
	"diet-planner/internal/shopping"
)

const (
	WeeksPerCycle = 4
	DaysPerWeek   = 7
	CycleDays     = WeeksPerCycle * DaysPerWeek
)

// PlanStatus represents the lifecycle state of a plan cycle.
type PlanStatus string

const (
	StatusActive   PlanStatus = "ACTIVE"
	StatusArchived PlanStatus = "ARCHIVED"
)

// MealType is the slot a meal occupies within a day.
type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnack     MealType = "SNACK"
)

// Meal is one slot of a day with its assigned recipe and share of the daily targets.
type Meal struct {
	ID         string            `json:"id,omitempty"`
	Type       MealType          `json:"meal_type"`
	RecipeID   string            `json:"recipe_id,omitempty"`
	RecipeName string            `json:"recipe_name,omitempty"`
	Targets    nutrition.Targets `json:"targets"`
}

// PlanDay is a calendar day of a plan week.
type PlanDay struct {
	ID       string    `json:"id,omitempty"`
	DayIndex int       `json:"day_index"`
	Date     time.Time `json:"date"`
	Meals    []Meal    `json:"meals"`
}

// PlanWeek groups seven days and the grocery list needed to cook them.
type PlanWeek struct {
	ID           string          `json:"id,omitempty"`
	WeekIndex    int             `json:"week_index"`
	Days         []PlanDay       `json:"days"`
	GroceryItems []shopping.Item `json:"grocery_items"`
}

// PlanCycle is one complete 28-day plan. A cycle is created in one piece and
// never edited afterwards; regenerating produces a new cycle.
type PlanCycle struct {
	ID        string            `json:"id,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date"`
	Status    PlanStatus        `json:"status"`
	Targets   nutrition.Targets `json:"targets"`
	Weeks     []PlanWeek        `json:"weeks"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

// Week returns the week with the given 1-based index.
func (c *PlanCycle) Week(index int) (*PlanWeek, error) {
	if index < 1 || index > WeeksPerCycle {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeek, index)
	}
	for i := range c.Weeks {
		if c.Weeks[i].WeekIndex == index {
			return &c.Weeks[i], nil
		}
	}
	return nil, nil
}

// MealCount returns the number of meals across the whole cycle.
func (c *PlanCycle) MealCount() int {
	n := 0
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			n += len(d.Meals)
		}
	}
	return n
}

// DayOn returns the day of the cycle that falls on the given calendar date,
// or nil when the date is outside the cycle.
func (c *PlanCycle) DayOn(date time.Time) *PlanDay {
	want := date.Format(time.DateOnly)
	for wi := range c.Weeks {
		for di := range c.Weeks[wi].Days {
			if c.Weeks[wi].Days[di].Date.Format(time.DateOnly) == want {
				return &c.Weeks[wi].Days[di]
			}
		}
	}
	return nil
}

// clone returns a copy of the cycle that shares no slices with c.
func (c *PlanCycle) clone() *PlanCycle {
	out := *c
	out.Weeks = make([]PlanWeek, len(c.Weeks))
	for wi, w := range c.Weeks {
		w.Days = append([]PlanDay(nil), w.Days...)
		for di := range w.Days {
			w.Days[di].Meals = append([]Meal(nil), w.Days[di].Meals...)
		}
		w.GroceryItems = append([]shopping.Item(nil), w.GroceryItems...)
		out.Weeks[wi] = w
	}
	return &out
}
